// Package adapters provides repository implementations for the companies feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"job_hunter/internal/feature/companies/domain/entity"
	"job_hunter/internal/feature/companies/usecase"
)

// companyGorm is a GORM implementation of the CompanyRepository interface.
type companyGorm struct {
	db *gorm.DB
}

var _ usecase.CompanyRepository = (*companyGorm)(nil)

// NewCompanyGorm creates a new instance of companyGorm.
func NewCompanyGorm(db *gorm.DB) *companyGorm {
	return &companyGorm{db: db}
}

func (r *companyGorm) Create(ctx context.Context, company *entity.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *companyGorm) FindByID(ctx context.Context, id uint) (*entity.Company, error) {
	var company entity.Company
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyGorm) Update(ctx context.Context, company *entity.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}
