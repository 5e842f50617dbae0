// Package usecase implements the business logic for the companies feature.
package usecase

import (
	"context"
	"errors"

	"job_hunter/internal/feature/companies/domain/entity"
)

// ErrCompanyNotFound is returned when no company exists with the given ID.
var ErrCompanyNotFound = errors.New("company not found")

// CompanyRepository abstracts the persistence layer for companies.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	FindByID(ctx context.Context, id uint) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
}

// CompanyInput carries the fields of a company create/update request.
type CompanyInput struct {
	Name        string
	Description string
	Website     string
	Location    string
}

type companyUsecase struct {
	companies CompanyRepository
}

// NewCompanyUsecase creates a new instance of companyUsecase.
func NewCompanyUsecase(companies CompanyRepository) *companyUsecase {
	return &companyUsecase{companies: companies}
}

func (u *companyUsecase) Create(ctx context.Context, in CompanyInput) (*entity.Company, error) {
	company := &entity.Company{
		Name:        in.Name,
		Description: in.Description,
		Website:     in.Website,
		Location:    in.Location,
	}
	if err := u.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (u *companyUsecase) GetByID(ctx context.Context, id uint) (*entity.Company, error) {
	return u.companies.FindByID(ctx, id)
}

func (u *companyUsecase) Update(ctx context.Context, id uint, in CompanyInput) (*entity.Company, error) {
	company, err := u.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	company.Name = in.Name
	company.Description = in.Description
	company.Website = in.Website
	company.Location = in.Location
	if err := u.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}
