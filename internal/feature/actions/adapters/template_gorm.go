// Package adapters provides repository implementations for the actions feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"job_hunter/internal/feature/actions/domain/entity"
	"job_hunter/internal/feature/actions/usecase"
)

const pgUniqueViolation = "23505"

// templateGorm is a GORM implementation of the TemplateRepository interface.
type templateGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure templateGorm implements TemplateRepository.
var _ usecase.TemplateRepository = (*templateGorm)(nil)

// NewTemplateGorm creates a new instance of templateGorm.
func NewTemplateGorm(db *gorm.DB) *templateGorm {
	return &templateGorm{db: db}
}

func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Create inserts the template. A duplicate name maps to ErrTemplateNameTaken.
func (r *templateGorm) Create(ctx context.Context, tpl *entity.ActionTemplate) error {
	if err := r.db.WithContext(ctx).Create(tpl).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrTemplateNameTaken
		}
		return err
	}
	return nil
}

// FindAll returns every template in display order.
func (r *templateGorm) FindAll(ctx context.Context) ([]*entity.ActionTemplate, error) {
	var tpls []*entity.ActionTemplate
	if err := r.db.WithContext(ctx).Order("sort_order ASC").Find(&tpls).Error; err != nil {
		return nil, err
	}
	return tpls, nil
}

// FindByID retrieves a template by ID.
func (r *templateGorm) FindByID(ctx context.Context, id uint) (*entity.ActionTemplate, error) {
	var tpl entity.ActionTemplate
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tpl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTemplateNotFound
		}
		return nil, err
	}
	return &tpl, nil
}

// FindDefaults returns the default-flagged templates in display order.
func (r *templateGorm) FindDefaults(ctx context.Context) ([]*entity.ActionTemplate, error) {
	var tpls []*entity.ActionTemplate
	if err := r.db.WithContext(ctx).
		Where("is_default = ?", true).
		Order("sort_order ASC").
		Find(&tpls).Error; err != nil {
		return nil, err
	}
	return tpls, nil
}

// Update saves the full template record.
func (r *templateGorm) Update(ctx context.Context, tpl *entity.ActionTemplate) error {
	if err := r.db.WithContext(ctx).Save(tpl).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrTemplateNameTaken
		}
		return err
	}
	return nil
}

// Delete removes a template by ID.
func (r *templateGorm) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.ActionTemplate{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrTemplateNotFound
	}
	return nil
}

// Count returns the number of stored templates.
func (r *templateGorm) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.ActionTemplate{}).Count(&count).Error
	return count, err
}

// CreateBatch inserts templates in a single statement.
func (r *templateGorm) CreateBatch(ctx context.Context, tpls []*entity.ActionTemplate) error {
	return r.db.WithContext(ctx).Create(tpls).Error
}
