package usecase

import (
	"context"

	"job_hunter/internal/feature/actions/domain/entity"
)

// TemplateRepository abstracts the persistence layer for action templates.
type TemplateRepository interface {
	// Create persists a new template. A duplicate name returns
	// ErrTemplateNameTaken.
	Create(ctx context.Context, tpl *entity.ActionTemplate) error

	// FindAll returns every template ordered by sort order.
	FindAll(ctx context.Context) ([]*entity.ActionTemplate, error)

	// FindByID retrieves a template by ID.
	FindByID(ctx context.Context, id uint) (*entity.ActionTemplate, error)

	// FindDefaults returns the default-flagged templates in sort order.
	FindDefaults(ctx context.Context) ([]*entity.ActionTemplate, error)

	// Update persists changes to an existing template.
	Update(ctx context.Context, tpl *entity.ActionTemplate) error

	// Delete removes a template. ErrTemplateNotFound when no row matches.
	Delete(ctx context.Context, id uint) error

	// Count returns the number of stored templates.
	Count(ctx context.Context) (int64, error)

	// CreateBatch inserts templates in one statement, used by seeding.
	CreateBatch(ctx context.Context, tpls []*entity.ActionTemplate) error
}

// TemplateInput carries the fields of a template create/update request.
type TemplateInput struct {
	Name        string
	Description string
	Category    entity.Category
	IsDefault   bool
	Color       string
	Icon        string
	Order       int
}

type templateUsecase struct {
	templates TemplateRepository
}

// NewTemplateUsecase creates a new instance of templateUsecase.
func NewTemplateUsecase(templates TemplateRepository) *templateUsecase {
	return &templateUsecase{templates: templates}
}

// Create adds a template to the shared catalog.
func (u *templateUsecase) Create(ctx context.Context, in TemplateInput) (*entity.ActionTemplate, error) {
	tpl := &entity.ActionTemplate{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		IsDefault:   in.IsDefault,
		Color:       in.Color,
		Icon:        in.Icon,
		Order:       in.Order,
	}
	if err := u.templates.Create(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

// List returns the whole catalog in display order.
func (u *templateUsecase) List(ctx context.Context) ([]*entity.ActionTemplate, error) {
	return u.templates.FindAll(ctx)
}

// Update replaces a template's fields. Actions created from the template
// keep their denormalized name.
func (u *templateUsecase) Update(ctx context.Context, id uint, in TemplateInput) (*entity.ActionTemplate, error) {
	tpl, err := u.templates.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tpl.Name = in.Name
	tpl.Description = in.Description
	tpl.Category = in.Category
	tpl.IsDefault = in.IsDefault
	tpl.Color = in.Color
	tpl.Icon = in.Icon
	tpl.Order = in.Order
	if err := u.templates.Update(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

// Delete removes a template from the catalog.
func (u *templateUsecase) Delete(ctx context.Context, id uint) error {
	return u.templates.Delete(ctx, id)
}

// Seed inserts the built-in catalog when the table is empty. It returns the
// number of inserted templates, zero when the catalog already exists.
func (u *templateUsecase) Seed(ctx context.Context) (int, error) {
	count, err := u.templates.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	catalog := DefaultTemplates()
	if err := u.templates.CreateBatch(ctx, catalog); err != nil {
		return 0, err
	}
	return len(catalog), nil
}
