package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"job_hunter/internal/feature/actions/domain/entity"
)

// mockActionRepository is a mock implementation of the ActionRepository
// interface.
type mockActionRepository struct {
	CreateFunc            func(ctx context.Context, action *entity.Action) error
	FindByJobAndUserFunc  func(ctx context.Context, jobID, userID uint) ([]*entity.Action, error)
	FindByUserFunc        func(ctx context.Context, userID uint) ([]*entity.Action, error)
	FindByIDAndUserFunc   func(ctx context.Context, id, userID uint) (*entity.Action, error)
	UpdateFunc            func(ctx context.Context, action *entity.Action) error
	DeleteByIDAndUserFunc func(ctx context.Context, id, userID uint) error

	created []*entity.Action
}

func (m *mockActionRepository) Create(ctx context.Context, action *entity.Action) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, action)
	}
	action.ID = uint(len(m.created) + 1)
	m.created = append(m.created, action)
	return nil
}

func (m *mockActionRepository) FindByJobAndUser(ctx context.Context, jobID, userID uint) ([]*entity.Action, error) {
	if m.FindByJobAndUserFunc != nil {
		return m.FindByJobAndUserFunc(ctx, jobID, userID)
	}
	return nil, nil
}

func (m *mockActionRepository) FindByUser(ctx context.Context, userID uint) ([]*entity.Action, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockActionRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*entity.Action, error) {
	if m.FindByIDAndUserFunc != nil {
		return m.FindByIDAndUserFunc(ctx, id, userID)
	}
	return nil, ErrActionNotFound
}

func (m *mockActionRepository) Update(ctx context.Context, action *entity.Action) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, action)
	}
	return nil
}

func (m *mockActionRepository) DeleteByIDAndUser(ctx context.Context, id, userID uint) error {
	if m.DeleteByIDAndUserFunc != nil {
		return m.DeleteByIDAndUserFunc(ctx, id, userID)
	}
	return ErrActionNotFound
}

// mockTemplateRepository is a mock implementation of the TemplateRepository
// interface.
type mockTemplateRepository struct {
	CreateFunc       func(ctx context.Context, tpl *entity.ActionTemplate) error
	FindAllFunc      func(ctx context.Context) ([]*entity.ActionTemplate, error)
	FindByIDFunc     func(ctx context.Context, id uint) (*entity.ActionTemplate, error)
	FindDefaultsFunc func(ctx context.Context) ([]*entity.ActionTemplate, error)
	UpdateFunc       func(ctx context.Context, tpl *entity.ActionTemplate) error
	DeleteFunc       func(ctx context.Context, id uint) error
	CountFunc        func(ctx context.Context) (int64, error)
	CreateBatchFunc  func(ctx context.Context, tpls []*entity.ActionTemplate) error
}

func (m *mockTemplateRepository) Create(ctx context.Context, tpl *entity.ActionTemplate) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tpl)
	}
	tpl.ID = 1
	return nil
}

func (m *mockTemplateRepository) FindAll(ctx context.Context) ([]*entity.ActionTemplate, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockTemplateRepository) FindByID(ctx context.Context, id uint) (*entity.ActionTemplate, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrTemplateNotFound
}

func (m *mockTemplateRepository) FindDefaults(ctx context.Context) ([]*entity.ActionTemplate, error) {
	if m.FindDefaultsFunc != nil {
		return m.FindDefaultsFunc(ctx)
	}
	return nil, nil
}

func (m *mockTemplateRepository) Update(ctx context.Context, tpl *entity.ActionTemplate) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tpl)
	}
	return nil
}

func (m *mockTemplateRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return ErrTemplateNotFound
}

func (m *mockTemplateRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockTemplateRepository) CreateBatch(ctx context.Context, tpls []*entity.ActionTemplate) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, tpls)
	}
	return nil
}

func TestActionUsecase_Create(t *testing.T) {
	tpl := &entity.ActionTemplate{ID: 3, Name: "Offer Received"}
	templates := &mockTemplateRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.ActionTemplate, error) {
			if id == tpl.ID {
				return tpl, nil
			}
			return nil, ErrTemplateNotFound
		},
	}

	t.Run("denormalizes the template name", func(t *testing.T) {
		actions := &mockActionRepository{}
		uc := NewActionUsecase(actions, templates)

		action, err := uc.Create(context.Background(), 5, CreateActionInput{
			JobID:      2,
			TemplateID: 3,
			Notes:      "call at 3pm",
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if action.TemplateName != "Offer Received" {
			t.Errorf("expected denormalized template name, got %q", action.TemplateName)
		}
		if action.JobID != 2 || action.UserID != 5 {
			t.Errorf("action bound to job %d user %d", action.JobID, action.UserID)
		}
		if action.Date.IsZero() {
			t.Error("date must default to now")
		}
	})

	t.Run("explicit date is kept", func(t *testing.T) {
		date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
		uc := NewActionUsecase(&mockActionRepository{}, templates)

		action, err := uc.Create(context.Background(), 5, CreateActionInput{
			JobID:      2,
			TemplateID: 3,
			Date:       &date,
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !action.Date.Equal(date) {
			t.Errorf("expected date %v, got %v", date, action.Date)
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		actions := &mockActionRepository{}
		uc := NewActionUsecase(actions, templates)

		_, err := uc.Create(context.Background(), 5, CreateActionInput{JobID: 2, TemplateID: 99})

		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got: %v", err)
		}
		if len(actions.created) != 0 {
			t.Error("no action may be stored for an unknown template")
		}
	})
}

func TestActionUsecase_Update(t *testing.T) {
	stored := &entity.Action{
		ID:           1,
		UserID:       5,
		JobID:        2,
		TemplateName: "Applied",
		Date:         time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Notes:        "original",
	}
	actions := &mockActionRepository{
		FindByIDAndUserFunc: func(ctx context.Context, id, userID uint) (*entity.Action, error) {
			if id == stored.ID && userID == stored.UserID {
				cp := *stored
				return &cp, nil
			}
			return nil, ErrActionNotFound
		},
	}
	uc := NewActionUsecase(actions, &mockTemplateRepository{})

	t.Run("partial update touches only provided fields", func(t *testing.T) {
		notes := "updated notes"
		action, err := uc.Update(context.Background(), 1, 5, UpdateActionInput{Notes: &notes})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if action.Notes != notes {
			t.Errorf("expected notes %q, got %q", notes, action.Notes)
		}
		if !action.Date.Equal(stored.Date) {
			t.Error("date must be untouched when not provided")
		}
		if action.TemplateName != "Applied" {
			t.Error("template name must never change on update")
		}
	})

	t.Run("foreign action reads as missing", func(t *testing.T) {
		notes := "x"
		_, err := uc.Update(context.Background(), 1, 6, UpdateActionInput{Notes: &notes})

		if !errors.Is(err, ErrActionNotFound) {
			t.Errorf("expected ErrActionNotFound, got: %v", err)
		}
	})
}

func TestActionUsecase_SeedForJob(t *testing.T) {
	defaults := []*entity.ActionTemplate{
		{ID: 1, Name: "Applied", IsDefault: true},
	}
	templates := &mockTemplateRepository{
		FindDefaultsFunc: func(ctx context.Context) ([]*entity.ActionTemplate, error) {
			return defaults, nil
		},
	}

	t.Run("instantiates every default template", func(t *testing.T) {
		actions := &mockActionRepository{}
		uc := NewActionUsecase(actions, templates)

		date := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
		if err := uc.SeedForJob(context.Background(), 7, 5, date); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(actions.created) != 1 {
			t.Fatalf("expected 1 seeded action, got %d", len(actions.created))
		}
		seeded := actions.created[0]
		if seeded.JobID != 7 || seeded.UserID != 5 {
			t.Errorf("seeded action bound to job %d user %d", seeded.JobID, seeded.UserID)
		}
		if seeded.TemplateName != "Applied" {
			t.Errorf("expected template name Applied, got %q", seeded.TemplateName)
		}
		if !seeded.Date.Equal(date) {
			t.Errorf("seeded action must carry the job's applied date, got %v", seeded.Date)
		}
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		dbErr := errors.New("query failed")
		broken := &mockTemplateRepository{
			FindDefaultsFunc: func(ctx context.Context) ([]*entity.ActionTemplate, error) {
				return nil, dbErr
			},
		}
		uc := NewActionUsecase(&mockActionRepository{}, broken)

		err := uc.SeedForJob(context.Background(), 7, 5, time.Now())
		if !errors.Is(err, dbErr) {
			t.Errorf("expected lookup error, got: %v", err)
		}
	})
}

func TestTemplateUsecase_Seed(t *testing.T) {
	t.Run("seeds the built-in catalog when empty", func(t *testing.T) {
		var batch []*entity.ActionTemplate
		templates := &mockTemplateRepository{
			CreateBatchFunc: func(ctx context.Context, tpls []*entity.ActionTemplate) error {
				batch = tpls
				return nil
			},
		}

		uc := NewTemplateUsecase(templates)
		n, err := uc.Seed(context.Background())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != len(DefaultTemplates()) {
			t.Errorf("expected %d seeded templates, got %d", len(DefaultTemplates()), n)
		}
		if len(batch) != n {
			t.Errorf("expected a single batch of %d templates, got %d", n, len(batch))
		}

		defaultFlagged := 0
		for _, tpl := range batch {
			if tpl.IsDefault {
				defaultFlagged++
			}
		}
		if defaultFlagged != 1 {
			t.Errorf("exactly one catalog entry is default-flagged, got %d", defaultFlagged)
		}
	})

	t.Run("skips seeding when templates exist", func(t *testing.T) {
		templates := &mockTemplateRepository{
			CountFunc: func(ctx context.Context) (int64, error) { return 20, nil },
			CreateBatchFunc: func(ctx context.Context, tpls []*entity.ActionTemplate) error {
				t.Error("seeding must not run over an existing catalog")
				return nil
			},
		}

		uc := NewTemplateUsecase(templates)
		n, err := uc.Seed(context.Background())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 0 {
			t.Errorf("expected 0 seeded templates, got %d", n)
		}
	})
}

func TestTemplateUsecase_Update(t *testing.T) {
	stored := &entity.ActionTemplate{ID: 4, Name: "Old Name", Category: entity.CategoryOther}
	templates := &mockTemplateRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.ActionTemplate, error) {
			if id == stored.ID {
				cp := *stored
				return &cp, nil
			}
			return nil, ErrTemplateNotFound
		},
	}

	uc := NewTemplateUsecase(templates)

	tpl, err := uc.Update(context.Background(), 4, TemplateInput{
		Name:     "New Name",
		Category: entity.CategoryInterview,
		Order:    12,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tpl.Name != "New Name" || tpl.Category != entity.CategoryInterview || tpl.Order != 12 {
		t.Errorf("template fields not applied: %+v", tpl)
	}

	if _, err := uc.Update(context.Background(), 99, TemplateInput{Name: "x"}); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("expected ErrTemplateNotFound, got: %v", err)
	}
}
