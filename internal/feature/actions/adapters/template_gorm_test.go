package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"job_hunter/internal/feature/actions/domain/entity"
	"job_hunter/internal/feature/actions/usecase"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.ActionTemplate{}, &entity.Action{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func TestTemplateGorm_Create(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTemplateGorm(db)

		tpl := &entity.ActionTemplate{
			Name:        "Applied",
			Description: "Submitted job application",
			Category:    entity.CategoryApplication,
			IsDefault:   true,
			Order:       1,
		}

		require.NoError(t, repo.Create(context.Background(), tpl))
		assert.NotZero(t, tpl.ID)
	})

	t.Run("duplicate name maps to ErrTemplateNameTaken", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTemplateGorm(db)

		require.NoError(t, repo.Create(context.Background(), &entity.ActionTemplate{
			Name: "Applied", Description: "d", Category: entity.CategoryApplication,
		}))

		err := repo.Create(context.Background(), &entity.ActionTemplate{
			Name: "Applied", Description: "other", Category: entity.CategoryOther,
		})

		assert.ErrorIs(t, err, usecase.ErrTemplateNameTaken)
	})
}

func TestTemplateGorm_FindAll_SortOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTemplateGorm(db)

	// Insert out of display order.
	for _, tpl := range []*entity.ActionTemplate{
		{Name: "Offer Received", Description: "d", Category: entity.CategoryResponse, Order: 20},
		{Name: "Applied", Description: "d", Category: entity.CategoryApplication, Order: 1},
		{Name: "HR Interview Scheduled", Description: "d", Category: entity.CategoryInterview, Order: 10},
	} {
		require.NoError(t, repo.Create(context.Background(), tpl))
	}

	tpls, err := repo.FindAll(context.Background())
	require.NoError(t, err)

	require.Len(t, tpls, 3)
	assert.Equal(t, "Applied", tpls[0].Name)
	assert.Equal(t, "HR Interview Scheduled", tpls[1].Name)
	assert.Equal(t, "Offer Received", tpls[2].Name)
}

func TestTemplateGorm_FindDefaults(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTemplateGorm(db)

	require.NoError(t, repo.CreateBatch(context.Background(), []*entity.ActionTemplate{
		{Name: "Applied", Description: "d", Category: entity.CategoryApplication, IsDefault: true, Order: 1},
		{Name: "Rejected", Description: "d", Category: entity.CategoryResponse, Order: 23},
	}))

	defaults, err := repo.FindDefaults(context.Background())
	require.NoError(t, err)

	require.Len(t, defaults, 1)
	assert.Equal(t, "Applied", defaults[0].Name)
}

func TestTemplateGorm_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTemplateGorm(db)

	tpl := &entity.ActionTemplate{Name: "Applied", Description: "d", Category: entity.CategoryApplication}
	require.NoError(t, repo.Create(context.Background(), tpl))

	found, err := repo.FindByID(context.Background(), tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, "Applied", found.Name)

	_, err = repo.FindByID(context.Background(), 9999)
	assert.ErrorIs(t, err, usecase.ErrTemplateNotFound)
}

func TestTemplateGorm_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTemplateGorm(db)

	tpl := &entity.ActionTemplate{Name: "Applied", Description: "d", Category: entity.CategoryApplication}
	require.NoError(t, repo.Create(context.Background(), tpl))

	require.NoError(t, repo.Delete(context.Background(), tpl.ID))

	err := repo.Delete(context.Background(), tpl.ID)
	assert.ErrorIs(t, err, usecase.ErrTemplateNotFound)
}

func TestTemplateGorm_Count(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTemplateGorm(db)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.CreateBatch(context.Background(), usecase.DefaultTemplates()))

	count, err = repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(len(usecase.DefaultTemplates())), count)
}
