package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"job_hunter/internal/feature/companies/domain/entity"
	"job_hunter/internal/feature/companies/usecase"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Company{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestCompanyGorm_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyGorm(db)

	company := &entity.Company{
		Name:     "Acme",
		Website:  "https://acme.example.com",
		Location: "Berlin",
	}
	require.NoError(t, repo.Create(context.Background(), company))
	assert.NotZero(t, company.ID)

	found, err := repo.FindByID(context.Background(), company.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", found.Name)

	_, err = repo.FindByID(context.Background(), 9999)
	assert.ErrorIs(t, err, usecase.ErrCompanyNotFound)
}

func TestCompanyGorm_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyGorm(db)

	company := &entity.Company{Name: "Before"}
	require.NoError(t, repo.Create(context.Background(), company))

	company.Name = "After"
	require.NoError(t, repo.Update(context.Background(), company))

	reloaded, err := repo.FindByID(context.Background(), company.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", reloaded.Name)
}
