package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job_hunter/internal/feature/actions/domain/entity"
	"job_hunter/internal/feature/actions/usecase"
)

// mockTemplateUsecase is a mock implementation of the TemplateUsecase
// interface.
type mockTemplateUsecase struct {
	CreateFunc func(ctx context.Context, in usecase.TemplateInput) (*entity.ActionTemplate, error)
	ListFunc   func(ctx context.Context) ([]*entity.ActionTemplate, error)
	UpdateFunc func(ctx context.Context, id uint, in usecase.TemplateInput) (*entity.ActionTemplate, error)
	DeleteFunc func(ctx context.Context, id uint) error
}

func (m *mockTemplateUsecase) Create(ctx context.Context, in usecase.TemplateInput) (*entity.ActionTemplate, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	return &entity.ActionTemplate{ID: 1, Name: in.Name}, nil
}

func (m *mockTemplateUsecase) List(ctx context.Context) ([]*entity.ActionTemplate, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTemplateUsecase) Update(ctx context.Context, id uint, in usecase.TemplateInput) (*entity.ActionTemplate, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, in)
	}
	return nil, usecase.ErrTemplateNotFound
}

func (m *mockTemplateUsecase) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return usecase.ErrTemplateNotFound
}

func newTemplateRouter(uc *mockTemplateUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewTemplateHandler(uc)

	r := gin.New()
	r.POST("/actions/templates", handler.Create)
	r.GET("/actions/templates", handler.List)
	r.PUT("/actions/templates/:id", handler.Update)
	r.DELETE("/actions/templates/:id", handler.Delete)
	return r
}

func TestTemplateHandler_Create(t *testing.T) {
	valid := gin.H{"name": "Phone Screen", "description": "Initial phone screen", "category": "interview"}

	t.Run("success", func(t *testing.T) {
		router := newTemplateRouter(&mockTemplateUsecase{})

		w := doJSON(router, http.MethodPost, "/actions/templates", valid)

		assert.Equal(t, http.StatusCreated, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		tpl := body["template"].(map[string]any)
		assert.Equal(t, "Phone Screen", tpl["name"])
	})

	t.Run("duplicate name", func(t *testing.T) {
		router := newTemplateRouter(&mockTemplateUsecase{
			CreateFunc: func(ctx context.Context, in usecase.TemplateInput) (*entity.ActionTemplate, error) {
				return nil, usecase.ErrTemplateNameTaken
			},
		})

		w := doJSON(router, http.MethodPost, "/actions/templates", valid)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Template name already exists", body["error"])
	})

	t.Run("bad category and missing name reported together", func(t *testing.T) {
		router := newTemplateRouter(&mockTemplateUsecase{})

		w := doJSON(router, http.MethodPost, "/actions/templates",
			gin.H{"description": "d", "category": "misc"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Validation failed", body["error"])
		assert.Len(t, body["details"], 2)
	})
}

func TestTemplateHandler_List(t *testing.T) {
	router := newTemplateRouter(&mockTemplateUsecase{
		ListFunc: func(ctx context.Context) ([]*entity.ActionTemplate, error) {
			return []*entity.ActionTemplate{
				{ID: 1, Name: "Applied", Order: 1},
				{ID: 2, Name: "Offer Received", Order: 20},
			}, nil
		},
	})

	w := doJSON(router, http.MethodGet, "/actions/templates", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body["templates"], 2)
}

func TestTemplateHandler_Update(t *testing.T) {
	valid := gin.H{"name": "Applied", "description": "d", "category": "application", "order": 2}

	t.Run("success", func(t *testing.T) {
		router := newTemplateRouter(&mockTemplateUsecase{
			UpdateFunc: func(ctx context.Context, id uint, in usecase.TemplateInput) (*entity.ActionTemplate, error) {
				assert.Equal(t, uint(4), id)
				assert.Equal(t, 2, in.Order)
				return &entity.ActionTemplate{ID: id, Name: in.Name, Order: in.Order}, nil
			},
		})

		w := doJSON(router, http.MethodPut, "/actions/templates/4", valid)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown template", func(t *testing.T) {
		router := newTemplateRouter(&mockTemplateUsecase{})

		w := doJSON(router, http.MethodPut, "/actions/templates/99", valid)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Action template not found", body["error"])
	})
}

func TestTemplateHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router := newTemplateRouter(&mockTemplateUsecase{
			DeleteFunc: func(ctx context.Context, id uint) error { return nil },
		})

		w := doJSON(router, http.MethodDelete, "/actions/templates/4", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Action template deleted successfully", body["message"])
	})

	t.Run("unknown template", func(t *testing.T) {
		router := newTemplateRouter(&mockTemplateUsecase{})

		w := doJSON(router, http.MethodDelete, "/actions/templates/99", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
