package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "paisa/internal/errors"
	"paisa/internal/models"
)

func newCategoryRouter(mock *mockCategoryService) *gin.Engine {
	router := gin.New()
	handler := NewCategoryHandler(mock)
	router.POST("/categories", handler.CreateCategory)
	router.GET("/categories", handler.GetCategories)
	router.DELETE("/categories/:id", handler.DeleteCategory)
	return router
}

func TestCreateCategoryHandler(t *testing.T) {
	t.Run("creates_category", func(t *testing.T) {
		var gotName, gotColor, gotIcon string
		mock := &mockCategoryService{
			createCategoryFunc: func(name, color, icon string) (*models.Category, error) {
				gotName, gotColor, gotIcon = name, color, icon
				return &models.Category{Name: name, Color: color, Icon: icon, IsCustom: true}, nil
			},
		}
		router := newCategoryRouter(mock)

		w := performRequest(router, http.MethodPost, "/categories", gin.H{
			"name":  "Pets",
			"color": "#ABCDEF",
			"icon":  "paw-print",
		})

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
		if gotName != "Pets" || gotColor != "#ABCDEF" || gotIcon != "paw-print" {
			t.Errorf("service received %q %q %q", gotName, gotColor, gotIcon)
		}

		var resp struct {
			Category models.Category `json:"category"`
		}
		decodeBody(t, w, &resp)
		if resp.Category.Name != "Pets" {
			t.Errorf("expected category in envelope, got %+v", resp.Category)
		}
	})

	t.Run("applies_defaults", func(t *testing.T) {
		var gotColor, gotIcon string
		mock := &mockCategoryService{
			createCategoryFunc: func(name, color, icon string) (*models.Category, error) {
				gotColor, gotIcon = color, icon
				return &models.Category{Name: name, Color: color, Icon: icon}, nil
			},
		}
		router := newCategoryRouter(mock)

		w := performRequest(router, http.MethodPost, "/categories", gin.H{"name": "Pets"})

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if gotColor != "#FF6B6B" || gotIcon != "dollar-sign" {
			t.Errorf("expected form defaults, got %q %q", gotColor, gotIcon)
		}
	})

	t.Run("missing_name", func(t *testing.T) {
		router := newCategoryRouter(&mockCategoryService{})

		w := performRequest(router, http.MethodPost, "/categories", gin.H{"color": "#ABCDEF"})

		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("malformed_color", func(t *testing.T) {
		router := newCategoryRouter(&mockCategoryService{})

		w := performRequest(router, http.MethodPost, "/categories", gin.H{
			"name":  "Pets",
			"color": "red",
		})

		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("duplicate_name", func(t *testing.T) {
		mock := &mockCategoryService{
			createCategoryFunc: func(name, color, icon string) (*models.Category, error) {
				return nil, apperrors.ErrDuplicateCategory
			},
		}
		router := newCategoryRouter(mock)

		w := performRequest(router, http.MethodPost, "/categories", gin.H{"name": "Pets"})

		assertErrorCode(t, w, http.StatusConflict, "DUPLICATE_CATEGORY")
	})
}

func TestGetCategoriesHandler(t *testing.T) {
	t.Run("lists_categories", func(t *testing.T) {
		mock := &mockCategoryService{
			getCategoriesFunc: func() ([]models.Category, error) {
				return []models.Category{
					{Name: "Groceries"},
					{Name: "Rent"},
				}, nil
			},
		}
		router := newCategoryRouter(mock)

		w := performRequest(router, http.MethodGet, "/categories", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Categories []models.Category `json:"categories"`
		}
		decodeBody(t, w, &resp)
		if len(resp.Categories) != 2 {
			t.Errorf("expected 2 categories, got %d", len(resp.Categories))
		}
	})
}

func TestDeleteCategoryHandler(t *testing.T) {
	t.Run("deletes_category", func(t *testing.T) {
		var gotID string
		mock := &mockCategoryService{
			deleteCategoryFunc: func(categoryID string) error {
				gotID = categoryID
				return nil
			},
		}
		router := newCategoryRouter(mock)

		w := performRequest(router, http.MethodDelete, "/categories/abc-123", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if gotID != "abc-123" {
			t.Errorf("expected path ID to reach the service, got %q", gotID)
		}
	})

	t.Run("default_category", func(t *testing.T) {
		mock := &mockCategoryService{
			deleteCategoryFunc: func(categoryID string) error {
				return apperrors.ErrDefaultCategory
			},
		}
		router := newCategoryRouter(mock)

		w := performRequest(router, http.MethodDelete, "/categories/abc-123", nil)

		assertErrorCode(t, w, http.StatusBadRequest, "DEFAULT_CATEGORY")
	})

	t.Run("unknown_category", func(t *testing.T) {
		mock := &mockCategoryService{
			deleteCategoryFunc: func(categoryID string) error {
				return apperrors.ErrCategoryNotFound
			},
		}
		router := newCategoryRouter(mock)

		w := performRequest(router, http.MethodDelete, "/categories/abc-123", nil)

		assertErrorCode(t, w, http.StatusNotFound, "CATEGORY_NOT_FOUND")
	})
}
