package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-review-platform/internal/models"
	"github.com/sbilibin2017/gw-review-platform/internal/services"
)

func newCategoriesRouter(svc CategoryManager) chi.Router {
	r := chi.NewRouter()
	r.Get("/categories", NewListCategoriesHandler(svc))
	r.Post("/categories", NewCreateCategoryHandler(svc))
	r.Delete("/categories/{slug}", NewDeleteCategoryHandler(svc))
	return r
}

func TestListCategoriesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCategoryManager(ctrl)
	mockSvc.EXPECT().
		List(gomock.Any(), "mov", 20, 0).
		Return([]models.CategoryDB{{CategoryID: 1, Name: "Movies", Slug: "movie"}}, nil)

	router := newCategoriesRouter(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/categories?search=mov", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []models.CategoryDB
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "movie", resp[0].Slug)
}

func TestCreateCategoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockCategoryManager)
		expectedCode int
	}{
		{
			name: "created",
			body: `{"name":"Movies","slug":"movie"}`,
			mockSetup: func(m *MockCategoryManager) {
				m.EXPECT().
					Create(gomock.Any(), "Movies", "movie").
					Return(&models.CategoryDB{CategoryID: 1, Name: "Movies", Slug: "movie"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "duplicate slug",
			body: `{"name":"Movies","slug":"movie"}`,
			mockSetup: func(m *MockCategoryManager) {
				m.EXPECT().
					Create(gomock.Any(), "Movies", "movie").
					Return(nil, services.ErrSlugTaken)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid slug characters",
			body:         `{"name":"Movies","slug":"mov ie!"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing name",
			body:         `{"slug":"movie"}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCategoryManager(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}
			router := newCategoriesRouter(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/categories", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestDeleteCategoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCategoryManager(ctrl)
	router := newCategoriesRouter(mockSvc)

	t.Run("deleted", func(t *testing.T) {
		mockSvc.EXPECT().Delete(gomock.Any(), "movie").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/categories/movie", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().Delete(gomock.Any(), "nope").Return(services.ErrCategoryNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/categories/nope", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
