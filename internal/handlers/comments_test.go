package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-review-platform/internal/middlewares"
	"github.com/sbilibin2017/gw-review-platform/internal/models"
	"github.com/sbilibin2017/gw-review-platform/internal/services"
)

func newCommentsRouter(svc CommentManager) chi.Router {
	r := chi.NewRouter()
	r.Route("/titles/{title_id}/reviews/{review_id}/comments", func(r chi.Router) {
		r.Get("/", NewListCommentsHandler(svc))
		r.Post("/", NewCreateCommentHandler(svc))
		r.Get("/{comment_id}", NewGetCommentHandler(svc))
		r.Patch("/{comment_id}", NewUpdateCommentHandler(svc))
		r.Delete("/{comment_id}", NewDeleteCommentHandler(svc))
	})
	return r
}

func TestCreateCommentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actor := &models.UserDB{UserID: uuid.New(), Username: "bob", Role: models.RoleUser, IsActive: true}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockCommentManager)
		expectedCode int
	}{
		{
			name: "created",
			body: `{"text":"agreed"}`,
			mockSetup: func(m *MockCommentManager) {
				m.EXPECT().
					Create(gomock.Any(), actor, int64(7), int64(42), "agreed").
					Return(&models.CommentDB{CommentID: 3, Author: "bob", Text: "agreed"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "unknown review",
			body: `{"text":"agreed"}`,
			mockSetup: func(m *MockCommentManager) {
				m.EXPECT().
					Create(gomock.Any(), actor, int64(7), int64(42), "agreed").
					Return(nil, services.ErrReviewNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "missing text",
			body:         `{}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCommentManager(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}
			router := newCommentsRouter(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/titles/7/reviews/42/comments", bytes.NewBufferString(tt.body))
			req = req.WithContext(middlewares.WithActor(req.Context(), actor))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestListCommentsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCommentManager(ctrl)
	mockSvc.EXPECT().
		ListByReview(gomock.Any(), int64(7), int64(42), 20, 0).
		Return([]models.CommentDB{{CommentID: 1, Text: "first"}, {CommentID: 2, Text: "second"}}, nil)

	router := newCommentsRouter(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/titles/7/reviews/42/comments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []models.CommentDB
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp, 2)
}

func TestGetCommentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCommentManager(ctrl)
	router := newCommentsRouter(mockSvc)

	t.Run("found", func(t *testing.T) {
		mockSvc.EXPECT().
			GetByID(gomock.Any(), int64(7), int64(42), int64(3)).
			Return(&models.CommentDB{CommentID: 3, Text: "agreed"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/titles/7/reviews/42/comments/3", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong review", func(t *testing.T) {
		mockSvc.EXPECT().
			GetByID(gomock.Any(), int64(7), int64(42), int64(3)).
			Return(nil, services.ErrCommentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/titles/7/reviews/42/comments/3", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateCommentHandler_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stranger := &models.UserDB{UserID: uuid.New(), Username: "eve", Role: models.RoleUser, IsActive: true}

	mockSvc := NewMockCommentManager(ctrl)
	mockSvc.EXPECT().
		Update(gomock.Any(), stranger, int64(7), int64(42), int64(3), "edited").
		Return(nil, services.ErrForbidden)

	router := newCommentsRouter(mockSvc)

	req := httptest.NewRequest(http.MethodPatch, "/titles/7/reviews/42/comments/3", bytes.NewBufferString(`{"text":"edited"}`))
	req = req.WithContext(middlewares.WithActor(req.Context(), stranger))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteCommentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actor := &models.UserDB{UserID: uuid.New(), Username: "bob", Role: models.RoleUser, IsActive: true}

	mockSvc := NewMockCommentManager(ctrl)
	mockSvc.EXPECT().
		Delete(gomock.Any(), actor, int64(7), int64(42), int64(3)).
		Return(nil)

	router := newCommentsRouter(mockSvc)

	req := httptest.NewRequest(http.MethodDelete, "/titles/7/reviews/42/comments/3", nil)
	req = req.WithContext(middlewares.WithActor(req.Context(), actor))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
