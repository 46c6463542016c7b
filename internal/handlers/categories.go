package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-review-platform/internal/logger"
	"github.com/sbilibin2017/gw-review-platform/internal/models"
	"github.com/sbilibin2017/gw-review-platform/internal/services"
)

// CategoryManager defines the interface that the category service must
// implement. Mutations are admin-gated by the router.
type CategoryManager interface {
	List(ctx context.Context, search string, limit, offset int) ([]models.CategoryDB, error)
	Create(ctx context.Context, name, slug string) (*models.CategoryDB, error)
	Delete(ctx context.Context, slug string) error
}

// SlugRequest represents the JSON body for creating a category or genre
// swagger:model SlugRequest
type SlugRequest struct {
	// Display name
	// required: true
	Name string `json:"name" validate:"required,max=256"`

	// Unique slug
	// required: true
	Slug string `json:"slug" validate:"required,max=50,slug"`
}

// NewListCategoriesHandler returns an HTTP handler listing categories.
// @Summary List categories
// @Tags categories
// @Produce json
// @Param search query string false "Name substring"
// @Success 200 {array} models.CategoryDB
// @Router /categories [get]
func NewListCategoriesHandler(svc CategoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search, limit, offset := listParams(r)

		categories, err := svc.List(r.Context(), search, limit, offset)
		if err != nil {
			logger.Log.Errorw("failed to list categories", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, categories)
	}
}

// NewCreateCategoryHandler returns an HTTP handler creating a category.
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param slugRequest body handlers.SlugRequest true "Category"
// @Success 201 {object} models.CategoryDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid or duplicate slug"
// @Router /categories [post]
// @Security BearerAuth
func NewCreateCategoryHandler(svc CategoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SlugRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.StructCtx(r.Context(), req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		category, err := svc.Create(r.Context(), req.Name, req.Slug)
		if err != nil {
			if errors.Is(err, services.ErrSlugTaken) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, category)
	}
}

// NewDeleteCategoryHandler returns an HTTP handler deleting a category
// by slug. Titles in the category keep existing without one.
// @Summary Delete a category
// @Tags categories
// @Param slug path string true "Slug"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /categories/{slug} [delete]
// @Security BearerAuth
func NewDeleteCategoryHandler(svc CategoryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "slug")); err != nil {
			if errors.Is(err, services.ErrCategoryNotFound) {
				writeError(w, http.StatusNotFound, err.Error())
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
