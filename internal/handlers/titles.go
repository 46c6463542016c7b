package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-review-platform/internal/logger"
	"github.com/sbilibin2017/gw-review-platform/internal/models"
	"github.com/sbilibin2017/gw-review-platform/internal/repositories"
	"github.com/sbilibin2017/gw-review-platform/internal/services"
)

// TitleManager defines the interface that the title service must
// implement. Mutations are admin-gated by the router.
type TitleManager interface {
	List(ctx context.Context, filter repositories.TitleFilter, limit, offset int) ([]models.Title, error)
	GetByID(ctx context.Context, titleID int64) (*models.Title, error)
	Create(ctx context.Context, name string, year int, description, categorySlug string, genreSlugs []string) (*models.Title, error)
	Update(ctx context.Context, titleID int64, name string, year int, description, categorySlug string, genreSlugs []string) (*models.Title, error)
	Delete(ctx context.Context, titleID int64) error
}

// TitleRequest represents the JSON body for creating or updating a title
// swagger:model TitleRequest
type TitleRequest struct {
	// Work name
	// required: true
	Name string `json:"name" validate:"required,max=256"`

	// Release year, never in the future
	// required: true
	Year int `json:"year" validate:"required"`

	// Description
	Description string `json:"description"`

	// Category slug
	// required: true
	Category string `json:"category" validate:"required,max=50,slug"`

	// Genre slugs
	Genre []string `json:"genre" validate:"dive,max=50,slug"`
}

// NewListTitlesHandler returns an HTTP handler listing titles with
// optional category/genre/year/name filters.
// @Summary List titles
// @Tags titles
// @Produce json
// @Param category query string false "Category slug"
// @Param genre query string false "Genre slug"
// @Param year query int false "Release year"
// @Param name query string false "Name substring"
// @Success 200 {array} models.Title
// @Router /titles [get]
func NewListTitlesHandler(svc TitleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, limit, offset := listParams(r)

		q := r.URL.Query()
		filter := repositories.TitleFilter{
			CategorySlug: q.Get("category"),
			GenreSlug:    q.Get("genre"),
			Name:         q.Get("name"),
		}
		if year, err := strconv.Atoi(q.Get("year")); err == nil {
			filter.Year = year
		}

		titles, err := svc.List(r.Context(), filter, limit, offset)
		if err != nil {
			logger.Log.Errorw("failed to list titles", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, titles)
	}
}

// NewGetTitleHandler returns an HTTP handler fetching one title with its
// rating.
// @Summary Get a title
// @Tags titles
// @Produce json
// @Param title_id path int true "Title id"
// @Success 200 {object} models.Title
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /titles/{title_id} [get]
func NewGetTitleHandler(svc TitleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, err := pathID(r, "title_id")
		if err != nil {
			writeError(w, http.StatusNotFound, services.ErrTitleNotFound.Error())
			return
		}

		title, err := svc.GetByID(r.Context(), titleID)
		if err != nil {
			writeTitleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, title)
	}
}

// NewCreateTitleHandler returns an HTTP handler creating a title.
// @Summary Create a title
// @Tags titles
// @Accept json
// @Produce json
// @Param titleRequest body handlers.TitleRequest true "Title"
// @Success 201 {object} models.Title
// @Failure 400 {object} handlers.ErrorResponse "Invalid year"
// @Failure 404 {object} handlers.ErrorResponse "Unknown category or genre slug"
// @Router /titles [post]
// @Security BearerAuth
func NewCreateTitleHandler(svc TitleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TitleRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.StructCtx(r.Context(), req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		title, err := svc.Create(r.Context(), req.Name, req.Year, req.Description, req.Category, req.Genre)
		if err != nil {
			writeTitleError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, title)
	}
}

// NewUpdateTitleHandler returns an HTTP handler updating a title.
// @Summary Update a title
// @Tags titles
// @Accept json
// @Produce json
// @Param title_id path int true "Title id"
// @Param titleRequest body handlers.TitleRequest true "Title"
// @Success 200 {object} models.Title
// @Failure 400 {object} handlers.ErrorResponse "Invalid year"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /titles/{title_id} [patch]
// @Security BearerAuth
func NewUpdateTitleHandler(svc TitleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, err := pathID(r, "title_id")
		if err != nil {
			writeError(w, http.StatusNotFound, services.ErrTitleNotFound.Error())
			return
		}

		var req TitleRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.StructCtx(r.Context(), req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		title, err := svc.Update(r.Context(), titleID, req.Name, req.Year, req.Description, req.Category, req.Genre)
		if err != nil {
			writeTitleError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, title)
	}
}

// NewDeleteTitleHandler returns an HTTP handler deleting a title.
// Reviews and comments under it cascade.
// @Summary Delete a title
// @Tags titles
// @Param title_id path int true "Title id"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /titles/{title_id} [delete]
// @Security BearerAuth
func NewDeleteTitleHandler(svc TitleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, err := pathID(r, "title_id")
		if err != nil {
			writeError(w, http.StatusNotFound, services.ErrTitleNotFound.Error())
			return
		}

		if err := svc.Delete(r.Context(), titleID); err != nil {
			writeTitleError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeTitleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrTitleNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrGenreNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidYear):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
