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

// GenreManager defines the interface that the genre service must
// implement. Mutations are admin-gated by the router.
type GenreManager interface {
	List(ctx context.Context, search string, limit, offset int) ([]models.GenreDB, error)
	Create(ctx context.Context, name, slug string) (*models.GenreDB, error)
	Delete(ctx context.Context, slug string) error
}

// NewListGenresHandler returns an HTTP handler listing genres.
// @Summary List genres
// @Tags genres
// @Produce json
// @Param search query string false "Name substring"
// @Success 200 {array} models.GenreDB
// @Router /genres [get]
func NewListGenresHandler(svc GenreManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search, limit, offset := listParams(r)

		genres, err := svc.List(r.Context(), search, limit, offset)
		if err != nil {
			logger.Log.Errorw("failed to list genres", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, genres)
	}
}

// NewCreateGenreHandler returns an HTTP handler creating a genre.
// @Summary Create a genre
// @Tags genres
// @Accept json
// @Produce json
// @Param slugRequest body handlers.SlugRequest true "Genre"
// @Success 201 {object} models.GenreDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid or duplicate slug"
// @Router /genres [post]
// @Security BearerAuth
func NewCreateGenreHandler(svc GenreManager) http.HandlerFunc {
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

		genre, err := svc.Create(r.Context(), req.Name, req.Slug)
		if err != nil {
			if errors.Is(err, services.ErrSlugTaken) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, genre)
	}
}

// NewDeleteGenreHandler returns an HTTP handler deleting a genre by slug.
// @Summary Delete a genre
// @Tags genres
// @Param slug path string true "Slug"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /genres/{slug} [delete]
// @Security BearerAuth
func NewDeleteGenreHandler(svc GenreManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "slug")); err != nil {
			if errors.Is(err, services.ErrGenreNotFound) {
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
