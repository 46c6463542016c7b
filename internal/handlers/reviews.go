package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-review-platform/internal/logger"
	"github.com/sbilibin2017/gw-review-platform/internal/middlewares"
	"github.com/sbilibin2017/gw-review-platform/internal/models"
	"github.com/sbilibin2017/gw-review-platform/internal/services"
)

// ReviewManager defines the interface that the review service must
// implement. The actor is the authenticated user resolved by the router;
// object-level moderation happens inside the service.
type ReviewManager interface {
	ListByTitle(ctx context.Context, titleID int64, limit, offset int) ([]models.ReviewDB, error)
	GetByID(ctx context.Context, titleID, reviewID int64) (*models.ReviewDB, error)
	Create(ctx context.Context, actor *models.UserDB, titleID int64, text string, score int) (*models.ReviewDB, error)
	Update(ctx context.Context, actor *models.UserDB, titleID, reviewID int64, text string, score int) (*models.ReviewDB, error)
	Delete(ctx context.Context, actor *models.UserDB, titleID, reviewID int64) error
}

// ReviewRequest represents the JSON body for posting or updating a
// review. The author is always the authenticated actor, never supplied
// by the client.
// swagger:model ReviewRequest
type ReviewRequest struct {
	// Review body
	// required: true
	Text string `json:"text" validate:"required"`

	// Score between 1 and 10
	// required: true
	Score int `json:"score" validate:"required,gte=1,lte=10"`
}

// NewListReviewsHandler returns an HTTP handler listing the reviews of a
// title.
// @Summary List reviews of a title
// @Tags reviews
// @Produce json
// @Param title_id path int true "Title id"
// @Success 200 {array} models.ReviewDB
// @Failure 404 {object} handlers.ErrorResponse "Unknown title"
// @Router /titles/{title_id}/reviews [get]
func NewListReviewsHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, err := pathID(r, "title_id")
		if err != nil {
			writeError(w, http.StatusNotFound, services.ErrTitleNotFound.Error())
			return
		}

		_, limit, offset := listParams(r)

		reviews, err := svc.ListByTitle(r.Context(), titleID, limit, offset)
		if err != nil {
			writeReviewError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, reviews)
	}
}

// NewGetReviewHandler returns an HTTP handler fetching one review.
// @Summary Get a review
// @Tags reviews
// @Produce json
// @Param title_id path int true "Title id"
// @Param review_id path int true "Review id"
// @Success 200 {object} models.ReviewDB
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /titles/{title_id}/reviews/{review_id} [get]
func NewGetReviewHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, reviewID, err := reviewPath(r)
		if err != nil {
			writeError(w, http.StatusNotFound, services.ErrReviewNotFound.Error())
			return
		}

		review, err := svc.GetByID(r.Context(), titleID, reviewID)
		if err != nil {
			writeReviewError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, review)
	}
}

// NewCreateReviewHandler returns an HTTP handler posting the actor's
// review of a title. An author may review a title at most once.
// @Summary Post a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param title_id path int true "Title id"
// @Param reviewRequest body handlers.ReviewRequest true "Review"
// @Success 201 {object} models.ReviewDB
// @Failure 400 {object} handlers.ErrorResponse "Duplicate review or score out of range"
// @Failure 404 {object} handlers.ErrorResponse "Unknown title"
// @Router /titles/{title_id}/reviews [post]
// @Security BearerAuth
func NewCreateReviewHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, err := pathID(r, "title_id")
		if err != nil {
			writeError(w, http.StatusNotFound, services.ErrTitleNotFound.Error())
			return
		}

		var req ReviewRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.StructCtx(r.Context(), req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		actor := middlewares.ActorFromContext(r.Context())
		review, err := svc.Create(r.Context(), actor, titleID, req.Text, req.Score)
		if err != nil {
			writeReviewError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, review)
	}
}

// NewUpdateReviewHandler returns an HTTP handler updating a review.
// Only the author, a moderator or an admin may update it.
// @Summary Update a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param title_id path int true "Title id"
// @Param review_id path int true "Review id"
// @Param reviewRequest body handlers.ReviewRequest true "Review"
// @Success 200 {object} models.ReviewDB
// @Failure 403 {object} handlers.ErrorResponse "Not the author nor staff"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /titles/{title_id}/reviews/{review_id} [patch]
// @Security BearerAuth
func NewUpdateReviewHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, reviewID, err := reviewPath(r)
		if err != nil {
			writeError(w, http.StatusNotFound, services.ErrReviewNotFound.Error())
			return
		}

		var req ReviewRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.StructCtx(r.Context(), req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		actor := middlewares.ActorFromContext(r.Context())
		review, err := svc.Update(r.Context(), actor, titleID, reviewID, req.Text, req.Score)
		if err != nil {
			writeReviewError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, review)
	}
}

// NewDeleteReviewHandler returns an HTTP handler deleting a review.
// @Summary Delete a review
// @Tags reviews
// @Param title_id path int true "Title id"
// @Param review_id path int true "Review id"
// @Success 204 "Deleted"
// @Failure 403 {object} handlers.ErrorResponse "Not the author nor staff"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /titles/{title_id}/reviews/{review_id} [delete]
// @Security BearerAuth
func NewDeleteReviewHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, reviewID, err := reviewPath(r)
		if err != nil {
			writeError(w, http.StatusNotFound, services.ErrReviewNotFound.Error())
			return
		}

		actor := middlewares.ActorFromContext(r.Context())
		if err := svc.Delete(r.Context(), actor, titleID, reviewID); err != nil {
			writeReviewError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func reviewPath(r *http.Request) (titleID, reviewID int64, err error) {
	if titleID, err = pathID(r, "title_id"); err != nil {
		return 0, 0, err
	}
	if reviewID, err = pathID(r, "review_id"); err != nil {
		return 0, 0, err
	}
	return titleID, reviewID, nil
}

func writeReviewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrTitleNotFound),
		errors.Is(err, services.ErrReviewNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrReviewExists):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
