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

// CommentManager defines the interface that the comment service must
// implement.
type CommentManager interface {
	ListByReview(ctx context.Context, titleID, reviewID int64, limit, offset int) ([]models.CommentDB, error)
	GetByID(ctx context.Context, titleID, reviewID, commentID int64) (*models.CommentDB, error)
	Create(ctx context.Context, actor *models.UserDB, titleID, reviewID int64, text string) (*models.CommentDB, error)
	Update(ctx context.Context, actor *models.UserDB, titleID, reviewID, commentID int64, text string) (*models.CommentDB, error)
	Delete(ctx context.Context, actor *models.UserDB, titleID, reviewID, commentID int64) error
}

// CommentRequest represents the JSON body for posting or updating a
// comment.
// swagger:model CommentRequest
type CommentRequest struct {
	// Comment body
	// required: true
	Text string `json:"text" validate:"required"`
}

// NewListCommentsHandler returns an HTTP handler listing the comments of
// a review.
// @Summary List comments of a review
// @Tags comments
// @Produce json
// @Param title_id path int true "Title id"
// @Param review_id path int true "Review id"
// @Success 200 {array} models.CommentDB
// @Failure 404 {object} handlers.ErrorResponse "Unknown review"
// @Router /titles/{title_id}/reviews/{review_id}/comments [get]
func NewListCommentsHandler(svc CommentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, reviewID, err := reviewPath(r)
		if err != nil {
			writeError(w, http.StatusNotFound, services.ErrReviewNotFound.Error())
			return
		}

		_, limit, offset := listParams(r)

		comments, err := svc.ListByReview(r.Context(), titleID, reviewID, limit, offset)
		if err != nil {
			writeCommentError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, comments)
	}
}

// NewGetCommentHandler returns an HTTP handler fetching one comment.
// @Summary Get a comment
// @Tags comments
// @Produce json
// @Param title_id path int true "Title id"
// @Param review_id path int true "Review id"
// @Param comment_id path int true "Comment id"
// @Success 200 {object} models.CommentDB
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /titles/{title_id}/reviews/{review_id}/comments/{comment_id} [get]
func NewGetCommentHandler(svc CommentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, reviewID, commentID, err := commentPath(r)
		if err != nil {
			writeError(w, http.StatusNotFound, services.ErrCommentNotFound.Error())
			return
		}

		comment, err := svc.GetByID(r.Context(), titleID, reviewID, commentID)
		if err != nil {
			writeCommentError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, comment)
	}
}

// NewCreateCommentHandler returns an HTTP handler posting the actor's
// comment on a review.
// @Summary Post a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param title_id path int true "Title id"
// @Param review_id path int true "Review id"
// @Param commentRequest body handlers.CommentRequest true "Comment"
// @Success 201 {object} models.CommentDB
// @Failure 404 {object} handlers.ErrorResponse "Unknown review"
// @Router /titles/{title_id}/reviews/{review_id}/comments [post]
// @Security BearerAuth
func NewCreateCommentHandler(svc CommentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, reviewID, err := reviewPath(r)
		if err != nil {
			writeError(w, http.StatusNotFound, services.ErrReviewNotFound.Error())
			return
		}

		var req CommentRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.StructCtx(r.Context(), req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		actor := middlewares.ActorFromContext(r.Context())
		comment, err := svc.Create(r.Context(), actor, titleID, reviewID, req.Text)
		if err != nil {
			writeCommentError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, comment)
	}
}

// NewUpdateCommentHandler returns an HTTP handler updating a comment.
// Only the author, a moderator or an admin may update it.
// @Summary Update a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param title_id path int true "Title id"
// @Param review_id path int true "Review id"
// @Param comment_id path int true "Comment id"
// @Param commentRequest body handlers.CommentRequest true "Comment"
// @Success 200 {object} models.CommentDB
// @Failure 403 {object} handlers.ErrorResponse "Not the author nor staff"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /titles/{title_id}/reviews/{review_id}/comments/{comment_id} [patch]
// @Security BearerAuth
func NewUpdateCommentHandler(svc CommentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, reviewID, commentID, err := commentPath(r)
		if err != nil {
			writeError(w, http.StatusNotFound, services.ErrCommentNotFound.Error())
			return
		}

		var req CommentRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.StructCtx(r.Context(), req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		actor := middlewares.ActorFromContext(r.Context())
		comment, err := svc.Update(r.Context(), actor, titleID, reviewID, commentID, req.Text)
		if err != nil {
			writeCommentError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, comment)
	}
}

// NewDeleteCommentHandler returns an HTTP handler deleting a comment.
// @Summary Delete a comment
// @Tags comments
// @Param title_id path int true "Title id"
// @Param review_id path int true "Review id"
// @Param comment_id path int true "Comment id"
// @Success 204 "Deleted"
// @Failure 403 {object} handlers.ErrorResponse "Not the author nor staff"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /titles/{title_id}/reviews/{review_id}/comments/{comment_id} [delete]
// @Security BearerAuth
func NewDeleteCommentHandler(svc CommentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, reviewID, commentID, err := commentPath(r)
		if err != nil {
			writeError(w, http.StatusNotFound, services.ErrCommentNotFound.Error())
			return
		}

		actor := middlewares.ActorFromContext(r.Context())
		if err := svc.Delete(r.Context(), actor, titleID, reviewID, commentID); err != nil {
			writeCommentError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func commentPath(r *http.Request) (titleID, reviewID, commentID int64, err error) {
	if titleID, reviewID, err = reviewPath(r); err != nil {
		return 0, 0, 0, err
	}
	if commentID, err = pathID(r, "comment_id"); err != nil {
		return 0, 0, 0, err
	}
	return titleID, reviewID, commentID, nil
}

func writeCommentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrTitleNotFound),
		errors.Is(err, services.ErrReviewNotFound),
		errors.Is(err, services.ErrCommentNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
