package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-review-platform/internal/logger"
	"github.com/sbilibin2017/gw-review-platform/internal/models"
	"github.com/sbilibin2017/gw-review-platform/internal/policies"
)

// CommentReviewReader resolves the parent review of a comment.
type CommentReviewReader interface {
	GetByID(ctx context.Context, reviewID int64) (*models.ReviewDB, error)
}

// CommentReader defines read operations for comments.
type CommentReader interface {
	GetByID(ctx context.Context, commentID int64) (*models.CommentDB, error)
	ListByReview(ctx context.Context, reviewID int64, limit, offset int) ([]models.CommentDB, error)
}

// CommentWriter defines write operations for comments.
type CommentWriter interface {
	Save(ctx context.Context, reviewID int64, authorID uuid.UUID, text string) (int64, error)
	Update(ctx context.Context, commentID int64, text string) error
	Delete(ctx context.Context, commentID int64) error
}

// CommentsService manages comments under a review with the same
// moderation rules as reviews.
type CommentsService struct {
	reviews     CommentReviewReader
	reader      CommentReader
	writer      CommentWriter
	kafkaWriter KafkaWriter
}

// NewCommentsService creates a new CommentsService instance.
func NewCommentsService(
	reviews CommentReviewReader,
	reader CommentReader,
	writer CommentWriter,
	kafkaWriter KafkaWriter,
) *CommentsService {
	return &CommentsService{
		reviews:     reviews,
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// ListByReview returns the comments of a review.
func (svc *CommentsService) ListByReview(ctx context.Context, titleID, reviewID int64, limit, offset int) ([]models.CommentDB, error) {
	if _, err := svc.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}
	return svc.reader.ListByReview(ctx, reviewID, limit, offset)
}

// GetByID returns a single comment of a review.
func (svc *CommentsService) GetByID(ctx context.Context, titleID, reviewID, commentID int64) (*models.CommentDB, error) {
	if _, err := svc.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comment, err := svc.reader.GetByID(ctx, commentID)
	if err != nil {
		logger.Log.Errorw("failed to get comment", "commentID", commentID, "err", err)
		return nil, err
	}
	if comment == nil || comment.ReviewID != reviewID {
		return nil, ErrCommentNotFound
	}
	return comment, nil
}

// Create posts the actor's comment on a review. The author is always
// the authenticated actor.
func (svc *CommentsService) Create(ctx context.Context, actor *models.UserDB, titleID, reviewID int64, text string) (*models.CommentDB, error) {
	if _, err := svc.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	commentID, err := svc.writer.Save(ctx, reviewID, actor.UserID, text)
	if err != nil {
		logger.Log.Errorw("failed to save comment", "reviewID", reviewID, "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, models.Event{
		EventID:   uuid.NewString(),
		Type:      models.EventCommentCreated,
		Timestamp: time.Now().Unix(),
		UserID:    actor.UserID.String(),
		TitleID:   titleID,
		ReviewID:  reviewID,
	})

	return svc.GetByID(ctx, titleID, reviewID, commentID)
}

// Update rewrites a comment. Only the author, a moderator or an admin
// may mutate it, judged against the stored author.
func (svc *CommentsService) Update(ctx context.Context, actor *models.UserDB, titleID, reviewID, commentID int64, text string) (*models.CommentDB, error) {
	comment, err := svc.GetByID(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	if policies.ContentModerationObject(actor, http.MethodPatch, comment.AuthorID) != policies.Allow {
		return nil, ErrForbidden
	}

	if err := svc.writer.Update(ctx, commentID, text); err != nil {
		logger.Log.Errorw("failed to update comment", "commentID", commentID, "err", err)
		return nil, err
	}

	return svc.GetByID(ctx, titleID, reviewID, commentID)
}

// Delete removes a comment under the same moderation rule.
func (svc *CommentsService) Delete(ctx context.Context, actor *models.UserDB, titleID, reviewID, commentID int64) error {
	comment, err := svc.GetByID(ctx, titleID, reviewID, commentID)
	if err != nil {
		return err
	}

	if policies.ContentModerationObject(actor, http.MethodDelete, comment.AuthorID) != policies.Allow {
		return ErrForbidden
	}

	if err := svc.writer.Delete(ctx, commentID); err != nil {
		logger.Log.Errorw("failed to delete comment", "commentID", commentID, "err", err)
		return err
	}
	return nil
}

// requireReview checks that the review exists under the given title.
func (svc *CommentsService) requireReview(ctx context.Context, titleID, reviewID int64) (*models.ReviewDB, error) {
	review, err := svc.reviews.GetByID(ctx, reviewID)
	if err != nil {
		logger.Log.Errorw("failed to resolve review", "reviewID", reviewID, "err", err)
		return nil, err
	}
	if review == nil || review.TitleID != titleID {
		return nil, ErrReviewNotFound
	}
	return review, nil
}
