package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-review-platform/internal/logger"
	"github.com/sbilibin2017/gw-review-platform/internal/models"
	"github.com/sbilibin2017/gw-review-platform/internal/policies"
	"github.com/sbilibin2017/gw-review-platform/internal/repositories"
)

// ReviewTitleReader resolves the parent title of a review.
type ReviewTitleReader interface {
	GetByID(ctx context.Context, titleID int64) (*models.Title, error)
}

// ReviewReader defines read operations for reviews.
type ReviewReader interface {
	GetByID(ctx context.Context, reviewID int64) (*models.ReviewDB, error)
	GetByTitleAndAuthor(ctx context.Context, titleID int64, authorID uuid.UUID) (*models.ReviewDB, error)
	ListByTitle(ctx context.Context, titleID int64, limit, offset int) ([]models.ReviewDB, error)
}

// ReviewWriter defines write operations for reviews.
type ReviewWriter interface {
	Save(ctx context.Context, titleID int64, authorID uuid.UUID, text string, score int) (int64, error)
	Update(ctx context.Context, reviewID int64, text string, score int) error
	Delete(ctx context.Context, reviewID int64) error
}

// RatingInvalidator drops a title's cached rating after a review write.
type RatingInvalidator interface {
	Invalidate(ctx context.Context, titleID int64) error
}

// ReviewsService enforces the one-review-per-author-per-title invariant
// and the moderation rules on review mutation.
type ReviewsService struct {
	titles      ReviewTitleReader
	reader      ReviewReader
	writer      ReviewWriter
	cache       RatingInvalidator
	kafkaWriter KafkaWriter
}

// NewReviewsService creates a new ReviewsService instance.
func NewReviewsService(
	titles ReviewTitleReader,
	reader ReviewReader,
	writer ReviewWriter,
	cache RatingInvalidator,
	kafkaWriter KafkaWriter,
) *ReviewsService {
	return &ReviewsService{
		titles:      titles,
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// ListByTitle returns the reviews of a title.
func (svc *ReviewsService) ListByTitle(ctx context.Context, titleID int64, limit, offset int) ([]models.ReviewDB, error) {
	if err := svc.requireTitle(ctx, titleID); err != nil {
		return nil, err
	}
	return svc.reader.ListByTitle(ctx, titleID, limit, offset)
}

// GetByID returns a single review of a title.
func (svc *ReviewsService) GetByID(ctx context.Context, titleID, reviewID int64) (*models.ReviewDB, error) {
	review, err := svc.reader.GetByID(ctx, reviewID)
	if err != nil {
		logger.Log.Errorw("failed to get review", "reviewID", reviewID, "err", err)
		return nil, err
	}
	if review == nil || review.TitleID != titleID {
		return nil, ErrReviewNotFound
	}
	return review, nil
}

// Create posts the actor's review of a title. The author is always the
// authenticated actor; an author may review a title at most once. The
// existence check is a fast path — the (title_id, author_id) unique
// constraint settles concurrent submissions.
func (svc *ReviewsService) Create(ctx context.Context, actor *models.UserDB, titleID int64, text string, score int) (*models.ReviewDB, error) {
	if err := svc.requireTitle(ctx, titleID); err != nil {
		return nil, err
	}

	existing, err := svc.reader.GetByTitleAndAuthor(ctx, titleID, actor.UserID)
	if err != nil {
		logger.Log.Errorw("failed to check existing review", "titleID", titleID, "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrReviewExists
	}

	reviewID, err := svc.writer.Save(ctx, titleID, actor.UserID, text, score)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrReviewExists
		}
		logger.Log.Errorw("failed to save review", "titleID", titleID, "err", err)
		return nil, err
	}

	if err := svc.cache.Invalidate(ctx, titleID); err != nil {
		logger.Log.Errorw("rating cache invalidation failed", "titleID", titleID, "err", err)
	}

	publishEvent(ctx, svc.kafkaWriter, models.Event{
		EventID:   uuid.NewString(),
		Type:      models.EventReviewCreated,
		Timestamp: time.Now().Unix(),
		UserID:    actor.UserID.String(),
		TitleID:   titleID,
		ReviewID:  reviewID,
	})

	return svc.GetByID(ctx, titleID, reviewID)
}

// Update rewrites a review. Only the author, a moderator or an admin may
// mutate it, judged against the stored author.
func (svc *ReviewsService) Update(ctx context.Context, actor *models.UserDB, titleID, reviewID int64, text string, score int) (*models.ReviewDB, error) {
	review, err := svc.GetByID(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	if policies.ContentModerationObject(actor, http.MethodPatch, review.AuthorID) != policies.Allow {
		return nil, ErrForbidden
	}

	if err := svc.writer.Update(ctx, reviewID, text, score); err != nil {
		logger.Log.Errorw("failed to update review", "reviewID", reviewID, "err", err)
		return nil, err
	}

	if err := svc.cache.Invalidate(ctx, titleID); err != nil {
		logger.Log.Errorw("rating cache invalidation failed", "titleID", titleID, "err", err)
	}

	return svc.GetByID(ctx, titleID, reviewID)
}

// Delete removes a review under the same moderation rule.
func (svc *ReviewsService) Delete(ctx context.Context, actor *models.UserDB, titleID, reviewID int64) error {
	review, err := svc.GetByID(ctx, titleID, reviewID)
	if err != nil {
		return err
	}

	if policies.ContentModerationObject(actor, http.MethodDelete, review.AuthorID) != policies.Allow {
		return ErrForbidden
	}

	if err := svc.writer.Delete(ctx, reviewID); err != nil {
		logger.Log.Errorw("failed to delete review", "reviewID", reviewID, "err", err)
		return err
	}

	if err := svc.cache.Invalidate(ctx, titleID); err != nil {
		logger.Log.Errorw("rating cache invalidation failed", "titleID", titleID, "err", err)
	}
	return nil
}

func (svc *ReviewsService) requireTitle(ctx context.Context, titleID int64) error {
	title, err := svc.titles.GetByID(ctx, titleID)
	if err != nil {
		logger.Log.Errorw("failed to resolve title", "titleID", titleID, "err", err)
		return err
	}
	if title == nil {
		return ErrTitleNotFound
	}
	return nil
}
