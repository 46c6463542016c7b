package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-review-platform/internal/logger"
	"github.com/sbilibin2017/gw-review-platform/internal/models"
)

const reviewSelect = `
	SELECT r.review_id, r.title_id, r.author_id, u.username AS author,
	       r.text, r.score, r.pub_date
	FROM reviews r
	JOIN users u ON u.user_id = r.author_id
`

type ReviewReadRepository struct {
	db *sqlx.DB
}

func NewReviewReadRepository(db *sqlx.DB) *ReviewReadRepository {
	return &ReviewReadRepository{db: db}
}

// GetByID returns the review with the given id, or nil if absent.
func (r *ReviewReadRepository) GetByID(ctx context.Context, reviewID int64) (*models.ReviewDB, error) {
	const query = reviewSelect + `
		WHERE r.review_id = $1
	`

	var review models.ReviewDB
	err := r.db.GetContext(ctx, &review, query, reviewID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{reviewID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// GetByTitleAndAuthor returns the author's review of the title, or nil.
// Fast-path duplicate check: the (title_id, author_id) unique constraint
// is the authoritative guard.
func (r *ReviewReadRepository) GetByTitleAndAuthor(ctx context.Context, titleID int64, authorID uuid.UUID) (*models.ReviewDB, error) {
	const query = reviewSelect + `
		WHERE r.title_id = $1 AND r.author_id = $2
	`

	var review models.ReviewDB
	err := r.db.GetContext(ctx, &review, query, titleID, authorID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{titleID, authorID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ListByTitle returns the reviews of a title, newest first.
func (r *ReviewReadRepository) ListByTitle(ctx context.Context, titleID int64, limit, offset int) ([]models.ReviewDB, error) {
	const query = reviewSelect + `
		WHERE r.title_id = $1
		ORDER BY r.pub_date DESC
		LIMIT $2 OFFSET $3
	`

	reviews := make([]models.ReviewDB, 0)
	err := r.db.SelectContext(ctx, &reviews, query, titleID, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{titleID, limit, offset},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// AvgScoreByTitle returns the average review score of a title, or nil
// when the title has no reviews.
func (r *ReviewReadRepository) AvgScoreByTitle(ctx context.Context, titleID int64) (*float64, error) {
	const query = `
		SELECT AVG(score)
		FROM reviews
		WHERE title_id = $1
	`

	var avg *float64
	err := r.db.GetContext(ctx, &avg, query, titleID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{titleID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return avg, nil
}

// AvgScoresByTitles returns average scores keyed by title id. Titles
// without reviews are absent from the map.
func (r *ReviewReadRepository) AvgScoresByTitles(ctx context.Context, titleIDs []int64) (map[int64]float64, error) {
	const query = `
		SELECT title_id, AVG(score) AS rating
		FROM reviews
		WHERE title_id = ANY($1)
		GROUP BY title_id
	`

	var rows []struct {
		TitleID int64   `db:"title_id"`
		Rating  float64 `db:"rating"`
	}
	err := r.db.SelectContext(ctx, &rows, query, titleIDs)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{titleIDs},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	ratings := make(map[int64]float64, len(rows))
	for _, row := range rows {
		ratings[row.TitleID] = row.Rating
	}
	return ratings, nil
}

type ReviewWriteRepository struct {
	db *sqlx.DB
}

func NewReviewWriteRepository(db *sqlx.DB) *ReviewWriteRepository {
	return &ReviewWriteRepository{db: db}
}

// Save inserts a review. A lost uniqueness race surfaces here as a
// unique-constraint violation, detectable with IsUniqueViolation.
func (r *ReviewWriteRepository) Save(ctx context.Context, titleID int64, authorID uuid.UUID, text string, score int) (int64, error) {
	const query = `
		INSERT INTO reviews (title_id, author_id, text, score, pub_date)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING review_id
	`
	args := []any{titleID, authorID, text, score}

	var reviewID int64
	err := r.db.GetContext(ctx, &reviewID, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return reviewID, nil
}

// Update rewrites the text and score of an existing review.
func (r *ReviewWriteRepository) Update(ctx context.Context, reviewID int64, text string, score int) error {
	const query = `
		UPDATE reviews
		SET text = $2, score = $3
		WHERE review_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, reviewID, text, score)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{reviewID, text, score},
		"error", err,
	)

	return err
}

// Delete removes a review; its comments cascade.
func (r *ReviewWriteRepository) Delete(ctx context.Context, reviewID int64) error {
	const query = `
		DELETE FROM reviews
		WHERE review_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, reviewID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{reviewID},
		"error", err,
	)

	return err
}
