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

const commentSelect = `
	SELECT c.comment_id, c.review_id, c.author_id, u.username AS author,
	       c.text, c.pub_date
	FROM comments c
	JOIN users u ON u.user_id = c.author_id
`

type CommentReadRepository struct {
	db *sqlx.DB
}

func NewCommentReadRepository(db *sqlx.DB) *CommentReadRepository {
	return &CommentReadRepository{db: db}
}

// GetByID returns the comment with the given id, or nil if absent.
func (r *CommentReadRepository) GetByID(ctx context.Context, commentID int64) (*models.CommentDB, error) {
	const query = commentSelect + `
		WHERE c.comment_id = $1
	`

	var comment models.CommentDB
	err := r.db.GetContext(ctx, &comment, query, commentID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{commentID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByReview returns the comments of a review, oldest first.
func (r *CommentReadRepository) ListByReview(ctx context.Context, reviewID int64, limit, offset int) ([]models.CommentDB, error) {
	const query = commentSelect + `
		WHERE c.review_id = $1
		ORDER BY c.pub_date
		LIMIT $2 OFFSET $3
	`

	comments := make([]models.CommentDB, 0)
	err := r.db.SelectContext(ctx, &comments, query, reviewID, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{reviewID, limit, offset},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return comments, nil
}

type CommentWriteRepository struct {
	db *sqlx.DB
}

func NewCommentWriteRepository(db *sqlx.DB) *CommentWriteRepository {
	return &CommentWriteRepository{db: db}
}

// Save inserts a comment and returns the new id.
func (r *CommentWriteRepository) Save(ctx context.Context, reviewID int64, authorID uuid.UUID, text string) (int64, error) {
	const query = `
		INSERT INTO comments (review_id, author_id, text, pub_date)
		VALUES ($1, $2, $3, NOW())
		RETURNING comment_id
	`
	args := []any{reviewID, authorID, text}

	var commentID int64
	err := r.db.GetContext(ctx, &commentID, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return commentID, nil
}

// Update rewrites the text of an existing comment.
func (r *CommentWriteRepository) Update(ctx context.Context, commentID int64, text string) error {
	const query = `
		UPDATE comments
		SET text = $2
		WHERE comment_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, commentID, text)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{commentID, text},
		"error", err,
	)

	return err
}

// Delete removes a comment.
func (r *CommentWriteRepository) Delete(ctx context.Context, commentID int64) error {
	const query = `
		DELETE FROM comments
		WHERE comment_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, commentID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{commentID},
		"error", err,
	)

	return err
}
