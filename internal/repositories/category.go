package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-review-platform/internal/logger"
	"github.com/sbilibin2017/gw-review-platform/internal/models"
)

type CategoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns categories ordered by name, optionally filtered by a name substring.
func (r *CategoryRepository) List(ctx context.Context, search string, limit, offset int) ([]models.CategoryDB, error) {
	const query = `
		SELECT category_id, name, slug
		FROM categories
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name
		LIMIT $2 OFFSET $3
	`

	categories := make([]models.CategoryDB, 0)
	err := r.db.SelectContext(ctx, &categories, query, search, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{search, limit, offset},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return categories, nil
}

// GetBySlug returns the category with the given slug, or nil if absent.
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.CategoryDB, error) {
	const query = `
		SELECT category_id, name, slug
		FROM categories
		WHERE slug = $1
	`

	var category models.CategoryDB
	err := r.db.GetContext(ctx, &category, query, slug)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{slug},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Save inserts a new category.
func (r *CategoryRepository) Save(ctx context.Context, name, slug string) (*models.CategoryDB, error) {
	const query = `
		INSERT INTO categories (name, slug)
		VALUES ($1, $2)
		RETURNING category_id, name, slug
	`

	var saved models.CategoryDB
	err := r.db.GetContext(ctx, &saved, query, name, slug)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, slug},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Delete removes a category by slug. Titles referencing it keep existing
// with a null category (enforced by ON DELETE SET NULL).
func (r *CategoryRepository) Delete(ctx context.Context, slug string) (bool, error) {
	const query = `
		DELETE FROM categories
		WHERE slug = $1
	`

	res, err := r.db.ExecContext(ctx, query, slug)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{slug},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
