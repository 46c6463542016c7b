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

type GenreRepository struct {
	db *sqlx.DB
}

func NewGenreRepository(db *sqlx.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

// List returns genres ordered by name, optionally filtered by a name substring.
func (r *GenreRepository) List(ctx context.Context, search string, limit, offset int) ([]models.GenreDB, error) {
	const query = `
		SELECT genre_id, name, slug
		FROM genres
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name
		LIMIT $2 OFFSET $3
	`

	genres := make([]models.GenreDB, 0)
	err := r.db.SelectContext(ctx, &genres, query, search, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{search, limit, offset},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return genres, nil
}

// GetBySlug returns the genre with the given slug, or nil if absent.
func (r *GenreRepository) GetBySlug(ctx context.Context, slug string) (*models.GenreDB, error) {
	const query = `
		SELECT genre_id, name, slug
		FROM genres
		WHERE slug = $1
	`

	var genre models.GenreDB
	err := r.db.GetContext(ctx, &genre, query, slug)

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
	return &genre, nil
}

// GetBySlugs returns the genres matching the given slugs.
func (r *GenreRepository) GetBySlugs(ctx context.Context, slugs []string) ([]models.GenreDB, error) {
	const query = `
		SELECT genre_id, name, slug
		FROM genres
		WHERE slug = ANY($1)
		ORDER BY name
	`

	genres := make([]models.GenreDB, 0)
	err := r.db.SelectContext(ctx, &genres, query, slugs)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{slugs},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return genres, nil
}

// Save inserts a new genre.
func (r *GenreRepository) Save(ctx context.Context, name, slug string) (*models.GenreDB, error) {
	const query = `
		INSERT INTO genres (name, slug)
		VALUES ($1, $2)
		RETURNING genre_id, name, slug
	`

	var saved models.GenreDB
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

// Delete removes a genre by slug.
func (r *GenreRepository) Delete(ctx context.Context, slug string) (bool, error) {
	const query = `
		DELETE FROM genres
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
