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

// TitleFilter narrows the title listing. Zero values mean "no filter".
type TitleFilter struct {
	CategorySlug string
	GenreSlug    string
	Year         int
	Name         string
}

// titleRow is the flat shape returned by the title read queries.
// Rating is filled by the service layer from the review repository,
// cache first.
type titleRow struct {
	TitleID      int64   `db:"title_id"`
	Name         string  `db:"name"`
	Year         int     `db:"year"`
	Description  string  `db:"description"`
	CategoryName *string `db:"category_name"`
	CategorySlug *string `db:"category_slug"`
}

const titleSelect = `
	SELECT t.title_id, t.name, t.year, t.description,
	       c.name AS category_name, c.slug AS category_slug
	FROM titles t
	LEFT JOIN categories c ON c.category_id = t.category_id
`

type TitleReadRepository struct {
	db *sqlx.DB
}

func NewTitleReadRepository(db *sqlx.DB) *TitleReadRepository {
	return &TitleReadRepository{db: db}
}

// GetByID returns the title with genres and rating resolved, or nil if absent.
func (r *TitleReadRepository) GetByID(ctx context.Context, titleID int64) (*models.Title, error) {
	const query = titleSelect + `
		WHERE t.title_id = $1
	`

	var row titleRow
	err := r.db.GetContext(ctx, &row, query, titleID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{titleID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	title := row.toTitle()
	if err := r.attachGenres(ctx, []*models.Title{title}); err != nil {
		return nil, err
	}
	return title, nil
}

// List returns titles matching the filter, ordered by name.
func (r *TitleReadRepository) List(ctx context.Context, filter TitleFilter, limit, offset int) ([]models.Title, error) {
	const query = titleSelect + `
		WHERE ($1 = '' OR c.slug = $1)
		  AND ($2 = '' OR EXISTS (
			SELECT 1 FROM title_genres tg
			JOIN genres g ON g.genre_id = tg.genre_id
			WHERE tg.title_id = t.title_id AND g.slug = $2
		  ))
		  AND ($3 = 0 OR t.year = $3)
		  AND ($4 = '' OR t.name ILIKE '%' || $4 || '%')
		ORDER BY t.name
		LIMIT $5 OFFSET $6
	`
	args := []any{filter.CategorySlug, filter.GenreSlug, filter.Year, filter.Name, limit, offset}

	var rows []titleRow
	err := r.db.SelectContext(ctx, &rows, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	titles := make([]models.Title, 0, len(rows))
	refs := make([]*models.Title, 0, len(rows))
	for _, row := range rows {
		titles = append(titles, *row.toTitle())
		refs = append(refs, &titles[len(titles)-1])
	}
	if err := r.attachGenres(ctx, refs); err != nil {
		return nil, err
	}
	return titles, nil
}

func (row titleRow) toTitle() *models.Title {
	title := &models.Title{
		TitleID:     row.TitleID,
		Name:        row.Name,
		Year:        row.Year,
		Description: row.Description,
		Genres:      make([]models.GenreDB, 0),
	}
	if row.CategorySlug != nil {
		title.Category = &models.CategoryDB{
			Name: *row.CategoryName,
			Slug: *row.CategorySlug,
		}
	}
	return title
}

// attachGenres fills the Genres slice of the given titles in one query.
func (r *TitleReadRepository) attachGenres(ctx context.Context, titles []*models.Title) error {
	if len(titles) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(titles))
	byID := make(map[int64]*models.Title, len(titles))
	for _, t := range titles {
		ids = append(ids, t.TitleID)
		byID[t.TitleID] = t
	}

	const query = `
		SELECT tg.title_id, g.genre_id, g.name, g.slug
		FROM title_genres tg
		JOIN genres g ON g.genre_id = tg.genre_id
		WHERE tg.title_id = ANY($1)
		ORDER BY g.name
	`

	var rows []struct {
		TitleID int64  `db:"title_id"`
		GenreID int64  `db:"genre_id"`
		Name    string `db:"name"`
		Slug    string `db:"slug"`
	}
	err := r.db.SelectContext(ctx, &rows, query, ids)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ids},
		"error", err,
	)

	if err != nil {
		return err
	}

	for _, row := range rows {
		title := byID[row.TitleID]
		title.Genres = append(title.Genres, models.GenreDB{
			GenreID: row.GenreID,
			Name:    row.Name,
			Slug:    row.Slug,
		})
	}
	return nil
}

type TitleWriteRepository struct {
	db *sqlx.DB
}

func NewTitleWriteRepository(db *sqlx.DB) *TitleWriteRepository {
	return &TitleWriteRepository{db: db}
}

// Save inserts a title with its genre links and returns the new id.
func (r *TitleWriteRepository) Save(ctx context.Context, name string, year int, description string, categoryID int64, genreIDs []int64) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	const insertTitle = `
		INSERT INTO titles (name, year, description, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING title_id
	`

	var titleID int64
	err = tx.GetContext(ctx, &titleID, insertTitle, name, year, description, categoryID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(insertTitle), " "),
		"args", []any{name, year, description, categoryID},
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	if err := saveGenreLinks(ctx, tx, titleID, genreIDs); err != nil {
		return 0, err
	}

	return titleID, tx.Commit()
}

// Update rewrites a title and replaces its genre links. Reports whether
// the title existed.
func (r *TitleWriteRepository) Update(ctx context.Context, titleID int64, name string, year int, description string, categoryID int64, genreIDs []int64) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	const updateTitle = `
		UPDATE titles
		SET name = $2, year = $3, description = $4, category_id = $5
		WHERE title_id = $1
	`
	args := []any{titleID, name, year, description, categoryID}

	res, err := tx.ExecContext(ctx, updateTitle, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(updateTitle), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	if rowsAffected == 0 {
		return false, nil
	}

	const deleteLinks = `DELETE FROM title_genres WHERE title_id = $1`
	if _, err := tx.ExecContext(ctx, deleteLinks, titleID); err != nil {
		return false, err
	}
	if err := saveGenreLinks(ctx, tx, titleID, genreIDs); err != nil {
		return false, err
	}

	return true, tx.Commit()
}

// Delete removes a title; reviews and comments cascade.
func (r *TitleWriteRepository) Delete(ctx context.Context, titleID int64) (bool, error) {
	const query = `
		DELETE FROM titles
		WHERE title_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, titleID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{titleID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func saveGenreLinks(ctx context.Context, tx *sqlx.Tx, titleID int64, genreIDs []int64) error {
	const query = `
		INSERT INTO title_genres (title_id, genre_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	for _, genreID := range genreIDs {
		if _, err := tx.ExecContext(ctx, query, titleID, genreID); err != nil {
			return err
		}
	}
	return nil
}
