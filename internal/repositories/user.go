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

const userColumns = `user_id, username, email, first_name, last_name, bio, role, is_active, is_superuser, created_at, updated_at`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given id, or nil if absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername returns the user with the given username, or nil if absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsernameOrEmail returns the first user matching either the username
// or the email, or nil when neither matches.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1 OR email = $2
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns users ordered by username, optionally filtered by a
// username substring.
func (r *UserReadRepository) List(ctx context.Context, search string, limit, offset int) ([]models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1 = '' OR username ILIKE '%' || $1 || '%')
		ORDER BY username
		LIMIT $2 OFFSET $3
	`

	users := make([]models.UserDB, 0)
	err := r.db.SelectContext(ctx, &users, query, search, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{search, limit, offset},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return users, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the stored record.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (username, email, first_name, last_name, bio, role, is_active, is_superuser, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + userColumns + `
	`
	args := []any{user.Username, user.Email, user.FirstName, user.LastName, user.Bio, user.Role, user.IsActive, user.IsSuperuser}

	var saved models.UserDB
	err := r.db.GetContext(ctx, &saved, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Update overwrites the mutable fields of an existing user.
func (r *UserWriteRepository) Update(ctx context.Context, user *models.UserDB) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET username = $2, email = $3, first_name = $4, last_name = $5, bio = $6, role = $7, updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + userColumns + `
	`
	args := []any{user.UserID, user.Username, user.Email, user.FirstName, user.LastName, user.Bio, user.Role}

	var saved models.UserDB
	err := r.db.GetContext(ctx, &saved, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// SetActive flips the activation flag. Activation is idempotent.
func (r *UserWriteRepository) SetActive(ctx context.Context, userID uuid.UUID, active bool) error {
	const query = `
		UPDATE users
		SET is_active = $2, updated_at = NOW()
		WHERE user_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, userID, active)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, active},
		"error", err,
	)

	return err
}

// Delete removes a user by username and reports whether a row was deleted.
func (r *UserWriteRepository) Delete(ctx context.Context, username string) (bool, error) {
	const query = `
		DELETE FROM users
		WHERE username = $1
	`

	res, err := r.db.ExecContext(ctx, query, username)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
