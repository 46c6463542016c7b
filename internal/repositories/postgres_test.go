package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-review-platform/internal/models"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		username VARCHAR(150) NOT NULL UNIQUE,
		email VARCHAR(254) NOT NULL UNIQUE,
		first_name VARCHAR(150) NOT NULL DEFAULT '',
		last_name VARCHAR(150) NOT NULL DEFAULT '',
		bio TEXT NOT NULL DEFAULT '',
		role VARCHAR(20) NOT NULL DEFAULT 'user',
		is_active BOOLEAN NOT NULL DEFAULT FALSE,
		is_superuser BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS categories (
		category_id BIGSERIAL PRIMARY KEY,
		name VARCHAR(256) NOT NULL,
		slug VARCHAR(50) NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS genres (
		genre_id BIGSERIAL PRIMARY KEY,
		name VARCHAR(256) NOT NULL,
		slug VARCHAR(50) NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS titles (
		title_id BIGSERIAL PRIMARY KEY,
		name VARCHAR(256) NOT NULL,
		year INT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category_id BIGINT REFERENCES categories(category_id) ON DELETE SET NULL
	);

	CREATE TABLE IF NOT EXISTS title_genres (
		title_id BIGINT NOT NULL REFERENCES titles(title_id) ON DELETE CASCADE,
		genre_id BIGINT NOT NULL REFERENCES genres(genre_id) ON DELETE CASCADE,
		PRIMARY KEY (title_id, genre_id)
	);

	CREATE TABLE IF NOT EXISTS reviews (
		review_id BIGSERIAL PRIMARY KEY,
		title_id BIGINT NOT NULL REFERENCES titles(title_id) ON DELETE CASCADE,
		author_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		text TEXT NOT NULL,
		score INT NOT NULL CHECK (score BETWEEN 1 AND 10),
		pub_date TIMESTAMP NOT NULL DEFAULT NOW(),
		UNIQUE (title_id, author_id)
	);

	CREATE TABLE IF NOT EXISTS comments (
		comment_id BIGSERIAL PRIMARY KEY,
		review_id BIGINT NOT NULL REFERENCES reviews(review_id) ON DELETE CASCADE,
		author_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		text TEXT NOT NULL,
		pub_date TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func seedUser(t *testing.T, db *sqlx.DB, username string) uuid.UUID {
	t.Helper()

	repo := NewUserWriteRepository(db)
	user, err := repo.Save(context.Background(), &models.UserDB{
		Username: username,
		Email:    username + "@example.com",
		Role:     models.RoleUser,
		IsActive: true,
	})
	assert.NoError(t, err)
	return user.UserID
}

func seedTitle(t *testing.T, db *sqlx.DB, name string, year int) int64 {
	t.Helper()

	var titleID int64
	err := db.Get(&titleID,
		"INSERT INTO titles (name, year) VALUES ($1, $2) RETURNING title_id", name, year)
	assert.NoError(t, err)
	return titleID
}
