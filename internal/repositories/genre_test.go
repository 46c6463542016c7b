package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenreRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewGenreRepository(db)
	ctx := context.Background()

	t.Run("Save and GetBySlug", func(t *testing.T) {
		saved, err := repo.Save(ctx, "Drama", "drama")
		assert.NoError(t, err)
		assert.NotZero(t, saved.GenreID)

		got, err := repo.GetBySlug(ctx, "drama")
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, "Drama", got.Name)
	})

	t.Run("GetBySlugs returns only matches", func(t *testing.T) {
		_, err := repo.Save(ctx, "Comedy", "comedy")
		assert.NoError(t, err)

		genres, err := repo.GetBySlugs(ctx, []string{"drama", "comedy", "nope"})
		assert.NoError(t, err)
		assert.Len(t, genres, 2)
	})

	t.Run("Save rejects duplicate slug", func(t *testing.T) {
		_, err := repo.Save(ctx, "Drama again", "drama")
		assert.Error(t, err)
		assert.True(t, IsUniqueViolation(err))
	})

	t.Run("Delete", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, "comedy")
		assert.NoError(t, err)
		assert.True(t, deleted)

		missing, err := repo.GetBySlug(ctx, "comedy")
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})
}
