package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewTitleWriteRepository(db)
	readRepo := NewTitleReadRepository(db)
	ctx := context.Background()

	categories := NewCategoryRepository(db)
	genres := NewGenreRepository(db)

	movie, err := categories.Save(ctx, "Movies", "movie")
	assert.NoError(t, err)
	book, err := categories.Save(ctx, "Books", "book")
	assert.NoError(t, err)

	drama, err := genres.Save(ctx, "Drama", "drama")
	assert.NoError(t, err)
	comedy, err := genres.Save(ctx, "Comedy", "comedy")
	assert.NoError(t, err)

	var ringID int64

	t.Run("Save with genre links", func(t *testing.T) {
		ringID, err = writeRepo.Save(ctx, "The Ring", 2002, "scary tape", movie.CategoryID, []int64{drama.GenreID, comedy.GenreID})
		assert.NoError(t, err)
		assert.NotZero(t, ringID)

		title, err := readRepo.GetByID(ctx, ringID)
		assert.NoError(t, err)
		assert.NotNil(t, title)
		assert.Equal(t, "The Ring", title.Name)
		assert.Equal(t, "movie", title.Category.Slug)
		assert.Len(t, title.Genres, 2)
		assert.Equal(t, "Comedy", title.Genres[0].Name)
	})

	t.Run("GetByID missing returns nil", func(t *testing.T) {
		title, err := readRepo.GetByID(ctx, 99999)
		assert.NoError(t, err)
		assert.Nil(t, title)
	})

	t.Run("List filters", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, "War and Peace", 1869, "", book.CategoryID, []int64{drama.GenreID})
		assert.NoError(t, err)

		all, err := readRepo.List(ctx, TitleFilter{}, 10, 0)
		assert.NoError(t, err)
		assert.Len(t, all, 2)

		byCategory, err := readRepo.List(ctx, TitleFilter{CategorySlug: "book"}, 10, 0)
		assert.NoError(t, err)
		assert.Len(t, byCategory, 1)
		assert.Equal(t, "War and Peace", byCategory[0].Name)

		byGenre, err := readRepo.List(ctx, TitleFilter{GenreSlug: "comedy"}, 10, 0)
		assert.NoError(t, err)
		assert.Len(t, byGenre, 1)
		assert.Equal(t, "The Ring", byGenre[0].Name)

		byYear, err := readRepo.List(ctx, TitleFilter{Year: 1869}, 10, 0)
		assert.NoError(t, err)
		assert.Len(t, byYear, 1)

		byName, err := readRepo.List(ctx, TitleFilter{Name: "ring"}, 10, 0)
		assert.NoError(t, err)
		assert.Len(t, byName, 1)

		none, err := readRepo.List(ctx, TitleFilter{CategorySlug: "book", GenreSlug: "comedy"}, 10, 0)
		assert.NoError(t, err)
		assert.Len(t, none, 0)
	})

	t.Run("Update replaces genre links", func(t *testing.T) {
		updated, err := writeRepo.Update(ctx, ringID, "The Ring", 2002, "rewatched", movie.CategoryID, []int64{drama.GenreID})
		assert.NoError(t, err)
		assert.True(t, updated)

		title, err := readRepo.GetByID(ctx, ringID)
		assert.NoError(t, err)
		assert.Equal(t, "rewatched", title.Description)
		assert.Len(t, title.Genres, 1)
		assert.Equal(t, "drama", title.Genres[0].Slug)
	})

	t.Run("Update missing title reports false", func(t *testing.T) {
		updated, err := writeRepo.Update(ctx, 99999, "X", 2000, "", movie.CategoryID, nil)
		assert.NoError(t, err)
		assert.False(t, updated)
	})

	t.Run("Delete cascades reviews", func(t *testing.T) {
		authorID := seedUser(t, db, "reviewer")
		reviewID, err := NewReviewWriteRepository(db).Save(ctx, ringID, authorID, "good", 8)
		assert.NoError(t, err)

		deleted, err := writeRepo.Delete(ctx, ringID)
		assert.NoError(t, err)
		assert.True(t, deleted)

		review, err := NewReviewReadRepository(db).GetByID(ctx, reviewID)
		assert.NoError(t, err)
		assert.Nil(t, review)
	})
}
