package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-review-platform/internal/models"
	"github.com/sbilibin2017/gw-review-platform/internal/services"
)

func TestGenresService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("created", func(t *testing.T) {
		mockStore := services.NewMockGenreStore(ctrl)
		mockStore.EXPECT().
			Save(ctx, "Drama", "drama").
			Return(&models.GenreDB{GenreID: 1, Name: "Drama", Slug: "drama"}, nil)

		svc := services.NewGenresService(mockStore)

		genre, err := svc.Create(ctx, "Drama", "drama")
		assert.NoError(t, err)
		assert.Equal(t, "drama", genre.Slug)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		mockStore := services.NewMockGenreStore(ctrl)
		mockStore.EXPECT().
			Save(ctx, "Drama", "drama").
			Return(nil, uniqueViolation())

		svc := services.NewGenresService(mockStore)

		_, err := svc.Create(ctx, "Drama", "drama")
		assert.ErrorIs(t, err, services.ErrSlugTaken)
	})
}

func TestGenresService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mockStore := services.NewMockGenreStore(ctrl)
		mockStore.EXPECT().Delete(ctx, "drama").Return(true, nil)

		svc := services.NewGenresService(mockStore)

		assert.NoError(t, svc.Delete(ctx, "drama"))
	})

	t.Run("not found", func(t *testing.T) {
		mockStore := services.NewMockGenreStore(ctrl)
		mockStore.EXPECT().Delete(ctx, "nope").Return(false, nil)

		svc := services.NewGenresService(mockStore)

		assert.ErrorIs(t, svc.Delete(ctx, "nope"), services.ErrGenreNotFound)
	})
}
