package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-review-platform/internal/models"
	"github.com/sbilibin2017/gw-review-platform/internal/services"
)

func TestCategoriesService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("created", func(t *testing.T) {
		mockStore := services.NewMockCategoryStore(ctrl)
		mockStore.EXPECT().
			Save(ctx, "Movies", "movie").
			Return(&models.CategoryDB{CategoryID: 1, Name: "Movies", Slug: "movie"}, nil)

		svc := services.NewCategoriesService(mockStore)

		category, err := svc.Create(ctx, "Movies", "movie")
		assert.NoError(t, err)
		assert.Equal(t, "movie", category.Slug)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		mockStore := services.NewMockCategoryStore(ctrl)
		mockStore.EXPECT().
			Save(ctx, "Movies", "movie").
			Return(nil, uniqueViolation())

		svc := services.NewCategoriesService(mockStore)

		category, err := svc.Create(ctx, "Movies", "movie")
		assert.ErrorIs(t, err, services.ErrSlugTaken)
		assert.Nil(t, category)
	})

	t.Run("storage error", func(t *testing.T) {
		mockStore := services.NewMockCategoryStore(ctrl)
		mockStore.EXPECT().
			Save(ctx, "Movies", "movie").
			Return(nil, errors.New("db down"))

		svc := services.NewCategoriesService(mockStore)

		_, err := svc.Create(ctx, "Movies", "movie")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, services.ErrSlugTaken)
	})
}

func TestCategoriesService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mockStore := services.NewMockCategoryStore(ctrl)
		mockStore.EXPECT().Delete(ctx, "movie").Return(true, nil)

		svc := services.NewCategoriesService(mockStore)

		assert.NoError(t, svc.Delete(ctx, "movie"))
	})

	t.Run("not found", func(t *testing.T) {
		mockStore := services.NewMockCategoryStore(ctrl)
		mockStore.EXPECT().Delete(ctx, "nope").Return(false, nil)

		svc := services.NewCategoriesService(mockStore)

		assert.ErrorIs(t, svc.Delete(ctx, "nope"), services.ErrCategoryNotFound)
	})
}

func TestCategoriesService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockStore := services.NewMockCategoryStore(ctrl)
	mockStore.EXPECT().
		List(ctx, "mov", 20, 0).
		Return([]models.CategoryDB{{CategoryID: 1, Name: "Movies", Slug: "movie"}}, nil)

	svc := services.NewCategoriesService(mockStore)

	categories, err := svc.List(ctx, "mov", 20, 0)
	assert.NoError(t, err)
	assert.Len(t, categories, 1)
}
