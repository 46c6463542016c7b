package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-review-platform/internal/models"
	"github.com/sbilibin2017/gw-review-platform/internal/repositories"
	"github.com/sbilibin2017/gw-review-platform/internal/services"
)

type titlesMocks struct {
	reader     *services.MockTitleReader
	writer     *services.MockTitleWriter
	categories *services.MockCategorySlugReader
	genres     *services.MockGenreSlugReader
	ratings    *services.MockRatingReader
	cache      *services.MockRatingCache
}

func newTitlesService(ctrl *gomock.Controller) (*services.TitlesService, titlesMocks) {
	m := titlesMocks{
		reader:     services.NewMockTitleReader(ctrl),
		writer:     services.NewMockTitleWriter(ctrl),
		categories: services.NewMockCategorySlugReader(ctrl),
		genres:     services.NewMockGenreSlugReader(ctrl),
		ratings:    services.NewMockRatingReader(ctrl),
		cache:      services.NewMockRatingCache(ctrl),
	}
	svc := services.NewTitlesService(m.reader, m.writer, m.categories, m.genres, m.ratings, m.cache)
	return svc, m
}

func TestTitlesService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTitlesService(ctrl)

	stored := &models.Title{TitleID: 7, Name: "Some Work", Year: 2001}

	t.Run("cache hit", func(t *testing.T) {
		m.reader.EXPECT().GetByID(gomock.Any(), int64(7)).Return(stored, nil)
		m.cache.EXPECT().Get(gomock.Any(), int64(7)).Return(ptr(8.5), nil)

		title, err := svc.GetByID(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, 8.5, *title.Rating)
	})

	t.Run("cache miss computes and stores", func(t *testing.T) {
		m.reader.EXPECT().GetByID(gomock.Any(), int64(7)).Return(stored, nil)
		m.cache.EXPECT().Get(gomock.Any(), int64(7)).Return(nil, nil)
		m.ratings.EXPECT().AvgScoreByTitle(gomock.Any(), int64(7)).Return(ptr(7.25), nil)
		m.cache.EXPECT().Set(gomock.Any(), int64(7), 7.25).Return(nil)

		title, err := svc.GetByID(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, 7.25, *title.Rating)
	})

	t.Run("no reviews leaves rating nil", func(t *testing.T) {
		m.reader.EXPECT().GetByID(gomock.Any(), int64(7)).Return(stored, nil)
		m.cache.EXPECT().Get(gomock.Any(), int64(7)).Return(nil, nil)
		m.ratings.EXPECT().AvgScoreByTitle(gomock.Any(), int64(7)).Return(nil, nil)

		title, err := svc.GetByID(context.Background(), 7)
		assert.NoError(t, err)
		assert.Nil(t, title.Rating)
	})

	t.Run("cache failure degrades to recompute", func(t *testing.T) {
		m.reader.EXPECT().GetByID(gomock.Any(), int64(7)).Return(stored, nil)
		m.cache.EXPECT().Get(gomock.Any(), int64(7)).Return(nil, errors.New("redis down"))
		m.ratings.EXPECT().AvgScoreByTitle(gomock.Any(), int64(7)).Return(ptr(6.0), nil)
		m.cache.EXPECT().Set(gomock.Any(), int64(7), 6.0).Return(errors.New("redis down"))

		title, err := svc.GetByID(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, 6.0, *title.Rating)
	})

	t.Run("unknown title", func(t *testing.T) {
		m.reader.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		_, err := svc.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, services.ErrTitleNotFound)
	})
}

func TestTitlesService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTitlesService(ctrl)

	filter := repositories.TitleFilter{CategorySlug: "movie"}
	stored := []models.Title{
		{TitleID: 1, Name: "A"},
		{TitleID: 2, Name: "B"},
	}

	m.reader.EXPECT().List(gomock.Any(), filter, 20, 0).Return(stored, nil)
	m.ratings.EXPECT().AvgScoresByTitles(gomock.Any(), []int64{1, 2}).Return(map[int64]float64{1: 9.0}, nil)

	titles, err := svc.List(context.Background(), filter, 20, 0)
	assert.NoError(t, err)
	assert.Len(t, titles, 2)
	assert.Equal(t, 9.0, *titles[0].Rating)
	assert.Nil(t, titles[1].Rating)
}

func TestTitlesService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTitlesService(ctrl)

	category := &models.CategoryDB{CategoryID: 3, Name: "Movies", Slug: "movie"}
	genres := []models.GenreDB{{GenreID: 5, Name: "Drama", Slug: "drama"}}

	t.Run("created", func(t *testing.T) {
		m.categories.EXPECT().GetBySlug(gomock.Any(), "movie").Return(category, nil)
		m.genres.EXPECT().GetBySlugs(gomock.Any(), []string{"drama"}).Return(genres, nil)
		m.writer.EXPECT().Save(gomock.Any(), "Some Work", 2001, "desc", int64(3), []int64{5}).Return(int64(7), nil)
		m.reader.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&models.Title{TitleID: 7, Name: "Some Work"}, nil)
		m.cache.EXPECT().Get(gomock.Any(), int64(7)).Return(nil, nil)
		m.ratings.EXPECT().AvgScoreByTitle(gomock.Any(), int64(7)).Return(nil, nil)

		title, err := svc.Create(context.Background(), "Some Work", 2001, "desc", "movie", []string{"drama"})
		assert.NoError(t, err)
		assert.Equal(t, int64(7), title.TitleID)
	})

	t.Run("future year", func(t *testing.T) {
		_, err := svc.Create(context.Background(), "Time Machine", time.Now().Year()+1, "", "movie", nil)
		assert.ErrorIs(t, err, services.ErrInvalidYear)
	})

	t.Run("unknown category", func(t *testing.T) {
		m.categories.EXPECT().GetBySlug(gomock.Any(), "nope").Return(nil, nil)

		_, err := svc.Create(context.Background(), "X", 2001, "", "nope", nil)
		assert.ErrorIs(t, err, services.ErrCategoryNotFound)
	})

	t.Run("unknown genre", func(t *testing.T) {
		m.categories.EXPECT().GetBySlug(gomock.Any(), "movie").Return(category, nil)
		m.genres.EXPECT().GetBySlugs(gomock.Any(), []string{"drama", "nope"}).Return(genres, nil)

		_, err := svc.Create(context.Background(), "X", 2001, "", "movie", []string{"drama", "nope"})
		assert.ErrorIs(t, err, services.ErrGenreNotFound)
	})
}

func TestTitlesService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTitlesService(ctrl)

	category := &models.CategoryDB{CategoryID: 3, Slug: "movie"}

	t.Run("unknown title", func(t *testing.T) {
		m.categories.EXPECT().GetBySlug(gomock.Any(), "movie").Return(category, nil)
		m.genres.EXPECT().GetBySlugs(gomock.Any(), gomock.Nil()).Return(nil, nil)
		m.writer.EXPECT().Update(gomock.Any(), int64(99), "X", 2001, "", int64(3), []int64{}).Return(false, nil)

		_, err := svc.Update(context.Background(), 99, "X", 2001, "", "movie", nil)
		assert.ErrorIs(t, err, services.ErrTitleNotFound)
	})
}

func TestTitlesService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTitlesService(ctrl)

	t.Run("deleted and cache dropped", func(t *testing.T) {
		m.writer.EXPECT().Delete(gomock.Any(), int64(7)).Return(true, nil)
		m.cache.EXPECT().Invalidate(gomock.Any(), int64(7)).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), 7))
	})

	t.Run("unknown title", func(t *testing.T) {
		m.writer.EXPECT().Delete(gomock.Any(), int64(99)).Return(false, nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), 99), services.ErrTitleNotFound)
	})
}
