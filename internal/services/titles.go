package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-review-platform/internal/logger"
	"github.com/sbilibin2017/gw-review-platform/internal/models"
	"github.com/sbilibin2017/gw-review-platform/internal/repositories"
)

// TitleReader defines read operations for titles.
type TitleReader interface {
	GetByID(ctx context.Context, titleID int64) (*models.Title, error)
	List(ctx context.Context, filter repositories.TitleFilter, limit, offset int) ([]models.Title, error)
}

// TitleWriter defines write operations for titles.
type TitleWriter interface {
	Save(ctx context.Context, name string, year int, description string, categoryID int64, genreIDs []int64) (int64, error)
	Update(ctx context.Context, titleID int64, name string, year int, description string, categoryID int64, genreIDs []int64) (bool, error)
	Delete(ctx context.Context, titleID int64) (bool, error)
}

// CategorySlugReader resolves category slugs.
type CategorySlugReader interface {
	GetBySlug(ctx context.Context, slug string) (*models.CategoryDB, error)
}

// GenreSlugReader resolves genre slugs.
type GenreSlugReader interface {
	GetBySlugs(ctx context.Context, slugs []string) ([]models.GenreDB, error)
}

// RatingReader computes rating averages from stored reviews.
type RatingReader interface {
	AvgScoreByTitle(ctx context.Context, titleID int64) (*float64, error)
	AvgScoresByTitles(ctx context.Context, titleIDs []int64) (map[int64]float64, error)
}

// RatingCache caches computed ratings.
type RatingCache interface {
	Get(ctx context.Context, titleID int64) (*float64, error)
	Set(ctx context.Context, titleID int64, rating float64) error
	Invalidate(ctx context.Context, titleID int64) error
}

// TitlesService manages the title catalog and its derived ratings.
type TitlesService struct {
	reader     TitleReader
	writer     TitleWriter
	categories CategorySlugReader
	genres     GenreSlugReader
	ratings    RatingReader
	cache      RatingCache
}

// NewTitlesService creates a new TitlesService instance.
func NewTitlesService(
	reader TitleReader,
	writer TitleWriter,
	categories CategorySlugReader,
	genres GenreSlugReader,
	ratings RatingReader,
	cache RatingCache,
) *TitlesService {
	return &TitlesService{
		reader:     reader,
		writer:     writer,
		categories: categories,
		genres:     genres,
		ratings:    ratings,
		cache:      cache,
	}
}

// GetByID returns a title with its rating, cache first.
func (svc *TitlesService) GetByID(ctx context.Context, titleID int64) (*models.Title, error) {
	title, err := svc.reader.GetByID(ctx, titleID)
	if err != nil {
		logger.Log.Errorw("failed to get title", "titleID", titleID, "err", err)
		return nil, err
	}
	if title == nil {
		return nil, ErrTitleNotFound
	}

	rating, err := svc.cache.Get(ctx, titleID)
	if err != nil {
		// Cache trouble degrades to a recompute, never fails the read.
		logger.Log.Errorw("rating cache read failed", "titleID", titleID, "err", err)
		rating = nil
	}
	if rating == nil {
		rating, err = svc.ratings.AvgScoreByTitle(ctx, titleID)
		if err != nil {
			logger.Log.Errorw("failed to compute rating", "titleID", titleID, "err", err)
			return nil, err
		}
		if rating != nil {
			if err := svc.cache.Set(ctx, titleID, *rating); err != nil {
				logger.Log.Errorw("rating cache write failed", "titleID", titleID, "err", err)
			}
		}
	}

	title.Rating = rating
	return title, nil
}

// List returns titles matching the filter, with ratings computed in one
// batch query.
func (svc *TitlesService) List(ctx context.Context, filter repositories.TitleFilter, limit, offset int) ([]models.Title, error) {
	titles, err := svc.reader.List(ctx, filter, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to list titles", "err", err)
		return nil, err
	}
	if len(titles) == 0 {
		return titles, nil
	}

	ids := make([]int64, 0, len(titles))
	for _, t := range titles {
		ids = append(ids, t.TitleID)
	}

	ratings, err := svc.ratings.AvgScoresByTitles(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to compute ratings", "err", err)
		return nil, err
	}

	for i := range titles {
		if rating, ok := ratings[titles[i].TitleID]; ok {
			r := rating
			titles[i].Rating = &r
		}
	}
	return titles, nil
}

// Create adds a title. Category and genres are referenced by slug and
// must exist.
func (svc *TitlesService) Create(ctx context.Context, name string, year int, description, categorySlug string, genreSlugs []string) (*models.Title, error) {
	categoryID, genreIDs, err := svc.resolveSlugs(ctx, year, categorySlug, genreSlugs)
	if err != nil {
		return nil, err
	}

	titleID, err := svc.writer.Save(ctx, name, year, description, categoryID, genreIDs)
	if err != nil {
		logger.Log.Errorw("failed to save title", "name", name, "err", err)
		return nil, err
	}

	return svc.GetByID(ctx, titleID)
}

// Update rewrites a title addressed by id.
func (svc *TitlesService) Update(ctx context.Context, titleID int64, name string, year int, description, categorySlug string, genreSlugs []string) (*models.Title, error) {
	categoryID, genreIDs, err := svc.resolveSlugs(ctx, year, categorySlug, genreSlugs)
	if err != nil {
		return nil, err
	}

	updated, err := svc.writer.Update(ctx, titleID, name, year, description, categoryID, genreIDs)
	if err != nil {
		logger.Log.Errorw("failed to update title", "titleID", titleID, "err", err)
		return nil, err
	}
	if !updated {
		return nil, ErrTitleNotFound
	}

	return svc.GetByID(ctx, titleID)
}

// Delete removes a title and its cached rating.
func (svc *TitlesService) Delete(ctx context.Context, titleID int64) error {
	deleted, err := svc.writer.Delete(ctx, titleID)
	if err != nil {
		logger.Log.Errorw("failed to delete title", "titleID", titleID, "err", err)
		return err
	}
	if !deleted {
		return ErrTitleNotFound
	}
	if err := svc.cache.Invalidate(ctx, titleID); err != nil {
		logger.Log.Errorw("rating cache invalidation failed", "titleID", titleID, "err", err)
	}
	return nil
}

func (svc *TitlesService) resolveSlugs(ctx context.Context, year int, categorySlug string, genreSlugs []string) (int64, []int64, error) {
	if year > time.Now().Year() {
		return 0, nil, ErrInvalidYear
	}

	category, err := svc.categories.GetBySlug(ctx, categorySlug)
	if err != nil {
		logger.Log.Errorw("failed to resolve category", "slug", categorySlug, "err", err)
		return 0, nil, err
	}
	if category == nil {
		return 0, nil, ErrCategoryNotFound
	}

	genres, err := svc.genres.GetBySlugs(ctx, genreSlugs)
	if err != nil {
		logger.Log.Errorw("failed to resolve genres", "slugs", genreSlugs, "err", err)
		return 0, nil, err
	}
	if len(genres) != len(genreSlugs) {
		return 0, nil, ErrGenreNotFound
	}

	genreIDs := make([]int64, 0, len(genres))
	for _, g := range genres {
		genreIDs = append(genreIDs, g.GenreID)
	}
	return category.CategoryID, genreIDs, nil
}
