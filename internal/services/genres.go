package services

import (
	"context"

	"github.com/sbilibin2017/gw-review-platform/internal/logger"
	"github.com/sbilibin2017/gw-review-platform/internal/models"
	"github.com/sbilibin2017/gw-review-platform/internal/repositories"
)

// GenreStore defines the repository operations for genres.
type GenreStore interface {
	List(ctx context.Context, search string, limit, offset int) ([]models.GenreDB, error)
	Save(ctx context.Context, name, slug string) (*models.GenreDB, error)
	Delete(ctx context.Context, slug string) (bool, error)
}

// GenresService manages the genre catalog.
type GenresService struct {
	store GenreStore
}

// NewGenresService creates a new GenresService instance.
func NewGenresService(store GenreStore) *GenresService {
	return &GenresService{store: store}
}

// List returns genres, optionally filtered by a name substring.
func (svc *GenresService) List(ctx context.Context, search string, limit, offset int) ([]models.GenreDB, error) {
	return svc.store.List(ctx, search, limit, offset)
}

// Create adds a genre with a unique slug.
func (svc *GenresService) Create(ctx context.Context, name, slug string) (*models.GenreDB, error) {
	genre, err := svc.store.Save(ctx, name, slug)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		logger.Log.Errorw("failed to create genre", "slug", slug, "err", err)
		return nil, err
	}
	return genre, nil
}

// Delete removes a genre by slug.
func (svc *GenresService) Delete(ctx context.Context, slug string) error {
	deleted, err := svc.store.Delete(ctx, slug)
	if err != nil {
		logger.Log.Errorw("failed to delete genre", "slug", slug, "err", err)
		return err
	}
	if !deleted {
		return ErrGenreNotFound
	}
	return nil
}
