package services

import (
	"context"

	"github.com/sbilibin2017/gw-review-platform/internal/logger"
	"github.com/sbilibin2017/gw-review-platform/internal/models"
	"github.com/sbilibin2017/gw-review-platform/internal/repositories"
)

// CategoryStore defines the repository operations for categories.
type CategoryStore interface {
	List(ctx context.Context, search string, limit, offset int) ([]models.CategoryDB, error)
	Save(ctx context.Context, name, slug string) (*models.CategoryDB, error)
	Delete(ctx context.Context, slug string) (bool, error)
}

// CategoriesService manages the category catalog. Access control
// (read-only or admin) is enforced at the routing layer.
type CategoriesService struct {
	store CategoryStore
}

// NewCategoriesService creates a new CategoriesService instance.
func NewCategoriesService(store CategoryStore) *CategoriesService {
	return &CategoriesService{store: store}
}

// List returns categories, optionally filtered by a name substring.
func (svc *CategoriesService) List(ctx context.Context, search string, limit, offset int) ([]models.CategoryDB, error) {
	return svc.store.List(ctx, search, limit, offset)
}

// Create adds a category with a unique slug.
func (svc *CategoriesService) Create(ctx context.Context, name, slug string) (*models.CategoryDB, error) {
	category, err := svc.store.Save(ctx, name, slug)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		logger.Log.Errorw("failed to create category", "slug", slug, "err", err)
		return nil, err
	}
	return category, nil
}

// Delete removes a category by slug. Titles in the category survive
// with a null category.
func (svc *CategoriesService) Delete(ctx context.Context, slug string) error {
	deleted, err := svc.store.Delete(ctx, slug)
	if err != nil {
		logger.Log.Errorw("failed to delete category", "slug", slug, "err", err)
		return err
	}
	if !deleted {
		return ErrCategoryNotFound
	}
	return nil
}
