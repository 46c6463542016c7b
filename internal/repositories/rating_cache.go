package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-review-platform/internal/logger"
)

// RatingCacheRepository caches title rating averages in Redis.
// Review writes must invalidate the affected title's entry.
type RatingCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached ratings
}

// NewRatingCacheRepository creates a new repository instance with the given TTL.
func NewRatingCacheRepository(client *redis.Client, expiration time.Duration) *RatingCacheRepository {
	return &RatingCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func ratingKey(titleID int64) string {
	return fmt.Sprintf("title_rating:%d", titleID)
}

// Get fetches a cached rating. Returns (nil, nil) on a cache miss.
func (r *RatingCacheRepository) Get(ctx context.Context, titleID int64) (*float64, error) {
	key := ratingKey(titleID)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"result", val,
		"error", err,
	)

	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rating, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// Set caches a title's rating with expiration.
func (r *RatingCacheRepository) Set(ctx context.Context, titleID int64, rating float64) error {
	key := ratingKey(titleID)
	err := r.client.Set(ctx, key, strconv.FormatFloat(rating, 'f', -1, 64), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"rating", rating,
		"error", err,
	)

	return err
}

// Invalidate drops a title's cached rating.
func (r *RatingCacheRepository) Invalidate(ctx context.Context, titleID int64) error {
	key := ratingKey(titleID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
