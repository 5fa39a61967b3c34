package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/qr-verification-service/internal/logger"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
)

// AnalyticsCacheRepository caches the aggregated analytics payload per
// time range in Redis. Staleness is bounded by the TTL only; nothing
// invalidates entries on write.
type AnalyticsCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewAnalyticsCacheRepository creates a cache repository with the given TTL.
func NewAnalyticsCacheRepository(client *redis.Client, expiration time.Duration) *AnalyticsCacheRepository {
	return &AnalyticsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func analyticsKey(timeRange string) string {
	return fmt.Sprintf("analytics:%s", timeRange)
}

// Get returns the cached payload for a time range, or an error on miss.
func (r *AnalyticsCacheRepository) Get(ctx context.Context, timeRange string) (*models.AnalyticsData, error) {
	key := analyticsKey(timeRange)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("analytics not cached for range %s", timeRange)
		}
		return nil, err
	}

	var data models.AnalyticsData
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", data.TimeRange,
		"error", nil,
	)

	return &data, nil
}

// Set caches the payload for its time range with the repository TTL.
func (r *AnalyticsCacheRepository) Set(ctx context.Context, data *models.AnalyticsData) error {
	key := analyticsKey(data.TimeRange)

	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, raw, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}
