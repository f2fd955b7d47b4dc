package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/sfomin/gw-currency-rates/internal/logger"
)

// RateCacheRepository caches currency rates in Redis with a TTL.
// Staleness after a mutation is bounded by the configured expiration.
type RateCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewRateCacheRepository creates a new cache repository with the given TTL.
func NewRateCacheRepository(client *redis.Client, expiration time.Duration) *RateCacheRepository {
	return &RateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetRate fetches a cached rate for a currency code.
func (r *RateCacheRepository) GetRate(ctx context.Context, code string) (decimal.Decimal, error) {
	key := fmt.Sprintf("currency_rate:%s", code)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return decimal.Zero, fmt.Errorf("rate not found in cache for %s", code)
		}
		logger.Log.Infow("rate cache get",
			"key", key,
			"error", err,
		)
		return decimal.Zero, err
	}

	rate, err := decimal.NewFromString(val)
	if err != nil {
		logger.Log.Infow("rate cache get",
			"key", key,
			"value", val,
			"error", err,
		)
		return decimal.Zero, err
	}

	logger.Log.Infow("rate cache get",
		"key", key,
		"value", val,
		"error", nil,
	)

	return rate, nil
}

// SetRate caches a rate for a currency code with the repository's TTL.
func (r *RateCacheRepository) SetRate(ctx context.Context, code string, rate decimal.Decimal) error {
	key := fmt.Sprintf("currency_rate:%s", code)
	err := r.client.Set(ctx, key, rate.String(), r.exp).Err()

	logger.Log.Infow("rate cache set",
		"key", key,
		"rate", rate,
		"error", err,
	)

	return err
}

// DeleteRate drops a cached rate, used by mutations to shorten staleness.
func (r *RateCacheRepository) DeleteRate(ctx context.Context, code string) error {
	key := fmt.Sprintf("currency_rate:%s", code)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("rate cache delete",
		"key", key,
		"error", err,
	)

	return err
}
