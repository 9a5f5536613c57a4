package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cascade-admin/locations/internal/config"
	"github.com/cascade-admin/locations/internal/domain"
)

const keyPrefix = "locations:options:"

// OptionCache stores dropdown option lists. Countries, regions and cities are
// seeded once and never reparented, so cached lists never go stale.
type OptionCache interface {
	Get(ctx context.Context, key string) ([]domain.Option, bool, error)
	Set(ctx context.Context, key string, options []domain.Option) error
}

func CountriesKey() string {
	return "countries:all"
}

func RegionsKey(countryID int64) string {
	return fmt.Sprintf("regions:country:%d", countryID)
}

func CitiesKey(regionID int64) string {
	return fmt.Sprintf("cities:region:%d", regionID)
}

// NewOptionCache builds the cache selected by cfg.Type. The returned client
// is nil when caching is disabled.
func NewOptionCache(cfg config.Cache) (OptionCache, redis.UniversalClient, error) {
	if cfg.Type == "" || cfg.Type == TypeNone {
		return Noop{}, nil, nil
	}

	client, err := NewRedis(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("redis connect failed: %w", err)
	}

	return NewRedisOptionCache(client, cfg.OptionsTTL), client, nil
}

type redisOptionCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisOptionCache(client redis.UniversalClient, ttl time.Duration) *redisOptionCache {
	return &redisOptionCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *redisOptionCache) Get(ctx context.Context, key string) ([]domain.Option, bool, error) {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %s failed: %w", key, err)
	}

	var options []domain.Option
	if err := json.Unmarshal(data, &options); err != nil {
		return nil, false, fmt.Errorf("options json unmarshal failed: %w", err)
	}

	return options, true, nil
}

func (c *redisOptionCache) Set(ctx context.Context, key string, options []domain.Option) error {
	data, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("options json marshal failed: %w", err)
	}

	if err := c.client.Set(ctx, keyPrefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s failed: %w", key, err)
	}

	return nil
}

// Noop never holds anything.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]domain.Option, bool, error) {
	return nil, false, nil
}

func (Noop) Set(context.Context, string, []domain.Option) error {
	return nil
}
