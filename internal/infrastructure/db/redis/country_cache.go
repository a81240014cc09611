package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nomadnav/travel-api/internal/core/domain"
)

const defaultCountryTTL = 15 * time.Minute

// CountryCache is a TTL-bounded read-through cache for country reference
// data, keyed by country code. Key format: country:<CODE>
type CountryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCountryCache wraps the given Redis client. A non-positive ttl falls
// back to the default.
func NewCountryCache(client *redis.Client, ttl time.Duration) *CountryCache {
	if ttl <= 0 {
		ttl = defaultCountryTTL
	}
	return &CountryCache{client: client, ttl: ttl}
}

// Get returns the cached country for the code, reporting a miss as
// (nil, false, nil).
func (c *CountryCache) Get(ctx context.Context, code string) (*domain.Country, bool, error) {
	raw, err := c.client.Get(ctx, c.key(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("country cache get: %w", err)
	}

	var country domain.Country
	if err := json.Unmarshal(raw, &country); err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it.
		return nil, false, nil
	}
	return &country, true, nil
}

// Set stores the country under its code, bounded by the cache TTL.
func (c *CountryCache) Set(ctx context.Context, country *domain.Country) error {
	raw, err := json.Marshal(country)
	if err != nil {
		return fmt.Errorf("country cache marshal: %w", err)
	}
	return c.client.Set(ctx, c.key(country.Code), raw, c.ttl).Err()
}

// Invalidate drops the cached entry for the code.
func (c *CountryCache) Invalidate(ctx context.Context, code string) error {
	return c.client.Del(ctx, c.key(code)).Err()
}

func (c *CountryCache) key(code string) string {
	return "country:" + code
}
