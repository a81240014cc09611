package ports

import (
	"context"

	"github.com/nomadnav/travel-api/internal/core/domain"
)

// CountryCache is a TTL-bounded read-through cache for country-by-code
// lookups. A miss is (nil, false, nil); errors are reported separately so
// the caller can degrade to the primary store.
type CountryCache interface {
	Get(ctx context.Context, code string) (*domain.Country, bool, error)
	Set(ctx context.Context, c *domain.Country) error
	Invalidate(ctx context.Context, code string) error
}
