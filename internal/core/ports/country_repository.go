package ports

import (
	"context"

	"github.com/nomadnav/travel-api/internal/core/domain"
)

// CountrySummary is the projection used by the country list endpoint: the
// quick-reference fields without guides, transport, or haggling tips.
type CountrySummary struct {
	Name             string                  `json:"name"`
	Code             string                  `json:"code"`
	Currency         string                  `json:"currency"`
	Language         string                  `json:"language"`
	EmergencyNumbers domain.EmergencyNumbers `json:"emergencyNumbers"`
	VisaRequirements string                  `json:"visaRequirements"`
}

// CountryRepository defines persistence operations for country reference
// data. Callers pass codes already normalized to uppercase.
type CountryRepository interface {
	Create(ctx context.Context, c *domain.Country) (*domain.Country, error)
	FindByCode(ctx context.Context, code string) (*domain.Country, error)
	List(ctx context.Context) ([]CountrySummary, error)
	Update(ctx context.Context, c *domain.Country) error
	Delete(ctx context.Context, code string) error
}
