package ports

import (
	"context"

	"github.com/nomadnav/travel-api/internal/core/domain"
)

// CreateCountryInput carries the data for a new country entry. Code is
// normalized to uppercase by the service.
type CreateCountryInput struct {
	Name             string
	Code             string
	Currency         string
	Language         string
	EmergencyNumbers domain.EmergencyNumbers
	VisaRequirements string
	Guides           []domain.GuideEntry
	Transport        []domain.TransportEntry
	HagglingTips     []domain.HagglingTip
}

// CountryService covers the country reference-data lifecycle. Reads are
// public; every mutation requires the admin role.
type CountryService interface {
	List(ctx context.Context) ([]CountrySummary, error)
	// Get looks a country up by code, case-insensitively.
	Get(ctx context.Context, code string) (*domain.Country, error)
	Create(ctx context.Context, actor *domain.Actor, input CreateCountryInput) (*domain.Country, error)
	// Update applies a field→value mapping under the country allow-list;
	// any unknown field rejects the whole request with ErrInvalidUpdate.
	Update(ctx context.Context, actor *domain.Actor, code string, fields map[string]any) (*domain.Country, error)
	Delete(ctx context.Context, actor *domain.Actor, code string) error
}
