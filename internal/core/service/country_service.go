package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/nomadnav/travel-api/internal/api/metrics"
	"github.com/nomadnav/travel-api/internal/core/domain"
	"github.com/nomadnav/travel-api/internal/core/policy"
	"github.com/nomadnav/travel-api/internal/core/ports"
)

// countryAllowedUpdates is the fixed set of fields a PATCH may touch.
// The code is immutable after creation and deliberately absent.
var countryAllowedUpdates = map[string]struct{}{
	"name":             {},
	"currency":         {},
	"language":         {},
	"emergencyNumbers": {},
	"visaRequirements": {},
	"guides":           {},
	"transport":        {},
	"hagglingTips":     {},
}

// CountryService implements the country reference-data lifecycle with a
// read-through cache in front of by-code lookups. A nil cache disables
// caching entirely.
type CountryService struct {
	repo   ports.CountryRepository
	cache  ports.CountryCache
	logger zerolog.Logger
}

func NewCountryService(repo ports.CountryRepository, cache ports.CountryCache, logger zerolog.Logger) *CountryService {
	return &CountryService{repo: repo, cache: cache, logger: logger}
}

// List returns the summary projection of every country.
func (s *CountryService) List(ctx context.Context) ([]ports.CountrySummary, error) {
	summaries, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list countries")
		return nil, err
	}
	return summaries, nil
}

// Get looks a country up by code, case-insensitively. Cache failures are
// logged and degrade to the primary store; they never fail the request.
func (s *CountryService) Get(ctx context.Context, code string) (*domain.Country, error) {
	code = normalizeCode(code)

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, code)
		if err != nil {
			s.logger.Warn().Err(err).Str("code", code).Msg("country cache read failed")
		} else if ok {
			metrics.CountryCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		} else {
			metrics.CountryCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	c, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, c); err != nil {
			s.logger.Warn().Err(err).Str("code", code).Msg("country cache write failed")
		}
	}
	return c, nil
}

// Create validates and persists a new country entry. Admin only.
func (s *CountryService) Create(ctx context.Context, actor *domain.Actor, input ports.CreateCountryInput) (*domain.Country, error) {
	if err := policy.Authorize(actor, policy.OpCreate, policy.ResourceCountry, ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c := &domain.Country{
		Name:             strings.TrimSpace(input.Name),
		Code:             normalizeCode(input.Code),
		Currency:         strings.TrimSpace(input.Currency),
		Language:         strings.TrimSpace(input.Language),
		EmergencyNumbers: input.EmergencyNumbers,
		VisaRequirements: strings.TrimSpace(input.VisaRequirements),
		Guides:           input.Guides,
		Transport:        input.Transport,
		HagglingTips:     input.HagglingTips,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := validateCountry(c); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		if err != domain.ErrCountryExists {
			s.logger.Error().Err(err).Str("code", c.Code).Msg("failed to create country")
		}
		return nil, err
	}

	s.logger.Info().Str("code", created.Code).Str("actor_id", actor.ID).Msg("country created")
	return created, nil
}

// Update applies a field→value mapping to an existing country. Admin only.
// Any key outside the allow-list rejects the whole request; on success
// updatedAt is refreshed before the write and the cache entry is dropped.
func (s *CountryService) Update(ctx context.Context, actor *domain.Actor, code string, fields map[string]any) (*domain.Country, error) {
	if err := policy.Authorize(actor, policy.OpUpdate, policy.ResourceCountry, ""); err != nil {
		return nil, err
	}

	code = normalizeCode(code)
	c, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	for name := range fields {
		if _, ok := countryAllowedUpdates[name]; !ok {
			return nil, domain.ErrInvalidUpdate
		}
	}
	for name, value := range fields {
		if err := applyCountryField(c, name, value); err != nil {
			return nil, err
		}
	}
	if err := validateCountry(c); err != nil {
		return nil, err
	}

	c.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, c); err != nil {
		s.logger.Error().Err(err).Str("code", code).Msg("failed to update country")
		return nil, err
	}

	s.invalidate(ctx, code)
	s.logger.Info().Str("code", code).Str("actor_id", actor.ID).Msg("country updated")
	return c, nil
}

// Delete permanently removes a country entry. Admin only.
func (s *CountryService) Delete(ctx context.Context, actor *domain.Actor, code string) error {
	if err := policy.Authorize(actor, policy.OpDelete, policy.ResourceCountry, ""); err != nil {
		return err
	}

	code = normalizeCode(code)
	if err := s.repo.Delete(ctx, code); err != nil {
		return err
	}

	s.invalidate(ctx, code)
	s.logger.Info().Str("code", code).Str("actor_id", actor.ID).Msg("country deleted")
	return nil
}

func (s *CountryService) invalidate(ctx context.Context, code string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, code); err != nil {
		s.logger.Warn().Err(err).Str("code", code).Msg("country cache invalidation failed")
	}
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// validateCountry enforces the record invariants: 2-letter uppercase code,
// mandatory emergency numbers and visa text, valid transport types.
func validateCountry(c *domain.Country) error {
	var bad []string
	if c.Name == "" {
		bad = append(bad, "name is required")
	}
	if !validCountryCode(c.Code) {
		bad = append(bad, "code must be two letters")
	}
	if c.Currency == "" {
		bad = append(bad, "currency is required")
	}
	if c.Language == "" {
		bad = append(bad, "language is required")
	}
	en := c.EmergencyNumbers
	if en.Police == "" || en.Ambulance == "" || en.Fire == "" || en.TouristPolice == "" {
		bad = append(bad, "emergencyNumbers must include police, ambulance, fire and touristPolice")
	}
	if c.VisaRequirements == "" {
		bad = append(bad, "visaRequirements is required")
	}
	for _, tr := range c.Transport {
		if !tr.Type.Valid() {
			bad = append(bad, "transport type must be one of Bus, Train, Metro, Taxi, Ride-hailing, Other")
			break
		}
	}
	if len(bad) > 0 {
		return domain.NewValidationError(bad...)
	}
	return nil
}

func validCountryCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// applyCountryField sets one allow-listed field from its JSON value by
// round-tripping through encoding/json, so nested structures (emergency
// numbers, guides, transport, haggling tips) decode into their typed form.
func applyCountryField(c *domain.Country, name string, value any) error {
	var dst any
	switch name {
	case "name":
		dst = &c.Name
	case "currency":
		dst = &c.Currency
	case "language":
		dst = &c.Language
	case "emergencyNumbers":
		dst = &c.EmergencyNumbers
	case "visaRequirements":
		dst = &c.VisaRequirements
	case "guides":
		dst = &c.Guides
	case "transport":
		dst = &c.Transport
	case "hagglingTips":
		dst = &c.HagglingTips
	default:
		return domain.ErrInvalidUpdate
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return domain.Invalidf("%s is not valid JSON", name)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return domain.Invalidf("%s has the wrong shape", name)
	}
	return nil
}
