package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nomadnav/travel-api/internal/api/metrics"
	"github.com/nomadnav/travel-api/internal/core/domain"
	"github.com/nomadnav/travel-api/internal/core/policy"
	"github.com/nomadnav/travel-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// priceAllowedUpdates is the fixed set of fields a PATCH may touch. Anything
// outside it (reportedBy included) rejects the whole request.
var priceAllowedUpdates = map[string]struct{}{
	"country":  {},
	"category": {},
	"item":     {},
	"price":    {},
	"currency": {},
	"location": {},
	"notes":    {},
}

// PriceService implements the price report lifecycle and list queries.
type PriceService struct {
	repo   ports.PriceRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewPriceService(repo ports.PriceRepository, users ports.UserRepository, logger zerolog.Logger) *PriceService {
	return &PriceService{repo: repo, users: users, logger: logger}
}

// List returns a filtered page of price reports, newest first, with the
// reporter's username resolved for each row.
func (s *PriceService) List(ctx context.Context, input ports.ListPricesInput) (*ports.ListPricesResult, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	skip := input.Skip
	if skip < 0 {
		skip = 0
	}

	prices, total, err := s.repo.List(ctx, ports.ListPricesFilter{
		Country:  input.Country,
		Category: input.Category,
		Limit:    limit,
		Skip:     skip,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list prices")
		return nil, err
	}

	names, err := s.reporterNames(ctx, prices)
	if err != nil {
		return nil, err
	}

	views := make([]ports.PriceView, 0, len(prices))
	for _, p := range prices {
		views = append(views, toPriceView(p, names[p.ReportedBy]))
	}

	return &ports.ListPricesResult{
		Prices:  views,
		Total:   total,
		HasMore: total > int64(skip+limit),
	}, nil
}

// Get fetches a single price report by id.
func (s *PriceService) Get(ctx context.Context, id string) (*ports.PriceView, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	names, err := s.reporterNames(ctx, []*domain.Price{p})
	if err != nil {
		return nil, err
	}
	view := toPriceView(p, names[p.ReportedBy])
	return &view, nil
}

// Create validates and persists a new price report. The reporter identity is
// always the calling actor, regardless of anything the client sent.
func (s *PriceService) Create(ctx context.Context, actor *domain.Actor, input ports.CreatePriceInput) (*ports.PriceView, error) {
	if err := policy.Authorize(actor, policy.OpCreate, policy.ResourcePrice, ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &domain.Price{
		Country:    strings.TrimSpace(input.Country),
		Category:   domain.PriceCategory(strings.TrimSpace(input.Category)),
		Item:       strings.TrimSpace(input.Item),
		Price:      input.Price,
		Currency:   strings.TrimSpace(input.Currency),
		Location:   strings.TrimSpace(input.Location),
		Notes:      strings.TrimSpace(input.Notes),
		ReportedBy: actor.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := validatePrice(p); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create price report")
		return nil, err
	}

	metrics.PricesCreatedTotal.WithLabelValues(string(created.Category)).Inc()
	s.logger.Info().
		Str("price_id", created.ID).
		Str("category", string(created.Category)).
		Str("reported_by", created.ReportedBy).
		Msg("price report created")

	names, err := s.reporterNames(ctx, []*domain.Price{created})
	if err != nil {
		return nil, err
	}
	view := toPriceView(created, names[created.ReportedBy])
	return &view, nil
}

// Update applies a field→value mapping to an existing report. The whole
// request fails if any key falls outside the allow-list; on success every
// supplied field is applied and updatedAt is refreshed before the write.
func (s *PriceService) Update(ctx context.Context, actor *domain.Actor, id string, fields map[string]any) (*ports.PriceView, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, policy.OpUpdate, policy.ResourcePrice, p.ReportedBy); err != nil {
		if err == domain.ErrForbidden {
			metrics.PriceMutationsDeniedTotal.WithLabelValues("update").Inc()
		}
		return nil, err
	}

	for name := range fields {
		if _, ok := priceAllowedUpdates[name]; !ok {
			return nil, domain.ErrInvalidUpdate
		}
	}
	for name, value := range fields {
		if err := applyPriceField(p, name, value); err != nil {
			return nil, err
		}
	}
	if err := validatePrice(p); err != nil {
		return nil, err
	}

	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error().Err(err).Str("price_id", id).Msg("failed to update price report")
		return nil, err
	}

	s.logger.Info().Str("price_id", id).Str("actor_id", actor.ID).Msg("price report updated")

	names, err := s.reporterNames(ctx, []*domain.Price{p})
	if err != nil {
		return nil, err
	}
	view := toPriceView(p, names[p.ReportedBy])
	return &view, nil
}

// Delete permanently removes a report. A second delete of the same id
// surfaces ErrPriceNotFound.
func (s *PriceService) Delete(ctx context.Context, actor *domain.Actor, id string) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := policy.Authorize(actor, policy.OpDelete, policy.ResourcePrice, p.ReportedBy); err != nil {
		if err == domain.ErrForbidden {
			metrics.PriceMutationsDeniedTotal.WithLabelValues("delete").Inc()
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("price_id", id).Str("actor_id", actor.ID).Msg("price report deleted")
	return nil
}

// reporterNames resolves the distinct reporter ids of a batch of reports.
// Unknown ids resolve to an empty username (orphaned references render
// blank rather than failing the read).
func (s *PriceService) reporterNames(ctx context.Context, prices []*domain.Price) (map[string]string, error) {
	seen := make(map[string]struct{}, len(prices))
	ids := make([]string, 0, len(prices))
	for _, p := range prices {
		if _, ok := seen[p.ReportedBy]; ok {
			continue
		}
		seen[p.ReportedBy] = struct{}{}
		ids = append(ids, p.ReportedBy)
	}
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	names, err := s.users.Usernames(ctx, ids)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to resolve reporter usernames")
		return nil, err
	}
	return names, nil
}

func toPriceView(p *domain.Price, username string) ports.PriceView {
	return ports.PriceView{
		ID:        p.ID,
		Country:   p.Country,
		Category:  p.Category,
		Item:      p.Item,
		Price:     p.Price,
		Currency:  p.Currency,
		Location:  p.Location,
		Notes:     p.Notes,
		ReportedBy: ports.ReporterSummary{
			ID:       p.ReportedBy,
			Username: username,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// validatePrice enforces the record invariants: required strings non-empty
// after trimming, category in the enumerated set, price never negative.
func validatePrice(p *domain.Price) error {
	var bad []string
	if p.Country == "" {
		bad = append(bad, "country is required")
	}
	if !p.Category.Valid() {
		bad = append(bad, "category must be one of Transport, Food, Accommodation, Activities, Shopping, Other")
	}
	if p.Item == "" {
		bad = append(bad, "item is required")
	}
	if p.Price < 0 {
		bad = append(bad, "price must not be negative")
	}
	if p.Currency == "" {
		bad = append(bad, "currency is required")
	}
	if p.Location == "" {
		bad = append(bad, "location is required")
	}
	if len(bad) > 0 {
		return domain.NewValidationError(bad...)
	}
	return nil
}

// applyPriceField sets one allow-listed field from its JSON value.
func applyPriceField(p *domain.Price, name string, value any) error {
	switch name {
	case "price":
		n, ok := value.(float64)
		if !ok {
			return domain.Invalidf("price must be a number")
		}
		p.Price = n
		return nil
	case "category":
		str, ok := value.(string)
		if !ok {
			return domain.Invalidf("category must be a string")
		}
		p.Category = domain.PriceCategory(strings.TrimSpace(str))
		return nil
	}

	str, ok := value.(string)
	if !ok {
		return domain.Invalidf("%s must be a string", name)
	}
	str = strings.TrimSpace(str)
	switch name {
	case "country":
		p.Country = str
	case "item":
		p.Item = str
	case "currency":
		p.Currency = str
	case "location":
		p.Location = str
	case "notes":
		p.Notes = str
	}
	return nil
}
