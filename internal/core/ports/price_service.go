package ports

import (
	"context"
	"time"

	"github.com/nomadnav/travel-api/internal/core/domain"
)

// CreatePriceInput carries the data for a new price report. The reporter is
// never part of the input: it is taken from the authenticated actor.
type CreatePriceInput struct {
	Country  string
	Category string
	Item     string
	Price    float64
	Currency string
	Location string
	Notes    string
}

// ReporterSummary is the public view of the user behind a price report.
// It exposes the username only, never credentials.
type ReporterSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// PriceView is a price report with its reporter dereferenced.
type PriceView struct {
	ID         string               `json:"id"`
	Country    string               `json:"country"`
	Category   domain.PriceCategory `json:"category"`
	Item       string               `json:"item"`
	Price      float64              `json:"price"`
	Currency   string               `json:"currency"`
	Location   string               `json:"location"`
	Notes      string               `json:"notes,omitempty"`
	ReportedBy ReporterSummary      `json:"reportedBy"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

// ListPricesInput carries the already-parsed query parameters for listing.
type ListPricesInput struct {
	Country  string
	Category string
	Limit    int // <= 0 means default
	Skip     int
}

// ListPricesResult is a page of price reports plus pagination facts.
type ListPricesResult struct {
	Prices  []PriceView
	Total   int64
	HasMore bool
}

// PriceService covers the price report lifecycle and list queries.
// Mutating operations take the acting identity explicitly and enforce the
// authorization policy before touching storage.
type PriceService interface {
	List(ctx context.Context, input ListPricesInput) (*ListPricesResult, error)
	Get(ctx context.Context, id string) (*PriceView, error)
	Create(ctx context.Context, actor *domain.Actor, input CreatePriceInput) (*PriceView, error)
	// Update applies a field→value mapping. Every key must belong to the
	// price allow-list or the whole operation fails with ErrInvalidUpdate.
	Update(ctx context.Context, actor *domain.Actor, id string, fields map[string]any) (*PriceView, error)
	Delete(ctx context.Context, actor *domain.Actor, id string) error
}
