package ports

import (
	"context"

	"github.com/nomadnav/travel-api/internal/core/domain"
)

// ListPricesFilter carries the query parameters for listing price reports.
// Empty Country/Category match all values. Skip/Limit are already validated
// and defaulted by the service layer.
type ListPricesFilter struct {
	Country  string
	Category string
	Limit    int
	Skip     int
}

// PriceRepository defines persistence operations for price reports.
type PriceRepository interface {
	Create(ctx context.Context, p *domain.Price) (*domain.Price, error)
	FindByID(ctx context.Context, id string) (*domain.Price, error)
	// List returns a page sorted by creation time descending (ties broken
	// by id descending) plus the total count matching the filter.
	List(ctx context.Context, filter ListPricesFilter) ([]*domain.Price, int64, error)
	Update(ctx context.Context, p *domain.Price) error
	// Delete removes the record permanently. Deleting an id that no longer
	// exists returns domain.ErrPriceNotFound.
	Delete(ctx context.Context, id string) error
}
