package handler

import "github.com/nomadnav/travel-api/internal/core/ports"

// createPriceRequest carries a new price report. The reporter is never part
// of the payload: it is always the authenticated user. Price is a pointer so
// a free item (price 0) stays distinguishable from an absent field.
type createPriceRequest struct {
	Country  string   `json:"country" validate:"required"`
	Category string   `json:"category" validate:"required"`
	Item     string   `json:"item" validate:"required"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
	Currency string   `json:"currency" validate:"required"`
	Location string   `json:"location" validate:"required"`
	Notes    string   `json:"notes,omitempty"`
}

type listPricesResponse struct {
	Prices  []ports.PriceView `json:"prices"`
	Total   int64             `json:"total"`
	HasMore bool              `json:"hasMore"`
}

type priceResponse struct {
	Message string           `json:"message"`
	Price   *ports.PriceView `json:"price"`
}

type messageResponse struct {
	Message string `json:"message"`
}
