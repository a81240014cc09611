package domain

import "time"

// PriceCategory classifies a crowdsourced price report.
type PriceCategory string

const (
	CategoryTransport     PriceCategory = "Transport"
	CategoryFood          PriceCategory = "Food"
	CategoryAccommodation PriceCategory = "Accommodation"
	CategoryActivities    PriceCategory = "Activities"
	CategoryShopping      PriceCategory = "Shopping"
	CategoryOther         PriceCategory = "Other"
)

var priceCategories = map[PriceCategory]struct{}{
	CategoryTransport:     {},
	CategoryFood:          {},
	CategoryAccommodation: {},
	CategoryActivities:    {},
	CategoryShopping:      {},
	CategoryOther:         {},
}

// Valid reports whether the category is one of the enumerated set.
func (c PriceCategory) Valid() bool {
	_, ok := priceCategories[c]
	return ok
}

// Price is a crowdsourced price report. ReportedBy identifies the creating
// user and is immutable after creation; it is the sole non-admin identity
// permitted to mutate or delete the record.
type Price struct {
	ID         string        `json:"id"`
	Country    string        `json:"country"`
	Category   PriceCategory `json:"category"`
	Item       string        `json:"item"`
	Price      float64       `json:"price"`
	Currency   string        `json:"currency"`
	Location   string        `json:"location"`
	Notes      string        `json:"notes,omitempty"`
	ReportedBy string        `json:"-"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
