package handler

import (
	"github.com/nomadnav/travel-api/internal/core/domain"
	"github.com/nomadnav/travel-api/internal/core/ports"
)

type emergencyNumbersRequest struct {
	Police        string `json:"police" validate:"required"`
	Ambulance     string `json:"ambulance" validate:"required"`
	Fire          string `json:"fire" validate:"required"`
	TouristPolice string `json:"touristPolice,omitempty"`
}

type guideEntryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type transportEntryRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Tips        string `json:"tips"`
}

type hagglingTipRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type createCountryRequest struct {
	Name             string                  `json:"name" validate:"required"`
	Code             string                  `json:"code" validate:"required,len=2"`
	Currency         string                  `json:"currency" validate:"required"`
	Language         string                  `json:"language" validate:"required"`
	EmergencyNumbers emergencyNumbersRequest `json:"emergencyNumbers" validate:"required"`
	VisaRequirements string                  `json:"visaRequirements,omitempty"`
	Guides           []guideEntryRequest     `json:"guides,omitempty"`
	Transport        []transportEntryRequest `json:"transport,omitempty"`
	HagglingTips     []hagglingTipRequest    `json:"hagglingTips,omitempty"`
}

func (r *createCountryRequest) toInput() ports.CreateCountryInput {
	guides := make([]domain.GuideEntry, 0, len(r.Guides))
	for _, g := range r.Guides {
		guides = append(guides, domain.GuideEntry{Title: g.Title, Content: g.Content})
	}
	transport := make([]domain.TransportEntry, 0, len(r.Transport))
	for _, t := range r.Transport {
		transport = append(transport, domain.TransportEntry{
			Type:        domain.TransportType(t.Type),
			Description: t.Description,
			Tips:        t.Tips,
		})
	}
	tips := make([]domain.HagglingTip, 0, len(r.HagglingTips))
	for _, h := range r.HagglingTips {
		tips = append(tips, domain.HagglingTip{Title: h.Title, Description: h.Description})
	}

	return ports.CreateCountryInput{
		Name:     r.Name,
		Code:     r.Code,
		Currency: r.Currency,
		Language: r.Language,
		EmergencyNumbers: domain.EmergencyNumbers{
			Police:        r.EmergencyNumbers.Police,
			Ambulance:     r.EmergencyNumbers.Ambulance,
			Fire:          r.EmergencyNumbers.Fire,
			TouristPolice: r.EmergencyNumbers.TouristPolice,
		},
		VisaRequirements: r.VisaRequirements,
		Guides:           guides,
		Transport:        transport,
		HagglingTips:     tips,
	}
}

type listCountriesResponse struct {
	Items []ports.CountrySummary `json:"items"`
	Total int                    `json:"total"`
}

type countryResponse struct {
	Message string          `json:"message"`
	Country *domain.Country `json:"country"`
}
