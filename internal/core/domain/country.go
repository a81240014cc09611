package domain

import "time"

// TransportType enumerates the transport modes a country entry may describe.
type TransportType string

const (
	TransportBus         TransportType = "Bus"
	TransportTrain       TransportType = "Train"
	TransportMetro       TransportType = "Metro"
	TransportTaxi        TransportType = "Taxi"
	TransportRideHailing TransportType = "Ride-hailing"
	TransportOther       TransportType = "Other"
)

var transportTypes = map[TransportType]struct{}{
	TransportBus:         {},
	TransportTrain:       {},
	TransportMetro:       {},
	TransportTaxi:        {},
	TransportRideHailing: {},
	TransportOther:       {},
}

// Valid reports whether the transport type is one of the enumerated set.
func (t TransportType) Valid() bool {
	_, ok := transportTypes[t]
	return ok
}

// EmergencyNumbers holds the mandatory emergency contact set for a country.
type EmergencyNumbers struct {
	Police        string `json:"police" bson:"police"`
	Ambulance     string `json:"ambulance" bson:"ambulance"`
	Fire          string `json:"fire" bson:"fire"`
	TouristPolice string `json:"touristPolice" bson:"tourist_police"`
}

// GuideEntry is a titled block of country guide content.
type GuideEntry struct {
	Title   string `json:"title" bson:"title"`
	Content string `json:"content" bson:"content"`
}

// TransportEntry describes one transport mode with practical tips.
type TransportEntry struct {
	Type        TransportType `json:"type" bson:"type"`
	Description string        `json:"description" bson:"description"`
	Tips        string        `json:"tips" bson:"tips"`
}

// HagglingTip is a single piece of bargaining advice.
type HagglingTip struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
}

// Country is the reference-data aggregate for one destination. Code is the
// unique uppercase 2-letter identifier and never changes after creation.
type Country struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Code             string           `json:"code"`
	Currency         string           `json:"currency"`
	Language         string           `json:"language"`
	EmergencyNumbers EmergencyNumbers `json:"emergencyNumbers"`
	VisaRequirements string           `json:"visaRequirements"`
	Guides           []GuideEntry     `json:"guides"`
	Transport        []TransportEntry `json:"transport"`
	HagglingTips     []HagglingTip    `json:"hagglingTips"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
