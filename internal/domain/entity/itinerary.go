package entity

import (
	"time"

	"github.com/google/uuid"
)

// Itinerary pairs an outbound and an inbound leg for one flight search.
// Itineraries are inserted fresh on every search, never deduplicated.
type Itinerary struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	FlightSearchID     uuid.UUID       `gorm:"type:uuid;index" json:"flight_search_id"`
	InboundLegID       string          `gorm:"size:200" json:"inbound_leg_id"`
	InboundLeg         Leg             `gorm:"foreignKey:InboundLegID" json:"-"`
	OutboundLegID      string          `gorm:"size:200" json:"outbound_leg_id"`
	OutboundLeg        Leg             `gorm:"foreignKey:OutboundLegID" json:"-"`
	BookingDetailsLink string          `json:"booking_details_link"`
	PricingOptions     []PricingOption `json:"pricing_options"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// PricingOption is one quoted price for an itinerary, offered by one or more
// booking agents
type PricingOption struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ItineraryID   uuid.UUID `gorm:"type:uuid;index" json:"itinerary_id"`
	Price         float64   `json:"price"`
	Agents        []Agent   `gorm:"many2many:pricing_option_agents" json:"agents"`
	DeeplinkURL   string    `gorm:"size:2000" json:"deeplink_url"`
	QuoteAgeInMin int       `gorm:"default:1" json:"quote_age_in_min"`
}
