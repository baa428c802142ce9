package entity

import (
	"time"

	"github.com/google/uuid"
)

// FlightSearch is one persisted record per successful live pricing call. The
// result set it owns is an immutable snapshot; rows are never mutated after
// materialization.
type FlightSearch struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Origin      string      `gorm:"size:30" json:"origin"`
	Destination string      `gorm:"size:30" json:"destination"`
	Outbound    time.Time   `json:"outbound"`
	Inbound     time.Time   `json:"inbound"`
	Passengers  int         `gorm:"default:1" json:"passengers"`
	Status      string      `gorm:"size:200" json:"status"`
	Query       string      `json:"query"`
	SessionKey  string      `gorm:"size:200" json:"session_key"`
	Itineraries []Itinerary `json:"itineraries,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (fs *FlightSearch) String() string {
	return fs.Origin + "-" + fs.Destination +
		" (" + fs.Outbound.Format("2006-01-02") + "-" + fs.Inbound.Format("2006-01-02") + ")"
}

// PriceSummary holds the derived aggregates over one search's itineraries.
// Each value is the reduction over per-itinerary minimum prices; nil when the
// search has no itineraries or pricing options.
type PriceSummary struct {
	MinPrice  *float64 `json:"min_price"`
	MaxPrice  *float64 `json:"max_price"`
	MeanPrice *float64 `json:"mean_price"`
}
