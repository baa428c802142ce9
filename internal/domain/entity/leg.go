package entity

import (
	"strings"
	"time"
)

// Leg is a complete directional journey, possibly multi-segment with
// stopovers. Its primary key is the external leg id, so legs deduplicate
// globally across searches that share the same id. Segment ordering within a
// leg is not modeled; the segment set is unordered.
type Leg struct {
	ID                string      `gorm:"primaryKey;size:200" json:"id"`
	DeparturePlaceID  int         `json:"departure_place_id"`
	DeparturePlace    Place       `gorm:"foreignKey:DeparturePlaceID" json:"departure_place"`
	ArrivalPlaceID    int         `json:"arrival_place_id"`
	ArrivalPlace      Place       `gorm:"foreignKey:ArrivalPlaceID" json:"arrival_place"`
	Departure         time.Time   `json:"departure"`
	Arrival           time.Time   `json:"arrival"`
	Duration          int         `gorm:"default:0" json:"duration"`
	Directionality    string      `gorm:"size:30;default:Outbound" json:"directionality"`
	JourneyModeID     uint        `json:"-"`
	JourneyMode       JourneyMode `gorm:"foreignKey:JourneyModeID" json:"journey_mode"`
	Carriers          []Carrier   `gorm:"many2many:leg_carriers" json:"carriers"`
	OperatingCarriers []Carrier   `gorm:"many2many:leg_operating_carriers" json:"operating_carriers"`
	Stops             []Place     `gorm:"many2many:leg_stops" json:"stops"`
	Segments          []Segment   `gorm:"many2many:leg_segments" json:"segments"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// Label renders the admin display string, e.g. "BCN - LHR (Direct)" or
// "BCN - LHR (Via: MAD CDG)". Requires DeparturePlace, ArrivalPlace and Stops
// to be loaded.
func (l *Leg) Label() string {
	label := l.DeparturePlace.Code + " - " + l.ArrivalPlace.Code
	if len(l.Stops) == 0 {
		return label + " (Direct)"
	}
	codes := make([]string, 0, len(l.Stops))
	for _, stop := range l.Stops {
		codes = append(codes, stop.Code)
	}
	return label + " (Via: " + strings.Join(codes, " ") + ")"
}
