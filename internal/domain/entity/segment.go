package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Directionality values used by legs and segments
const (
	DirectionOutbound = "Outbound"
	DirectionInbound  = "Inbound"
)

// Segment is a single non-stop flight hop. The external API only assigns
// segment ids that are unique within one response, so segments get a generated
// primary key and are deduplicated by the fingerprint of their natural key.
type Segment struct {
	ID                 uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Fingerprint        string      `gorm:"size:64;uniqueIndex" json:"-"`
	DeparturePlaceID   int         `json:"departure_place_id"`
	DeparturePlace     Place       `gorm:"foreignKey:DeparturePlaceID" json:"-"`
	ArrivalPlaceID     int         `json:"arrival_place_id"`
	ArrivalPlace       Place       `gorm:"foreignKey:ArrivalPlaceID" json:"-"`
	Departure          time.Time   `json:"departure"`
	Arrival            time.Time   `json:"arrival"`
	CarrierID          int         `json:"carrier_id"`
	Carrier            Carrier     `gorm:"foreignKey:CarrierID" json:"-"`
	OperatingCarrierID int         `json:"operating_carrier_id"`
	OperatingCarrier   Carrier     `gorm:"foreignKey:OperatingCarrierID" json:"-"`
	FlightNumber       string      `gorm:"size:10" json:"flight_number"`
	Duration           int         `gorm:"default:0" json:"duration"`
	Directionality     string      `gorm:"size:30;default:Outbound" json:"directionality"`
	JourneyModeID      uint        `json:"-"`
	JourneyMode        JourneyMode `gorm:"foreignKey:JourneyModeID" json:"journey_mode"`
}

// ComputeFingerprint derives the deterministic natural-key hash used for
// deduplication. Two segments with identical fields collapse into one row,
// even across different searches.
func (s *Segment) ComputeFingerprint() string {
	key := fmt.Sprintf("%d|%d|%s|%s|%d|%d|%s|%d|%s|%d",
		s.DeparturePlaceID,
		s.ArrivalPlaceID,
		s.Departure.UTC().Format(time.RFC3339),
		s.Arrival.UTC().Format(time.RFC3339),
		s.CarrierID,
		s.OperatingCarrierID,
		s.FlightNumber,
		s.Duration,
		s.Directionality,
		s.JourneyModeID,
	)
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

func (s *Segment) String() string {
	return s.DeparturePlace.Code + " - " + s.ArrivalPlace.Code
}
