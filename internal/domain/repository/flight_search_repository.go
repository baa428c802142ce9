package repository

import (
	"context"

	"flightsearch-service/internal/domain/entity"

	"github.com/google/uuid"
)

// FlightSearchRepository defines the interface for flight search operations
type FlightSearchRepository interface {
	Insert(ctx context.Context, search *entity.FlightSearch) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FlightSearch, error)
	List(ctx context.Context) ([]entity.FlightSearch, error)
	// PriceSummary computes min/max/mean over per-itinerary minimum prices.
	// All fields are nil when the search has no priced itineraries.
	PriceSummary(ctx context.Context, id uuid.UUID) (*entity.PriceSummary, error)
}
