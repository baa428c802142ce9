package repository

import (
	"context"

	"flightsearch-service/internal/domain/entity"
)

// ItineraryRepository defines the interface for itinerary operations.
// Itineraries are always inserted fresh, never deduplicated.
type ItineraryRepository interface {
	Insert(ctx context.Context, itinerary *entity.Itinerary) error
}

// PricingOptionRepository defines the interface for pricing option operations
type PricingOptionRepository interface {
	Insert(ctx context.Context, option *entity.PricingOption) error
}
