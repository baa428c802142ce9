package repository

import "context"

// Repositories bundles the relational repositories participating in one
// materialization transaction
type Repositories struct {
	Places         PlaceRepository
	PlaceTypes     PlaceTypeRepository
	Carriers       CarrierRepository
	Agents         AgentRepository
	AgentTypes     AgentTypeRepository
	JourneyModes   JourneyModeRepository
	Segments       SegmentRepository
	Legs           LegRepository
	Itineraries    ItineraryRepository
	PricingOptions PricingOptionRepository
	FlightSearches FlightSearchRepository
}

// UnitOfWork runs fn inside one storage transaction. Any error returned by fn
// rolls back everything written through the provided repositories, so a
// failed search leaves no partially materialized legs or itineraries behind.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(repos *Repositories) error) error
}
