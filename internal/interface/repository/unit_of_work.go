package repository

import (
	"context"

	"flightsearch-service/internal/domain/repository"

	"gorm.io/gorm"
)

// NewRepositories builds the full relational repository set over one database
// handle (a connection pool or an open transaction)
func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Places:         NewGormPlaceRepository(db),
		PlaceTypes:     NewGormPlaceTypeRepository(db),
		Carriers:       NewGormCarrierRepository(db),
		Agents:         NewGormAgentRepository(db),
		AgentTypes:     NewGormAgentTypeRepository(db),
		JourneyModes:   NewGormJourneyModeRepository(db),
		Segments:       NewGormSegmentRepository(db),
		Legs:           NewGormLegRepository(db),
		Itineraries:    NewGormItineraryRepository(db),
		PricingOptions: NewGormPricingOptionRepository(db),
		FlightSearches: NewGormFlightSearchRepository(db),
	}
}

// GormUnitOfWork implements the UnitOfWork interface with one database
// transaction per call
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewGormUnitOfWork creates a new GORM unit of work
func NewGormUnitOfWork(db *gorm.DB) repository.UnitOfWork {
	return &GormUnitOfWork{
		db: db,
	}
}

// Do runs fn against repositories bound to a single transaction; any error
// rolls back everything fn wrote
func (u *GormUnitOfWork) Do(ctx context.Context, fn func(repos *repository.Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
