package persistence

import (
	"flightsearch-service/internal/domain/entity"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgres opens the relational store and migrates the schema. Migration
// order follows the FK dependency chain.
func NewPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entity.PlaceType{},
		&entity.Place{},
		&entity.Carrier{},
		&entity.AgentType{},
		&entity.Agent{},
		&entity.JourneyMode{},
		&entity.Segment{},
		&entity.Leg{},
		&entity.FlightSearch{},
		&entity.Itinerary{},
		&entity.PricingOption{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
