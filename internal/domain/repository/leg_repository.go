package repository

import (
	"context"

	"flightsearch-service/internal/domain/entity"
)

// LegRepository defines the interface for leg operations. The relationship
// appends are idempotent: adding a member already in the set is a no-op.
type LegRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Leg, error)
	// GetOrCreate is keyed by the external leg id. When the leg already
	// exists its scalar fields are left untouched.
	GetOrCreate(ctx context.Context, leg *entity.Leg) (*entity.Leg, error)
	AddCarrier(ctx context.Context, leg *entity.Leg, carrier *entity.Carrier) error
	AddOperatingCarrier(ctx context.Context, leg *entity.Leg, carrier *entity.Carrier) error
	AddStop(ctx context.Context, leg *entity.Leg, stop *entity.Place) error
	AddSegment(ctx context.Context, leg *entity.Leg, segment *entity.Segment) error
	// Save persists the leg's field values; called after all relationship
	// sets are populated.
	Save(ctx context.Context, leg *entity.Leg) error
	List(ctx context.Context) ([]entity.Leg, error)
}
