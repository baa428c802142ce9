package repository

import (
	"context"

	"flightsearch-service/internal/domain/entity"
)

// PlaceRepository defines the interface for place operations
type PlaceRepository interface {
	GetByID(ctx context.Context, id int) (*entity.Place, error)
	// GetOrCreate returns the stored place with the given external id,
	// inserting it first if unseen. Attributes of an existing row are never
	// updated (first-write-wins).
	GetOrCreate(ctx context.Context, place *entity.Place) (*entity.Place, error)
	// CityFor resolves the city-level place for an airport-level place by
	// name-prefix matching. Best-effort: returns nil without error when no
	// unambiguous match exists.
	CityFor(ctx context.Context, place *entity.Place) (*entity.Place, error)
	List(ctx context.Context) ([]entity.Place, error)
}

// PlaceTypeRepository defines the interface for place type operations,
// keyed by name
type PlaceTypeRepository interface {
	GetOrCreateByName(ctx context.Context, name string) (*entity.PlaceType, error)
}
