package repository

import (
	"context"

	"flightsearch-service/internal/domain/entity"
)

// CarrierRepository defines the interface for carrier operations
type CarrierRepository interface {
	GetByID(ctx context.Context, id int) (*entity.Carrier, error)
	GetOrCreate(ctx context.Context, carrier *entity.Carrier) (*entity.Carrier, error)
	List(ctx context.Context) ([]entity.Carrier, error)
}
