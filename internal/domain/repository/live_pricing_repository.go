package repository

import (
	"context"
	"time"

	"flightsearch-service/internal/domain/entity"
)

// LivePricingRepository defines the interface for the external flight
// metasearch API
type LivePricingRepository interface {
	// Search blocks until the upstream responds. A non-success upstream
	// status is returned as *entity.SearchError.
	Search(ctx context.Context, origin, destination string, outbound, inbound time.Time, passengers int) (*entity.LivePricingResponse, error)
}
