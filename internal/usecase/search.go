package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/internal/domain/repository"
	"flightsearch-service/pkg/logger"
	"flightsearch-service/pkg/metrics"

	"github.com/google/uuid"
)

// PriceCache caches computed price summaries per search
type PriceCache interface {
	GetSummary(ctx context.Context, searchID string) (*entity.PriceSummary, error)
	SetSummary(ctx context.Context, searchID string, summary *entity.PriceSummary) error
}

// EventPublisher announces completed searches to downstream consumers
type EventPublisher interface {
	SearchCompleted(ctx context.Context, search *entity.FlightSearch, itineraries int) error
}

// SearchUsecase is the top-level entry point: it calls the live pricing API,
// persists the search and drives the materialization pipeline inside one
// transaction, then serves derived price aggregates.
type SearchUsecase struct {
	api          repository.LivePricingRepository
	uow          repository.UnitOfWork
	searches     repository.FlightSearchRepository
	legs         repository.LegRepository
	places       repository.PlaceRepository
	snapshots    repository.SnapshotRepository
	materializer *Materializer
	cache        PriceCache
	publisher    EventPublisher
	metrics      *metrics.Metrics
	logger       logger.Logger
}

// NewSearchUsecase creates a new search usecase. Snapshots, cache and
// publisher may be nil when the deployment runs without them.
func NewSearchUsecase(
	api repository.LivePricingRepository,
	uow repository.UnitOfWork,
	searches repository.FlightSearchRepository,
	legs repository.LegRepository,
	places repository.PlaceRepository,
	snapshots repository.SnapshotRepository,
	materializer *Materializer,
	cache PriceCache,
	publisher EventPublisher,
	m *metrics.Metrics,
	logger logger.Logger,
) *SearchUsecase {
	return &SearchUsecase{
		api:          api,
		uow:          uow,
		searches:     searches,
		legs:         legs,
		places:       places,
		snapshots:    snapshots,
		materializer: materializer,
		cache:        cache,
		publisher:    publisher,
		metrics:      m,
		logger:       logger,
	}
}

// Search runs one synchronous flight search end to end. A non-success
// upstream status fails with *entity.SearchError and persists nothing; any
// materialization error rolls the whole search back.
func (s *SearchUsecase) Search(ctx context.Context, origin, destination string, outbound, inbound time.Time, passengers int) (*entity.FlightSearch, error) {
	started := time.Now()

	response, err := s.api.Search(ctx, origin, destination, outbound, inbound, passengers)
	if err != nil {
		var searchErr *entity.SearchError
		if errors.As(err, &searchErr) {
			s.logger.Warn("Upstream rejected search", "origin", origin, "destination", destination, "status", searchErr.StatusCode)
			if s.metrics != nil {
				s.metrics.SearchFailures.Inc()
			}
		}
		return nil, err
	}

	if err := response.Validate(); err != nil {
		if s.metrics != nil {
			s.metrics.ErrorsCount.WithLabelValues("validate").Inc()
		}
		return nil, err
	}

	search := &entity.FlightSearch{
		ID:          uuid.New(),
		Origin:      origin,
		Destination: destination,
		Outbound:    outbound,
		Inbound:     inbound,
		Passengers:  passengers,
		Status:      response.Status,
		Query:       string(response.Query),
		SessionKey:  response.SessionKey,
	}

	err = s.uow.Do(ctx, func(repos *repository.Repositories) error {
		if err := repos.FlightSearches.Insert(ctx, search); err != nil {
			return err
		}
		return s.materializer.Run(ctx, repos, search, response)
	})
	if err != nil {
		s.logger.Error("Materialization failed", "search", search.String(), "error", err)
		if s.metrics != nil {
			s.metrics.ErrorsCount.WithLabelValues("materialize").Inc()
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.SearchesCompleted.Inc()
		s.metrics.ItinerariesPersisted.Add(float64(len(response.Itineraries)))
		s.metrics.MaterializationSeconds.Observe(time.Since(started).Seconds())
	}

	s.archiveSnapshot(ctx, search, response)

	if s.publisher != nil {
		if err := s.publisher.SearchCompleted(ctx, search, len(response.Itineraries)); err != nil {
			s.logger.Error("Failed to publish search event", "search", search.ID, "error", err)
		}
	}

	s.logger.Info("Flight search persisted", "search", search.String(), "itineraries", len(response.Itineraries))
	return search, nil
}

// archiveSnapshot stores the raw payload as an immutable document.
// Best-effort: the search result stands even when archival fails.
func (s *SearchUsecase) archiveSnapshot(ctx context.Context, search *entity.FlightSearch, response *entity.LivePricingResponse) {
	if s.snapshots == nil {
		return
	}
	payload, err := json.Marshal(response)
	if err != nil {
		s.logger.Error("Failed to encode snapshot", "search", search.ID, "error", err)
		return
	}
	err = s.snapshots.Save(ctx, &entity.SearchSnapshot{
		SearchID:    search.ID.String(),
		Origin:      search.Origin,
		Destination: search.Destination,
		Payload:     payload,
	})
	if err != nil {
		s.logger.Error("Failed to archive snapshot", "search", search.ID, "error", err)
	}
}

// GetSearch loads one persisted search with its itineraries and pricing
func (s *SearchUsecase) GetSearch(ctx context.Context, id uuid.UUID) (*entity.FlightSearch, error) {
	return s.searches.GetByID(ctx, id)
}

// ListSearches returns all persisted searches, newest first
func (s *SearchUsecase) ListSearches(ctx context.Context) ([]entity.FlightSearch, error) {
	return s.searches.List(ctx)
}

// PriceSummary returns the min/max/mean aggregates for one search. All
// fields are nil when the search has no priced itineraries.
func (s *SearchUsecase) PriceSummary(ctx context.Context, id uuid.UUID) (*entity.PriceSummary, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetSummary(ctx, id.String()); err == nil && cached != nil {
			return cached, nil
		}
	}

	summary, err := s.searches.PriceSummary(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetSummary(ctx, id.String(), summary)
	}
	return summary, nil
}

// OriginCity resolves the city of the search's departure airport through the
// first itinerary's outbound leg. Best-effort, may return nil.
func (s *SearchUsecase) OriginCity(ctx context.Context, search *entity.FlightSearch) (*entity.Place, error) {
	leg, err := s.firstOutboundLeg(ctx, search)
	if err != nil || leg == nil {
		return nil, err
	}
	return s.places.CityFor(ctx, &leg.DeparturePlace)
}

// DestinationCity resolves the city of the search's arrival airport
func (s *SearchUsecase) DestinationCity(ctx context.Context, search *entity.FlightSearch) (*entity.Place, error) {
	leg, err := s.firstOutboundLeg(ctx, search)
	if err != nil || leg == nil {
		return nil, err
	}
	return s.places.CityFor(ctx, &leg.ArrivalPlace)
}

func (s *SearchUsecase) firstOutboundLeg(ctx context.Context, search *entity.FlightSearch) (*entity.Leg, error) {
	if len(search.Itineraries) == 0 {
		return nil, nil
	}
	return s.legs.GetByID(ctx, search.Itineraries[0].OutboundLegID)
}
