package usecase

import (
	"context"
	"fmt"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/internal/domain/repository"
	"flightsearch-service/pkg/logger"
	"flightsearch-service/pkg/utils"

	"github.com/google/uuid"
)

// Materializer turns one parsed live pricing response into the relational
// graph. Stages run in dependency order: dimensions, then legs (with their
// segments), then itineraries and pricing. Legs must be fully materialized
// before any itinerary references them.
type Materializer struct {
	logger logger.Logger
}

// NewMaterializer creates a new materializer
func NewMaterializer(logger logger.Logger) *Materializer {
	return &Materializer{
		logger: logger,
	}
}

// Run materializes the whole response for one search. All writes go through
// the provided repositories, so the caller controls the transaction scope.
func (m *Materializer) Run(ctx context.Context, repos *repository.Repositories, search *entity.FlightSearch, response *entity.LivePricingResponse) error {
	resolver := NewReferenceResolver(repos)

	if err := resolver.EnsurePlaces(ctx, response.Places); err != nil {
		return err
	}
	if err := resolver.EnsureCarriers(ctx, response.Carriers); err != nil {
		return err
	}
	if err := resolver.EnsureAgents(ctx, response.Agents); err != nil {
		return err
	}

	segmentIndex := response.SegmentIndex()
	for _, raw := range response.Legs {
		if err := m.materializeLeg(ctx, repos, raw, segmentIndex); err != nil {
			return fmt.Errorf("materialize leg %s: %w", raw.ID, err)
		}
	}

	for _, raw := range response.Itineraries {
		if err := m.materializeItinerary(ctx, repos, search, raw); err != nil {
			return fmt.Errorf("materialize itinerary %s/%s: %w", raw.OutboundLegID, raw.InboundLegID, err)
		}
	}

	return nil
}

// materializeLeg gets or creates the leg by its external id, then re-appends
// every relationship-set member. Appends are idempotent, so re-running the
// pipeline on the same response changes nothing. The leg is saved only after
// all sets are populated.
func (m *Materializer) materializeLeg(ctx context.Context, repos *repository.Repositories, raw entity.RawLeg, segmentIndex map[int]entity.RawSegment) error {
	departure, err := utils.ParseUTC(raw.Departure)
	if err != nil {
		return err
	}
	arrival, err := utils.ParseUTC(raw.Arrival)
	if err != nil {
		return err
	}
	mode, err := repos.JourneyModes.GetOrCreateByName(ctx, raw.JourneyMode)
	if err != nil {
		return err
	}
	if _, err := repos.Places.GetByID(ctx, raw.OriginStation); err != nil {
		return err
	}
	if _, err := repos.Places.GetByID(ctx, raw.DestinationStation); err != nil {
		return err
	}

	leg, err := repos.Legs.GetOrCreate(ctx, &entity.Leg{
		ID:               raw.ID,
		DeparturePlaceID: raw.OriginStation,
		ArrivalPlaceID:   raw.DestinationStation,
		Departure:        departure,
		Arrival:          arrival,
		Duration:         raw.Duration,
		Directionality:   raw.Directionality,
		JourneyModeID:    mode.ID,
	})
	if err != nil {
		return err
	}

	for _, carrierID := range raw.Carriers {
		carrier, err := repos.Carriers.GetByID(ctx, carrierID)
		if err != nil {
			return err
		}
		if err := repos.Legs.AddCarrier(ctx, leg, carrier); err != nil {
			return err
		}
	}
	for _, carrierID := range raw.OperatingCarriers {
		carrier, err := repos.Carriers.GetByID(ctx, carrierID)
		if err != nil {
			return err
		}
		if err := repos.Legs.AddOperatingCarrier(ctx, leg, carrier); err != nil {
			return err
		}
	}
	for _, stopID := range raw.Stops {
		// 0 is the "no stop" sentinel
		if stopID == 0 {
			continue
		}
		stop, err := repos.Places.GetByID(ctx, stopID)
		if err != nil {
			return err
		}
		if err := repos.Legs.AddStop(ctx, leg, stop); err != nil {
			return err
		}
	}
	for _, segmentID := range raw.SegmentIDs {
		rawSegment, ok := segmentIndex[segmentID]
		if !ok {
			return &entity.MalformedRecordError{Record: "leg", Field: fmt.Sprintf("SegmentIds (%d)", segmentID)}
		}
		segment, err := m.materializeSegment(ctx, repos, rawSegment)
		if err != nil {
			return err
		}
		if err := repos.Legs.AddSegment(ctx, leg, segment); err != nil {
			return err
		}
	}

	return repos.Legs.Save(ctx, leg)
}

// materializeSegment resolves one raw segment's references and deduplicates
// it by its full attribute tuple
func (m *Materializer) materializeSegment(ctx context.Context, repos *repository.Repositories, raw entity.RawSegment) (*entity.Segment, error) {
	departure, err := utils.ParseUTC(raw.DepartureDateTime)
	if err != nil {
		return nil, err
	}
	arrival, err := utils.ParseUTC(raw.ArrivalDateTime)
	if err != nil {
		return nil, err
	}
	if _, err := repos.Places.GetByID(ctx, raw.OriginStation); err != nil {
		return nil, err
	}
	if _, err := repos.Places.GetByID(ctx, raw.DestinationStation); err != nil {
		return nil, err
	}
	if _, err := repos.Carriers.GetByID(ctx, raw.Carrier); err != nil {
		return nil, err
	}
	if _, err := repos.Carriers.GetByID(ctx, raw.OperatingCarrier); err != nil {
		return nil, err
	}
	mode, err := repos.JourneyModes.GetOrCreateByName(ctx, raw.JourneyMode)
	if err != nil {
		return nil, err
	}

	return repos.Segments.GetOrCreate(ctx, &entity.Segment{
		DeparturePlaceID:   raw.OriginStation,
		ArrivalPlaceID:     raw.DestinationStation,
		Departure:          departure,
		Arrival:            arrival,
		CarrierID:          raw.Carrier,
		OperatingCarrierID: raw.OperatingCarrier,
		FlightNumber:       raw.FlightNumber,
		Duration:           raw.Duration,
		Directionality:     raw.Directionality,
		JourneyModeID:      mode.ID,
	})
}

// materializeItinerary inserts a fresh itinerary row and its pricing options.
// The referenced legs must already exist; a dangling leg id fails the whole
// search.
func (m *Materializer) materializeItinerary(ctx context.Context, repos *repository.Repositories, search *entity.FlightSearch, raw entity.RawItinerary) error {
	inbound, err := repos.Legs.GetByID(ctx, raw.InboundLegID)
	if err != nil {
		return err
	}
	outbound, err := repos.Legs.GetByID(ctx, raw.OutboundLegID)
	if err != nil {
		return err
	}

	itinerary := &entity.Itinerary{
		ID:                 uuid.New(),
		FlightSearchID:     search.ID,
		InboundLegID:       inbound.ID,
		OutboundLegID:      outbound.ID,
		BookingDetailsLink: raw.BookingDetailsLink,
	}
	if err := repos.Itineraries.Insert(ctx, itinerary); err != nil {
		return err
	}

	for _, rawOption := range raw.PricingOptions {
		agents := make([]entity.Agent, 0, len(rawOption.Agents))
		for _, agentID := range rawOption.Agents {
			agent, err := repos.Agents.GetByID(ctx, agentID)
			if err != nil {
				return err
			}
			agents = append(agents, *agent)
		}
		option := &entity.PricingOption{
			ItineraryID:   itinerary.ID,
			Price:         rawOption.Price,
			Agents:        agents,
			DeeplinkURL:   rawOption.DeeplinkURL,
			QuoteAgeInMin: rawOption.QuoteAgeInMinutes,
		}
		if err := repos.PricingOptions.Insert(ctx, option); err != nil {
			return err
		}
	}

	return nil
}
