package usecase

import (
	"context"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/internal/domain/repository"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the relational store. It mirrors the
// semantics the pipeline relies on: get-or-create keyed lookups and
// idempotent relationship-set membership.
type fakeStore struct {
	placeTypes   map[string]*entity.PlaceType
	typesByID    map[uint]*entity.PlaceType
	places       map[int]*entity.Place
	carriers     map[int]*entity.Carrier
	agentTypes   map[string]*entity.AgentType
	agentTypesID map[uint]*entity.AgentType
	agents       map[int]*entity.Agent
	journeyModes map[string]*entity.JourneyMode
	segments     map[string]*entity.Segment
	legs         map[string]*entity.Leg
	legCarriers  map[string]map[int]bool
	legOperating map[string]map[int]bool
	legStops     map[string]map[int]bool
	legSegments  map[string]map[uuid.UUID]bool
	legSaved     map[string]int
	itineraries  []*entity.Itinerary
	options      []*entity.PricingOption
	searches     map[uuid.UUID]*entity.FlightSearch
	nextID       uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		placeTypes:   make(map[string]*entity.PlaceType),
		typesByID:    make(map[uint]*entity.PlaceType),
		places:       make(map[int]*entity.Place),
		carriers:     make(map[int]*entity.Carrier),
		agentTypes:   make(map[string]*entity.AgentType),
		agentTypesID: make(map[uint]*entity.AgentType),
		agents:       make(map[int]*entity.Agent),
		journeyModes: make(map[string]*entity.JourneyMode),
		segments:     make(map[string]*entity.Segment),
		legs:         make(map[string]*entity.Leg),
		legCarriers:  make(map[string]map[int]bool),
		legOperating: make(map[string]map[int]bool),
		legStops:     make(map[string]map[int]bool),
		legSegments:  make(map[string]map[uuid.UUID]bool),
		legSaved:     make(map[string]int),
		searches:     make(map[uuid.UUID]*entity.FlightSearch),
	}
}

func (s *fakeStore) repos() *repository.Repositories {
	return &repository.Repositories{
		Places:         &fakePlaceRepo{s: s},
		PlaceTypes:     &fakePlaceTypeRepo{s: s},
		Carriers:       &fakeCarrierRepo{s: s},
		Agents:         &fakeAgentRepo{s: s},
		AgentTypes:     &fakeAgentTypeRepo{s: s},
		JourneyModes:   &fakeJourneyModeRepo{s: s},
		Segments:       &fakeSegmentRepo{s: s},
		Legs:           &fakeLegRepo{s: s},
		Itineraries:    &fakeItineraryRepo{s: s},
		PricingOptions: &fakePricingOptionRepo{s: s},
		FlightSearches: &fakeFlightSearchRepo{s: s},
	}
}

// fakeUnitOfWork runs the function directly against the shared store; the
// tests that use it never exercise rollback.
type fakeUnitOfWork struct {
	s *fakeStore
}

func (u *fakeUnitOfWork) Do(ctx context.Context, fn func(repos *repository.Repositories) error) error {
	return fn(u.s.repos())
}

type fakePlaceTypeRepo struct{ s *fakeStore }

func (r *fakePlaceTypeRepo) GetOrCreateByName(ctx context.Context, name string) (*entity.PlaceType, error) {
	if pt, ok := r.s.placeTypes[name]; ok {
		return pt, nil
	}
	r.s.nextID++
	pt := &entity.PlaceType{ID: r.s.nextID, Name: name}
	r.s.placeTypes[name] = pt
	r.s.typesByID[pt.ID] = pt
	return pt, nil
}

type fakePlaceRepo struct{ s *fakeStore }

func (r *fakePlaceRepo) GetByID(ctx context.Context, id int) (*entity.Place, error) {
	place, ok := r.s.places[id]
	if !ok {
		return nil, &entity.LookupError{Entity: "place", Key: id}
	}
	loaded := *place
	if pt, ok := r.s.typesByID[place.TypeID]; ok {
		loaded.Type = *pt
	}
	return &loaded, nil
}

func (r *fakePlaceRepo) GetOrCreate(ctx context.Context, place *entity.Place) (*entity.Place, error) {
	if existing, ok := r.s.places[place.ID]; ok {
		loaded := *existing
		return &loaded, nil
	}
	stored := *place
	r.s.places[place.ID] = &stored
	return place, nil
}

func (r *fakePlaceRepo) CityFor(ctx context.Context, place *entity.Place) (*entity.Place, error) {
	if place.Type.Name == "City" {
		return place, nil
	}
	return nil, nil
}

func (r *fakePlaceRepo) List(ctx context.Context) ([]entity.Place, error) {
	places := make([]entity.Place, 0, len(r.s.places))
	for _, p := range r.s.places {
		places = append(places, *p)
	}
	return places, nil
}

type fakeCarrierRepo struct{ s *fakeStore }

func (r *fakeCarrierRepo) GetByID(ctx context.Context, id int) (*entity.Carrier, error) {
	carrier, ok := r.s.carriers[id]
	if !ok {
		return nil, &entity.LookupError{Entity: "carrier", Key: id}
	}
	loaded := *carrier
	return &loaded, nil
}

func (r *fakeCarrierRepo) GetOrCreate(ctx context.Context, carrier *entity.Carrier) (*entity.Carrier, error) {
	if existing, ok := r.s.carriers[carrier.ID]; ok {
		loaded := *existing
		return &loaded, nil
	}
	stored := *carrier
	r.s.carriers[carrier.ID] = &stored
	return carrier, nil
}

func (r *fakeCarrierRepo) List(ctx context.Context) ([]entity.Carrier, error) {
	carriers := make([]entity.Carrier, 0, len(r.s.carriers))
	for _, c := range r.s.carriers {
		carriers = append(carriers, *c)
	}
	return carriers, nil
}

type fakeAgentTypeRepo struct{ s *fakeStore }

func (r *fakeAgentTypeRepo) GetOrCreateByName(ctx context.Context, name string) (*entity.AgentType, error) {
	if at, ok := r.s.agentTypes[name]; ok {
		return at, nil
	}
	r.s.nextID++
	at := &entity.AgentType{ID: r.s.nextID, Name: name}
	r.s.agentTypes[name] = at
	r.s.agentTypesID[at.ID] = at
	return at, nil
}

type fakeAgentRepo struct{ s *fakeStore }

func (r *fakeAgentRepo) GetByID(ctx context.Context, id int) (*entity.Agent, error) {
	agent, ok := r.s.agents[id]
	if !ok {
		return nil, &entity.LookupError{Entity: "agent", Key: id}
	}
	loaded := *agent
	if at, ok := r.s.agentTypesID[agent.TypeID]; ok {
		loaded.Type = *at
	}
	return &loaded, nil
}

func (r *fakeAgentRepo) GetOrCreate(ctx context.Context, agent *entity.Agent) (*entity.Agent, error) {
	if existing, ok := r.s.agents[agent.ID]; ok {
		loaded := *existing
		return &loaded, nil
	}
	stored := *agent
	r.s.agents[agent.ID] = &stored
	return agent, nil
}

func (r *fakeAgentRepo) List(ctx context.Context) ([]entity.Agent, error) {
	agents := make([]entity.Agent, 0, len(r.s.agents))
	for _, a := range r.s.agents {
		agents = append(agents, *a)
	}
	return agents, nil
}

type fakeJourneyModeRepo struct{ s *fakeStore }

func (r *fakeJourneyModeRepo) GetOrCreateByName(ctx context.Context, name string) (*entity.JourneyMode, error) {
	if mode, ok := r.s.journeyModes[name]; ok {
		return mode, nil
	}
	r.s.nextID++
	mode := &entity.JourneyMode{ID: r.s.nextID, Name: name}
	r.s.journeyModes[name] = mode
	return mode, nil
}

type fakeSegmentRepo struct{ s *fakeStore }

func (r *fakeSegmentRepo) GetOrCreate(ctx context.Context, segment *entity.Segment) (*entity.Segment, error) {
	segment.Fingerprint = segment.ComputeFingerprint()
	if existing, ok := r.s.segments[segment.Fingerprint]; ok {
		loaded := *existing
		return &loaded, nil
	}
	segment.ID = uuid.New()
	stored := *segment
	r.s.segments[segment.Fingerprint] = &stored
	return segment, nil
}

type fakeLegRepo struct{ s *fakeStore }

func (r *fakeLegRepo) GetByID(ctx context.Context, id string) (*entity.Leg, error) {
	leg, ok := r.s.legs[id]
	if !ok {
		return nil, &entity.LookupError{Entity: "leg", Key: id}
	}
	return r.load(leg), nil
}

// load rebuilds the leg with its relationship sets, mimicking preloads
func (r *fakeLegRepo) load(leg *entity.Leg) *entity.Leg {
	loaded := *leg
	if place, ok := r.s.places[leg.DeparturePlaceID]; ok {
		loaded.DeparturePlace = *place
	}
	if place, ok := r.s.places[leg.ArrivalPlaceID]; ok {
		loaded.ArrivalPlace = *place
	}
	loaded.Carriers = nil
	for id := range r.s.legCarriers[leg.ID] {
		loaded.Carriers = append(loaded.Carriers, *r.s.carriers[id])
	}
	loaded.OperatingCarriers = nil
	for id := range r.s.legOperating[leg.ID] {
		loaded.OperatingCarriers = append(loaded.OperatingCarriers, *r.s.carriers[id])
	}
	loaded.Stops = nil
	for id := range r.s.legStops[leg.ID] {
		loaded.Stops = append(loaded.Stops, *r.s.places[id])
	}
	loaded.Segments = nil
	for _, segment := range r.s.segments {
		if r.s.legSegments[leg.ID][segment.ID] {
			loaded.Segments = append(loaded.Segments, *segment)
		}
	}
	return &loaded
}

func (r *fakeLegRepo) GetOrCreate(ctx context.Context, leg *entity.Leg) (*entity.Leg, error) {
	if existing, ok := r.s.legs[leg.ID]; ok {
		loaded := *existing
		return &loaded, nil
	}
	stored := *leg
	r.s.legs[leg.ID] = &stored
	r.s.legCarriers[leg.ID] = make(map[int]bool)
	r.s.legOperating[leg.ID] = make(map[int]bool)
	r.s.legStops[leg.ID] = make(map[int]bool)
	r.s.legSegments[leg.ID] = make(map[uuid.UUID]bool)
	return leg, nil
}

func (r *fakeLegRepo) AddCarrier(ctx context.Context, leg *entity.Leg, carrier *entity.Carrier) error {
	r.s.legCarriers[leg.ID][carrier.ID] = true
	return nil
}

func (r *fakeLegRepo) AddOperatingCarrier(ctx context.Context, leg *entity.Leg, carrier *entity.Carrier) error {
	r.s.legOperating[leg.ID][carrier.ID] = true
	return nil
}

func (r *fakeLegRepo) AddStop(ctx context.Context, leg *entity.Leg, stop *entity.Place) error {
	r.s.legStops[leg.ID][stop.ID] = true
	return nil
}

func (r *fakeLegRepo) AddSegment(ctx context.Context, leg *entity.Leg, segment *entity.Segment) error {
	r.s.legSegments[leg.ID][segment.ID] = true
	return nil
}

func (r *fakeLegRepo) Save(ctx context.Context, leg *entity.Leg) error {
	r.s.legSaved[leg.ID]++
	return nil
}

func (r *fakeLegRepo) List(ctx context.Context) ([]entity.Leg, error) {
	legs := make([]entity.Leg, 0, len(r.s.legs))
	for _, leg := range r.s.legs {
		legs = append(legs, *r.load(leg))
	}
	return legs, nil
}

type fakeItineraryRepo struct{ s *fakeStore }

func (r *fakeItineraryRepo) Insert(ctx context.Context, itinerary *entity.Itinerary) error {
	stored := *itinerary
	r.s.itineraries = append(r.s.itineraries, &stored)
	return nil
}

type fakePricingOptionRepo struct{ s *fakeStore }

func (r *fakePricingOptionRepo) Insert(ctx context.Context, option *entity.PricingOption) error {
	stored := *option
	r.s.options = append(r.s.options, &stored)
	return nil
}

type fakeFlightSearchRepo struct{ s *fakeStore }

func (r *fakeFlightSearchRepo) Insert(ctx context.Context, search *entity.FlightSearch) error {
	stored := *search
	r.s.searches[search.ID] = &stored
	return nil
}

func (r *fakeFlightSearchRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.FlightSearch, error) {
	search, ok := r.s.searches[id]
	if !ok {
		return nil, &entity.LookupError{Entity: "flight search", Key: id}
	}
	loaded := *search
	for _, itinerary := range r.s.itineraries {
		if itinerary.FlightSearchID == id {
			loaded.Itineraries = append(loaded.Itineraries, *itinerary)
		}
	}
	return &loaded, nil
}

func (r *fakeFlightSearchRepo) List(ctx context.Context) ([]entity.FlightSearch, error) {
	searches := make([]entity.FlightSearch, 0, len(r.s.searches))
	for _, search := range r.s.searches {
		searches = append(searches, *search)
	}
	return searches, nil
}

func (r *fakeFlightSearchRepo) PriceSummary(ctx context.Context, id uuid.UUID) (*entity.PriceSummary, error) {
	perItinerary := make(map[uuid.UUID]float64)
	for _, itinerary := range r.s.itineraries {
		if itinerary.FlightSearchID != id {
			continue
		}
		for _, option := range r.s.options {
			if option.ItineraryID != itinerary.ID {
				continue
			}
			if current, ok := perItinerary[itinerary.ID]; !ok || option.Price < current {
				perItinerary[itinerary.ID] = option.Price
			}
		}
	}

	summary := &entity.PriceSummary{}
	if len(perItinerary) == 0 {
		return summary, nil
	}

	var sum float64
	for _, price := range perItinerary {
		price := price
		if summary.MinPrice == nil || price < *summary.MinPrice {
			summary.MinPrice = &price
		}
		if summary.MaxPrice == nil || price > *summary.MaxPrice {
			summary.MaxPrice = &price
		}
		sum += price
	}
	mean := sum / float64(len(perItinerary))
	summary.MeanPrice = &mean
	return summary, nil
}
