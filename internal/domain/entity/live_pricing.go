package entity

import "encoding/json"

// LivePricingResponse is the parsed body of one live pricing poll. The nested
// records cross-reference each other by the small ids assigned within this
// response; the materialization pipeline resolves them into the relational
// graph.
type LivePricingResponse struct {
	SessionKey  string          `json:"SessionKey"`
	Query       json.RawMessage `json:"Query"`
	Status      string          `json:"Status"`
	Itineraries []RawItinerary  `json:"Itineraries"`
	Legs        []RawLeg        `json:"Legs"`
	Segments    []RawSegment    `json:"Segments"`
	Carriers    []RawCarrier    `json:"Carriers"`
	Agents      []RawAgent      `json:"Agents"`
	Places      []RawPlace      `json:"Places"`
}

// RawPlace is a place record as returned by the API. ParentId may be absent
// and defaults to 0.
type RawPlace struct {
	ID       int    `json:"Id"`
	ParentID int    `json:"ParentId"`
	Code     string `json:"Code"`
	Type     string `json:"Type"`
	Name     string `json:"Name"`
}

type RawCarrier struct {
	ID          int    `json:"Id"`
	Code        string `json:"Code"`
	Name        string `json:"Name"`
	ImageURL    string `json:"ImageUrl"`
	DisplayCode string `json:"DisplayCode"`
}

type RawAgent struct {
	ID                 int    `json:"Id"`
	Name               string `json:"Name"`
	ImageURL           string `json:"ImageUrl"`
	OptimisedForMobile bool   `json:"OptimisedForMobile"`
	Type               string `json:"Type"`
}

// RawLeg references carriers, stop places and segments by id. A stop id of 0
// is the "no stop" sentinel.
type RawLeg struct {
	ID                 string `json:"Id"`
	SegmentIDs         []int  `json:"SegmentIds"`
	OriginStation      int    `json:"OriginStation"`
	DestinationStation int    `json:"DestinationStation"`
	Departure          string `json:"Departure"`
	Arrival            string `json:"Arrival"`
	Duration           int    `json:"Duration"`
	JourneyMode        string `json:"JourneyMode"`
	Stops              []int  `json:"Stops"`
	Carriers           []int  `json:"Carriers"`
	OperatingCarriers  []int  `json:"OperatingCarriers"`
	Directionality     string `json:"Directionality"`
}

// RawSegment ids are only unique within one response
type RawSegment struct {
	ID                 int    `json:"Id"`
	OriginStation      int    `json:"OriginStation"`
	DestinationStation int    `json:"DestinationStation"`
	DepartureDateTime  string `json:"DepartureDateTime"`
	ArrivalDateTime    string `json:"ArrivalDateTime"`
	Carrier            int    `json:"Carrier"`
	OperatingCarrier   int    `json:"OperatingCarrier"`
	Duration           int    `json:"Duration"`
	FlightNumber       string `json:"FlightNumber"`
	JourneyMode        string `json:"JourneyMode"`
	Directionality     string `json:"Directionality"`
}

type RawItinerary struct {
	OutboundLegID      string             `json:"OutboundLegId"`
	InboundLegID       string             `json:"InboundLegId"`
	PricingOptions     []RawPricingOption `json:"PricingOptions"`
	BookingDetailsLink string             `json:"BookingDetailsLink"`
}

type RawPricingOption struct {
	Agents            []int   `json:"Agents"`
	QuoteAgeInMinutes int     `json:"QuoteAgeInMinutes"`
	Price             float64 `json:"Price"`
	DeeplinkURL       string  `json:"DeeplinkUrl"`
}

// SegmentIndex builds the id-to-record map used to resolve a leg's SegmentIds
// without rescanning the raw list
func (r *LivePricingResponse) SegmentIndex() map[int]RawSegment {
	index := make(map[int]RawSegment, len(r.Segments))
	for _, segment := range r.Segments {
		index[segment.ID] = segment
	}
	return index
}

// Validate checks the response once at the API boundary so missing-field
// errors surface as a single MalformedRecordError instead of failing deep in
// the pipeline
func (r *LivePricingResponse) Validate() error {
	for _, p := range r.Places {
		switch {
		case p.ID == 0:
			return &MalformedRecordError{Record: "place", Field: "Id"}
		case p.Name == "":
			return &MalformedRecordError{Record: "place", Field: "Name"}
		case p.Type == "":
			return &MalformedRecordError{Record: "place", Field: "Type"}
		}
	}
	for _, c := range r.Carriers {
		if c.ID == 0 {
			return &MalformedRecordError{Record: "carrier", Field: "Id"}
		}
		if c.Name == "" {
			return &MalformedRecordError{Record: "carrier", Field: "Name"}
		}
	}
	for _, a := range r.Agents {
		if a.ID == 0 {
			return &MalformedRecordError{Record: "agent", Field: "Id"}
		}
		if a.Type == "" {
			return &MalformedRecordError{Record: "agent", Field: "Type"}
		}
	}
	for _, s := range r.Segments {
		switch {
		case s.ID == 0:
			return &MalformedRecordError{Record: "segment", Field: "Id"}
		case s.DepartureDateTime == "":
			return &MalformedRecordError{Record: "segment", Field: "DepartureDateTime"}
		case s.ArrivalDateTime == "":
			return &MalformedRecordError{Record: "segment", Field: "ArrivalDateTime"}
		}
	}
	for _, l := range r.Legs {
		switch {
		case l.ID == "":
			return &MalformedRecordError{Record: "leg", Field: "Id"}
		case l.Departure == "":
			return &MalformedRecordError{Record: "leg", Field: "Departure"}
		case l.Arrival == "":
			return &MalformedRecordError{Record: "leg", Field: "Arrival"}
		}
	}
	for _, i := range r.Itineraries {
		if i.OutboundLegID == "" {
			return &MalformedRecordError{Record: "itinerary", Field: "OutboundLegId"}
		}
		if i.InboundLegID == "" {
			return &MalformedRecordError{Record: "itinerary", Field: "InboundLegId"}
		}
	}
	return nil
}
