package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const livePricingBody = `{
	"SessionKey": "session-abc123",
	"Query": {"Adults": 1},
	"Status": "UpdatesComplete",
	"Itineraries": [
		{
			"OutboundLegId": "leg-out",
			"InboundLegId": "leg-in",
			"PricingOptions": [
				{"Agents": [1963108], "QuoteAgeInMinutes": 1, "Price": 120.5, "DeeplinkUrl": "https://partners.example.com/deeplink"}
			],
			"BookingDetailsLink": "/apiservices/pricing/v1.0/abc/booking"
		}
	],
	"Legs": [
		{
			"Id": "leg-out",
			"SegmentIds": [1],
			"OriginStation": 11235,
			"DestinationStation": 13554,
			"Departure": "2026-09-10T07:30:00",
			"Arrival": "2026-09-10T09:35:00",
			"Duration": 125,
			"JourneyMode": "Flight",
			"Stops": [0],
			"Carriers": [881],
			"OperatingCarriers": [881],
			"Directionality": "Outbound"
		}
	],
	"Segments": [
		{
			"Id": 1,
			"OriginStation": 11235,
			"DestinationStation": 13554,
			"DepartureDateTime": "2026-09-10T07:30:00",
			"ArrivalDateTime": "2026-09-10T09:35:00",
			"Carrier": 881,
			"OperatingCarrier": 881,
			"Duration": 125,
			"FlightNumber": "478",
			"JourneyMode": "Flight",
			"Directionality": "Outbound"
		}
	],
	"Carriers": [
		{"Id": 881, "Code": "BA", "Name": "British Airways", "ImageUrl": "https://images.example.com/BA.png", "DisplayCode": "BA"}
	],
	"Agents": [
		{"Id": 1963108, "Name": "Opodo", "ImageUrl": "https://images.example.com/opodo.png", "OptimisedForMobile": true, "Type": "TravelAgent"}
	],
	"Places": [
		{"Id": 11235, "ParentId": 4698, "Code": "BCN", "Type": "Airport", "Name": "Barcelona"},
		{"Id": 4698, "Code": "BARC", "Type": "City", "Name": "Barcelona"}
	]
}`

func TestLivePricingResponseDecode(t *testing.T) {
	var response LivePricingResponse
	require.NoError(t, json.Unmarshal([]byte(livePricingBody), &response))

	assert.Equal(t, "session-abc123", response.SessionKey)
	assert.Equal(t, "UpdatesComplete", response.Status)
	assert.JSONEq(t, `{"Adults": 1}`, string(response.Query))

	require.Len(t, response.Legs, 1)
	leg := response.Legs[0]
	assert.Equal(t, "leg-out", leg.ID)
	assert.Equal(t, []int{1}, leg.SegmentIDs)
	assert.Equal(t, []int{0}, leg.Stops)

	require.Len(t, response.Itineraries, 1)
	require.Len(t, response.Itineraries[0].PricingOptions, 1)
	assert.Equal(t, 120.5, response.Itineraries[0].PricingOptions[0].Price)

	require.Len(t, response.Places, 2)
	assert.Equal(t, 4698, response.Places[0].ParentID)
	assert.Equal(t, 0, response.Places[1].ParentID)

	require.NoError(t, response.Validate())
}

func TestSegmentIndex(t *testing.T) {
	response := LivePricingResponse{
		Segments: []RawSegment{
			{ID: 1, FlightNumber: "478"},
			{ID: 7, FlightNumber: "479"},
		},
	}
	index := response.SegmentIndex()
	require.Len(t, index, 2)
	assert.Equal(t, "478", index[1].FlightNumber)
	assert.Equal(t, "479", index[7].FlightNumber)
	_, ok := index[99]
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *LivePricingResponse)
		record string
		field  string
	}{
		{
			name:   "place without name",
			mutate: func(r *LivePricingResponse) { r.Places[0].Name = "" },
			record: "place",
			field:  "Name",
		},
		{
			name:   "carrier without id",
			mutate: func(r *LivePricingResponse) { r.Carriers[0].ID = 0 },
			record: "carrier",
			field:  "Id",
		},
		{
			name:   "agent without type",
			mutate: func(r *LivePricingResponse) { r.Agents[0].Type = "" },
			record: "agent",
			field:  "Type",
		},
		{
			name:   "segment without departure",
			mutate: func(r *LivePricingResponse) { r.Segments[0].DepartureDateTime = "" },
			record: "segment",
			field:  "DepartureDateTime",
		},
		{
			name:   "leg without id",
			mutate: func(r *LivePricingResponse) { r.Legs[0].ID = "" },
			record: "leg",
			field:  "Id",
		},
		{
			name:   "itinerary without inbound leg",
			mutate: func(r *LivePricingResponse) { r.Itineraries[0].InboundLegID = "" },
			record: "itinerary",
			field:  "InboundLegId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var response LivePricingResponse
			require.NoError(t, json.Unmarshal([]byte(livePricingBody), &response))
			tt.mutate(&response)

			err := response.Validate()
			var malformed *MalformedRecordError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.record, malformed.Record)
			assert.Equal(t, tt.field, malformed.Field)
		})
	}
}
