package events

import (
	"context"
	"encoding/json"
	"time"

	"flightsearch-service/internal/domain/entity"

	"github.com/segmentio/kafka-go"
)

// SearchCompletedEvent is emitted after a search is fully materialized
type SearchCompletedEvent struct {
	Type        string    `json:"type"`
	SearchID    string    `json:"search_id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Outbound    string    `json:"outbound"`
	Inbound     string    `json:"inbound"`
	Passengers  int       `json:"passengers"`
	Itineraries int       `json:"itineraries"`
	CompletedAt time.Time `json:"completed_at"`
}

// Producer publishes search lifecycle events to kafka
type Producer struct {
	writer *kafka.Writer
}

// NewProducer creates a kafka producer for the given brokers and topic
func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	return &Producer{writer: writer}
}

// SearchCompleted publishes one search.completed event keyed by search id
func (p *Producer) SearchCompleted(ctx context.Context, search *entity.FlightSearch, itineraries int) error {
	event := SearchCompletedEvent{
		Type:        "search.completed",
		SearchID:    search.ID.String(),
		Origin:      search.Origin,
		Destination: search.Destination,
		Outbound:    search.Outbound.Format("2006-01-02"),
		Inbound:     search.Inbound.Format("2006-01-02"),
		Passengers:  search.Passengers,
		Itineraries: itineraries,
		CompletedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.SearchID),
		Value: data,
	})
}

// Close flushes and closes the underlying writer
func (p *Producer) Close() error {
	return p.writer.Close()
}
