package entity

import "time"

// SearchSnapshot archives the raw live pricing payload of one search as an
// immutable document
type SearchSnapshot struct {
	ID          string    `bson:"_id,omitempty"`
	SearchID    string    `bson:"searchId"`
	Origin      string    `bson:"origin"`
	Destination string    `bson:"destination"`
	Payload     []byte    `bson:"payload"`
	CreatedAt   time.Time `bson:"createdAt"`
}
