package entity

// JourneyMode is the transport mode of a leg or segment (Flight, Train, ...)
type JourneyMode struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:200;uniqueIndex" json:"name"`
}
