package entity

// AgentType classifies a booking agent (Airline, TravelAgent, ...)
type AgentType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:200;uniqueIndex" json:"name"`
}

// Agent is a booking agent offering pricing options, keyed by the external API id
type Agent struct {
	ID                 int       `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"size:200" json:"name"`
	TypeID             uint      `json:"-"`
	Type               AgentType `gorm:"foreignKey:TypeID" json:"type"`
	ImageURL           string    `json:"image_url"`
	OptimisedForMobile bool      `gorm:"default:true" json:"optimised_for_mobile"`
}
