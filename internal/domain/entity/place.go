package entity

// PlaceType classifies a place (City, Airport, Country, ...)
type PlaceType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:200;uniqueIndex" json:"name"`
}

// Place is a shared dimension entity keyed by the external API id.
// Rows are created on first sighting and never updated.
type Place struct {
	ID       int       `gorm:"primaryKey" json:"id"`
	Code     string    `gorm:"size:10" json:"code"`
	Name     string    `gorm:"size:200" json:"name"`
	TypeID   uint      `json:"-"`
	Type     PlaceType `gorm:"foreignKey:TypeID" json:"type"`
	ParentID int       `gorm:"default:0" json:"parent_id"`
}

func (p *Place) String() string {
	return p.Code + ": " + p.Name + " (" + p.Type.Name + ")"
}
