package entity

// Carrier is an airline, keyed by the external API id
type Carrier struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Code        string `gorm:"size:10" json:"code"`
	DisplayCode string `gorm:"size:10" json:"display_code"`
	Name        string `gorm:"size:200" json:"name"`
	ImageURL    string `json:"image_url"`
}

func (c *Carrier) String() string {
	return c.DisplayCode + ": " + c.Name
}
