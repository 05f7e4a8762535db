package models

// Building is immutable reference data owned by the catalog spreadsheet.
// IDs are assigned in the sheet, so the primary key is a plain string
// rather than a generated UUID.
type Building struct {
	ID      string `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`

	Units []Unit `gorm:"foreignKey:BuildingID" json:"units,omitempty"`
}

// Unit belongs to a Building and carries the base cleaning price before
// any partner discount.
type Unit struct {
	ID           string  `gorm:"primaryKey" json:"id"`
	BuildingID   string  `gorm:"index;not null" json:"buildingId"`
	Name         string  `gorm:"not null" json:"name"`
	ServicePrice float64 `gorm:"type:decimal(10,2);not null" json:"servicePrice"`
	UnitType     string  `json:"type,omitempty"`
	Bedrooms     int     `json:"bedrooms,omitempty"`
	Bathrooms    int     `json:"bathrooms,omitempty"`
	SquareFeet   int     `json:"squareFeet,omitempty"`
}
