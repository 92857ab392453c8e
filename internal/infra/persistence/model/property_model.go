package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PropertyModel is the GORM-specific struct for the 'properties' table.
// Owner contact fields are denormalized snapshots taken at creation time.
type PropertyModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerName  string    `gorm:"type:varchar(100);not null"`
	OwnerEmail string    `gorm:"type:varchar(255);not null"`
	OwnerPhone string    `gorm:"type:varchar(32)"`

	Title        string  `gorm:"type:varchar(255);not null"`
	Description  string  `gorm:"type:text"`
	PropertyType string  `gorm:"type:varchar(32);not null;index"`
	ListingType  string  `gorm:"type:varchar(16);not null;index"`
	Price        float64 `gorm:"type:decimal(14,2);not null"`

	Address string `gorm:"type:text"`
	City    string `gorm:"type:varchar(100);not null;index"`
	State   string `gorm:"type:varchar(100)"`
	ZipCode string `gorm:"type:varchar(16)"`
	Country string `gorm:"type:varchar(100)"`

	Latitude  float64 `gorm:"type:decimal(10,8);not null;default:0"`
	Longitude float64 `gorm:"type:decimal(11,8);not null;default:0"`
	// Note: location GEOMETRY(POINT, 4326) column exists in database but is not mapped here.
	// It is automatically calculated from Latitude/Longitude via database trigger.
	// Use raw SQL queries with PostGIS functions (ST_Distance, ST_DWithin) for geospatial operations.

	Bedrooms   int    `gorm:"not null;default:0"`
	Bathrooms  int    `gorm:"not null;default:0"`
	Floors     int    `gorm:"not null;default:0"`
	Parking    int    `gorm:"not null;default:0"`
	YearBuilt  int    `gorm:"not null;default:0"`
	Furnishing string `gorm:"type:varchar(32)"`

	Area      float64                     `gorm:"type:decimal(12,2);not null;default:0"`
	AreaUnit  string                      `gorm:"type:varchar(16)"`
	Amenities datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Images    datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Video3D   string                      `gorm:"type:text"`

	Status    string `gorm:"type:varchar(16);not null;default:'available';index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PropertyModel) TableName() string {
	return "properties"
}
