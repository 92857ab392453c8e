// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// PropertyType represents the category of a listed property.
type PropertyType string

// Valid property categories.
const (
	PropertyTypeHouse       PropertyType = "house"
	PropertyTypeApartment   PropertyType = "apartment"
	PropertyTypeCondo       PropertyType = "condo"
	PropertyTypeVilla       PropertyType = "villa"
	PropertyTypeLand        PropertyType = "land"
	PropertyTypeAgriculture PropertyType = "agriculture"
	PropertyTypeCommercial  PropertyType = "commercial"
	PropertyTypeStudio      PropertyType = "studio"
)

// IsValid checks if the PropertyType is a valid value.
func (t PropertyType) IsValid() bool {
	switch t {
	case PropertyTypeHouse, PropertyTypeApartment, PropertyTypeCondo, PropertyTypeVilla,
		PropertyTypeLand, PropertyTypeAgriculture, PropertyTypeCommercial, PropertyTypeStudio:
		return true
	default:
		return false
	}
}

// ListingType distinguishes rental listings from sale listings.
type ListingType string

const (
	// ListingTypeRent marks a property offered for rent.
	ListingTypeRent ListingType = "rent"
	// ListingTypeSale marks a property offered for sale.
	ListingTypeSale ListingType = "sale"
)

// IsValid checks if the ListingType is a valid value.
func (t ListingType) IsValid() bool {
	return t == ListingTypeRent || t == ListingTypeSale
}

// PropertyStatus represents the availability state of a listing.
type PropertyStatus string

const (
	// PropertyStatusAvailable is the default state for new listings.
	PropertyStatusAvailable PropertyStatus = "available"
	// PropertyStatusRented marks a rental listing that has been taken.
	PropertyStatusRented PropertyStatus = "rented"
	// PropertyStatusSold marks a sale listing that has been closed.
	PropertyStatusSold PropertyStatus = "sold"
)

// IsValid checks if the PropertyStatus is a valid value.
func (s PropertyStatus) IsValid() bool {
	return s == PropertyStatusAvailable || s == PropertyStatusRented || s == PropertyStatusSold
}

// Furnishing describes the furnishing state of a habitable property.
type Furnishing string

// Valid furnishing states.
const (
	FurnishingNone  Furnishing = "unfurnished"
	FurnishingSemi  Furnishing = "semi-furnished"
	FurnishingFully Furnishing = "fully-furnished"
)

// Property is a listing published by an owner. The owner's contact details are
// snapshotted at creation time so listings stay displayable without a join
// against the user table; the snapshot is never refreshed.
//
// Location holds the (lon, lat) pair resolved from City by the geocoder at
// create/update time. It is derived state and never settable by the client.
type Property struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	OwnerEmail  string    `json:"owner_email"`
	OwnerPhone  string    `json:"owner_phone"`

	Title        string       `json:"title"`
	Description  string       `json:"description"`
	PropertyType PropertyType `json:"property_type"`
	ListingType  ListingType  `json:"listing_type"`
	Price        float64      `json:"price"` // Positive, currency-agnostic unit.

	Address  string    `json:"address"`
	City     string    `json:"city"`
	State    string    `json:"state"`
	ZipCode  string    `json:"zip_code"`
	Country  string    `json:"country"`
	Location orb.Point `json:"location"` // (lon, lat); (0, 0) when the city is unknown to the geocoder.

	// Physical attributes; all optional and category-dependent.
	Bedrooms   int        `json:"bedrooms,omitempty"`
	Bathrooms  int        `json:"bathrooms,omitempty"`
	Floors     int        `json:"floors,omitempty"`
	Parking    int        `json:"parking,omitempty"`
	YearBuilt  int        `json:"year_built,omitempty"`
	Furnishing Furnishing `json:"furnishing,omitempty"`

	Area     float64  `json:"area"`
	AreaUnit string   `json:"area_unit"` // sqft, sqm or acres.
	Amenities []string `json:"amenities"`

	Images  []string `json:"images"`
	Video3D string   `json:"video_3d,omitempty"` // Optional single video reference.

	Status    PropertyStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
