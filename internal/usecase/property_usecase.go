package usecase

import (
	"context"

	"homefinder/internal/domain/entity"

	"github.com/google/uuid"
)

// PropertyInput carries the client-settable fields of a listing.
// Coordinates are always derived from City by the geocoder, never accepted
// from the client.
type PropertyInput struct {
	Title        string
	Description  string
	PropertyType entity.PropertyType
	ListingType  entity.ListingType
	Price        float64

	Address string
	City    string
	State   string
	ZipCode string
	Country string

	Bedrooms   int
	Bathrooms  int
	Floors     int
	Parking    int
	YearBuilt  int
	Furnishing entity.Furnishing

	Area      float64
	AreaUnit  string
	Amenities []string

	Images  []string
	Video3D string

	Status entity.PropertyStatus
}

// SearchCriteria carries all listing-search parameters. Nil fields are not
// applied. When both Latitude and Longitude are set the search runs in
// near-me mode; when either is missing the geo parameters are ignored.
type SearchCriteria struct {
	PropertyType *entity.PropertyType
	ListingType  *entity.ListingType
	Status       *entity.PropertyStatus // Defaults to available when nil.
	MinPrice     *float64
	MaxPrice     *float64
	Query        string
	City         string

	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64 // Near-me only; defaults from config when nil.
}

// PropertyResult pairs a listing with its distance from the search center.
// Distance is a kilometer value with two decimals, set only in near-me mode.
type PropertyResult struct {
	Property *entity.Property `json:"property"`
	Distance *string          `json:"distance"`
}

// PropertyUsecase defines the interface for listing management and search use cases.
type PropertyUsecase interface {
	// CreateProperty publishes a new listing for the owner, snapshotting their
	// contact details and resolving coordinates from the city.
	CreateProperty(ctx context.Context, ownerID uuid.UUID, input *PropertyInput) (*entity.Property, error)

	// GetProperty retrieves a single listing by ID.
	GetProperty(ctx context.Context, id uuid.UUID) (*entity.Property, error)

	// ListOwnerProperties retrieves the owner's listings, newest first.
	ListOwnerProperties(ctx context.Context, ownerID uuid.UUID) ([]*entity.Property, error)

	// SearchProperties runs the listing search in near-me, city or general mode.
	SearchProperties(ctx context.Context, criteria *SearchCriteria) ([]*PropertyResult, error)

	// UpdateProperty replaces the client-settable fields of an owned listing,
	// re-resolving coordinates when the city changed.
	UpdateProperty(ctx context.Context, ownerID, propertyID uuid.UUID, input *PropertyInput) (*entity.Property, error)

	// DeleteProperty removes an owned listing together with its bookmarks.
	DeleteProperty(ctx context.Context, ownerID, propertyID uuid.UUID) error
}
