package repository

import (
	"context"

	"homefinder/internal/domain/entity"
	"homefinder/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ErrPropertyNotFound is returned when a property is not found.
var ErrPropertyNotFound = errors.New("property not found")

// PropertySearch carries the non-geospatial filters of a listing search.
// Nil/zero fields are not applied. Status is always applied; callers default
// it to available when the client omits it.
type PropertySearch struct {
	PropertyType *entity.PropertyType
	ListingType  *entity.ListingType
	Status       entity.PropertyStatus
	MinPrice     *float64 // Inclusive.
	MaxPrice     *float64 // Inclusive.
	Query        string   // Case-insensitive substring over title/description/address/city.
	City         string   // Case-insensitive substring over city.
}

// PropertyRepository defines the interface for property-related database operations.
type PropertyRepository interface {
	// CreateProperty persists a new listing.
	CreateProperty(ctx context.Context, property *entity.Property) error

	// FindPropertyByID retrieves a listing by its unique ID.
	FindPropertyByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)

	// FindPropertiesByOwner retrieves all listings of an owner, newest first.
	FindPropertiesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Property, error)

	// SearchProperties retrieves listings matching the filters, newest first.
	SearchProperties(ctx context.Context, search PropertySearch) ([]*entity.Property, error)

	// SearchPropertiesNear retrieves listings matching the filters whose resolved
	// coordinates lie within radiusKm of center, ordered by ascending distance.
	SearchPropertiesNear(ctx context.Context, search PropertySearch, center orb.Point, radiusKm float64) ([]*entity.Property, error)

	// UpdateProperty updates an existing listing record.
	UpdateProperty(ctx context.Context, property *entity.Property) error

	// DeleteProperty removes a listing by its ID.
	DeleteProperty(ctx context.Context, id uuid.UUID) error

	// CountPropertiesByOwner counts an owner's listings, optionally restricted to a status.
	CountPropertiesByOwner(ctx context.Context, ownerID uuid.UUID, status *entity.PropertyStatus) (int64, error)

	// CountAvailableProperties counts available listings, optionally restricted to a listing type.
	CountAvailableProperties(ctx context.Context, listingType *entity.ListingType) (int64, error)
}
