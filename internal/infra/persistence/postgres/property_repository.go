package postgres

import (
	"context"

	"homefinder/internal/domain/entity"
	domainerrors "homefinder/internal/domain/errors"
	"homefinder/internal/domain/repository"
	"homefinder/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const kmToMeters = 1000.0

// propertyRepository implements the repository.PropertyRepository interface using GORM.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{
		db: db,
	}
}

// CreateProperty persists a new listing.
func (repo *propertyRepository) CreateProperty(ctx context.Context, property *entity.Property) error {
	propertyM := fromPropertyDomain(property)

	if err := repo.db.WithContext(ctx).Create(propertyM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required listing information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create property")
	}

	// Update the entity with generated values
	property.ID = propertyM.ID
	property.CreatedAt = propertyM.CreatedAt
	property.UpdatedAt = propertyM.UpdatedAt

	return nil
}

// FindPropertyByID retrieves a listing by its unique ID.
func (repo *propertyRepository) FindPropertyByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	var propertyM model.PropertyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&propertyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property by ID")
	}

	return toPropertyDomain(&propertyM), nil
}

// FindPropertiesByOwner retrieves all listings of an owner, newest first.
func (repo *propertyRepository) FindPropertiesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Property, error) {
	var propertyModels []*model.PropertyModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find properties by owner")
	}

	return toPropertyDomainSlice(propertyModels), nil
}

// SearchProperties retrieves listings matching the filters, newest first.
func (repo *propertyRepository) SearchProperties(ctx context.Context, search repository.PropertySearch) ([]*entity.Property, error) {
	var propertyModels []*model.PropertyModel

	query := applySearchFilters(repo.db.WithContext(ctx), search).
		Order("created_at DESC")

	if err := query.Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search properties")
	}

	return toPropertyDomainSlice(propertyModels), nil
}

// SearchPropertiesNear retrieves listings matching the filters whose resolved
// coordinates lie within radiusKm of center, ordered by ascending distance.
// Distance math runs in the database over the trigger-maintained PostGIS
// location column; geography casts make ST_DWithin and ST_Distance meter-based.
func (repo *propertyRepository) SearchPropertiesNear(ctx context.Context, search repository.PropertySearch, center orb.Point, radiusKm float64) ([]*entity.Property, error) {
	var propertyModels []*model.PropertyModel

	query := applySearchFilters(repo.db.WithContext(ctx), search).
		Where(
			"ST_DWithin(location::geography, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography, ?)",
			center.Lon(), center.Lat(), radiusKm*kmToMeters,
		).
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:  "ST_Distance(location::geography, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography) ASC",
			Vars: []any{center.Lon(), center.Lat()},
		}})

	if err := query.Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search properties near point")
	}

	return toPropertyDomainSlice(propertyModels), nil
}

// UpdateProperty updates an existing listing record.
func (repo *propertyRepository) UpdateProperty(ctx context.Context, property *entity.Property) error {
	propertyM := fromPropertyDomain(property)

	result := repo.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Where("id = ?", property.ID).
		Select("*").
		Omit("id", "owner_id", "owner_name", "owner_email", "owner_phone", "created_at").
		Updates(propertyM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update property")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

// DeleteProperty removes a listing by its ID.
func (repo *propertyRepository) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PropertyModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete property")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

// CountPropertiesByOwner counts an owner's listings, optionally restricted to a status.
func (repo *propertyRepository) CountPropertiesByOwner(ctx context.Context, ownerID uuid.UUID, status *entity.PropertyStatus) (int64, error) {
	var count int64

	query := repo.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Where("owner_id = ?", ownerID)

	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count properties by owner")
	}

	return count, nil
}

// CountAvailableProperties counts available listings, optionally restricted to a listing type.
func (repo *propertyRepository) CountAvailableProperties(ctx context.Context, listingType *entity.ListingType) (int64, error) {
	var count int64

	query := repo.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Where("status = ?", string(entity.PropertyStatusAvailable))

	if listingType != nil {
		query = query.Where("listing_type = ?", string(*listingType))
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count available properties")
	}

	return count, nil
}

// applySearchFilters translates the non-geospatial search filters into WHERE clauses.
// Zero-valued filters are skipped.
func applySearchFilters(query *gorm.DB, search repository.PropertySearch) *gorm.DB {
	if search.Status != "" {
		query = query.Where("status = ?", string(search.Status))
	}
	if search.PropertyType != nil {
		query = query.Where("property_type = ?", string(*search.PropertyType))
	}
	if search.ListingType != nil {
		query = query.Where("listing_type = ?", string(*search.ListingType))
	}
	if search.MinPrice != nil {
		query = query.Where("price >= ?", *search.MinPrice)
	}
	if search.MaxPrice != nil {
		query = query.Where("price <= ?", *search.MaxPrice)
	}
	if search.City != "" {
		query = query.Where("city ILIKE ?", "%"+search.City+"%")
	}
	if search.Query != "" {
		pattern := "%" + search.Query + "%"
		query = query.Where(
			"(title ILIKE ? OR description ILIKE ? OR address ILIKE ? OR city ILIKE ?)",
			pattern, pattern, pattern, pattern,
		)
	}

	return query
}

// --- Mapper Functions ---

// toPropertyDomain converts a GORM PropertyModel to a domain Property entity.
func toPropertyDomain(data *model.PropertyModel) *entity.Property {
	if data == nil {
		return nil
	}

	return &entity.Property{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		OwnerName:  data.OwnerName,
		OwnerEmail: data.OwnerEmail,
		OwnerPhone: data.OwnerPhone,

		Title:        data.Title,
		Description:  data.Description,
		PropertyType: entity.PropertyType(data.PropertyType),
		ListingType:  entity.ListingType(data.ListingType),
		Price:        data.Price,

		Address:  data.Address,
		City:     data.City,
		State:    data.State,
		ZipCode:  data.ZipCode,
		Country:  data.Country,
		Location: orb.Point{data.Longitude, data.Latitude},

		Bedrooms:   data.Bedrooms,
		Bathrooms:  data.Bathrooms,
		Floors:     data.Floors,
		Parking:    data.Parking,
		YearBuilt:  data.YearBuilt,
		Furnishing: entity.Furnishing(data.Furnishing),

		Area:      data.Area,
		AreaUnit:  data.AreaUnit,
		Amenities: data.Amenities,

		Images:  data.Images,
		Video3D: data.Video3D,

		Status:    entity.PropertyStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPropertyDomain converts a domain Property entity to a GORM PropertyModel.
func fromPropertyDomain(data *entity.Property) *model.PropertyModel {
	if data == nil {
		return nil
	}

	return &model.PropertyModel{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		OwnerName:  data.OwnerName,
		OwnerEmail: data.OwnerEmail,
		OwnerPhone: data.OwnerPhone,

		Title:        data.Title,
		Description:  data.Description,
		PropertyType: string(data.PropertyType),
		ListingType:  string(data.ListingType),
		Price:        data.Price,

		Address: data.Address,
		City:    data.City,
		State:   data.State,
		ZipCode: data.ZipCode,
		Country: data.Country,

		Latitude:  data.Location.Lat(),
		Longitude: data.Location.Lon(),

		Bedrooms:   data.Bedrooms,
		Bathrooms:  data.Bathrooms,
		Floors:     data.Floors,
		Parking:    data.Parking,
		YearBuilt:  data.YearBuilt,
		Furnishing: string(data.Furnishing),

		Area:      data.Area,
		AreaUnit:  data.AreaUnit,
		Amenities: data.Amenities,

		Images:  data.Images,
		Video3D: data.Video3D,

		Status:    string(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toPropertyDomainSlice converts a slice of GORM models to domain entities.
func toPropertyDomainSlice(models []*model.PropertyModel) []*entity.Property {
	properties := make([]*entity.Property, 0, len(models))
	for _, propertyM := range models {
		properties = append(properties, toPropertyDomain(propertyM))
	}

	return properties
}
