package impl

import (
	"context"
	"fmt"
	"log/slog"

	"homefinder/config"
	deliverycontext "homefinder/internal/delivery/context"
	"homefinder/internal/domain/entity"
	domainerrors "homefinder/internal/domain/errors"
	"homefinder/internal/domain/repository"
	"homefinder/internal/domain/service"
	"homefinder/internal/infra/geo"
	"homefinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultSearchRadiusKm bounds near-me searches when the config omits a radius.
const defaultSearchRadiusKm = 10.0

// propertyService implements the PropertyUsecase interface.
type propertyService struct {
	txManager       repository.TransactionManager
	propertyRepo    repository.PropertyRepository
	userRepo        repository.UserRepository
	geocoder        service.Geocoder
	defaultRadiusKm float64
	logger          *slog.Logger
}

// PropertyServiceParams holds dependencies for propertyService, injected by Fx.
type PropertyServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PropertyRepo repository.PropertyRepository
	UserRepo     repository.UserRepository
	Geocoder     service.Geocoder
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPropertyService is the constructor for propertyService.
func NewPropertyService(params PropertyServiceParams) usecase.PropertyUsecase {
	radius := defaultSearchRadiusKm
	if params.Config != nil && params.Config.Search != nil && params.Config.Search.DefaultRadiusKm > 0 {
		radius = params.Config.Search.DefaultRadiusKm
	}

	return &propertyService{
		txManager:       params.TxManager,
		propertyRepo:    params.PropertyRepo,
		userRepo:        params.UserRepo,
		geocoder:        params.Geocoder,
		defaultRadiusKm: radius,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *propertyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProperty publishes a new listing for the owner. The owner's contact
// details are snapshotted onto the listing and the coordinates are resolved
// from the city name; both are derived state the client cannot set.
func (srv *propertyService) CreateProperty(ctx context.Context, ownerID uuid.UUID, input *usecase.PropertyInput) (*entity.Property, error) {
	if err := validatePropertyInput(input); err != nil {
		return nil, err
	}

	owner, err := srv.userRepo.FindUserByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner")
	}

	status := input.Status
	if status == "" {
		status = entity.PropertyStatusAvailable
	}

	property := &entity.Property{
		OwnerID:    owner.ID,
		OwnerName:  owner.Name,
		OwnerEmail: owner.Email,
		OwnerPhone: owner.Phone,

		Title:        input.Title,
		Description:  input.Description,
		PropertyType: input.PropertyType,
		ListingType:  input.ListingType,
		Price:        input.Price,

		Address:  input.Address,
		City:     input.City,
		State:    input.State,
		ZipCode:  input.ZipCode,
		Country:  input.Country,
		Location: srv.geocoder.ResolveCity(input.City),

		Bedrooms:   input.Bedrooms,
		Bathrooms:  input.Bathrooms,
		Floors:     input.Floors,
		Parking:    input.Parking,
		YearBuilt:  input.YearBuilt,
		Furnishing: input.Furnishing,

		Area:      input.Area,
		AreaUnit:  input.AreaUnit,
		Amenities: input.Amenities,

		Images:  input.Images,
		Video3D: input.Video3D,

		Status: status,
	}

	if err := srv.propertyRepo.CreateProperty(ctx, property); err != nil {
		return nil, errors.Wrap(err, "failed to create property")
	}

	srv.log(ctx).Info("Property created", slog.Any("propertyID", property.ID), slog.Any("ownerID", owner.ID), slog.String("city", property.City))

	return property, nil
}

// GetProperty retrieves a single listing by ID.
func (srv *propertyService) GetProperty(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	property, err := srv.propertyRepo.FindPropertyByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property")
	}

	return property, nil
}

// ListOwnerProperties retrieves the owner's listings, newest first.
func (srv *propertyService) ListOwnerProperties(ctx context.Context, ownerID uuid.UUID) ([]*entity.Property, error) {
	properties, err := srv.propertyRepo.FindPropertiesByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owner properties")
	}

	return properties, nil
}

// SearchProperties runs the listing search. When both coordinates are present
// the search runs in near-me mode: results come back ordered by proximity and
// each carries its distance from the caller. A request with only one
// coordinate silently degrades to the filter-only search.
func (srv *propertyService) SearchProperties(ctx context.Context, criteria *usecase.SearchCriteria) ([]*usecase.PropertyResult, error) {
	search := repository.PropertySearch{
		PropertyType: criteria.PropertyType,
		ListingType:  criteria.ListingType,
		Status:       entity.PropertyStatusAvailable,
		MinPrice:     criteria.MinPrice,
		MaxPrice:     criteria.MaxPrice,
		Query:        criteria.Query,
		City:         criteria.City,
	}
	if criteria.Status != nil {
		if !criteria.Status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid status filter")
		}
		search.Status = *criteria.Status
	}

	if criteria.Latitude != nil && criteria.Longitude != nil {
		center := orb.Point{*criteria.Longitude, *criteria.Latitude}

		radius := srv.defaultRadiusKm
		if criteria.RadiusKm != nil && *criteria.RadiusKm > 0 {
			radius = *criteria.RadiusKm
		}

		properties, err := srv.propertyRepo.SearchPropertiesNear(ctx, search, center, radius)
		if err != nil {
			return nil, errors.Wrap(err, "failed to search properties near point")
		}

		results := make([]*usecase.PropertyResult, 0, len(properties))
		for _, property := range properties {
			distance := fmt.Sprintf("%.2f", geo.Distance(center, property.Location))
			results = append(results, &usecase.PropertyResult{
				Property: property,
				Distance: &distance,
			})
		}

		return results, nil
	}

	properties, err := srv.propertyRepo.SearchProperties(ctx, search)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search properties")
	}

	results := make([]*usecase.PropertyResult, 0, len(properties))
	for _, property := range properties {
		results = append(results, &usecase.PropertyResult{Property: property})
	}

	return results, nil
}

// UpdateProperty replaces the client-settable fields of an owned listing.
// Coordinates are re-resolved from the (possibly new) city.
func (srv *propertyService) UpdateProperty(ctx context.Context, ownerID, propertyID uuid.UUID, input *usecase.PropertyInput) (*entity.Property, error) {
	if err := validatePropertyInput(input); err != nil {
		return nil, err
	}

	property, err := srv.findOwnedProperty(ctx, ownerID, propertyID)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = property.Status
	}

	property.Title = input.Title
	property.Description = input.Description
	property.PropertyType = input.PropertyType
	property.ListingType = input.ListingType
	property.Price = input.Price

	property.Address = input.Address
	property.City = input.City
	property.State = input.State
	property.ZipCode = input.ZipCode
	property.Country = input.Country
	property.Location = srv.geocoder.ResolveCity(input.City)

	property.Bedrooms = input.Bedrooms
	property.Bathrooms = input.Bathrooms
	property.Floors = input.Floors
	property.Parking = input.Parking
	property.YearBuilt = input.YearBuilt
	property.Furnishing = input.Furnishing

	property.Area = input.Area
	property.AreaUnit = input.AreaUnit
	property.Amenities = input.Amenities

	property.Images = input.Images
	property.Video3D = input.Video3D

	property.Status = status

	if err := srv.propertyRepo.UpdateProperty(ctx, property); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to update property")
	}

	srv.log(ctx).Info("Property updated", slog.Any("propertyID", property.ID), slog.Any("ownerID", ownerID))

	return property, nil
}

// DeleteProperty removes an owned listing together with its bookmarks. Both
// deletions run in one transaction so no dangling favorites survive.
func (srv *propertyService) DeleteProperty(ctx context.Context, ownerID, propertyID uuid.UUID) error {
	if _, err := srv.findOwnedProperty(ctx, ownerID, propertyID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewFavoriteRepository().DeleteFavoritesByProperty(ctx, propertyID); err != nil {
			return errors.Wrap(err, "failed to delete favorites of property")
		}

		if err := repoFactory.NewPropertyRepository().DeleteProperty(ctx, propertyID); err != nil {
			return errors.Wrap(err, "failed to delete property")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute property deletion transaction")
	}

	srv.log(ctx).Info("Property deleted", slog.Any("propertyID", propertyID), slog.Any("ownerID", ownerID))

	return nil
}

// findOwnedProperty loads a listing and verifies the caller owns it.
func (srv *propertyService) findOwnedProperty(ctx context.Context, ownerID, propertyID uuid.UUID) (*entity.Property, error) {
	property, err := srv.propertyRepo.FindPropertyByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property")
	}

	if property.OwnerID != ownerID {
		return nil, domainerrors.ErrNotResourceOwner
	}

	return property, nil
}

// validatePropertyInput enforces the enum fields a request can carry.
func validatePropertyInput(input *usecase.PropertyInput) error {
	if !input.PropertyType.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid property type")
	}
	if !input.ListingType.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("listing type must be rent or sale")
	}
	if input.Status != "" && !input.Status.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid property status")
	}
	if input.Price <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("price must be positive")
	}

	return nil
}
