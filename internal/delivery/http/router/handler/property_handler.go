package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"homefinder/internal/delivery/http/middleware"
	"homefinder/internal/delivery/http/response"
	"homefinder/internal/domain/entity"
	"homefinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PropertyHandler holds dependencies for listing-related handlers.
type PropertyHandler struct {
	uc     usecase.PropertyUsecase
	logger *slog.Logger
}

// NewPropertyHandler is the constructor for PropertyHandler, injected by Fx.
func NewPropertyHandler(uc usecase.PropertyUsecase, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{
		uc:     uc,
		logger: logger,
	}
}

type propertyRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description"`
	PropertyType string  `json:"property_type" validate:"required"`
	ListingType  string  `json:"listing_type" validate:"required,oneof=rent sale"`
	Price        float64 `json:"price" validate:"required,gt=0"`

	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`

	Bedrooms   int    `json:"bedrooms"`
	Bathrooms  int    `json:"bathrooms"`
	Floors     int    `json:"floors"`
	Parking    int    `json:"parking"`
	YearBuilt  int    `json:"year_built"`
	Furnishing string `json:"furnishing"`

	Area      float64  `json:"area"`
	AreaUnit  string   `json:"area_unit"`
	Amenities []string `json:"amenities"`

	Images  []string `json:"images"`
	Video3D string   `json:"video_3d"`

	Status string `json:"status"`
}

func (req *propertyRequest) toInput() *usecase.PropertyInput {
	return &usecase.PropertyInput{
		Title:        req.Title,
		Description:  req.Description,
		PropertyType: entity.PropertyType(req.PropertyType),
		ListingType:  entity.ListingType(req.ListingType),
		Price:        req.Price,

		Address: req.Address,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
		Country: req.Country,

		Bedrooms:   req.Bedrooms,
		Bathrooms:  req.Bathrooms,
		Floors:     req.Floors,
		Parking:    req.Parking,
		YearBuilt:  req.YearBuilt,
		Furnishing: entity.Furnishing(req.Furnishing),

		Area:      req.Area,
		AreaUnit:  req.AreaUnit,
		Amenities: req.Amenities,

		Images:  req.Images,
		Video3D: req.Video3D,

		Status: entity.PropertyStatus(req.Status),
	}
}

// Create handles the listing creation request.
func (h *PropertyHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req propertyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid property input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	property, err := h.uc.CreateProperty(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, property, "Property created successfully")
}

// GetByID handles the single-listing lookup request.
func (h *PropertyHandler) GetByID(c echo.Context) error {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property ID")
	}

	property, err := h.uc.GetProperty(c.Request().Context(), propertyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, property, "")
}

// MyProperties lists the authenticated owner's listings.
func (h *PropertyHandler) MyProperties(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	properties, err := h.uc.ListOwnerProperties(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, properties, "")
}

// Search handles the listing search request. All criteria come from query
// parameters; lat+lng switch the search into near-me mode.
func (h *PropertyHandler) Search(c echo.Context) error {
	criteria, err := parseSearchCriteria(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	results, err := h.uc.SearchProperties(c.Request().Context(), criteria)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, results, "")
}

// Update handles the listing update request.
func (h *PropertyHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property ID")
	}

	var req propertyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid property input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	property, err := h.uc.UpdateProperty(c.Request().Context(), userID, propertyID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, property, "Property updated successfully")
}

// Delete handles the listing deletion request.
func (h *PropertyHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property ID")
	}

	if err := h.uc.DeleteProperty(c.Request().Context(), userID, propertyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Property deleted successfully")
}

func parseSearchCriteria(c echo.Context) (*usecase.SearchCriteria, error) {
	criteria := &usecase.SearchCriteria{
		Query: c.QueryParam("search"),
		City:  c.QueryParam("city"),
	}

	if raw := c.QueryParam("property_type"); raw != "" {
		propertyType := entity.PropertyType(raw)
		criteria.PropertyType = &propertyType
	}
	if raw := c.QueryParam("listing_type"); raw != "" {
		listingType := entity.ListingType(raw)
		criteria.ListingType = &listingType
	}
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.PropertyStatus(raw)
		criteria.Status = &status
	}

	var err error
	if criteria.MinPrice, err = parseFloatParam(c, "min_price"); err != nil {
		return nil, err
	}
	if criteria.MaxPrice, err = parseFloatParam(c, "max_price"); err != nil {
		return nil, err
	}
	if criteria.Latitude, err = parseFloatParam(c, "lat"); err != nil {
		return nil, err
	}
	if criteria.Longitude, err = parseFloatParam(c, "lng"); err != nil {
		return nil, err
	}
	if criteria.RadiusKm, err = parseFloatParam(c, "radius_km"); err != nil {
		return nil, err
	}

	return criteria, nil
}

func parseFloatParam(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.Errorf("invalid %s parameter", name)
	}

	return &value, nil
}
