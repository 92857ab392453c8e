package handler

import (
	"log/slog"
	"net/http"

	"homefinder/internal/delivery/http/middleware"
	"homefinder/internal/delivery/http/response"
	"homefinder/internal/domain/entity"
	"homefinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InterestHandler holds dependencies for interest-related handlers.
type InterestHandler struct {
	uc     usecase.InterestUsecase
	logger *slog.Logger
}

// NewInterestHandler is the constructor for InterestHandler, injected by Fx.
func NewInterestHandler(uc usecase.InterestUsecase, logger *slog.Logger) *InterestHandler {
	return &InterestHandler{
		uc:     uc,
		logger: logger,
	}
}

type submitInterestRequest struct {
	PropertyID string `json:"property_id" validate:"required,uuid"`
	Message    string `json:"message"`
}

type respondInterestRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

// Submit handles a tenant's interest submission.
func (h *InterestHandler) Submit(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req submitInterestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid interest input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property ID")
	}

	interest, err := h.uc.SubmitInterest(c.Request().Context(), userID, &usecase.SubmitInterestInput{
		PropertyID: propertyID,
		Message:    req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, interest, "Interest submitted successfully")
}

// MyInterests lists the authenticated tenant's interests.
func (h *InterestHandler) MyInterests(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	interests, err := h.uc.ListTenantInterests(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, interests, "")
}

// Received lists the interests submitted against the authenticated owner's listings.
func (h *InterestHandler) Received(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	interests, err := h.uc.ListOwnerInterests(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, interests, "")
}

// Respond moves a pending interest to accepted or rejected.
func (h *InterestHandler) Respond(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	interestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid interest ID")
	}

	var req respondInterestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid interest response input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	interest, err := h.uc.RespondToInterest(c.Request().Context(), userID, interestID, entity.InterestStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, interest, "Interest updated successfully")
}
