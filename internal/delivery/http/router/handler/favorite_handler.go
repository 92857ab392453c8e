package handler

import (
	"log/slog"
	"net/http"

	"homefinder/internal/delivery/http/middleware"
	"homefinder/internal/delivery/http/response"
	"homefinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler holds dependencies for bookmark-related handlers.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:     uc,
		logger: logger,
	}
}

// Add bookmarks a listing for the caller.
func (h *FavoriteHandler) Add(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	propertyID, err := uuid.Parse(c.Param("propertyId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property ID")
	}

	if err := h.uc.AddFavorite(c.Request().Context(), userID, propertyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Favorite added")
}

// Remove deletes the caller's bookmark of a listing.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	propertyID, err := uuid.Parse(c.Param("propertyId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid property ID")
	}

	if err := h.uc.RemoveFavorite(c.Request().Context(), userID, propertyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Favorite removed")
}

// List returns the caller's bookmarks, newest first.
func (h *FavoriteHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	favorites, err := h.uc.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorites, "")
}
