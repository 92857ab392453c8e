package handler

import (
	"log/slog"
	"net/http"

	"homefinder/internal/delivery/http/middleware"
	"homefinder/internal/delivery/http/response"
	"homefinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FeedbackHandler holds dependencies for contact-form handlers.
type FeedbackHandler struct {
	uc     usecase.FeedbackUsecase
	logger *slog.Logger
}

// NewFeedbackHandler is the constructor for FeedbackHandler, injected by Fx.
func NewFeedbackHandler(uc usecase.FeedbackUsecase, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		uc:     uc,
		logger: logger,
	}
}

type submitFeedbackRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Submit records a contact-form submission. The endpoint is public; when the
// request carries a valid session the submission is attributed to the caller.
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req submitFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feedback input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.SubmitFeedbackInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if userID, ok := middleware.UserID(c); ok {
		input.UserID = &userID
	}

	feedback, err := h.uc.SubmitFeedback(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, feedback, "Feedback submitted successfully")
}

// List returns all contact-form submissions, newest first.
func (h *FeedbackHandler) List(c echo.Context) error {
	feedbackList, err := h.uc.ListFeedback(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feedbackList, "")
}
