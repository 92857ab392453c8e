// Package usecase defines the application's use case interfaces (ports).
// The delivery layer depends on these interfaces instead of concrete services.
package usecase

import (
	"context"

	"homefinder/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput carries the data required to create a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     entity.Role
}

// AuthOutput bundles the authenticated user with their access token.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// UserUsecase defines the interface for account management use cases.
type UserUsecase interface {
	// Register creates a new account and returns the signed-in session.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and returns the signed-in session.
	Login(ctx context.Context, email, password string) (*AuthOutput, error)

	// GetProfile returns the public record of the given user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
