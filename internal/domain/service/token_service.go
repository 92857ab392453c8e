package service

import (
	"homefinder/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims carries the identity extracted from a validated access token.
type Claims struct {
	UserID uuid.UUID
	Role   entity.Role
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for a given user and role.
	GenerateToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken checks a token string and returns the embedded claims.
	ValidateToken(tokenString string) (*Claims, error)
}
