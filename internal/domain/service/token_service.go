// Package service defines the contracts for domain services whose concrete
// implementations live in the infrastructure layer.
package service

import (
	"github.com/google/uuid"

	"critica/internal/domain/entity"
)

// TokenClaims is the identity a validated bearer token asserts. Role and
// superuser data is re-resolved from storage on each request; the claims
// only establish who the actor is.
type TokenClaims struct {
	UserID   uuid.UUID
	Username string
}

// TokenService mints and validates bearer access tokens.
type TokenService interface {
	// MintToken creates a signed bearer token for the user.
	MintToken(user *entity.User) (string, error)

	// ValidateToken checks a token string and returns its claims.
	ValidateToken(token string) (*TokenClaims, error)
}
