package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims are the verified claims of an access or refresh token.
type TokenClaims struct {
	UserID uuid.UUID
	Type   string // "access" or "refresh"
}

// TokenService issues and validates the JWTs used by the HTTP layer. The
// core trusts the user id extracted from a validated access token completely.
type TokenService interface {
	// GenerateTokens creates a new access and refresh token pair for a user.
	GenerateTokens(userID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken verifies an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*TokenClaims, error)

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
