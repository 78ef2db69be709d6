package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID, role string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its parsed claims.
	ValidateAccessToken(tokenString string) (jwt.MapClaims, error)

	// ValidateRefreshToken checks a refresh token and returns its parsed claims.
	ValidateRefreshToken(tokenString string) (jwt.MapClaims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
