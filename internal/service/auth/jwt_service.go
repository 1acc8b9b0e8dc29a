package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
// It is the sole source of truth for token validity: tokens are stateless
// bearer credentials whose validity is computable from their own signed
// contents plus wall-clock time.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the given user.
	// Returns the token string or an error if token generation fails.
	// Two calls with the same user at different instants yield different
	// token strings, each valid until its own expiry.
	GenerateToken(ctx context.Context, userID int64) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. All parse and verification failures collapse to
	// ErrInvalidToken or ErrExpiredToken; the subject is only obtainable
	// from a successful validation.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the validated contents of a token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID int64 `json:"uid,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
