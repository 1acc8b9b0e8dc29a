package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token is malformed, carries an
	// unexpected signing method, or its signature does not verify.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf in the future).
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrPrincipalNotFound indicates a validated token's subject has no
	// backing credential (e.g., a deleted account presenting a stale token).
	ErrPrincipalNotFound = errors.New("principal not found")
)
