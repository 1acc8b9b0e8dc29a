package auth

import "time"

// NewTestJWTService creates a JWTService with an injectable time source for
// tests. It bypasses the secret-length check so tests control their own
// key material.
func NewTestJWTService(secret string, lifetime time.Duration, timeFunc func() time.Time) JWTService {
	if timeFunc == nil {
		timeFunc = time.Now
	}
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
	}
}
