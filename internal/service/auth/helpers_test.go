package auth

import "github.com/taskflow/taskflow-api/internal/config"

func testAuthConfig(secret string) config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:           secret,
		TokenLifetimeMillis: 86400000,
	}
}
