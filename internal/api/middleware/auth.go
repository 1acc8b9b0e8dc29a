package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taskflow/taskflow-api/internal/api/shared"
	"github.com/taskflow/taskflow-api/internal/platform/metrics"
	"github.com/taskflow/taskflow-api/internal/redact"
	"github.com/taskflow/taskflow-api/internal/service/auth"
)

// AuthMiddleware is the per-request admission gate. It validates bearer
// tokens from the Authorization header, resolves the principal, and
// establishes it in the request context. It is the single chokepoint
// translating token failures into unauthorized responses; no other layer
// re-implements token checks.
type AuthMiddleware struct {
	jwtService auth.JWTService
	resolver   auth.PrincipalResolver
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, resolver auth.PrincipalResolver) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		resolver:   resolver,
	}
}

// Authenticate admits or rejects a request based on its bearer token.
//
// A request without a bearer-form Authorization header passes through
// unauthenticated; whether that is acceptable is the downstream handler's
// own declared requirement (see RequirePrincipal). A request that does
// present a token is either fully authenticated or rejected with 401:
// invalid and expired tokens, tokens whose subject no longer has a backing
// credential, and any unexpected fault during resolution all terminate the
// request here. A gate failure is never surfaced as a server error and
// never lets a half-resolved principal through.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				metrics.AuthRejectionsTotal.WithLabelValues("expired").Inc()
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenNotYetValid):
				metrics.AuthRejectionsTotal.WithLabelValues("invalid").Inc()
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				slog.Error("unexpected token validation failure", "error", redact.Error(err))
				metrics.AuthRejectionsTotal.WithLabelValues("internal").Inc()
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication failed")
			}
			return
		}

		principal, err := m.resolver.ResolveByID(r.Context(), claims.UserID)
		if err != nil {
			// A stale token for a deleted account is indistinguishable
			// from an invalid one as far as the client is concerned.
			if !errors.Is(err, auth.ErrPrincipalNotFound) {
				slog.Error("principal resolution failed", "error", redact.Error(err))
			}
			metrics.AuthRejectionsTotal.WithLabelValues("unresolved").Inc()
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), shared.PrincipalContextKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePrincipal rejects requests that reached this point without a
// resolved principal. Endpoints that need an authenticated caller declare
// it by mounting this after Authenticate.
func (m *AuthMiddleware) RequirePrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetPrincipal(r); !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetPrincipal extracts the resolved principal from the request context.
// Returns the principal and a boolean indicating if it was found.
func GetPrincipal(r *http.Request) (*auth.Principal, bool) {
	principal, ok := r.Context().Value(shared.PrincipalContextKey).(*auth.Principal)
	return principal, ok
}

// bearerToken extracts the token from a "Bearer <token>" Authorization
// header. Reports false for absent or non-bearer headers.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}
