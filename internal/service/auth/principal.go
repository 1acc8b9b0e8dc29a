package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskflow/taskflow-api/internal/store"
)

// Principal is the resolved, in-request representation of the
// authenticated caller. It is constructed fresh per request from a
// credential lookup and discarded at end of request; it is never persisted
// or cached. The password hash is carried only because the identity shape
// requires a credential field; it is never compared or logged.
type Principal struct {
	UserID         int64
	Username       string
	Email          string
	HashedPassword string
}

// PrincipalResolver maps a bare subject identifier to a full,
// request-usable Principal.
type PrincipalResolver interface {
	// ResolveByID looks up the user store by primary identifier.
	// Returns ErrPrincipalNotFound on miss; the request gate treats that
	// as an authentication failure, not a server error.
	ResolveByID(ctx context.Context, id int64) (*Principal, error)
}

// storePrincipalResolver resolves principals against a UserStore.
type storePrincipalResolver struct {
	userStore store.UserStore
}

// NewPrincipalResolver creates a PrincipalResolver backed by the given
// user store.
func NewPrincipalResolver(userStore store.UserStore) PrincipalResolver {
	return &storePrincipalResolver{userStore: userStore}
}

// ResolveByID implements PrincipalResolver.
func (r *storePrincipalResolver) ResolveByID(ctx context.Context, id int64) (*Principal, error) {
	user, err := r.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrPrincipalNotFound, id)
		}
		return nil, fmt.Errorf("failed to resolve principal for user %d: %w", id, err)
	}

	return &Principal{
		UserID:         user.ID,
		Username:       user.Username,
		Email:          user.Email,
		HashedPassword: user.HashedPassword,
	}, nil
}
