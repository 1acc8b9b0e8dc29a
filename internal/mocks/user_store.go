package mocks

import (
	"context"
	"database/sql"

	"github.com/taskflow/taskflow-api/internal/domain"
	"github.com/taskflow/taskflow-api/internal/service/auth"
	"github.com/taskflow/taskflow-api/internal/store"
)

// MockUserStore implements store.UserStore for testing. By default it acts
// as an in-memory store keyed by email, hashing passwords the way the real
// store does; individual function fields override behavior per test.
type MockUserStore struct {
	CreateFn      func(ctx context.Context, user *domain.User) error
	GetByIDFn     func(ctx context.Context, id int64) (*domain.User, error)
	GetByEmailFn  func(ctx context.Context, email string) (*domain.User, error)
	EmailExistsFn func(ctx context.Context, email string) (bool, error)
	UpdateFn      func(ctx context.Context, user *domain.User) error
	DeleteFn      func(ctx context.Context, id int64) error

	Users      map[string]*domain.User
	nextID     int64
	CreateErr  error
	GetByIDErr error
}

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{Users: make(map[string]*domain.User)}
}

// Create implements the store.UserStore interface.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if err := user.Validate(); err != nil {
		return err
	}
	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}

	hash, err := auth.HashPassword(user.Password)
	if err != nil {
		return err
	}

	m.nextID++
	user.ID = m.nextID
	user.HashedPassword = hash
	user.Password = ""
	m.Users[user.Email] = user
	return nil
}

// GetByID implements the store.UserStore interface.
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.GetByIDErr != nil {
		return nil, m.GetByIDErr
	}
	for _, user := range m.Users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByEmail implements the store.UserStore interface.
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	if user, ok := m.Users[email]; ok {
		return user, nil
	}
	return nil, store.ErrUserNotFound
}

// EmailExists implements the store.UserStore interface.
func (m *MockUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.EmailExistsFn != nil {
		return m.EmailExistsFn(ctx, email)
	}
	_, ok := m.Users[email]
	return ok, nil
}

// Update implements the store.UserStore interface.
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}
	m.Users[user.Email] = user
	return nil
}

// Delete implements the store.UserStore interface.
func (m *MockUserStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	for email, user := range m.Users {
		if user.ID == id {
			delete(m.Users, email)
			return nil
		}
	}
	return store.ErrUserNotFound
}

// WithTx implements the store.UserStore interface.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
