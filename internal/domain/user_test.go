package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("creates valid user", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("alice", "alice@example.com", "correct-horse-battery")
		require.NoError(t, err)

		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "correct-horse-battery", user.Password)
		assert.Empty(t, user.HashedPassword)
		assert.False(t, user.CreatedAt.IsZero())
	})

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{"empty username", "", "a@x.com", "long-enough-pass", ErrEmptyUsername},
		{"empty email", "alice", "", "long-enough-pass", ErrEmptyEmail},
		{"email without at", "alice", "alice.example.com", "long-enough-pass", ErrInvalidEmail},
		{"email without domain dot", "alice", "alice@example", "long-enough-pass", ErrInvalidEmail},
		{"email ending in at", "alice", "alice@", "long-enough-pass", ErrInvalidEmail},
		{"short password", "alice", "a@x.com", "short", ErrPasswordTooShort},
		{"long password", "alice", "a@x.com", string(make([]byte, 80)), ErrPasswordTooLong},
		{"no password at all", "alice", "a@x.com", "", ErrEmptyPassword},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewUser(tt.username, tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserValidate_StoredUser(t *testing.T) {
	t.Parallel()

	// Users loaded from the store carry only the hash.
	user := &User{
		ID:             1,
		Username:       "alice",
		Email:          "alice@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	assert.NoError(t, user.Validate())
}
