package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptVerifier(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct-horse-battery")
	require.NoError(t, err)
	require.NotEqual(t, "correct-horse-battery", hash)

	verifier := NewBcryptVerifier()

	t.Run("accepts matching password", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, verifier.Compare(hash, "correct-horse-battery"))
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, verifier.Compare(hash, "wrong-password"))
	})

	t.Run("rejects garbage hash", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, verifier.Compare("not-a-bcrypt-hash", "correct-horse-battery"))
	})
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	// bcrypt salts internally, so two hashes of the same input differ.
	first, err := HashPassword("correct-horse-battery")
	require.NoError(t, err)
	second, err := HashPassword("correct-horse-battery")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
