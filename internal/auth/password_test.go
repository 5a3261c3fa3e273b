package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gotodo/backend/internal/auth"
)

func TestHash(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	t.Run("produces hex-encoded key and salt", func(t *testing.T) {
		cred, err := hasher.Hash("Secret123!")
		require.NoError(t, err)
		assert.Len(t, cred.DerivedKey, 64)
		assert.Len(t, cred.Salt, 32)
	})

	t.Run("same password produces different salts and keys", func(t *testing.T) {
		cred1, err := hasher.Hash("samepassword")
		require.NoError(t, err)
		cred2, err := hasher.Hash("samepassword")
		require.NoError(t, err)
		assert.NotEqual(t, cred1.Salt, cred2.Salt)
		assert.NotEqual(t, cred1.DerivedKey, cred2.DerivedKey)
	})
}

func TestVerify(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	t.Run("correct password verifies", func(t *testing.T) {
		cred, err := hasher.Hash("Secret123!")
		require.NoError(t, err)
		assert.True(t, hasher.Verify("Secret123!", cred.Salt, cred.DerivedKey))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		cred, err := hasher.Hash("Secret123!")
		require.NoError(t, err)
		assert.False(t, hasher.Verify("Secret123?", cred.Salt, cred.DerivedKey))
	})

	t.Run("malformed salt fails instead of erroring", func(t *testing.T) {
		cred, err := hasher.Hash("Secret123!")
		require.NoError(t, err)
		assert.False(t, hasher.Verify("Secret123!", "not-hex", cred.DerivedKey))
	})

	t.Run("malformed derived key fails instead of erroring", func(t *testing.T) {
		cred, err := hasher.Hash("Secret123!")
		require.NoError(t, err)
		assert.False(t, hasher.Verify("Secret123!", cred.Salt, "zz"+cred.DerivedKey[2:]))
	})

	t.Run("truncated derived key fails", func(t *testing.T) {
		cred, err := hasher.Hash("Secret123!")
		require.NoError(t, err)
		assert.False(t, hasher.Verify("Secret123!", cred.Salt, cred.DerivedKey[:32]))
	})
}
