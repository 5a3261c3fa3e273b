package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gotodo/backend/internal/auth"
)

var testSecret = []byte("test-secret-at-least-32-bytes-long")

func TestIssueAndValidate(t *testing.T) {
	svc := auth.NewTokenService(testSecret, 24*time.Hour)

	t.Run("round trip returns the embedded identity", func(t *testing.T) {
		token, expiresIn, err := svc.Issue(42)
		require.NoError(t, err)
		assert.Equal(t, int64((24 * time.Hour).Seconds()), expiresIn)

		userID, err := svc.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), userID)
	})

	t.Run("tampered token is malformed", func(t *testing.T) {
		token, _, err := svc.Issue(42)
		require.NoError(t, err)

		last := token[len(token)-1]
		flipped := byte('A')
		if last == 'A' {
			flipped = 'B'
		}
		tampered := token[:len(token)-1] + string(flipped)

		_, err = svc.Validate(tampered)
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})

	t.Run("garbage token is malformed", func(t *testing.T) {
		_, err := svc.Validate("not.a.token")
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})

	t.Run("token signed with another secret is malformed", func(t *testing.T) {
		other := auth.NewTokenService([]byte("a-completely-different-secret!!!"), 24*time.Hour)
		token, _, err := other.Issue(42)
		require.NoError(t, err)

		_, err = svc.Validate(token)
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})

	t.Run("expired token is reported as expired", func(t *testing.T) {
		expiredSvc := auth.NewTokenService(testSecret, -time.Hour)
		token, _, err := expiredSvc.Issue(42)
		require.NoError(t, err)

		_, err = svc.Validate(token)
		assert.ErrorIs(t, err, auth.ErrTokenExpired)
	})
}
