package jwttoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "recruitdesk/pkg/domain-errors"
)

func newTestService() *JWTService {
	return NewJWTService("test-signing-key", "recruitdesk", "recruitdesk-dashboard")
}

func TestValidateToken(t *testing.T) {
	svc := newTestService()

	t.Run("round trip preserves identity", func(t *testing.T) {
		token, err := svc.GenerateAccessToken("user-1", "staff@club.org", time.Minute)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.Subject)
		assert.Equal(t, "staff@club.org", claims.Email)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		token, err := svc.GenerateAccessToken("user-1", "staff@club.org", -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeUnauthorized))
		assert.Contains(t, err.Error(), "expired")
	})

	t.Run("token signed with another key rejected", func(t *testing.T) {
		other := NewJWTService("different-key", "recruitdesk", "recruitdesk-dashboard")
		token, err := other.GenerateAccessToken("user-1", "staff@club.org", time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeUnauthorized))
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeUnauthorized))
	})
}
