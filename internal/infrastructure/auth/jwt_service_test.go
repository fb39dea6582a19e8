package auth

import (
	"testing"
	"time"

	"ecopontos_arapiraca/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.GenerateToken("u1", entities.RoleEnterprise)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "enterprise", claims.Role)
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		require.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService("other-secret", time.Hour)
		token, err := other.GenerateToken("u1", entities.RoleUser)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewJWTService("test-secret", -time.Minute)
		token, err := expired.GenerateToken("u1", entities.RoleUser)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.Error(t, err)
	})
}
