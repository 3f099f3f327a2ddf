package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnlmlszl/realtime-dms-backend/internal/models"
)

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret-key", time.Hour)
	user := &models.User{ID: "user-1", Email: "alice@example.com", Role: models.RoleAdmin}

	token, err := manager.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestJWTValidateErrors(t *testing.T) {
	manager := NewJWTManager("test-secret-key", time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		_, err := manager.Validate("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("another-secret", time.Hour)
		token, err := other.Generate(&models.User{ID: "user-1"})
		require.NoError(t, err)

		_, err = manager.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewJWTManager("test-secret-key", -time.Minute)
		token, err := expired.Generate(&models.User{ID: "user-1"})
		require.NoError(t, err)

		_, err = manager.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestPasswordValidation(t *testing.T) {
	a := NewPasswordAuthenticator(nil)

	assert.ErrorIs(t, a.ValidateCredential("short"), ErrWeakPassword)
	assert.NoError(t, a.ValidateCredential("longenough"))

	hash, err := a.HashCredential("supersecret")
	require.NoError(t, err)
	assert.NotEqual(t, "supersecret", hash)
}
