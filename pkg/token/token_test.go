package token_test

import (
	"testing"
	"time"

	"portfolio-backend/pkg/token"

	"github.com/stretchr/testify/assert"
)

func TestCreateAndVerify(t *testing.T) {
	secret := "access-secret"

	signed, err := token.Create("user-1", "USER", "user@example.com", secret, time.Minute)
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	claims, err := token.Verify(signed, secret)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "USER", claims.Role)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestSecretsAreNotInterchangeable(t *testing.T) {
	refresh, err := token.Create("user-1", "USER", "user@example.com", "refresh-secret", time.Hour)
	assert.NoError(t, err)

	t.Run("Should reject a refresh token verified with the access secret", func(t *testing.T) {
		_, err := token.Verify(refresh, "access-secret")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("Should accept the token under its own secret", func(t *testing.T) {
		claims, err := token.Verify(refresh, "refresh-secret")
		assert.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
	})
}

func TestVerifyExpired(t *testing.T) {
	signed, err := token.Create("user-1", "USER", "user@example.com", "secret", -time.Minute)
	assert.NoError(t, err)

	_, err = token.Verify(signed, "secret")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	_, err := token.Verify("not-a-token", "secret")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestParseTTL(t *testing.T) {
	assert.Equal(t, 15*time.Minute, token.ParseTTL("15m", time.Hour))
	assert.Equal(t, 168*time.Hour, token.ParseTTL("168h", time.Hour))
	assert.Equal(t, time.Hour, token.ParseTTL("", time.Hour))
	assert.Equal(t, time.Hour, token.ParseTTL("soon", time.Hour))
	assert.Equal(t, time.Hour, token.ParseTTL("-5m", time.Hour))
}
