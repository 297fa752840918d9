package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Generate(42, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "showcase-backend", claims.Issuer)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a").Generate(1, "user")
	require.NoError(t, err)

	_, err = NewTokenService("secret-b").Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret")

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret")

	// Issue in the past, verify in the present.
	svc.now = func() time.Time { return time.Now().Add(-2 * TokenTTL) }
	token, err := svc.Generate(7, "user")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestVerifyAcceptsTokenWithinTTL(t *testing.T) {
	svc := NewTokenService("test-secret")

	svc.now = func() time.Time { return time.Now().Add(-TokenTTL / 2) }
	token, err := svc.Generate(7, "user")
	require.NoError(t, err)

	svc.now = time.Now
	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
}
