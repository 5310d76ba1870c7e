package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTValidator_RoundTrip(t *testing.T) {
	v := NewJWTValidator("test-secret", "mindmesh-backend")

	token, err := v.Issue("user-123", time.Hour)
	require.NoError(t, err)

	claims, err := v.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "mindmesh-backend", claims.Issuer)
}

func TestJWTValidator_WrongSecret(t *testing.T) {
	issuer := NewJWTValidator("secret-a", "mindmesh-backend")
	validator := NewJWTValidator("secret-b", "mindmesh-backend")

	token, err := issuer.Issue("user-123", time.Hour)
	require.NoError(t, err)

	_, err = validator.Validate(token)
	assert.Error(t, err)
}

func TestJWTValidator_WrongIssuer(t *testing.T) {
	issuer := NewJWTValidator("test-secret", "other-service")
	validator := NewJWTValidator("test-secret", "mindmesh-backend")

	token, err := issuer.Issue("user-123", time.Hour)
	require.NoError(t, err)

	_, err = validator.Validate(token)
	assert.Error(t, err)
}

func TestJWTValidator_Expired(t *testing.T) {
	v := NewJWTValidator("test-secret", "mindmesh-backend")

	// Leeway is 30s, so expire well past it.
	token, err := v.Issue("user-123", -2*time.Minute)
	require.NoError(t, err)

	_, err = v.Validate(token)
	assert.Error(t, err)
}

func TestJWTValidator_Garbage(t *testing.T) {
	v := NewJWTValidator("test-secret", "mindmesh-backend")

	_, err := v.Validate("not.a.token")
	assert.Error(t, err)
}
