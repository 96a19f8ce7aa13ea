package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT("user-1", "jo@example.com", "Jo")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jo@example.com", claims.Email)
	assert.Equal(t, "Jo", claims.Name)
	assert.Equal(t, "halfsy-api", claims.Issuer)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateJWT("user-1", "jo@example.com", "Jo")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "different")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestGenerateJWTRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := GenerateJWT("user-1", "jo@example.com", "Jo")
	assert.Error(t, err)
}
