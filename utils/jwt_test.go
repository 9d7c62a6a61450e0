package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := []byte("secret")

	token, err := GenerateJWT(secret, "user-1", "cook@example.com")
	require.NoError(t, err)

	userID, email, err := ParseJWT(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "cook@example.com", email)
}

func TestJWTRejectsBadTokens(t *testing.T) {
	secret := []byte("secret")

	token, err := GenerateJWT(secret, "user-1", "cook@example.com")
	require.NoError(t, err)

	_, _, err = ParseJWT([]byte("other-secret"), token)
	assert.Error(t, err)

	_, _, err = ParseJWT(secret, "not-a-token")
	assert.Error(t, err)
}
