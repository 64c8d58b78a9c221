package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("64f1b2c3d4e5f60718293a4b", "secretary@university.edu", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1b2c3d4e5f60718293a4b", claims.UserID)
	assert.Equal(t, "secretary@university.edu", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	_, err := ParseJWT("not-a-token")
	assert.Error(t, err)

	_, err = ParseJWT("")
	assert.Error(t, err)
}
