package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenAndParseToken(t *testing.T) {
	secret := "test-secret"

	token, err := GenToken("user-1", []byte(secret), 30*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserId)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenToken("user-1", []byte("secret-a"), 30*time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret-b")
	assert.Error(t, err)
}
