package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateJWTToken(testSecret, "testuser", true, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := ValidateToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "testuser", user.Username)
	assert.True(t, user.IsAdmin)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateJWTToken(testSecret, "testuser", false, time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken([]byte("other-secret"), token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken(testSecret, "testuser", false, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(testSecret, token)
	assert.Error(t, err)
}

func TestValidateToken_Malformed(t *testing.T) {
	_, err := ValidateToken(testSecret, "not.a.token")
	assert.Error(t, err)
}

func TestValidateToken_RejectsUnexpectedAlgorithm(t *testing.T) {
	// alg=none tokens must never verify.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, TokenClaims{Username: "testuser"})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(testSecret, tokenString)
	assert.Error(t, err)
}

func TestCompareHash(t *testing.T) {
	hashed, err := Hash([]byte("secret123"))
	require.NoError(t, err)

	assert.NoError(t, CompareHash(hashed, []byte("secret123")))
	assert.Error(t, CompareHash(hashed, []byte("wrong")))
}
