package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hirelink/hirelink-api/internal/types"
)

// TokenClaims is the claim set carried by access tokens.
type TokenClaims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`

	jwt.RegisteredClaims
}

// GenerateJWTToken mints an HS256 token for the given identity, signed with
// the shared secret.
func GenerateJWTToken(secret []byte, username string, isAdmin bool, expiresIn time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Username: username,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ValidateToken verifies a token against the shared secret and returns the
// decoded identity. Malformed, expired, or wrongly-signed tokens fail.
func ValidateToken(secret []byte, tokenString string) (*types.UserContext, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Enforce the expected signing algorithm.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*TokenClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("token claim is not valid")
	}

	return &types.UserContext{
		Username: claims.Username,
		IsAdmin:  claims.IsAdmin,
	}, nil
}
