// Package auth issues and verifies the signed session tokens presented via
// cookie or the x-auth-token header.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pingreng/pingr-server/internal/shared"
)

// Claims are the identity claims embedded in a session token.
//
// Tokens carry no expiry claim; the session lifetime is bounded by the
// 90-day cookie instead.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Issue signs a session token for the given identity with HS256.
func Issue(userID, username, email string, secretKey []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:   userID,
		Username: username,
		Email:    email,
	})

	return token.SignedString(secretKey)
}

// Verify parses and validates a session token, returning its claims.
// Any failure maps to shared.ErrInvalidToken.
func Verify(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, shared.ErrInvalidToken
	}

	if !token.Valid {
		return nil, shared.ErrInvalidToken
	}

	return claims, nil
}
