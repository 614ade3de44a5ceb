package fakeapi

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for tokens that fail verification.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the session token claims. The role flags travel in the token so
// the client can decide which views to show without asking.
type Claims struct {
	jwt.RegisteredClaims
	IsAdmin bool `json:"isAdmin"`
	IsOwner bool `json:"isOwner"`
}

// GenerateToken signs an HS256 token for userID with the given roles.
func GenerateToken(userID string, isAdmin, isOwner bool, secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		IsAdmin: isAdmin,
		IsOwner: isOwner,
	})

	return token.SignedString(secretKey)
}

// UserIDFromToken verifies tokenString and returns its subject.
func UserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
