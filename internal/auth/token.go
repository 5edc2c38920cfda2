// Package auth implements bearer token issuance and verification.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenLifetime is the time after which an issued token expires.
const TokenLifetime = time.Hour

// ContextUserID is the gin context key under which the authentication
// middleware stores the verified user ID.
const ContextUserID = "fintrack-user-id"

var (
	ErrNoToken      = errors.New("no token provided")
	ErrInvalidToken = errors.New("the token is invalid or has expired")
)

// CreateToken issues a signed token for the user that expires after
// TokenLifetime.
func CreateToken(userID uuid.UUID, secret []byte) (string, error) {
	now := time.Now().In(time.UTC)

	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifyToken checks the signature and expiry of a token and returns
// the ID of the user it was issued for.
func VerifyToken(token string, secret []byte) (uuid.UUID, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		// Only accept tokens signed with the method we issue
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}
