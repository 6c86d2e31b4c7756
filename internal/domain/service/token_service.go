package service

import (
	"errors"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenMalformed is returned when a token cannot be parsed or its signature does not verify.
	ErrTokenMalformed = errors.New("token malformed")

	// ErrTokenExpired is returned when expiry is enforced and the token is past its exp claim.
	ErrTokenExpired = errors.New("token expired")
)

// Claims defines the claims carried by a bearer token. The subject is the decimal user ID.
type Claims struct {
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrTokenMalformed
	}

	return id, nil
}

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	// Issue creates a fresh token for the user. Every call yields a distinct token.
	Issue(userID int64) (string, error)

	// Verify checks the signature, and the expiry when enforced, and returns the claims.
	Verify(token string) (*Claims, error)

	// ExpiryEnforced reports whether issued tokens carry an expiry.
	ExpiryEnforced() bool
}
