// Package token implements the bearer token service. Tokens are opaque to
// the rest of the system: capability strings carrying a subject identifier
// and an expiry, verifiable without a database round trip.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for malformed, tampered, and expired tokens
// alike; callers are given no way to distinguish the three.
var ErrInvalidToken = errors.New("invalid token")

// Service issues and verifies signed bearer tokens.
type Service interface {
	Issue(subjectID string, ttl time.Duration) (string, error)
	Verify(token string) (string, error)
}

type claims struct {
	jwt.RegisteredClaims
}

type jwtService struct {
	secret []byte
}

// NewService creates an HS256-backed token service.
func NewService(secret string) (Service, error) {
	if secret == "" {
		return nil, errors.New("token secret cannot be empty")
	}
	return &jwtService{secret: []byte(secret)}, nil
}

// Issue signs a token whose subject is subjectID, expiring after ttl.
func (s *jwtService) Issue(subjectID string, ttl time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

// Verify parses and validates a token, returning its subject identifier.
// Expiry is enforced by the token format itself.
func (s *jwtService) Verify(tokenString string) (string, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid || c.Subject == "" {
		return "", ErrInvalidToken
	}

	return c.Subject, nil
}
