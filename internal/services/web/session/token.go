// Package session reads the auth provider's session from the request and
// revokes it on sign-out.
package session

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoSession reports a request without an access token.
	ErrNoSession = errors.New("no session")
	// ErrInvalidToken reports an access token that failed verification.
	ErrInvalidToken = errors.New("session token is invalid")
	// ErrVerifierNotConfigured reports a verifier without a signing secret.
	ErrVerifierNotConfigured = errors.New("session verifier is not configured")
)

// User is the signed-in account.
type User struct {
	ID        string
	Email     string
	ExpiresAt time.Time
}

type accessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Verifier checks HS256 access tokens issued by the auth provider.
type Verifier struct {
	secret []byte
	now    func() time.Time
}

// NewVerifier returns a verifier for secret. An empty secret rejects every
// token with ErrVerifierNotConfigured.
func NewVerifier(secret string, now func() time.Time) Verifier {
	if now == nil {
		now = time.Now
	}
	return Verifier{secret: []byte(strings.TrimSpace(secret)), now: now}
}

// Verify parses token and returns its user.
func (v Verifier) Verify(token string) (User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return User{}, ErrNoSession
	}
	if len(v.secret) == 0 {
		return User{}, ErrVerifierNotConfigured
	}
	var claims accessClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return User{}, errors.Join(ErrInvalidToken, err)
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return User{}, errors.Join(ErrInvalidToken, errors.New("subject is required"))
	}
	if claims.Role == "anon" {
		return User{}, errors.Join(ErrInvalidToken, errors.New("anonymous token"))
	}
	return User{
		ID:        claims.Subject,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}, nil
}
