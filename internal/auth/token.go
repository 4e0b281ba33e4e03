package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "flowmaster"

// sessionClaims are carried by the signed session token.
type sessionClaims struct {
	Email string `json:"email"`
	Host  string `json:"host"`
	jwt.RegisteredClaims
}

// issueToken signs a session token for u.
func (s *Service) issueToken(u User) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Email: u.Email,
		Host:  s.host,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// verifyToken checks the signature, expiry and binding of a session token.
func (s *Service) verifyToken(raw string, u User) error {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	if !token.Valid {
		return ErrInvalidSession
	}
	if claims.Subject != u.ID || claims.Email != u.Email {
		return fmt.Errorf("%w: token belongs to another user", ErrInvalidSession)
	}
	if claims.Host != s.host {
		return fmt.Errorf("%w: token issued for %s", ErrInvalidSession, claims.Host)
	}
	return nil
}

// tokenExpiry returns when a token expires, or the zero time if unreadable.
func tokenExpiry(raw string) time.Time {
	var claims sessionClaims
	_, _, err := jwt.NewParser().ParseUnverified(raw, &claims)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
