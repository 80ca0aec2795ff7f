package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned by [ParseBearerToken] when the
// header is not of the form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// SessionClaims is the subset of claims the client reads from the session
// token issued on establishment.
type SessionClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// ParseSessionClaims reads the subject and expiry of a session token without
// verifying its signature. The client holds no signing key; the token is
// verified by the server on every use.
//
// Returns an error if the token is malformed or has no subject.
func ParseSessionClaims(tokenString string) (SessionClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &jwt.RegisteredClaims{})
	if err != nil {
		return SessionClaims{}, fmt.Errorf("error parsing session token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return SessionClaims{}, errors.New("invalid token claims")
	}
	if claims.Subject == "" {
		return SessionClaims{}, errors.New("empty subject error")
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return SessionClaims{Subject: claims.Subject, ExpiresAt: expiresAt}, nil
}
