package adapter

import "errors"

var (
	// ErrFetch wraps every [ConfigFetcher] failure.
	ErrFetch = errors.New("remote config fetch failed")
	// ErrMalformedConfig is returned when a config payload is not valid JSON.
	ErrMalformedConfig = errors.New("malformed remote config")
	// ErrIdentityRejected is returned when the identity backend refuses the
	// sign-in.
	ErrIdentityRejected = errors.New("identity sign-in rejected")
	// ErrMissingSessionToken is returned when a session response carries no
	// bearer token.
	ErrMissingSessionToken = errors.New("session token missing in response")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
