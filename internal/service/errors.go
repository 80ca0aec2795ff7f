package service

import "errors"

// ErrorWhileLogin is the code shown to the user when a negotiation fails.
const ErrorWhileLogin = "ERROR_WHILE_LOGIN"

var (
	// ErrConfigFetch is returned when either remote config of a strategy
	// could not be fetched.
	ErrConfigFetch = errors.New("remote config fetch failed")
	// ErrIdentityProvider is returned when the identity SDK reports failure
	// and the fail-fast policy is active.
	ErrIdentityProvider = errors.New("identity provider failure")
	// ErrNegotiationInProgress is returned for triggers dropped while another
	// negotiation is running.
	ErrNegotiationInProgress = errors.New("negotiation already in progress")
	// ErrHandoff is returned when session establishment fails.
	ErrHandoff = errors.New("session handoff failed")
	// ErrUnknownStrategy is returned for strategies the service cannot run.
	ErrUnknownStrategy = errors.New("unknown strategy")
	// ErrNegotiationCancelled is returned when ctx ends mid-negotiation.
	ErrNegotiationCancelled = errors.New("negotiation cancelled")
)
