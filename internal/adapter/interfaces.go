// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for the remote
// services the sign-in client depends on: the session-provider configuration
// service, the native identity SDK backend, and the session server.
//
// The package ships an HTTP/REST implementation ([NewHTTPAdapter]) built on
// resty, and a TTL cache decorator for [ConfigFetcher]
// ([NewCachedConfigFetcher]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-sign-in/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ConfigFetcher retrieves named session-provider configuration blobs.
type ConfigFetcher interface {
	// Fetch returns the remote config registered under name. The returned
	// error wraps [ErrFetch] when the call fails or the payload is malformed.
	// Fetch is safe to call repeatedly within one negotiation.
	Fetch(ctx context.Context, name string) (models.RemoteConfig, error)
}

// IdentityProvider is the native identity SDK boundary.
type IdentityProvider interface {
	// Login runs the vendor sign-in for clientID. On failure both a non-nil
	// error and a failure [models.IdentityResult] are returned, mirroring the
	// vendor's success/failure callback pair.
	Login(ctx context.Context, clientID string) (models.IdentityResult, error)
}

// SessionServer is the remote side of session establishment.
type SessionServer interface {
	// Establish posts a provider-built session request and returns the issued
	// session token.
	Establish(ctx context.Context, req models.SessionRequest) (string, error)

	// LegacySignIn starts the legacy direct-credential sign-in and returns
	// the issued session token.
	LegacySignIn(ctx context.Context, navigation models.NavigationDirective) (string, error)
}
