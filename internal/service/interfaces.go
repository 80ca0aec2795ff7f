// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-sign-in/internal/session"
	"github.com/MKhiriev/go-sign-in/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NegotiationService runs one sign-in strategy end to end: it resolves the
// strategy's remote inputs, builds the session provider and hands it to
// session establishment.
type NegotiationService interface {
	// Negotiate runs strategy. navigation is forwarded untouched to the
	// handoff. The returned error is the outcome's Err.
	Negotiate(ctx context.Context, strategy models.StrategyKind, navigation models.NavigationDirective) (models.Outcome, error)
}

// SessionHandoff establishes a session from a constructed provider.
type SessionHandoff interface {
	Establish(ctx context.Context, provider session.Provider, navigation models.NavigationDirective) error
}

// LegacyHandoff is the direct-credential sign-in path. It needs no provider.
type LegacyHandoff interface {
	SignIn(ctx context.Context, navigation models.NavigationDirective) error
}

// ErrorSignal is a fire-and-forget user notification.
type ErrorSignal interface {
	Show(code string)
}
