// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session models the strategy-specific session provider handed to
// session establishment once a negotiation has resolved its inputs.
//
// [Provider] is a closed set of variants, one per strategy that produces a
// provider. Consumers should depend on the capability [Provider.SessionRequest]
// rather than switching on the concrete variant.
package session

import (
	"maps"

	"github.com/MKhiriev/go-sign-in/models"
)

// Provider is the sealed sum of session provider variants. Only types in this
// package implement it.
type Provider interface {
	// Kind is the strategy that produced the provider.
	Kind() models.StrategyKind
	// SessionRequest renders the provider into the request body used to
	// establish a session.
	SessionRequest() models.SessionRequest

	sealed()
}

// StateResumeProvider resumes a state-system session.
type StateResumeProvider struct {
	State   models.RemoteConfig
	Migrate models.RemoteConfig
}

func (StateResumeProvider) Kind() models.StrategyKind { return models.StrategyStateResume }

func (p StateResumeProvider) SessionRequest() models.SessionRequest {
	return models.SessionRequest{
		Provider: p.Kind().String(),
		Configs: map[string]models.RemoteConfig{
			models.ConfigNameState:   p.State,
			models.ConfigNameMigrate: p.Migrate,
		},
	}
}

func (StateResumeProvider) sealed() {}

// RegisterProvider opens a registration session.
type RegisterProvider struct {
	Register models.RemoteConfig
	Migrate  models.RemoteConfig
}

func (RegisterProvider) Kind() models.StrategyKind { return models.StrategyRegister }

func (p RegisterProvider) SessionRequest() models.SessionRequest {
	return models.SessionRequest{
		Provider: p.Kind().String(),
		Configs: map[string]models.RemoteConfig{
			models.ConfigNameRegister: p.Register,
			models.ConfigNameMigrate:  p.Migrate,
		},
	}
}

func (RegisterProvider) sealed() {}

// NativeFederatedProvider wraps the identity SDK result. The result is read
// lazily through Identity, whether the SDK reported success or failure.
type NativeFederatedProvider struct {
	Identity models.IdentitySupplier
}

func (NativeFederatedProvider) Kind() models.StrategyKind { return models.StrategyNativeFederated }

func (p NativeFederatedProvider) SessionRequest() models.SessionRequest {
	result := p.Identity()
	result.Payload = maps.Clone(result.Payload)

	return models.SessionRequest{
		Provider: p.Kind().String(),
		Identity: &result,
	}
}

func (NativeFederatedProvider) sealed() {}
