package session

import (
	"fmt"

	"github.com/MKhiriev/go-sign-in/models"
)

// ConstructionError reports a programming fault while building a provider:
// a strategy that produces no provider, or inputs that do not match it.
// [Build] panics with a *ConstructionError rather than returning it.
type ConstructionError struct {
	Strategy models.StrategyKind
	Reason   string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("session provider construction for strategy %q: %s", e.Strategy, e.Reason)
}

// Inputs carries everything [Build] may need. Only the fields relevant to
// the strategy are read.
type Inputs struct {
	Primary  models.RemoteConfig
	Migrate  models.RemoteConfig
	Identity models.IdentitySupplier
}

// NewStateResume builds a [StateResumeProvider].
func NewStateResume(state, migrate models.RemoteConfig) StateResumeProvider {
	mustConfig(models.StrategyStateResume, state, models.ConfigNameState)
	mustConfig(models.StrategyStateResume, migrate, models.ConfigNameMigrate)
	return StateResumeProvider{State: state, Migrate: migrate}
}

// NewRegister builds a [RegisterProvider].
func NewRegister(register, migrate models.RemoteConfig) RegisterProvider {
	mustConfig(models.StrategyRegister, register, models.ConfigNameRegister)
	mustConfig(models.StrategyRegister, migrate, models.ConfigNameMigrate)
	return RegisterProvider{Register: register, Migrate: migrate}
}

// NewNativeFederated builds a [NativeFederatedProvider] around identity.
func NewNativeFederated(identity models.IdentitySupplier) NativeFederatedProvider {
	if identity == nil {
		panic(&ConstructionError{Strategy: models.StrategyNativeFederated, Reason: "nil identity supplier"})
	}
	return NativeFederatedProvider{Identity: identity}
}

// Build returns the provider variant for kind. It performs no I/O and never
// inspects config contents beyond their names.
//
// Build panics with a *ConstructionError when kind produces no provider or
// the inputs do not fit it.
func Build(kind models.StrategyKind, in Inputs) Provider {
	switch kind {
	case models.StrategyStateResume:
		return NewStateResume(in.Primary, in.Migrate)
	case models.StrategyRegister:
		return NewRegister(in.Primary, in.Migrate)
	case models.StrategyNativeFederated:
		return NewNativeFederated(in.Identity)
	case models.StrategyDirectCredential:
		panic(&ConstructionError{Strategy: kind, Reason: "strategy produces no session provider"})
	default:
		panic(&ConstructionError{Strategy: kind, Reason: "unknown strategy"})
	}
}

func mustConfig(kind models.StrategyKind, cfg models.RemoteConfig, name string) {
	if cfg.IsZero() {
		panic(&ConstructionError{Strategy: kind, Reason: fmt.Sprintf("missing %q config", name)})
	}
	if cfg.Name != name {
		panic(&ConstructionError{Strategy: kind, Reason: fmt.Sprintf("expected %q config, got %q", name, cfg.Name)})
	}
}
