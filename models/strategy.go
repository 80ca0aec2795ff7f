// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// StrategyKind enumerates the mutually exclusive sign-in paths a user can
// trigger from the sign-in screen.
type StrategyKind int

const (
	// StrategyUnknown is the zero value and never names a valid strategy.
	StrategyUnknown StrategyKind = iota
	// StrategyStateResume resumes a state-system web session. It needs the
	// "state" and "migrate" remote configs.
	StrategyStateResume
	// StrategyRegister opens the registration web session. It needs the
	// "register" and "migrate" remote configs.
	StrategyRegister
	// StrategyNativeFederated signs in through the native identity SDK.
	// No remote config is fetched.
	StrategyNativeFederated
	// StrategyDirectCredential delegates to the legacy credential sign-in.
	StrategyDirectCredential
)

// ErrUnknownStrategyName is returned by [ParseStrategyKind] for unsupported names.
var ErrUnknownStrategyName = errors.New("unknown strategy name")

var strategyNames = map[StrategyKind]string{
	StrategyStateResume:      "state",
	StrategyRegister:         "register",
	StrategyNativeFederated:  "native-federated",
	StrategyDirectCredential: "direct-credential",
}

// String returns the canonical lower-case strategy name.
func (s StrategyKind) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return "unknown"
}

// ConfigName returns the strategy-specific remote config name, or an empty
// string for strategies that fetch nothing.
func (s StrategyKind) ConfigName() string {
	switch s {
	case StrategyStateResume:
		return ConfigNameState
	case StrategyRegister:
		return ConfigNameRegister
	default:
		return ""
	}
}

// RequiresRemoteConfig reports whether the strategy resolves remote configs
// before a session provider can be built.
func (s StrategyKind) RequiresRemoteConfig() bool {
	return s.ConfigName() != ""
}

// ParseStrategyKind converts a canonical strategy name back to a [StrategyKind].
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseStrategyKind(name string) (StrategyKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, n := range strategyNames {
		if n == name {
			return kind, nil
		}
	}
	return StrategyUnknown, fmt.Errorf("%w: %q", ErrUnknownStrategyName, name)
}
