// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

// Accepted values for the App enum-like settings.
const (
	IdentityPolicyForward  = "forward"
	IdentityPolicyFailFast = "fail-fast"

	FetchModeSequential = "sequential"
	FetchModeParallel   = "parallel"
)

// validate checks that the merged [StructuredConfig] has no values that
// cannot be interpreted. Missing values are allowed here; the client view
// fills in defaults.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RetryCount < 0 || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Cache.ConfigTTL < 0 {
		return ErrInvalidCacheConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RetryCount < 0 {
		return ErrInvalidAdapterConfigs
	}

	if !slices.Contains([]string{IdentityPolicyForward, IdentityPolicyFailFast}, cfg.App.IdentityFailurePolicy) {
		return fmt.Errorf("%w: identity failure policy %q", ErrInvalidAppConfigs, cfg.App.IdentityFailurePolicy)
	}

	if !slices.Contains([]string{FetchModeSequential, FetchModeParallel}, cfg.App.FetchMode) {
		return fmt.Errorf("%w: fetch mode %q", ErrInvalidAppConfigs, cfg.App.FetchMode)
	}

	if cfg.Cache.ConfigTTL < 0 {
		return ErrInvalidCacheConfigs
	}

	return nil
}
