// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Remote config names served by the configuration service.
const (
	ConfigNameState    = "state"
	ConfigNameRegister = "register"
	ConfigNameMigrate  = "migrate"
)

// RemoteConfig is a named session-provider configuration blob. Its content is
// opaque to the negotiation core and only forwarded to the session provider.
type RemoteConfig struct {
	// Name is the config name it was fetched under (e.g. "state", "migrate").
	Name string `json:"name"`

	// Raw holds the undecoded configuration document.
	Raw json.RawMessage `json:"config"`
}

// IsZero reports whether the config was never resolved.
func (c RemoteConfig) IsZero() bool {
	return c.Name == "" && len(c.Raw) == 0
}
