// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// SessionRequest is the body posted to the session server to establish a
// session. It is produced by a session provider.
type SessionRequest struct {
	Provider   string                  `json:"provider"`
	Configs    map[string]RemoteConfig `json:"configs,omitempty"`
	Identity   *IdentityResult         `json:"identity,omitempty"`
	Navigation NavigationDirective     `json:"navigation,omitempty"`
}

// SessionRecord is a locally persisted established session.
type SessionRecord struct {
	ID         int64           `json:"id"`
	UserID     string          `json:"user_id"`
	Provider   string          `json:"provider"`
	Token      string          `json:"-"`
	Navigation json.RawMessage `json:"navigation,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
