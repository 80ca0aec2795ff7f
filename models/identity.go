// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// IdentityResult is what the native identity SDK hands back through either of
// its callbacks. Failure results are carried in the same shape, with Success
// set to false and Err describing the vendor error.
type IdentityResult struct {
	Success bool           `json:"success"`
	Payload map[string]any `json:"payload,omitempty"`
	Err     string         `json:"error,omitempty"`
}

// IdentitySupplier lazily yields an identity result.
type IdentitySupplier func() IdentityResult
