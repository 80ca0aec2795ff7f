// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NavigationDirective is the opaque payload captured from the triggering UI
// event (for example "skip navigation" extras) and forwarded untouched to
// session establishment.
type NavigationDirective map[string]any
