// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It wires the negotiation service and the background metrics endpoint into
// a single process lifecycle: one negotiation per run for the configured
// strategy.
package client
