// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-sign-in client. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds negotiation behaviour switches.
	App App `envPrefix:"APP_"`

	// Adapter holds settings for the remote configuration and session
	// services the client talks to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local session database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Cache holds the remote config cache settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Metrics holds the Prometheus exposition settings.
	Metrics Metrics `envPrefix:"METRICS_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level negotiation settings.
type App struct {
	// Strategy is the sign-in strategy the CLI triggers
	// ("state", "register", "native-federated", "direct-credential").
	// Env: APP_STRATEGY
	Strategy string `env:"STRATEGY"`

	// IdentityClientID is the client id handed to the native identity SDK.
	// Env: APP_IDENTITY_CLIENT_ID
	IdentityClientID string `env:"IDENTITY_CLIENT_ID"`

	// IdentityFailurePolicy selects what happens when the identity SDK
	// reports failure: "forward" or "fail-fast".
	// Env: APP_IDENTITY_FAILURE_POLICY
	IdentityFailurePolicy string `env:"IDENTITY_FAILURE_POLICY"`

	// FetchMode selects how the two remote configs are resolved:
	// "sequential" or "parallel".
	// Env: APP_FETCH_MODE
	FetchMode string `env:"FETCH_MODE"`

	// Version is the semantic version string of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds the outbound transport settings.
type Adapter struct {
	// HTTPAddress is the base address of the configuration and session
	// services (e.g. "https://auth.example.org").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is the number of transport-level retries resty performs.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the SQLite session database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Cache holds the remote config cache settings.
type Cache struct {
	// ConfigTTL is how long fetched remote configs are reused. Zero disables
	// caching so every negotiation re-fetches.
	// Env: CACHE_CONFIG_TTL
	ConfigTTL time.Duration `env:"CONFIG_TTL"`
}

// Metrics holds the Prometheus exposition settings.
type Metrics struct {
	// Address is the host:port the /metrics endpoint listens on. Empty
	// disables the endpoint.
	// Env: METRICS_ADDRESS
	Address string `env:"ADDRESS"`
}

// Log holds log output settings.
type Log struct {
	// FilePath is the client log file. Relative paths are resolved next to
	// the executable.
	// Env: LOG_FILE
	FilePath string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
