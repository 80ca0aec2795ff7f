package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] to unset fields.
const (
	DefaultAdapterAddress = "http://localhost:8080"
	DefaultRequestTimeout = 15 * time.Second
	DefaultDSN            = "go-sign-in.db"
	DefaultLogFile        = "logs"
)

// ClientApp holds negotiation settings.
type ClientApp struct {
	// Strategy is the strategy name the CLI negotiates.
	Strategy string
	// IdentityClientID is passed to the identity SDK login call.
	IdentityClientID string
	// IdentityFailurePolicy is "forward" or "fail-fast".
	IdentityFailurePolicy string
	// FetchMode is "sequential" or "parallel".
	FetchMode string
	// Version is the client version string.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the remote services.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// RetryCount is the number of resty retries on transport errors.
	RetryCount int
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientCache holds remote config cache settings.
type ClientCache struct {
	// ConfigTTL is the cache lifetime; zero disables caching.
	ConfigTTL time.Duration
}

// ClientMetrics holds the metrics endpoint settings.
type ClientMetrics struct {
	// Address is the listen address; empty disables the endpoint.
	Address string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Cache   ClientCache
	Metrics ClientMetrics
	// LogFile is the client log file path.
	LogFile string
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration. args are the command-line arguments
// without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Strategy:              cfg.App.Strategy,
			IdentityClientID:      cfg.App.IdentityClientID,
			IdentityFailurePolicy: withDefault(cfg.App.IdentityFailurePolicy, IdentityPolicyForward),
			FetchMode:             withDefault(cfg.App.FetchMode, FetchModeSequential),
			Version:               cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    withDefault(cfg.Adapter.HTTPAddress, DefaultAdapterAddress),
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RetryCount:     cfg.Adapter.RetryCount,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: withDefault(cfg.Storage.DB.DSN, DefaultDSN)},
		},
		Cache:   ClientCache{ConfigTTL: cfg.Cache.ConfigTTL},
		Metrics: ClientMetrics{Address: cfg.Metrics.Address},
		LogFile: withDefault(cfg.Log.FilePath, DefaultLogFile),
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}

	return clientCfg, clientCfg.validate()
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
