package adapter

import (
	"github.com/MKhiriev/go-sign-in/internal/config"
	"github.com/MKhiriev/go-sign-in/internal/logger"
)

// ClientAdapters groups the remote collaborators of the client.
type ClientAdapters struct {
	ConfigFetcher    ConfigFetcher
	IdentityProvider IdentityProvider
	SessionServer    SessionServer
}

// NewClientAdapters builds the HTTP adapters from cfg. The config fetcher is
// wrapped with the TTL cache when cfg.Cache.ConfigTTL is positive.
func NewClientAdapters(cfg *config.ClientConfig, logger *logger.Logger) (*ClientAdapters, error) {
	httpAdapter, err := NewHTTPAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, err
	}

	return &ClientAdapters{
		ConfigFetcher:    NewCachedConfigFetcher(httpAdapter, cfg.Cache.ConfigTTL),
		IdentityProvider: httpAdapter,
		SessionServer:    httpAdapter,
	}, nil
}
