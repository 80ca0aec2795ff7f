package service

import (
	"github.com/MKhiriev/go-sign-in/internal/adapter"
	"github.com/MKhiriev/go-sign-in/internal/config"
	"github.com/MKhiriev/go-sign-in/internal/loading"
	"github.com/MKhiriev/go-sign-in/internal/logger"
	"github.com/MKhiriev/go-sign-in/internal/metrics"
	"github.com/MKhiriev/go-sign-in/internal/store"
)

// ClientServices groups the client service layer.
type ClientServices struct {
	NegotiationService NegotiationService
	SessionHandoff     SessionHandoff
	LegacyHandoff      LegacyHandoff
	ErrorSignal        ErrorSignal
	LoadingScope       *loading.Scope
}

// NewClientServices wires the default collaborators around the negotiation
// service. recorder may be nil.
func NewClientServices(
	cfg config.ClientApp,
	adapters *adapter.ClientAdapters,
	storages *store.ClientStorages,
	recorder metrics.Recorder,
	logger *logger.Logger,
) *ClientServices {
	if recorder == nil {
		recorder = metrics.NopRecorder{}
	}

	scope := loading.NewScope(loading.NewLogIndicator(logger), loading.WithObserver(recorder))
	handoff := NewSessionHandoff(adapters.SessionServer, storages.SessionRepository)
	legacy := NewLegacyHandoff(adapters.SessionServer, storages.SessionRepository)
	signal := NewLogErrorSignal(logger)

	return &ClientServices{
		NegotiationService: NewNegotiationService(cfg, NegotiationDeps{
			Fetcher:  adapters.ConfigFetcher,
			Identity: adapters.IdentityProvider,
			Handoff:  handoff,
			Legacy:   legacy,
			Signal:   signal,
			Scope:    scope,
			Recorder: recorder,
		}),
		SessionHandoff: handoff,
		LegacyHandoff:  legacy,
		ErrorSignal:    signal,
		LoadingScope:   scope,
	}
}
