package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-sign-in/internal/adapter"
	"github.com/MKhiriev/go-sign-in/internal/config"
	"github.com/MKhiriev/go-sign-in/internal/loading"
	"github.com/MKhiriev/go-sign-in/internal/logger"
	"github.com/MKhiriev/go-sign-in/internal/metrics"
	"github.com/MKhiriev/go-sign-in/internal/session"
	"github.com/MKhiriev/go-sign-in/internal/utils"
	"github.com/MKhiriev/go-sign-in/models"
)

// Loading indicator ids.
const (
	FetchIndicatorID = "config-fetch"
	LoginIndicatorID = "login"
)

// NegotiationDeps are the collaborators of [NewNegotiationService].
type NegotiationDeps struct {
	Fetcher  adapter.ConfigFetcher
	Identity adapter.IdentityProvider
	Handoff  SessionHandoff
	Legacy   LegacyHandoff
	Signal   ErrorSignal
	Scope    *loading.Scope
	// Recorder may be nil.
	Recorder metrics.Recorder
}

type negotiationService struct {
	NegotiationDeps

	clientID      string
	failFast      bool
	parallelFetch bool

	active atomic.Bool
}

// NewNegotiationService builds the strategy orchestrator. cfg selects the
// identity failure policy, the fetch mode and the identity client id.
func NewNegotiationService(cfg config.ClientApp, deps NegotiationDeps) NegotiationService {
	if deps.Recorder == nil {
		deps.Recorder = metrics.NopRecorder{}
	}

	return &negotiationService{
		NegotiationDeps: deps,
		clientID:        cfg.IdentityClientID,
		failFast:        cfg.IdentityFailurePolicy == config.IdentityPolicyFailFast,
		parallelFetch:   cfg.FetchMode == config.FetchModeParallel,
	}
}

func (s *negotiationService) Negotiate(ctx context.Context, strategy models.StrategyKind, navigation models.NavigationDirective) (models.Outcome, error) {
	started := time.Now()

	if !s.active.CompareAndSwap(false, true) {
		logger.FromContext(ctx).Warn().
			Str("func", "negotiationService.Negotiate").
			Str("strategy", strategy.String()).
			Msg("negotiation already running, trigger ignored")
		out := models.Outcome{Strategy: strategy, Status: models.OutcomeIgnored, Err: ErrNegotiationInProgress}
		s.Recorder.ObserveNegotiation(strategy, out.Status, time.Since(started))
		return out, out.Err
	}
	defer s.active.Store(false)

	id := utils.NewID()
	l := &logger.Logger{Logger: logger.FromContext(ctx).With().
		Str("negotiation_id", id).
		Str("strategy", strategy.String()).
		Logger()}
	ctx = l.WithContext(utils.WithNegotiationID(ctx, id))

	var out models.Outcome
	switch strategy {
	case models.StrategyStateResume, models.StrategyRegister:
		out = s.negotiateWithConfigs(ctx, strategy, navigation)
	case models.StrategyNativeFederated:
		out = s.negotiateNativeFederated(ctx, navigation)
	case models.StrategyDirectCredential:
		out = s.negotiateDirectCredential(ctx, navigation)
	default:
		out = failure(strategy, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy))
	}

	s.Recorder.ObserveNegotiation(strategy, out.Status, time.Since(started))
	if out.Succeeded() {
		l.Info().Str("func", "negotiationService.Negotiate").Dur("elapsed", time.Since(started)).Msg("negotiation finished")
	} else {
		l.Err(out.Err).Str("func", "negotiationService.Negotiate").Msg("negotiation failed")
	}

	return out, out.Err
}

func (s *negotiationService) negotiateWithConfigs(ctx context.Context, strategy models.StrategyKind, navigation models.NavigationDirective) models.Outcome {
	handle := s.Scope.Acquire(ctx, FetchIndicatorID)
	released := false
	release := func() {
		if !released {
			released = true
			s.Scope.Release(ctx, handle)
		}
	}
	defer release()

	primary, migrate, err := s.fetchConfigs(ctx, strategy.ConfigName())
	if err != nil {
		if ctx.Err() != nil {
			return failure(strategy, fmt.Errorf("%w: %w", ErrNegotiationCancelled, context.Cause(ctx)))
		}

		s.Scope.ReleaseID(ctx, LoginIndicatorID)
		release()
		s.Signal.Show(ErrorWhileLogin)
		return failure(strategy, fmt.Errorf("%w: %w", ErrConfigFetch, err))
	}
	release()

	provider := session.Build(strategy, session.Inputs{Primary: primary, Migrate: migrate})

	return s.handoff(ctx, provider, navigation)
}

// fetchConfigs resolves the strategy config and the shared migrate config.
// Either failure fails the whole fetch.
func (s *negotiationService) fetchConfigs(ctx context.Context, name string) (primary, migrate models.RemoteConfig, err error) {
	if !s.parallelFetch {
		if primary, err = s.Fetcher.Fetch(ctx, name); err != nil {
			return models.RemoteConfig{}, models.RemoteConfig{}, err
		}
		if migrate, err = s.Fetcher.Fetch(ctx, models.ConfigNameMigrate); err != nil {
			return models.RemoteConfig{}, models.RemoteConfig{}, err
		}
		return primary, migrate, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var fetchErr error
		primary, fetchErr = s.Fetcher.Fetch(gctx, name)
		return fetchErr
	})
	g.Go(func() error {
		var fetchErr error
		migrate, fetchErr = s.Fetcher.Fetch(gctx, models.ConfigNameMigrate)
		return fetchErr
	})
	if err = g.Wait(); err != nil {
		return models.RemoteConfig{}, models.RemoteConfig{}, err
	}

	return primary, migrate, nil
}

func (s *negotiationService) negotiateNativeFederated(ctx context.Context, navigation models.NavigationDirective) models.Outcome {
	log := logger.FromContext(ctx)

	result, err := s.Identity.Login(ctx, s.clientID)
	if ctx.Err() != nil {
		return failure(models.StrategyNativeFederated, fmt.Errorf("%w: %w", ErrNegotiationCancelled, context.Cause(ctx)))
	}

	if err != nil || !result.Success {
		result.Success = false
		if result.Err == "" && err != nil {
			result.Err = err.Error()
		}

		if s.failFast {
			s.Signal.Show(ErrorWhileLogin)
			return failure(models.StrategyNativeFederated, fmt.Errorf("%w: %s", ErrIdentityProvider, result.Err))
		}
		log.Warn().
			Str("func", "negotiationService.negotiateNativeFederated").
			Str("identity_error", result.Err).
			Msg("identity sign-in failed, forwarding failure result to session handoff")
	}

	provider := session.Build(models.StrategyNativeFederated, session.Inputs{
		Identity: func() models.IdentityResult { return result },
	})

	return s.handoff(ctx, provider, navigation)
}

func (s *negotiationService) negotiateDirectCredential(ctx context.Context, navigation models.NavigationDirective) models.Outcome {
	if err := s.Legacy.SignIn(ctx, navigation); err != nil {
		return failure(models.StrategyDirectCredential, handoffError(ctx, err))
	}
	return models.Outcome{Strategy: models.StrategyDirectCredential, Status: models.OutcomeSuccess}
}

func (s *negotiationService) handoff(ctx context.Context, provider session.Provider, navigation models.NavigationDirective) models.Outcome {
	if err := s.Handoff.Establish(ctx, provider, navigation); err != nil {
		return failure(provider.Kind(), handoffError(ctx, err))
	}
	return models.Outcome{Strategy: provider.Kind(), Status: models.OutcomeSuccess}
}

func handoffError(ctx context.Context, err error) error {
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return fmt.Errorf("%w: %w", ErrNegotiationCancelled, err)
	}
	if errors.Is(err, ErrHandoff) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrHandoff, err)
}

func failure(strategy models.StrategyKind, err error) models.Outcome {
	return models.Outcome{Strategy: strategy, Status: models.OutcomeFailure, Err: err}
}
