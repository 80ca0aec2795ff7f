package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sign-in/internal/adapter"
	"github.com/MKhiriev/go-sign-in/internal/config"
	"github.com/MKhiriev/go-sign-in/internal/loading"
	"github.com/MKhiriev/go-sign-in/internal/mock"
	"github.com/MKhiriev/go-sign-in/internal/session"
	"github.com/MKhiriev/go-sign-in/models"
)

// recordingIndicator keeps the order of show/hide calls.
type recordingIndicator struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingIndicator) Show(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "show:"+id)
}

func (r *recordingIndicator) Hide(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "hide:"+id)
}

func (r *recordingIndicator) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

type negotiationFixture struct {
	svc       *negotiationService
	fetcher   *mock.MockConfigFetcher
	identity  *mock.MockIdentityProvider
	handoff   *mock.MockSessionHandoff
	legacy    *mock.MockLegacyHandoff
	signal    *mock.MockErrorSignal
	indicator *recordingIndicator
	scope     *loading.Scope
}

// newNegotiationFixture - хелпер для создания negotiationService с моками
func newNegotiationFixture(t *testing.T, ctrl *gomock.Controller, cfg config.ClientApp) *negotiationFixture {
	t.Helper()

	f := &negotiationFixture{
		fetcher:   mock.NewMockConfigFetcher(ctrl),
		identity:  mock.NewMockIdentityProvider(ctrl),
		handoff:   mock.NewMockSessionHandoff(ctrl),
		legacy:    mock.NewMockLegacyHandoff(ctrl),
		signal:    mock.NewMockErrorSignal(ctrl),
		indicator: &recordingIndicator{},
	}
	f.scope = loading.NewScope(f.indicator)
	f.svc = NewNegotiationService(cfg, NegotiationDeps{
		Fetcher:  f.fetcher,
		Identity: f.identity,
		Handoff:  f.handoff,
		Legacy:   f.legacy,
		Signal:   f.signal,
		Scope:    f.scope,
	}).(*negotiationService)

	return f
}

func (f *negotiationFixture) assertBalanced(t *testing.T) {
	t.Helper()
	st := f.scope.Stats()
	assert.Equal(t, st.Acquires, st.Releases, "loading handle acquires and releases must balance")
	assert.Zero(t, st.Active)
}

func remoteConfig(name, raw string) models.RemoteConfig {
	return models.RemoteConfig{Name: name, Raw: json.RawMessage(raw)}
}

var (
	errTransport   = errors.New("connection refused")
	testNavigation = models.NavigationDirective{"redirect": "dashboard", "tab": 2}
)

// ── StateResume / Register: success ──────────────────────────────────────────

func TestNegotiate_StateResume_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newNegotiationFixture(t, ctrl, config.ClientApp{})
	ctx := context.Background()

	stateCfg := remoteConfig(models.ConfigNameState, `{"a":1}`)
	migrateCfg := remoteConfig(models.ConfigNameMigrate, `{"m":1}`)

	gomock.InOrder(
		f.fetcher.EXPECT().Fetch(gomock.Any(), models.ConfigNameState).Return(stateCfg, nil),
		f.fetcher.EXPECT().Fetch(gomock.Any(), models.ConfigNameMigrate).Return(migrateCfg, nil),
		f.handoff.EXPECT().
			Establish(gomock.Any(), session.StateResumeProvider{State: stateCfg, Migrate: migrateCfg}, testNavigation).
			DoAndReturn(func(context.Context, session.Provider, models.NavigationDirective) error {
				// the fetch indicator is hidden before the handoff runs
				assert.False(t, f.scope.Held(FetchIndicatorID))
				return nil
			}),
	)

	out, err := f.svc.Negotiate(ctx, models.StrategyStateResume, testNavigation)

	require.NoError(t, err)
	assert.True(t, out.Succeeded())
	assert.Equal(t, models.StrategyStateResume, out.Strategy)
	assert.Equal(t, []string{"show:config-fetch", "hide:config-fetch"}, f.indicator.snapshot())
	f.assertBalanced(t)
}

func TestNegotiate_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newNegotiationFixture(t, ctrl, config.ClientApp{})

	configB := remoteConfig(models.ConfigNameRegister, `{"b":1}`)
	configC := remoteConfig(models.ConfigNameMigrate, `{"c":1}`)

	gomock.InOrder(
		f.fetcher.EXPECT().Fetch(gomock.Any(), models.ConfigNameRegister).Return(configB, nil),
		f.fetcher.EXPECT().Fetch(gomock.Any(), models.ConfigNameMigrate).Return(configC, nil),
	)
	f.handoff.EXPECT().
		Establish(gomock.Any(), session.RegisterProvider{Register: configB, Migrate: configC}, testNavigation).
		Return(nil).
		Times(1)

	out, err := f.svc.Negotiate(context.Background(), models.StrategyRegister, testNavigation)

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeSuccess, out.Status)
	f.assertBalanced(t)
}

// ── StateResume / Register: fetch failures ───────────────────────────────────

func TestNegotiate_FetchFailure(t *testing.T) {
	tests := []struct {
		name        string
		strategy    models.StrategyKind
		failPrimary bool
	}{
		{name: "state config fails", strategy: models.StrategyStateResume, failPrimary: true},
		{name: "state migrate fails", strategy: models.StrategyStateResume},
		{name: "register config fails", strategy: models.StrategyRegister, failPrimary: true},
		{name: "register migrate fails", strategy: models.StrategyRegister},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newNegotiationFixture(t, ctrl, config.ClientApp{})
			primaryName := tt.strategy.ConfigName()

			if tt.failPrimary {
				f.fetcher.EXPECT().Fetch(gomock.Any(), primaryName).Return(models.RemoteConfig{}, errTransport)
			} else {
				gomock.InOrder(
					f.fetcher.EXPECT().Fetch(gomock.Any(), primaryName).Return(remoteConfig(primaryName, `{}`), nil),
					f.fetcher.EXPECT().Fetch(gomock.Any(), models.ConfigNameMigrate).Return(models.RemoteConfig{}, errTransport),
				)
			}
			f.signal.EXPECT().Show(ErrorWhileLogin).Times(1)

			out, err := f.svc.Negotiate(context.Background(), tt.strategy, testNavigation)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfigFetch)
			assert.ErrorIs(t, err, errTransport)
			assert.Equal(t, models.OutcomeFailure, out.Status)
			assert.Equal(t, tt.strategy, out.Strategy)
			f.assertBalanced(t)
		})
	}
}

func TestNegotiate_FetchFailure_ReleasesOutstandingLoginIndicator(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newNegotiationFixture(t, ctrl, config.ClientApp{})
	ctx := context.Background()

	// left over by an earlier negotiation
	f.scope.Acquire(ctx, LoginIndicatorID)

	f.fetcher.EXPECT().Fetch(gomock.Any(), models.ConfigNameState).Return(models.RemoteConfig{}, errTransport)
	f.signal.EXPECT().Show(ErrorWhileLogin).Do(func(string) {
		// both indicators are gone before the user sees the error
		assert.Equal(t, []string{
			"show:login",
			"show:config-fetch",
			"hide:login",
			"hide:config-fetch",
		}, f.indicator.snapshot())
	})

	_, err := f.svc.Negotiate(ctx, models.StrategyStateResume, testNavigation)

	assert.ErrorIs(t, err, ErrConfigFetch)
	assert.False(t, f.scope.Held(LoginIndicatorID))
	f.assertBalanced(t)
}

func TestNegotiate_FetchFailure_WithoutLoginIndicator(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newNegotiationFixture(t, ctrl, config.ClientApp{})

	f.fetcher.EXPECT().Fetch(gomock.Any(), models.ConfigNameRegister).Return(models.RemoteConfig{}, adapter.ErrFetch)
	f.signal.EXPECT().Show(ErrorWhileLogin)

	_, err := f.svc.Negotiate(context.Background(), models.StrategyRegister, nil)

	assert.ErrorIs(t, err, adapter.ErrFetch)
	assert.Equal(t, []string{"show:config-fetch", "hide:config-fetch"}, f.indicator.snapshot())
}

// ── Parallel fetch ───────────────────────────────────────────────────────────

func TestNegotiate_ParallelFetch_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newNegotiationFixture(t, ctrl, config.ClientApp{FetchMode: config.FetchModeParallel})

	stateCfg := remoteConfig(models.ConfigNameState, `{"s":1}`)
	migrateCfg := remoteConfig(models.ConfigNameMigrate, `{"m":1}`)

	f.fetcher.EXPECT().Fetch(gomock.Any(), models.ConfigNameState).Return(stateCfg, nil)
	f.fetcher.EXPECT().Fetch(gomock.Any(), models.ConfigNameMigrate).Return(migrateCfg, nil)
	f.handoff.EXPECT().
		Establish(gomock.Any(), session.StateResumeProvider{State: stateCfg, Migrate: migrateCfg}, testNavigation).
		Return(nil)

	out, err := f.svc.Negotiate(context.Background(), models.StrategyStateResume, testNavigation)

	require.NoError(t, err)
	assert.True(t, out.Succeeded())
	f.assertBalanced(t)
}

func TestNegotiate_ParallelFetch_FailureHasSameCleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newNegotiationFixture(t, ctrl, config.ClientApp{FetchMode: config.FetchModeParallel})
	ctx := context.Background()

	f.scope.Acquire(ctx, LoginIndicatorID)

	f.fetcher.EXPECT().Fetch(gomock.Any(), models.ConfigNameRegister).Return(remoteConfig(models.ConfigNameRegister, `{}`), nil)
	f.fetcher.EXPECT().Fetch(gomock.Any(), models.ConfigNameMigrate).Return(models.RemoteConfig{}, errTransport)
	f.signal.EXPECT().Show(ErrorWhileLogin).Times(1)

	out, err := f.svc.Negotiate(ctx, models.StrategyRegister, testNavigation)

	assert.ErrorIs(t, err, ErrConfigFetch)
	assert.Equal(t, models.OutcomeFailure, out.Status)
	assert.False(t, f.scope.Held(LoginIndicatorID))
	f.assertBalanced(t)
}

// ── NativeFederated ──────────────────────────────────────────────────────────

func TestNegotiate_NativeFederated_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newNegotiationFixture(t, ctrl, config.ClientApp{IdentityClientID: "client-1"})

	identity := models.IdentityResult{Success: true, Payload: map[string]any{"idToken": "abc"}}
	f.identity.EXPECT().Login(gomock.Any(), "client-1").Return(identity, nil)
	f.handoff.EXPECT().
		Establish(gomock.Any(), gomock.Any(), testNavigation).
		DoAndReturn(func(_ context.Context, p session.Provider, _ models.NavigationDirective) error {
			require.IsType(t, session.NativeFederatedProvider{}, p)
			req := p.SessionRequest()
			require.NotNil(t, req.Identity)
			assert.True(t, req.Identity.Success)
			assert.Equal(t, "abc", req.Identity.Payload["idToken"])
			return nil
		})

	out, err := f.svc.Negotiate(context.Background(), models.StrategyNativeFederated, testNavigation)

	require.NoError(t, err)
	assert.True(t, out.Succeeded())
	// no fetch phase, no indicator
	assert.Empty(t, f.indicator.snapshot())
}

func TestNegotiate_NativeFederated_ForwardPolicyHandsOffFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newNegotiationFixture(t, ctrl, config.ClientApp{IdentityFailurePolicy: config.IdentityPolicyForward})

	f.identity.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.IdentityResult{Err: "12501"}, adapter.ErrIdentityRejected)
	f.handoff.EXPECT().
		Establish(gomock.Any(), gomock.Any(), testNavigation).
		DoAndReturn(func(_ context.Context, p session.Provider, _ models.NavigationDirective) error {
			req := p.SessionRequest()
			require.NotNil(t, req.Identity)
			assert.False(t, req.Identity.Success)
			assert.Equal(t, "12501", req.Identity.Err)
			return nil
		}).
		Times(1)

	out, err := f.svc.Negotiate(context.Background(), models.StrategyNativeFederated, testNavigation)

	require.NoError(t, err)
	assert.True(t, out.Succeeded())
}

func TestNegotiate_NativeFederated_ForwardPolicyFillsMissingError(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newNegotiationFixture(t, ctrl, config.ClientApp{})

	f.identity.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.IdentityResult{}, errTransport)
	f.handoff.EXPECT().
		Establish(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p session.Provider, _ models.NavigationDirective) error {
			assert.Equal(t, errTransport.Error(), p.SessionRequest().Identity.Err)
			return nil
		})

	_, err := f.svc.Negotiate(context.Background(), models.StrategyNativeFederated, nil)
	require.NoError(t, err)
}

func TestNegotiate_NativeFederated_FailFastPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newNegotiationFixture(t, ctrl, config.ClientApp{IdentityFailurePolicy: config.IdentityPolicyFailFast})

	f.identity.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.IdentityResult{Err: "12501"}, adapter.ErrIdentityRejected)
	f.signal.EXPECT().Show(ErrorWhileLogin).Times(1)
	f.handoff.EXPECT().Establish(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	out, err := f.svc.Negotiate(context.Background(), models.StrategyNativeFederated, testNavigation)

	assert.ErrorIs(t, err, ErrIdentityProvider)
	assert.Contains(t, err.Error(), "12501")
	assert.Equal(t, models.OutcomeFailure, out.Status)
}

func TestNegotiate_NativeFederated_FailFastPolicyStillHandsOffSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newNegotiationFixture(t, ctrl, config.ClientApp{IdentityFailurePolicy: config.IdentityPolicyFailFast})

	f.identity.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.IdentityResult{Success: true}, nil)
	f.handoff.EXPECT().Establish(gomock.Any(), gomock.Any(), testNavigation).Return(nil)

	out, err := f.svc.Negotiate(context.Background(), models.StrategyNativeFederated, testNavigation)

	require.NoError(t, err)
	assert.True(t, out.Succeeded())
}

// ── DirectCredential ─────────────────────────────────────────────────────────

func TestNegotiate_DirectCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newNegotiationFixture(t, ctrl, config.ClientApp{})

	// no fetcher, identity or handoff expectations: any call fails the test
	f.legacy.EXPECT().SignIn(gomock.Any(), testNavigation).Return(nil).Times(1)

	out, err := f.svc.Negotiate(context.Background(), models.StrategyDirectCredential, testNavigation)

	require.NoError(t, err)
	assert.True(t, out.Succeeded())
	assert.Equal(t, models.StrategyDirectCredential, out.Strategy)
	assert.Empty(t, f.indicator.snapshot())
}

func TestNegotiate_DirectCredential_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newNegotiationFixture(t, ctrl, config.ClientApp{})

	f.legacy.EXPECT().SignIn(gomock.Any(), testNavigation).Return(errTransport)

	out, err := f.svc.Negotiate(context.Background(), models.StrategyDirectCredential, testNavigation)

	assert.ErrorIs(t, err, ErrHandoff)
	assert.ErrorIs(t, err, errTransport)
	assert.Equal(t, models.OutcomeFailure, out.Status)
}

// ── Handoff / unknown strategy ───────────────────────────────────────────────

func TestNegotiate_HandoffFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newNegotiationFixture(t, ctrl, config.ClientApp{})

	f.fetcher.EXPECT().Fetch(gomock.Any(), models.ConfigNameState).Return(remoteConfig(models.ConfigNameState, `{}`), nil)
	f.fetcher.EXPECT().Fetch(gomock.Any(), models.ConfigNameMigrate).Return(remoteConfig(models.ConfigNameMigrate, `{}`), nil)
	f.handoff.EXPECT().Establish(gomock.Any(), gomock.Any(), gomock.Any()).Return(errTransport)

	out, err := f.svc.Negotiate(context.Background(), models.StrategyStateResume, testNavigation)

	assert.ErrorIs(t, err, ErrHandoff)
	assert.Equal(t, models.OutcomeFailure, out.Status)
	f.assertBalanced(t)
}

func TestNegotiate_UnknownStrategy(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newNegotiationFixture(t, ctrl, config.ClientApp{})

	out, err := f.svc.Negotiate(context.Background(), models.StrategyUnknown, testNavigation)

	assert.ErrorIs(t, err, ErrUnknownStrategy)
	assert.Equal(t, models.OutcomeFailure, out.Status)
	assert.Empty(t, f.indicator.snapshot())
}

// ── Single-flight / cancellation ─────────────────────────────────────────────

func TestNegotiate_ConcurrentTriggerIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newNegotiationFixture(t, ctrl, config.ClientApp{})

	entered := make(chan struct{})
	unblock := make(chan struct{})

	f.fetcher.EXPECT().Fetch(gomock.Any(), models.ConfigNameState).
		DoAndReturn(func(context.Context, string) (models.RemoteConfig, error) {
			close(entered)
			<-unblock
			return remoteConfig(models.ConfigNameState, `{}`), nil
		})
	f.fetcher.EXPECT().Fetch(gomock.Any(), models.ConfigNameMigrate).Return(remoteConfig(models.ConfigNameMigrate, `{}`), nil)
	f.handoff.EXPECT().Establish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	done := make(chan models.Outcome, 1)
	go func() {
		out, _ := f.svc.Negotiate(context.Background(), models.StrategyStateResume, testNavigation)
		done <- out
	}()

	<-entered
	ignored, err := f.svc.Negotiate(context.Background(), models.StrategyRegister, testNavigation)

	assert.ErrorIs(t, err, ErrNegotiationInProgress)
	assert.Equal(t, models.OutcomeIgnored, ignored.Status)

	close(unblock)
	select {
	case out := <-done:
		assert.True(t, out.Succeeded())
	case <-time.After(5 * time.Second):
		t.Fatal("first negotiation did not finish")
	}
	f.assertBalanced(t)
}

func TestNegotiate_GuardResetsAfterCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newNegotiationFixture(t, ctrl, config.ClientApp{})

	f.legacy.EXPECT().SignIn(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	for i := 0; i < 2; i++ {
		_, err := f.svc.Negotiate(context.Background(), models.StrategyDirectCredential, nil)
		require.NoError(t, err)
	}
}

func TestNegotiate_CancelledDuringFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newNegotiationFixture(t, ctrl, config.ClientApp{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.fetcher.EXPECT().Fetch(gomock.Any(), models.ConfigNameState).
		DoAndReturn(func(ctx context.Context, _ string) (models.RemoteConfig, error) {
			cancel()
			<-ctx.Done()
			return models.RemoteConfig{}, ctx.Err()
		})

	out, err := f.svc.Negotiate(ctx, models.StrategyStateResume, testNavigation)

	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, ErrNegotiationCancelled)
	assert.NotErrorIs(t, err, ErrConfigFetch)
	assert.Equal(t, models.OutcomeFailure, out.Status)
	assert.False(t, f.scope.Held(FetchIndicatorID))
	f.assertBalanced(t)
}

func TestNegotiate_CancelledDuringIdentityLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newNegotiationFixture(t, ctrl, config.ClientApp{IdentityFailurePolicy: config.IdentityPolicyFailFast})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.identity.EXPECT().Login(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) (models.IdentityResult, error) {
			cancel()
			return models.IdentityResult{Err: "cancelled"}, context.Canceled
		})

	_, err := f.svc.Negotiate(ctx, models.StrategyNativeFederated, nil)

	assert.ErrorIs(t, err, context.Canceled)
}

// ── Properties ───────────────────────────────────────────────────────────────

func TestNegotiate_BalancedAcrossSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newNegotiationFixture(t, ctrl, config.ClientApp{})
	ctx := context.Background()

	// success, failure on migrate, failure on primary, success
	gomock.InOrder(
		f.fetcher.EXPECT().Fetch(gomock.Any(), models.ConfigNameState).Return(remoteConfig(models.ConfigNameState, `{}`), nil),
		f.fetcher.EXPECT().Fetch(gomock.Any(), models.ConfigNameMigrate).Return(remoteConfig(models.ConfigNameMigrate, `{}`), nil),
		f.fetcher.EXPECT().Fetch(gomock.Any(), models.ConfigNameRegister).Return(remoteConfig(models.ConfigNameRegister, `{}`), nil),
		f.fetcher.EXPECT().Fetch(gomock.Any(), models.ConfigNameMigrate).Return(models.RemoteConfig{}, errTransport),
		f.fetcher.EXPECT().Fetch(gomock.Any(), models.ConfigNameState).Return(models.RemoteConfig{}, errTransport),
		f.fetcher.EXPECT().Fetch(gomock.Any(), models.ConfigNameRegister).Return(remoteConfig(models.ConfigNameRegister, `{}`), nil),
		f.fetcher.EXPECT().Fetch(gomock.Any(), models.ConfigNameMigrate).Return(remoteConfig(models.ConfigNameMigrate, `{}`), nil),
	)
	f.handoff.EXPECT().Establish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.signal.EXPECT().Show(ErrorWhileLogin).Times(2)

	strategies := []models.StrategyKind{
		models.StrategyStateResume,
		models.StrategyRegister,
		models.StrategyStateResume,
		models.StrategyRegister,
	}
	for _, s := range strategies {
		_, _ = f.svc.Negotiate(ctx, s, testNavigation)
	}

	st := f.scope.Stats()
	assert.Equal(t, 4, st.Acquires)
	f.assertBalanced(t)
}

func TestNegotiate_RecordsMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newNegotiationFixture(t, ctrl, config.ClientApp{})
	rec := mock.NewMockRecorder(ctrl)
	f.svc.Recorder = rec

	f.legacy.EXPECT().SignIn(gomock.Any(), gomock.Any()).Return(nil)
	rec.EXPECT().ObserveNegotiation(models.StrategyDirectCredential, models.OutcomeSuccess, gomock.Any())

	_, err := f.svc.Negotiate(context.Background(), models.StrategyDirectCredential, nil)
	require.NoError(t, err)
}
