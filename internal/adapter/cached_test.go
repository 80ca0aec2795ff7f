package adapter

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/go-sign-in/internal/mock"
	"github.com/MKhiriev/go-sign-in/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewCachedConfigFetcher_ZeroTTLReturnsNext(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock.NewMockConfigFetcher(ctrl)

	assert.Same(t, ConfigFetcher(next), NewCachedConfigFetcher(next, 0))
}

func TestCachedConfigFetcher_ReusesSuccessfulFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock.NewMockConfigFetcher(ctrl)
	ctx := context.Background()

	want := models.RemoteConfig{Name: models.ConfigNameMigrate, Raw: json.RawMessage(`{"v":1}`)}
	next.EXPECT().Fetch(ctx, models.ConfigNameMigrate).Return(want, nil).Times(1)

	fetcher := NewCachedConfigFetcher(next, time.Minute)

	for i := 0; i < 3; i++ {
		got, err := fetcher.Fetch(ctx, models.ConfigNameMigrate)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestCachedConfigFetcher_DoesNotCacheFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock.NewMockConfigFetcher(ctrl)
	ctx := context.Background()

	want := models.RemoteConfig{Name: models.ConfigNameState, Raw: json.RawMessage(`{}`)}
	gomock.InOrder(
		next.EXPECT().Fetch(ctx, models.ConfigNameState).Return(models.RemoteConfig{}, ErrFetch),
		next.EXPECT().Fetch(ctx, models.ConfigNameState).Return(want, nil),
	)

	fetcher := NewCachedConfigFetcher(next, time.Minute)

	_, err := fetcher.Fetch(ctx, models.ConfigNameState)
	assert.ErrorIs(t, err, ErrFetch)

	got, err := fetcher.Fetch(ctx, models.ConfigNameState)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCachedConfigFetcher_KeysByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock.NewMockConfigFetcher(ctrl)
	ctx := context.Background()

	state := models.RemoteConfig{Name: models.ConfigNameState, Raw: json.RawMessage(`{"s":1}`)}
	migrate := models.RemoteConfig{Name: models.ConfigNameMigrate, Raw: json.RawMessage(`{"m":1}`)}
	next.EXPECT().Fetch(ctx, models.ConfigNameState).Return(state, nil)
	next.EXPECT().Fetch(ctx, models.ConfigNameMigrate).Return(migrate, nil)

	fetcher := NewCachedConfigFetcher(next, time.Minute)

	got, err := fetcher.Fetch(ctx, models.ConfigNameState)
	require.NoError(t, err)
	assert.Equal(t, state, got)

	got, err = fetcher.Fetch(ctx, models.ConfigNameMigrate)
	require.NoError(t, err)
	assert.Equal(t, migrate, got)
}
