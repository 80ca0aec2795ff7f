package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sign-in/models"
)

func TestPrometheusRecorder_ObserveNegotiation(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewPrometheusRecorder(reg)
	require.NoError(t, err)

	r.ObserveNegotiation(models.StrategyRegister, models.OutcomeSuccess, 120*time.Millisecond)
	r.ObserveNegotiation(models.StrategyRegister, models.OutcomeFailure, 10*time.Millisecond)
	r.ObserveNegotiation(models.StrategyRegister, models.OutcomeSuccess, 80*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.negotiations.WithLabelValues("register", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.negotiations.WithLabelValues("register", "failure")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.duration))
}

func TestPrometheusRecorder_SetActiveIndicators(t *testing.T) {
	r, err := NewPrometheusRecorder(prometheus.NewRegistry())
	require.NoError(t, err)

	r.SetActiveIndicators(2)
	assert.Equal(t, 2.0, testutil.ToFloat64(r.indicators))

	r.SetActiveIndicators(0)
	assert.Equal(t, 0.0, testutil.ToFloat64(r.indicators))
}

func TestNewPrometheusRecorder_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()

	first, err := NewPrometheusRecorder(reg)
	require.NoError(t, err)
	second, err := NewPrometheusRecorder(reg)
	require.NoError(t, err)

	second.ObserveNegotiation(models.StrategyStateResume, models.OutcomeSuccess, time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(first.negotiations.WithLabelValues("state", "success")))
}

func TestNopRecorder(t *testing.T) {
	var r Recorder = NopRecorder{}
	assert.NotPanics(t, func() {
		r.ObserveNegotiation(models.StrategyDirectCredential, models.OutcomeIgnored, 0)
		r.SetActiveIndicators(1)
	})
}
