// Package metrics exposes Prometheus instrumentation for sign-in
// negotiations and the HTTP router that serves it.
package metrics

//go:generate mockgen -source=recorder.go -destination=../mock/metrics_mock.go -package=mock

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-sign-in/models"
)

// Recorder receives negotiation measurements.
type Recorder interface {
	// ObserveNegotiation records one finished negotiation.
	ObserveNegotiation(strategy models.StrategyKind, status models.OutcomeStatus, elapsed time.Duration)
	// SetActiveIndicators reports how many loading handles are held.
	SetActiveIndicators(n int)
}

// PrometheusRecorder is a [Recorder] backed by Prometheus collectors.
type PrometheusRecorder struct {
	negotiations *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	indicators   prometheus.Gauge
}

// NewPrometheusRecorder creates the negotiation collectors and registers them
// on reg, or on prometheus.DefaultRegisterer when reg is nil. Collectors that
// are already registered are reused.
func NewPrometheusRecorder(reg prometheus.Registerer) (*PrometheusRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	r := &PrometheusRecorder{
		negotiations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "signin_negotiations_total",
			Help: "Sign-in negotiations by strategy and outcome",
		}, []string{"strategy", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "signin_negotiation_duration_seconds",
			Help:    "Wall time of sign-in negotiations",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"strategy"}),
		indicators: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "signin_loading_indicators_active",
			Help: "Loading indicators currently held",
		}),
	}

	var err error
	if r.negotiations, err = register(reg, r.negotiations); err != nil {
		return nil, err
	}
	if r.duration, err = register(reg, r.duration); err != nil {
		return nil, err
	}
	if r.indicators, err = register(reg, r.indicators); err != nil {
		return nil, err
	}

	return r, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (r *PrometheusRecorder) ObserveNegotiation(strategy models.StrategyKind, status models.OutcomeStatus, elapsed time.Duration) {
	r.negotiations.WithLabelValues(strategy.String(), string(status)).Inc()
	r.duration.WithLabelValues(strategy.String()).Observe(elapsed.Seconds())
}

func (r *PrometheusRecorder) SetActiveIndicators(n int) {
	r.indicators.Set(float64(n))
}

// NopRecorder discards all measurements.
type NopRecorder struct{}

func (NopRecorder) ObserveNegotiation(models.StrategyKind, models.OutcomeStatus, time.Duration) {}

func (NopRecorder) SetActiveIndicators(int) {}
