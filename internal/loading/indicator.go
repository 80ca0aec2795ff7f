// Package loading coordinates the shared loading indicator shown while a
// sign-in negotiation is resolving remote state.
//
// The indicator itself is a visual concern owned by the caller. This package
// only tracks which handles are outstanding and forwards show/hide requests
// to an [Indicator].
package loading

//go:generate mockgen -source=indicator.go -destination=../mock/indicator_mock.go -package=mock

import (
	"github.com/MKhiriev/go-sign-in/internal/logger"
)

// Indicator is the surface that actually renders (or records) the loading
// state. Show and Hide are called with the handle id.
type Indicator interface {
	Show(id string)
	Hide(id string)
}

// LogIndicator is an [Indicator] without a visual surface: it writes every
// show/hide transition to the logger. The CLI client uses it.
type LogIndicator struct {
	logger *logger.Logger
}

// NewLogIndicator returns a [LogIndicator] writing to log.
func NewLogIndicator(log *logger.Logger) *LogIndicator {
	return &LogIndicator{logger: log}
}

func (l *LogIndicator) Show(id string) {
	l.logger.Debug().Str("func", "LogIndicator.Show").Str("indicator", id).Msg("loading indicator shown")
}

func (l *LogIndicator) Hide(id string) {
	l.logger.Debug().Str("func", "LogIndicator.Hide").Str("indicator", id).Msg("loading indicator hidden")
}
