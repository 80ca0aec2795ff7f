package service

import "github.com/MKhiriev/go-sign-in/internal/logger"

type logErrorSignal struct {
	logger *logger.Logger
}

// NewLogErrorSignal returns an [ErrorSignal] that writes the code to log at
// error level.
func NewLogErrorSignal(log *logger.Logger) ErrorSignal {
	return &logErrorSignal{logger: log}
}

func (s *logErrorSignal) Show(code string) {
	s.logger.Error().Str("func", "logErrorSignal.Show").Str("code", code).Msg("sign-in error shown to user")
}
