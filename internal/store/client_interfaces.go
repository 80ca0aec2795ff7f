package store

import (
	"context"

	"github.com/MKhiriev/go-sign-in/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository persists sessions established by the handoff.
type SessionRepository interface {
	// SaveSession stores record and returns its row id.
	SaveSession(ctx context.Context, record models.SessionRecord) (int64, error)
	// GetLatestSession returns the most recently stored session, or
	// [ErrSessionNotFound] when none exists.
	GetLatestSession(ctx context.Context) (models.SessionRecord, error)
}
