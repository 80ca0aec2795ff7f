package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sign-in/internal/adapter"
	"github.com/MKhiriev/go-sign-in/internal/logger"
	"github.com/MKhiriev/go-sign-in/internal/session"
	"github.com/MKhiriev/go-sign-in/internal/store"
	"github.com/MKhiriev/go-sign-in/internal/utils"
	"github.com/MKhiriev/go-sign-in/models"
)

type sessionHandoff struct {
	server   adapter.SessionServer
	sessions store.SessionRepository
}

// NewSessionHandoff returns the default [SessionHandoff]. It posts the
// provider's session request to server and stores the issued session.
func NewSessionHandoff(server adapter.SessionServer, sessions store.SessionRepository) SessionHandoff {
	return &sessionHandoff{server: server, sessions: sessions}
}

func (h *sessionHandoff) Establish(ctx context.Context, provider session.Provider, navigation models.NavigationDirective) error {
	req := provider.SessionRequest()
	req.Navigation = navigation

	token, err := h.server.Establish(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionHandoff.Establish").
			Str("provider", req.Provider).
			Msg("session server rejected session request")
		return fmt.Errorf("%w: %w", ErrHandoff, err)
	}

	return persistSession(ctx, h.sessions, req.Provider, token, navigation)
}

type legacyHandoff struct {
	server   adapter.SessionServer
	sessions store.SessionRepository
}

// NewLegacyHandoff returns the default [LegacyHandoff].
func NewLegacyHandoff(server adapter.SessionServer, sessions store.SessionRepository) LegacyHandoff {
	return &legacyHandoff{server: server, sessions: sessions}
}

func (h *legacyHandoff) SignIn(ctx context.Context, navigation models.NavigationDirective) error {
	token, err := h.server.LegacySignIn(ctx, navigation)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "legacyHandoff.SignIn").Msg("legacy sign-in failed")
		return fmt.Errorf("%w: %w", ErrHandoff, err)
	}

	return persistSession(ctx, h.sessions, models.StrategyDirectCredential.String(), token, navigation)
}

func persistSession(ctx context.Context, sessions store.SessionRepository, provider, token string, navigation models.NavigationDirective) error {
	log := logger.FromContext(ctx)

	claims, err := utils.ParseSessionClaims(token)
	if err != nil {
		log.Err(err).Str("func", "persistSession").Msg("issued session token is unreadable")
		return fmt.Errorf("%w: %w", ErrHandoff, err)
	}

	var nav json.RawMessage
	if navigation != nil {
		if nav, err = json.Marshal(navigation); err != nil {
			return fmt.Errorf("%w: encode navigation: %w", ErrHandoff, err)
		}
	}

	id, err := sessions.SaveSession(ctx, models.SessionRecord{
		UserID:     claims.Subject,
		Provider:   provider,
		Token:      token,
		Navigation: nav,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("%w: save session: %w", ErrHandoff, err)
	}

	log.Info().
		Str("func", "persistSession").
		Int64("session_id", id).
		Str("user_id", claims.Subject).
		Str("provider", provider).
		Msg("session established")

	return nil
}
