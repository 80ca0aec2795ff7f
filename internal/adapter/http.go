package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-sign-in/internal/config"
	"github.com/MKhiriev/go-sign-in/internal/logger"
	"github.com/MKhiriev/go-sign-in/internal/utils"
	"github.com/MKhiriev/go-sign-in/models"
)

const (
	configPath       = "/api/config/session-provider/{name}"
	identityPath     = "/api/identity/login"
	sessionPath      = "/api/auth/session"
	legacySessionURL = "/api/auth/legacy"
)

// HTTPAdapter is the HTTP/REST implementation of [ConfigFetcher],
// [IdentityProvider] and [SessionServer].
type HTTPAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAdapter constructs an [HTTPAdapter]. It normalises and validates
// the base URL from adapterCfg.HTTPAddress and configures the underlying
// resty client with the request timeout and retry count.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (*HTTPAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:    baseURL,
		Timeout:    adapterCfg.RequestTimeout,
		RetryCount: adapterCfg.RetryCount,
	})

	return &HTTPAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Fetch implements [ConfigFetcher]. It GETs
// /api/config/session-provider/{name} and returns the body as the config
// document. Transport errors, non-2xx statuses and non-JSON bodies are
// reported wrapped in [ErrFetch].
func (h *HTTPAdapter) Fetch(ctx context.Context, name string) (models.RemoteConfig, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetPathParam("name", name).
		Get(configPath)
	if err != nil {
		h.logger.Err(err).Str("func", "HTTPAdapter.Fetch").Str("config", name).Msg("config request failed")
		return models.RemoteConfig{}, fmt.Errorf("%w: config %q request: %w", ErrFetch, name, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", "HTTPAdapter.Fetch").Str("config", name).Msg("config service returned an error")
		return models.RemoteConfig{}, fmt.Errorf("%w: config %q: %w", ErrFetch, name, err)
	}

	body := resp.Body()
	if len(body) == 0 || !json.Valid(body) {
		return models.RemoteConfig{}, fmt.Errorf("%w: config %q: %w", ErrFetch, name, ErrMalformedConfig)
	}

	raw := make(json.RawMessage, len(body))
	copy(raw, body)

	return models.RemoteConfig{Name: name, Raw: raw}, nil
}

// Login implements [IdentityProvider]. It POSTs the client id to
// /api/identity/login. Every failure still yields an identity result with
// Success=false so callers can forward it like the vendor failure callback.
func (h *HTTPAdapter) Login(ctx context.Context, clientID string) (models.IdentityResult, error) {
	var result models.IdentityResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"client_id": clientID}).
		SetResult(&result).
		Post(identityPath)
	if err != nil {
		return models.IdentityResult{Err: err.Error()}, fmt.Errorf("%w: identity request: %w", ErrIdentityRejected, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.IdentityResult{Err: err.Error()}, fmt.Errorf("%w: %w", ErrIdentityRejected, err)
	}

	if !result.Success {
		if result.Err == "" {
			result.Err = "identity provider reported failure"
		}
		return result, fmt.Errorf("%w: %s", ErrIdentityRejected, result.Err)
	}

	return result, nil
}

// Establish implements [SessionServer]. It POSTs req to /api/auth/session
// and returns the bearer token from the Authorization response header.
func (h *HTTPAdapter) Establish(ctx context.Context, req models.SessionRequest) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(sessionPath)
	if err != nil {
		return "", fmt.Errorf("establish session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return sessionToken(resp.Header().Get("Authorization"))
}

// LegacySignIn implements [SessionServer]. It POSTs the navigation directive
// to /api/auth/legacy and returns the bearer token from the response.
func (h *HTTPAdapter) LegacySignIn(ctx context.Context, navigation models.NavigationDirective) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"navigation": navigation}).
		Post(legacySessionURL)
	if err != nil {
		return "", fmt.Errorf("legacy sign-in request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return sessionToken(resp.Header().Get("Authorization"))
}

func sessionToken(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", ErrMissingSessionToken
	}
	token, err := utils.ParseBearerToken(header)
	if err != nil {
		return "", fmt.Errorf("parse bearer token: %w", err)
	}
	return token, nil
}
