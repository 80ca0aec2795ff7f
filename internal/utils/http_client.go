package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures [NewHTTPClient].
type HTTPClientOptions struct {
	// BaseURL is prefixed to every relative request path.
	BaseURL string
	// Timeout bounds a single request attempt. Zero keeps resty's default.
	Timeout time.Duration
	// RetryCount is the number of retries on transport errors and 5xx
	// responses. Zero disables retries.
	RetryCount int
}

// NewHTTPClient creates an independent HTTPClient configured from opts.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{BaseURL: "http://localhost:8080"})
//	resp, err := client.R().Get("/api/config/session-provider/state")
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New()
	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.RetryCount > 0 {
		client.
			SetRetryCount(opts.RetryCount).
			SetRetryWaitTime(100 * time.Millisecond).
			SetRetryMaxWaitTime(time.Second).
			AddRetryCondition(func(resp *resty.Response, err error) bool {
				return err != nil || resp.StatusCode() >= 500
			})
	}

	return &HTTPClient{Client: client}
}
