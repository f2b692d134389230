package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps *resty.Client. It is the single outbound HTTP client type
// used by suggestion providers and the Resend mailer.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
// baseURL and timeout are applied when non-zero. Every request sends and
// accepts JSON.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if baseURL != "" {
		client.SetBaseURL(baseURL)
	}
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
