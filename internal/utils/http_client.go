package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient(0)
//	resp, err := client.R().Get("http://localhost:3000/health")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent HTTPClient. A positive timeout bounds
// every request; zero leaves requests unbounded, relying on the caller's
// context for cancellation.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
