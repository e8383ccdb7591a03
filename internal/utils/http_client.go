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

// NewHTTPClient creates an HTTPClient that asks for JSON by default.
//
// A zero timeout leaves requests unbounded, which is what resty does when
// no timeout is set.
//
// Example usage:
//
//	client := utils.NewHTTPClient(0)
//	resp, err := client.R().Get("https://api.randomuser.me/1.0/?results=5")
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
