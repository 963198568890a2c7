// Package client is the record access layer: typed CRUD operations against
// the HR backend's REST API. It does no caching, no retries and sets no
// timeouts; every call is one HTTP request whose outcome the caller handles.
package client

import (
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

type Client struct {
	http *resty.Client
}

// New builds a client for the backend at baseURL (scheme + host, no path).
// The REST contract lives under "/api".
func New(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/") + "/api").
		SetHeader("Content-Type", "application/json").
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			req.SetHeader("X-Request-ID", uuid.NewString())
			return nil
		})
	return &Client{http: c}
}
