package tebex

import (
	"time"

	"github.com/tebexkit/client-go/internal/api"
)

// Client is the entry point to the webstore API. Each resource family is
// exposed as a field. A Client is safe for concurrent use.
type Client struct {
	apiClient *api.Client

	Server    *Server
	Payments  *Payments
	Players   *Players
	Packages  *Packages
	Coupons   *Coupons
	Checkout  *Checkout
	GiftCards *GiftCards
	Bans      *Bans
	Queue     *Queue
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(secretKey string, cfg *clientConfig) (*api.Client, error) {
	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
		api.WithTimeout(cfg.timeout),
	}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}
	if cfg.logger != nil {
		apiOpts = append(apiOpts, api.WithLogger(cfg.logger))
	}
	return api.New(secretKey, apiOpts...)
}

// New creates a client authenticated with the webstore's secret key. It
// fails with ErrSecretKeyInvalid when secretKey is empty. No request is
// made until a resource method is called.
func New(secretKey string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL: defaultBaseURL,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(secretKey, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		apiClient: apiClient,
		Server:    &Server{api: apiClient},
		Payments:  &Payments{api: apiClient},
		Players:   &Players{api: apiClient},
		Packages:  &Packages{api: apiClient},
		Coupons:   &Coupons{api: apiClient},
		Checkout:  &Checkout{api: apiClient},
		GiftCards: &GiftCards{api: apiClient},
		Bans:      &Bans{api: apiClient},
		Queue:     &Queue{api: apiClient},
	}, nil
}

// BaseURL returns the API base URL the client talks to.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}

// Timeout returns the timeout applied to every request.
func (c *Client) Timeout() time.Duration {
	return c.apiClient.Timeout()
}
