package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tebexkit/client-go/internal/apierrors"
)

const (
	// DefaultBaseURL is the production plugin API host.
	DefaultBaseURL = "https://plugin.tebex.io"
	// DefaultTimeout applies to every request unless overridden.
	DefaultTimeout = 8 * time.Second
	// SecretHeader carries the webstore secret key.
	SecretHeader = "X-Tebex-Secret"

	userAgent = "tebexkit-client-go"
)

// Config holds configuration for creating a new Client.
type Config struct {
	// SecretKey is sent in the X-Tebex-Secret header. Required.
	SecretKey string
	// BaseURL overrides DefaultBaseURL.
	BaseURL string
	// Timeout overrides DefaultTimeout. Ignored when HTTPClient is set.
	Timeout time.Duration
	// HTTPClient replaces the default client.
	HTTPClient *http.Client
	// Logger receives request logs. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Client is the shared transport handle. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures the API client.
type Option func(*Config)

// WithBaseURL sets the base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// New creates a new API client using functional options.
func New(secretKey string, opts ...Option) (*Client, error) {
	cfg := Config{SecretKey: secretKey}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewClient(cfg)
}

// NewClient creates a new API client from cfg.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, apierrors.New(apierrors.CodeSecretKeyInvalid)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  cfg.SecretKey,
		httpClient: httpClient,
		logger:     logger.Named("tebex"),
	}, nil
}

// BaseURL returns the base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the timeout configured on the underlying HTTP client.
func (c *Client) Timeout() time.Duration {
	return c.httpClient.Timeout
}

// Request describes a single API call.
type Request struct {
	// Method defaults to GET.
	Method string
	Path   string
	// Body is JSON-encoded when non-nil.
	Body  any
	Query url.Values
}

// Do sends req once and returns the raw response body of a 2xx response.
// Every other outcome is returned as an INVALID_REQUEST error wrapping
// either *apierrors.APIError or *apierrors.NetworkError.
func (c *Client) Do(ctx context.Context, req Request) ([]byte, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + req.Query.Encode()
	}

	var bodyReader io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, apierrors.New(apierrors.CodeInvalidRequest, fmt.Errorf("marshal request body: %w", err))
		}
		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, apierrors.New(apierrors.CodeInvalidRequest, fmt.Errorf("create request: %w", err))
	}
	httpReq.Header.Set(SecretHeader, c.secretKey)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)
	if bodyReader != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("method", method),
			zap.String("path", req.Path),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, apierrors.New(apierrors.CodeInvalidRequest, &apierrors.NetworkError{
			Err:    err,
			Method: method,
			URL:    target,
		})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.New(apierrors.CodeInvalidRequest, &apierrors.NetworkError{
			Err:    fmt.Errorf("read response: %w", err),
			Method: method,
			URL:    target,
		})
	}

	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("path", req.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apierrors.New(apierrors.CodeInvalidRequest, parseErrorResponse(resp.StatusCode, body))
	}

	return body, nil
}

// parseErrorResponse extracts the upstream error_code/error_message pair.
func parseErrorResponse(status int, body []byte) *apierrors.APIError {
	var errResp struct {
		ErrorCode    int    `json:"error_code"`
		ErrorMessage string `json:"error_message"`
		Message      string `json:"message"`
	}

	apiErr := &apierrors.APIError{StatusCode: status}
	if err := json.Unmarshal(body, &errResp); err == nil {
		apiErr.ErrorCode = errResp.ErrorCode
		apiErr.Message = errResp.ErrorMessage
		if apiErr.Message == "" {
			apiErr.Message = errResp.Message
		}
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(body))
	return apiErr
}
