package tebex

import (
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestDefaultConstants(t *testing.T) {
	if defaultBaseURL != "https://plugin.tebex.io" {
		t.Errorf("defaultBaseURL = %q", defaultBaseURL)
	}
	if defaultTimeout != 8*time.Second {
		t.Errorf("defaultTimeout = %v, want 8s", defaultTimeout)
	}
}

func TestWithBaseURL(t *testing.T) {
	cfg := &clientConfig{}
	WithBaseURL("https://custom.example.com")(cfg)
	if cfg.baseURL != "https://custom.example.com" {
		t.Errorf("baseURL = %s, want https://custom.example.com", cfg.baseURL)
	}
}

func TestWithHTTPClient(t *testing.T) {
	cfg := &clientConfig{}
	client := &http.Client{}
	WithHTTPClient(client)(cfg)
	if cfg.httpClient != client {
		t.Error("httpClient not set correctly")
	}
}

func TestWithTimeout(t *testing.T) {
	cfg := &clientConfig{}
	WithTimeout(3 * time.Second)(cfg)
	if cfg.timeout != 3*time.Second {
		t.Errorf("timeout = %v, want 3s", cfg.timeout)
	}
}

func TestWithLogger(t *testing.T) {
	cfg := &clientConfig{}
	logger := zap.NewExample()
	WithLogger(logger)(cfg)
	if cfg.logger != logger {
		t.Error("logger not set correctly")
	}
}
