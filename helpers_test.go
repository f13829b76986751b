package tebex

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// recorder captures the requests a fake plugin API receives.
type recorder struct {
	mu     sync.Mutex
	calls  int
	method string
	path   string
	query  url.Values
	body   []byte
	secret string
}

func (r *recorder) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// JSONBody decodes the last request body into a generic map.
func (r *recorder) JSONBody(t *testing.T) map[string]any {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	var m map[string]any
	require.NoError(t, json.Unmarshal(r.body, &m))
	return m
}

// newTestClient starts a server that answers every request with status and
// body, and returns a client pointed at it.
func newTestClient(t *testing.T, status int, body string) (*Client, *recorder) {
	t.Helper()
	rec := &recorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.calls++
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.Query()
		rec.body = data
		rec.secret = r.Header.Get("X-Tebex-Secret")
		rec.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	client, err := New("test-secret", WithBaseURL(server.URL))
	require.NoError(t, err)
	return client, rec
}

// newClosedClient returns a client whose server is already gone.
func newClosedClient(t *testing.T) *Client {
	t.Helper()
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client, err := New("test-secret", WithBaseURL(server.URL))
	require.NoError(t, err)
	return client
}

// testContext returns a context that is canceled when the test finishes,
// mirroring testing.T.Context for toolchains older than Go 1.24.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
