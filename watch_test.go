package tebex

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQueue serves the queue endpoints and records acknowledged ids.
type fakeQueue struct {
	mu     sync.Mutex
	acked  [][]string
	onAck  func()
	checks int
}

func (f *fakeQueue) handler(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/queue":
		f.checks++
		io.WriteString(w, `{"meta":{"execute_offline":true,"next_check":1,"more":false},
			"players":[{"id":15,"name":"Notch","uuid":""},{"id":16,"name":"Away","uuid":""}]}`)
	case r.URL.Path == "/queue/offline-commands":
		io.WriteString(w, `{"meta":{"limited":false},"commands":[
			{"id":1,"command":"broadcast thanks","payment":3,"package":101,"conditions":{"delay":0},"player":{"id":15,"name":"Notch","uuid":""}}]}`)
	case r.URL.Path == "/queue/online-commands/15":
		io.WriteString(w, `{"player":{"id":15,"name":"Notch","uuid":""},"commands":[
			{"id":2,"command":"give Notch diamond","payment":3,"package":101,"conditions":{"delay":0,"slots":1}},
			{"id":3,"command":"fail me","payment":3,"package":101,"conditions":{"delay":0,"slots":0}}]}`)
	case r.URL.Path == "/queue/online-commands/16":
		io.WriteString(w, `{"player":{"id":16,"name":"Away","uuid":""},"commands":[
			{"id":4,"command":"say hi","payment":3,"package":101,"conditions":{"delay":0,"slots":0}}]}`)
	case r.Method == http.MethodDelete && r.URL.Path == "/queue":
		f.acked = append(f.acked, r.URL.Query()["ids[]"])
		if f.onAck != nil {
			f.onAck()
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func TestQueue_Watch(t *testing.T) {
	ctx, cancel := context.WithTimeout(testContext(t), 5*time.Second)
	defer cancel()

	fq := &fakeQueue{onAck: cancel}
	server := httptest.NewServer(http.HandlerFunc(fq.handler))
	defer server.Close()

	c, err := New("secret", WithBaseURL(server.URL))
	require.NoError(t, err)

	var (
		mu       sync.Mutex
		executed []string
		reported []error
	)
	handler := func(_ context.Context, cmd QueuedCommand) error {
		mu.Lock()
		defer mu.Unlock()
		executed = append(executed, cmd.Command)
		if cmd.ID == 3 {
			return errors.New("inventory full")
		}
		return nil
	}

	err = c.Queue.Watch(ctx, handler,
		WithOnlinePlayers(func(p PlayerRef) bool { return p.Name != "Away" }),
		WithWatchErrorHandler(func(err error) {
			mu.Lock()
			defer mu.Unlock()
			reported = append(reported, err)
		}),
	)
	assert.ErrorIs(t, err, context.Canceled)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"broadcast thanks", "give Notch diamond", "fail me"}, executed)

	require.Len(t, reported, 1)
	var cmdErr *CommandError
	require.ErrorAs(t, reported[0], &cmdErr)
	assert.Equal(t, 3, cmdErr.CommandID)

	fq.mu.Lock()
	defer fq.mu.Unlock()
	assert.Equal(t, [][]string{{"1", "2"}}, fq.acked)
	assert.Equal(t, 1, fq.checks)
}

func TestQueue_Watch_ReportsFailedChecks(t *testing.T) {
	ctx, cancel := context.WithTimeout(testContext(t), 5*time.Second)
	defer cancel()

	c, rec := newTestClient(t, http.StatusServiceUnavailable, `{}`)

	var reported []error
	err := c.Queue.Watch(ctx, func(context.Context, QueuedCommand) error { return nil },
		WithWatchErrorHandler(func(err error) {
			reported = append(reported, err)
			cancel()
		}),
	)

	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, reported, 1)
	assert.ErrorIs(t, reported[0], ErrInvalidRequest)
	assert.Equal(t, 1, rec.Calls())
}

func TestQueue_Watch_NilHandler(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{}`)

	err := c.Queue.Watch(testContext(t), nil)
	assert.ErrorIs(t, err, ErrMissingParameter)
	assert.Zero(t, rec.Calls())
}

func TestCommandError(t *testing.T) {
	cause := errors.New("inventory full")
	err := &CommandError{CommandID: 7, Err: cause}

	assert.Equal(t, "command 7: inventory full", err.Error())
	assert.ErrorIs(t, err, cause)
}
