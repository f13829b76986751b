package tebex

import (
	"context"
	"fmt"
	"time"

	"github.com/tebexkit/client-go/internal/apierrors"
	"github.com/tebexkit/client-go/internal/poll"
)

// CommandHandler executes a queued command. Returning nil acknowledges the
// command; a command whose handler fails stays queued and is offered again
// on a later check.
type CommandHandler func(ctx context.Context, cmd QueuedCommand) error

// WatchOption configures Queue.Watch.
type WatchOption func(*watchConfig)

type watchConfig struct {
	isOnline func(PlayerRef) bool
	poll     poll.Config
}

// WithOnlinePlayers restricts online commands to players for which isOnline
// reports true. By default every due player is treated as online.
func WithOnlinePlayers(isOnline func(PlayerRef) bool) WatchOption {
	return func(c *watchConfig) {
		c.isOnline = isOnline
	}
}

// WithWatchErrorHandler sets a callback for failed checks and failed
// commands. Watch keeps running after reporting.
func WithWatchErrorHandler(fn func(error)) WatchOption {
	return func(c *watchConfig) {
		c.poll.OnError = fn
	}
}

// WithMinCheckInterval sets the shortest wait between checks, whatever the
// webstore asks for.
func WithMinCheckInterval(d time.Duration) WatchOption {
	return func(c *watchConfig) {
		c.poll.MinInterval = d
	}
}

// CommandError reports a command whose handler failed.
type CommandError struct {
	CommandID int
	Err       error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %d: %v", e.CommandID, e.Err)
}

// Unwrap returns the handler's error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Watch polls the command queue until ctx is done, passing every due command
// to handler and acknowledging the ones it accepts. The wait between checks
// follows the webstore's next_check hint; failed checks back off. Watch
// always returns a non-nil error: ctx.Err() once ctx is done, or an
// INVALID_REQUEST error when handler is nil.
func (q *Queue) Watch(ctx context.Context, handler CommandHandler, opts ...WatchOption) error {
	if handler == nil {
		return apierrors.MissingParameter("command handler")
	}
	cfg := &watchConfig{poll: poll.DefaultConfig()}
	for _, opt := range opts {
		opt(cfg)
	}

	return poll.Run(ctx, cfg.poll, func(ctx context.Context) (time.Duration, error) {
		return q.drain(ctx, handler, cfg)
	})
}

// drain runs one check: every due command is handled, then the accepted
// ones are deleted in a single request.
func (q *Queue) drain(ctx context.Context, handler CommandHandler, cfg *watchConfig) (time.Duration, error) {
	due, err := q.DuePlayers(ctx)
	if err != nil {
		return 0, err
	}

	var done []int
	run := func(cmds []QueuedCommand) {
		for _, cmd := range cmds {
			if ctx.Err() != nil {
				return
			}
			if err := handler(ctx, cmd); err != nil {
				if cfg.poll.OnError != nil {
					cfg.poll.OnError(&CommandError{CommandID: cmd.ID, Err: err})
				}
				continue
			}
			done = append(done, cmd.ID)
		}
	}

	if due.Meta.ExecuteOffline {
		offline, err := q.OfflineCommands(ctx)
		if err != nil {
			return 0, err
		}
		run(offline.Commands)
	}

	for _, player := range due.Players {
		if cfg.isOnline != nil && !cfg.isOnline(player) {
			continue
		}
		online, err := q.OnlineCommands(ctx, player.ID)
		if err != nil {
			return 0, q.ack(ctx, done, err)
		}
		run(online.Commands)
	}

	if err := q.ack(ctx, done, nil); err != nil {
		return 0, err
	}
	return due.Meta.NextCheck, nil
}

// ack deletes the accepted commands even when ctx is already done, and
// returns cause unless the delete itself fails.
func (q *Queue) ack(ctx context.Context, ids []int, cause error) error {
	if len(ids) == 0 {
		return cause
	}
	if err := q.DeleteCommands(context.WithoutCancel(ctx), ids); err != nil {
		return err
	}
	return cause
}
