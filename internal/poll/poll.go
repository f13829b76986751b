package poll

import (
	"context"
	"math/rand"
	"time"
)

// Defaults used by DefaultConfig.
const (
	DefaultInitialInterval   = 2 * time.Second
	DefaultMaxBackoff        = 5 * time.Minute
	DefaultBackoffMultiplier = 1.5
	DefaultJitterFactor      = 0.1
)

// Check performs one round and returns how long to wait before the next.
type Check func(ctx context.Context) (time.Duration, error)

// Config controls the wait between rounds.
type Config struct {
	// InitialInterval is the wait after the first failure, and the wait used
	// when a successful round asks for none.
	InitialInterval time.Duration
	// MaxBackoff caps the wait after repeated failures.
	MaxBackoff        time.Duration
	BackoffMultiplier float64
	// JitterFactor is the largest fraction of the wait added as jitter.
	JitterFactor float64
	// MinInterval is the shortest wait accepted from a successful round.
	MinInterval time.Duration
	// OnError is called with every failed round.
	OnError func(error)
}

// DefaultConfig returns the default polling configuration.
func DefaultConfig() Config {
	return Config{
		InitialInterval:   DefaultInitialInterval,
		MaxBackoff:        DefaultMaxBackoff,
		BackoffMultiplier: DefaultBackoffMultiplier,
		JitterFactor:      DefaultJitterFactor,
	}
}

// Run calls check until ctx is done and returns ctx.Err().
func Run(ctx context.Context, cfg Config, check Check) error {
	backoff := cfg.InitialInterval
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		wait, err := check(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if cfg.OnError != nil {
				cfg.OnError(err)
			}
			wait = backoff
			backoff = cfg.next(backoff)
		} else {
			backoff = cfg.InitialInterval
			if wait <= 0 {
				wait = cfg.InitialInterval
			}
			if wait < cfg.MinInterval {
				wait = cfg.MinInterval
			}
		}

		timer := time.NewTimer(cfg.jitter(wait))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (c Config) next(current time.Duration) time.Duration {
	next := time.Duration(float64(current) * c.BackoffMultiplier)
	if c.MaxBackoff > 0 && next > c.MaxBackoff {
		next = c.MaxBackoff
	}
	return next
}

func (c Config) jitter(wait time.Duration) time.Duration {
	if c.JitterFactor <= 0 {
		return wait
	}
	return wait + time.Duration(rand.Float64()*c.JitterFactor*float64(wait))
}
