// Package jobs holds background maintenance tasks that run alongside
// the HTTP server.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/lavkashop/lavka/internal/store"
)

// DefaultCleanupInterval is how often expired auth tokens are pruned.
const DefaultCleanupInterval = time.Hour

// TokenCleaner periodically removes expired auth tokens from the
// store. Tokens are only checked for expiry on lookup, so without the
// cleaner the token table grows without bound.
type TokenCleaner struct {
	store    store.Store
	logger   *slog.Logger
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

// NewTokenCleaner creates a cleaner. A non-positive interval falls
// back to DefaultCleanupInterval.
func NewTokenCleaner(st store.Store, logger *slog.Logger, interval time.Duration) *TokenCleaner {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	return &TokenCleaner{
		store:    st,
		logger:   logger,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the cleanup loop in its own goroutine. The first
// sweep runs immediately.
func (c *TokenCleaner) Start(ctx context.Context) {
	go func() {
		defer close(c.done)

		c.sweep(ctx)

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.sweep(ctx)
			case <-ctx.Done():
				return
			case <-c.stop:
				return
			}
		}
	}()
}

// Stop terminates the loop and waits for an in-flight sweep to finish.
func (c *TokenCleaner) Stop() {
	close(c.stop)
	<-c.done
}

func (c *TokenCleaner) sweep(ctx context.Context) {
	removed, err := c.store.Tokens().DeleteExpired(ctx, time.Now())
	if err != nil {
		c.logger.Error("token cleanup failed", slog.String("error", err.Error()))
		return
	}
	if removed > 0 {
		c.logger.Info("expired tokens removed", slog.Int64("count", removed))
	}
}
