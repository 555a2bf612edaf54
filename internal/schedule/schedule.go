// Package schedule runs a callback on a fixed interval until stopped.
package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Handle controls a running schedule. The zero value is not usable;
// create one with Every.
type Handle struct {
	cancel context.CancelFunc
	group  *errgroup.Group
	once   sync.Once
	logger zerolog.Logger
}

// Every calls fn with the fire time once per interval, starting one interval
// from now. The schedule runs until ctx is cancelled or Stop is called.
func Every(ctx context.Context, interval time.Duration, logger zerolog.Logger, fn func(time.Time)) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)
	h := &Handle{cancel: cancel, group: g, logger: logger}

	logger.Debug().Dur("interval", interval).Msg("schedule started")

	g.Go(func() error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case t := <-ticker.C:
				// Stop may race with a pending tick; cancellation wins.
				if gctx.Err() != nil {
					return nil
				}
				fn(t)
			}
		}
	})
	return h
}

// Stop cancels the schedule and waits for the loop to exit. No callback
// runs after Stop returns. Calling Stop more than once is a no-op.
func (h *Handle) Stop() {
	h.once.Do(func() {
		h.cancel()
		_ = h.group.Wait()
		h.logger.Debug().Msg("schedule stopped")
	})
}
