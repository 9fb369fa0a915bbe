package report

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Refresher periodically re-fetches the cumulative report so the admin
// dashboard's warm copy stays current and store failures surface in the
// logs. Ticks never overlap: the fetch runs inline in the loop, so a slow
// scan simply delays the next tick. Stop cancels the task and waits for the
// loop to exit so no timers leak on shutdown.
type Refresher struct {
	interval time.Duration
	fetch    func(ctx context.Context) error
	log      zerolog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewRefresher builds a refresher invoking fetch every interval.
func NewRefresher(interval time.Duration, fetch func(ctx context.Context) error, log zerolog.Logger) *Refresher {
	return &Refresher{
		interval: interval,
		fetch:    fetch,
		log:      log,
	}
}

// Start launches the background loop. It is a no-op if already started.
func (r *Refresher) Start(ctx context.Context) {
	if r.cancel != nil {
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	go func() {
		defer close(r.done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := r.fetch(ctx); err != nil && ctx.Err() == nil {
					r.log.Warn().Err(err).Msg("report refresh failed")
				}
			}
		}
	}()
}

// Stop cancels the loop and waits for it to finish.
func (r *Refresher) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	r.cancel = nil
}
