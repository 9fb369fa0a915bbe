package submission

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ABShowcase/architectural-showcase-portal/internal/domain"
	"github.com/ABShowcase/architectural-showcase-portal/internal/domain/entity"
)

// SaveState is the observable autosave status surfaced to the form UI.
type SaveState string

const (
	// SaveIdle nothing pending, nothing in flight.
	SaveIdle SaveState = "idle"
	// SavePending edits queued, debounce timer running.
	SavePending SaveState = "pending"
	// SaveSaving a write is in flight.
	SaveSaving SaveState = "saving"
)

// PersistFunc persists one snapshot. Implementations apply their own write
// timeout; a failure is recoverable (the scheduler retains the snapshot and
// retries on the next cycle).
type PersistFunc func(ctx context.Context, snap entity.Submission) error

// Autosaver debounces rapid edits on one submission into a single write per
// quiet period and guarantees at most one write in flight at a time.
//
// Every Schedule replaces the pending snapshot and restarts the quiet-period
// timer. When the timer fires the pending snapshot is written; edits arriving
// during the write coalesce into a single follow-up write issued after the
// in-flight one resolves, never concurrently with it. A failed write keeps
// its snapshot pending so the next cycle retries; it never blocks further
// edits and never rolls back the in-memory state. Rejections the store will
// repeat forever (row locked by a concurrent complete, row gone) drop the
// snapshot instead of retrying.
type Autosaver struct {
	mu   sync.Mutex
	cond *sync.Cond // signaled whenever an in-flight write resolves

	quiet   time.Duration
	persist PersistFunc
	log     zerolog.Logger

	pending  *entity.Submission
	timer    *time.Timer
	inFlight bool
	closed   bool
}

// NewAutosaver builds a scheduler for one submission.
func NewAutosaver(quiet time.Duration, persist PersistFunc, log zerolog.Logger) *Autosaver {
	a := &Autosaver{
		quiet:   quiet,
		persist: persist,
		log:     log,
	}
	a.cond = sync.NewCond(&a.mu)
	return a
}

// Schedule replaces the pending snapshot with snap and (re)starts the
// debounce timer. While a write is in flight the timer is not re-armed here;
// the write's completion re-arms it, so the in-flight rule holds.
func (a *Autosaver) Schedule(snap entity.Submission) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.pending = &snap
	if a.inFlight {
		return
	}
	a.resetTimerLocked()
}

// State reports the current save status.
func (a *Autosaver) State() SaveState {
	a.mu.Lock()
	defer a.mu.Unlock()
	switch {
	case a.inFlight:
		return SaveSaving
	case a.pending != nil:
		return SavePending
	default:
		return SaveIdle
	}
}

// Flush persists any pending snapshot immediately, bypassing the timer. It
// waits out an in-flight write first so two writes never overlap. Used by the
// complete action so the finalized record carries the last keystrokes.
// The returned error is the write error, surfaced to the caller.
func (a *Autosaver) Flush(ctx context.Context) error {
	a.mu.Lock()
	for a.inFlight {
		a.cond.Wait()
	}
	a.stopTimerLocked()
	if a.pending == nil || a.closed {
		a.mu.Unlock()
		return nil
	}
	snap := *a.pending
	a.pending = nil
	a.inFlight = true
	a.mu.Unlock()

	err := a.persist(ctx, snap)

	a.mu.Lock()
	a.inFlight = false
	if err != nil && !permanentSaveError(err) && a.pending == nil {
		a.pending = &snap // keep for the next cycle
	}
	if a.pending != nil && !a.closed {
		a.resetTimerLocked()
	}
	a.cond.Broadcast()
	a.mu.Unlock()
	return err
}

// Cancel stops the timer and drops pending state. Called when the owning
// session ends; an in-flight write is left to finish on its own.
func (a *Autosaver) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	a.stopTimerLocked()
	a.pending = nil
	a.cond.Broadcast()
}

func (a *Autosaver) resetTimerLocked() {
	a.stopTimerLocked()
	a.timer = time.AfterFunc(a.quiet, a.fire)
}

func (a *Autosaver) stopTimerLocked() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

// fire runs on timer expiry: takes the pending snapshot and issues exactly
// one write for it.
func (a *Autosaver) fire() {
	a.mu.Lock()
	if a.closed || a.inFlight || a.pending == nil {
		a.mu.Unlock()
		return
	}
	snap := *a.pending
	a.pending = nil
	a.inFlight = true
	a.mu.Unlock()

	err := a.persist(context.Background(), snap)

	a.mu.Lock()
	a.inFlight = false
	switch {
	case err == nil:
	case permanentSaveError(err):
		// The store will reject this snapshot on every attempt; retrying
		// would loop at the quiet-period interval forever.
		a.log.Warn().Err(err).
			Str("submission_id", snap.ID).
			Msg("autosave write rejected by the store, dropping snapshot")
	default:
		a.log.Error().Err(err).
			Str("submission_id", snap.ID).
			Msg("autosave write failed, will retry next cycle")
		if a.pending == nil {
			a.pending = &snap
		}
	}
	// Edits that landed during the write (or a retained failed snapshot)
	// get their own debounce cycle now that the write resolved.
	if a.pending != nil && !a.closed {
		a.resetTimerLocked()
	}
	a.cond.Broadcast()
	a.mu.Unlock()
}

// permanentSaveError reports whether a write rejection cannot be cured by
// retrying: the row is completed and locked, or it no longer exists. Only
// transient failures (connectivity, timeouts) enter the retry loop.
func permanentSaveError(err error) bool {
	return errors.Is(err, domain.ErrSubmissionLocked) || errors.Is(err, domain.ErrNotFound)
}
