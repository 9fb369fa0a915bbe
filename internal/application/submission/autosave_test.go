package submission_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appsubmission "github.com/ABShowcase/architectural-showcase-portal/internal/application/submission"
	"github.com/ABShowcase/architectural-showcase-portal/internal/domain"
	"github.com/ABShowcase/architectural-showcase-portal/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

const testQuiet = 25 * time.Millisecond

// persistRecorder captures every snapshot handed to the persist callback and
// can be told to fail or to block until released.
type persistRecorder struct {
	mu      sync.Mutex
	snaps   []entity.Submission
	fail    int           // fail this many calls before succeeding
	permErr error         // when set, every call returns this error
	gate    chan struct{} // when non-nil, each call blocks until the gate closes
}

func (r *persistRecorder) persist(_ context.Context, snap entity.Submission) error {
	r.mu.Lock()
	gate := r.gate
	r.mu.Unlock()
	if gate != nil {
		<-gate
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, snap)
	if r.permErr != nil {
		return r.permErr
	}
	if r.fail > 0 {
		r.fail--
		return errors.New("store unavailable")
	}
	return nil
}

func (r *persistRecorder) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.snaps)
}

func (r *persistRecorder) last() entity.Submission {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snaps[len(r.snaps)-1]
}

func newAutosaver(rec *persistRecorder) *appsubmission.Autosaver {
	return appsubmission.NewAutosaver(testQuiet, rec.persist, zerolog.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Debounce and coalescing
// ──────────────────────────────────────────────────────────────────────────────

// Rapid edits inside one quiet period collapse into a single write carrying
// only the last snapshot.
func TestAutosaver_CoalescesRapidEdits(t *testing.T) {
	rec := &persistRecorder{}
	a := newAutosaver(rec)
	defer a.Cancel()

	a.Schedule(entity.Submission{ProjectName: "one"})
	a.Schedule(entity.Submission{ProjectName: "two"})
	a.Schedule(entity.Submission{ProjectName: "three"})

	require.Eventually(t, func() bool { return rec.calls() == 1 },
		time.Second, 5*time.Millisecond, "exactly one write must happen")
	assert.Equal(t, "three", rec.last().ProjectName)

	// quiet afterwards: no phantom second write
	time.Sleep(3 * testQuiet)
	assert.Equal(t, 1, rec.calls())
	assert.Equal(t, appsubmission.SaveIdle, a.State())
}

func TestAutosaver_States(t *testing.T) {
	rec := &persistRecorder{gate: make(chan struct{})}
	a := newAutosaver(rec)
	defer a.Cancel()

	assert.Equal(t, appsubmission.SaveIdle, a.State())

	a.Schedule(entity.Submission{ProjectName: "draft"})
	assert.Equal(t, appsubmission.SavePending, a.State())

	require.Eventually(t, func() bool { return a.State() == appsubmission.SaveSaving },
		time.Second, 5*time.Millisecond, "timer expiry must move the state to saving")

	close(rec.gate)
	require.Eventually(t, func() bool { return a.State() == appsubmission.SaveIdle },
		time.Second, 5*time.Millisecond)
}

// Edits arriving while a write is in flight must not start a concurrent
// write; they get their own debounce cycle after the in-flight one resolves.
func TestAutosaver_NoOverlappingWrites(t *testing.T) {
	gate := make(chan struct{})
	rec := &persistRecorder{gate: gate}
	a := newAutosaver(rec)
	defer a.Cancel()

	a.Schedule(entity.Submission{ProjectName: "first"})
	require.Eventually(t, func() bool { return a.State() == appsubmission.SaveSaving },
		time.Second, 5*time.Millisecond)

	// lands mid-write
	a.Schedule(entity.Submission{ProjectName: "second"})
	time.Sleep(2 * testQuiet)
	assert.Equal(t, 0, rec.calls(), "no write may finish while the gate is closed")

	rec.mu.Lock()
	rec.gate = nil
	rec.mu.Unlock()
	close(gate)

	require.Eventually(t, func() bool { return rec.calls() == 2 },
		time.Second, 5*time.Millisecond, "the mid-write edit gets its own follow-up write")
	assert.Equal(t, "second", rec.last().ProjectName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Flush, failure and cancel
// ──────────────────────────────────────────────────────────────────────────────

func TestAutosaver_FlushWritesImmediately(t *testing.T) {
	rec := &persistRecorder{}
	a := newAutosaver(rec)
	defer a.Cancel()

	a.Schedule(entity.Submission{ProjectName: "final"})
	require.NoError(t, a.Flush(context.Background()))

	assert.Equal(t, 1, rec.calls(), "flush must bypass the quiet period")
	assert.Equal(t, "final", rec.last().ProjectName)
	assert.Equal(t, appsubmission.SaveIdle, a.State())

	// flushing with nothing pending is a no-op
	require.NoError(t, a.Flush(context.Background()))
	assert.Equal(t, 1, rec.calls())
}

// A failed write keeps its snapshot and retries on the next cycle; the edit
// is never lost.
func TestAutosaver_FailedWriteRetries(t *testing.T) {
	rec := &persistRecorder{fail: 1}
	a := newAutosaver(rec)
	defer a.Cancel()

	a.Schedule(entity.Submission{ProjectName: "sticky"})

	require.Eventually(t, func() bool { return rec.calls() == 2 },
		2*time.Second, 5*time.Millisecond, "first write fails, second succeeds")
	assert.Equal(t, "sticky", rec.last().ProjectName)
	assert.Equal(t, appsubmission.SaveIdle, a.State())
}

// A rejection the store will repeat forever, such as the row having been
// completed by a concurrent request, must not loop: one attempt, snapshot
// dropped, back to idle.
func TestAutosaver_PermanentRejectionDropsSnapshot(t *testing.T) {
	rec := &persistRecorder{permErr: domain.ErrSubmissionLocked}
	a := newAutosaver(rec)
	defer a.Cancel()

	a.Schedule(entity.Submission{ProjectName: "raced"})

	require.Eventually(t, func() bool { return rec.calls() == 1 },
		time.Second, 5*time.Millisecond)

	// no second attempt across several quiet periods
	time.Sleep(4 * testQuiet)
	assert.Equal(t, 1, rec.calls(), "a locked row must not be retried")
	assert.Equal(t, appsubmission.SaveIdle, a.State())
}

// Flush surfaces a permanent rejection without keeping the snapshot: there
// is nothing a later cycle could do with it.
func TestAutosaver_FlushPermanentRejection(t *testing.T) {
	rec := &persistRecorder{permErr: domain.ErrNotFound}
	a := newAutosaver(rec)
	defer a.Cancel()

	a.Schedule(entity.Submission{ProjectName: "orphan"})
	err := a.Flush(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, appsubmission.SaveIdle, a.State())

	time.Sleep(3 * testQuiet)
	assert.Equal(t, 1, rec.calls())
}

func TestAutosaver_FlushSurfacesWriteError(t *testing.T) {
	rec := &persistRecorder{fail: 1}
	a := newAutosaver(rec)
	defer a.Cancel()

	a.Schedule(entity.Submission{ProjectName: "doomed"})
	err := a.Flush(context.Background())
	assert.Error(t, err)

	// the snapshot stays pending for a later retry
	assert.Equal(t, appsubmission.SavePending, a.State())
}

func TestAutosaver_CancelDropsPending(t *testing.T) {
	rec := &persistRecorder{}
	a := newAutosaver(rec)

	a.Schedule(entity.Submission{ProjectName: "gone"})
	a.Cancel()

	time.Sleep(3 * testQuiet)
	assert.Equal(t, 0, rec.calls(), "cancel must stop the timer before it fires")
	assert.Equal(t, appsubmission.SaveIdle, a.State())
}
