// Package submission implements the entrant editing side of the portal: the
// per-owner editor session holding the working snapshot, the autosave
// scheduler that debounces persistence, and the complete action.
package submission

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ABShowcase/architectural-showcase-portal/internal/domain"
	"github.com/ABShowcase/architectural-showcase-portal/internal/domain/entity"
	"github.com/ABShowcase/architectural-showcase-portal/internal/domain/repository"
	domainsub "github.com/ABShowcase/architectural-showcase-portal/internal/domain/submission"
)

// saveTimeout bounds a single persistence call.
const saveTimeout = 10 * time.Second

// editorSession is the in-memory editing state for one owner. Single writer:
// only the owning user's session touches a submission, so the session mutex
// only guards against the same session's overlapping requests.
type editorSession struct {
	mu       sync.Mutex
	snapshot entity.Submission
	saver    *Autosaver
}

// UseCase drives submission loading, editing, autosave and completion.
type UseCase struct {
	mu       sync.Mutex
	sessions map[string]*editorSession // keyed by owner id

	repo  repository.SubmissionRepository
	quiet time.Duration
	log   zerolog.Logger
}

// NewUseCase builds the submission use case. quiet is the autosave debounce
// period.
func NewUseCase(repo repository.SubmissionRepository, quiet time.Duration, log zerolog.Logger) *UseCase {
	return &UseCase{
		sessions: make(map[string]*editorSession),
		repo:     repo,
		quiet:    quiet,
		log:      log,
	}
}

// Current returns the owner's submission, creating an empty draft on first
// access. Exactly one submission exists per user; a create race on first
// load resolves by re-reading the winner's row.
func (uc *UseCase) Current(ctx context.Context, ownerID string) (*entity.Submission, error) {
	sub, err := uc.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if sub != nil {
		return sub, nil
	}

	now := time.Now()
	draft := &entity.Submission{
		ID:                     uuid.New().String(),
		OwnerID:                ownerID,
		Status:                 entity.StatusDraft,
		ManufacturersSuppliers: map[string]string{},
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := uc.repo.Create(ctx, draft); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return uc.repo.GetByOwner(ctx, ownerID)
		}
		return nil, err
	}
	return draft, nil
}

// ApplyEdits applies a batch of edits to the owner's working copy and
// schedules an autosave. The batch is atomic: the first invalid edit rejects
// the whole request and leaves the snapshot unchanged. A draft is promoted
// to in_progress on its first successful edit; a completed submission
// rejects every edit with ErrSubmissionLocked.
func (uc *UseCase) ApplyEdits(ctx context.Context, ownerID, submissionID string, edits []domainsub.Edit) (*entity.Submission, SaveState, error) {
	if len(edits) == 0 {
		return nil, SaveIdle, fmt.Errorf("%w: no edits", domain.ErrInvalidInput)
	}
	sess, err := uc.session(ctx, ownerID)
	if err != nil {
		return nil, SaveIdle, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.snapshot.ID != submissionID {
		return nil, SaveIdle, domain.ErrNotFound
	}
	if sess.snapshot.Completed() {
		return nil, SaveIdle, domain.ErrSubmissionLocked
	}

	next, err := domainsub.NextOnEdit(sess.snapshot.Status)
	if err != nil {
		return nil, SaveIdle, err
	}

	snap := sess.snapshot
	for _, edit := range edits {
		snap, err = domainsub.Apply(snap, edit)
		if err != nil {
			return nil, sess.saver.State(), err
		}
	}
	snap.Status = next

	sess.snapshot = snap
	sess.saver.Schedule(snap)

	out := snap
	return &out, sess.saver.State(), nil
}

// SaveState reports the autosave status of the owner's submission. An owner
// with no active editor session is idle by definition.
func (uc *UseCase) SaveState(ownerID, submissionID string) SaveState {
	uc.mu.Lock()
	sess, ok := uc.sessions[ownerID]
	uc.mu.Unlock()
	if !ok {
		return SaveIdle
	}
	sess.mu.Lock()
	match := sess.snapshot.ID == submissionID
	sess.mu.Unlock()
	if !match {
		return SaveIdle
	}
	return sess.saver.State()
}

// Complete finalizes the submission: flushes any pending edits so the stored
// record carries the latest state, then marks the row completed. Completing
// an already-completed submission succeeds with no side effects. A flush
// failure is surfaced: the final user-initiated step must not swallow
// persistence errors.
func (uc *UseCase) Complete(ctx context.Context, ownerID, submissionID string) (*entity.Submission, error) {
	sess, err := uc.session(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if sess.snapshot.ID != submissionID {
		sess.mu.Unlock()
		return nil, domain.ErrNotFound
	}
	if _, err := domainsub.ValidateComplete(sess.snapshot.Status); err != nil {
		sess.mu.Unlock()
		return nil, err
	}
	saver := sess.saver
	sess.mu.Unlock()

	// Flush outside the session lock: the persist callback takes it to
	// record the store-assigned timestamp.
	if err := saver.Flush(ctx); err != nil {
		return nil, fmt.Errorf("%w: flushing pending edits: %v", domain.ErrPersistence, err)
	}

	completed, err := uc.repo.MarkCompleted(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	sess.snapshot = *completed
	sess.mu.Unlock()
	return completed, nil
}

// Close cancels every session's autosave timer. Called on server shutdown.
func (uc *UseCase) Close() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for _, sess := range uc.sessions {
		sess.saver.Cancel()
	}
	uc.sessions = make(map[string]*editorSession)
}

// session returns the owner's editor session, creating it (and loading or
// lazily creating the submission) on first use.
func (uc *UseCase) session(ctx context.Context, ownerID string) (*editorSession, error) {
	uc.mu.Lock()
	if sess, ok := uc.sessions[ownerID]; ok {
		uc.mu.Unlock()
		return sess, nil
	}
	uc.mu.Unlock()

	sub, err := uc.Current(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if sess, ok := uc.sessions[ownerID]; ok {
		return sess, nil
	}
	sess := &editorSession{snapshot: *sub}
	sess.saver = NewAutosaver(uc.quiet, uc.persistFor(sess), uc.log)
	uc.sessions[ownerID] = sess
	return sess, nil
}

// persistFor builds the autosaver's write callback for one session: a
// bounded repository save that records the store-assigned updated_at on
// success. Errors pass through for the scheduler's retry handling.
func (uc *UseCase) persistFor(sess *editorSession) PersistFunc {
	return func(ctx context.Context, snap entity.Submission) error {
		wctx, cancel := context.WithTimeout(ctx, saveTimeout)
		defer cancel()

		updatedAt, err := uc.repo.Save(wctx, &snap)
		if err != nil {
			return err
		}
		sess.mu.Lock()
		if sess.snapshot.ID == snap.ID {
			sess.snapshot.UpdatedAt = updatedAt
		}
		sess.mu.Unlock()
		return nil
	}
}
