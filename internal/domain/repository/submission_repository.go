package repository

import (
	"context"
	"time"

	"github.com/ABShowcase/architectural-showcase-portal/internal/domain/entity"
)

// SubmissionRepository defines the persistence port for submissions.
//
// Save persists a full snapshot of a non-completed submission and returns the
// store-assigned updated_at. It must fail with domain.ErrSubmissionLocked
// when the row is already completed, and with domain.ErrNotFound when the id
// does not exist; writes to a completed submission are rejected at the
// store, not just in the application layer.
//
// MarkCompleted is idempotent: completing an already-completed submission
// returns the row unchanged with no error and no timestamp bump.
type SubmissionRepository interface {
	Create(ctx context.Context, sub *entity.Submission) error
	GetByID(ctx context.Context, id string) (*entity.Submission, error)
	GetByOwner(ctx context.Context, ownerID string) (*entity.Submission, error)
	Save(ctx context.Context, sub *entity.Submission) (time.Time, error)
	MarkCompleted(ctx context.Context, id string) (*entity.Submission, error)
	ListAll(ctx context.Context) ([]*entity.Submission, error)
	ListCompleted(ctx context.Context) ([]*entity.Submission, error)
}
