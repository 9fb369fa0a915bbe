package submission

import (
	"fmt"

	"github.com/ABShowcase/architectural-showcase-portal/internal/domain"
	"github.com/ABShowcase/architectural-showcase-portal/internal/domain/entity"
)

// transitions is the full transition table of the submission lifecycle.
// Statuses only move forward; completed has no outgoing edges.
var transitions = map[string][]string{
	entity.StatusDraft:      {entity.StatusInProgress},
	entity.StatusInProgress: {entity.StatusCompleted},
	entity.StatusCompleted:  {},
}

// CanTransition reports whether from -> to is a legal lifecycle move.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextOnEdit returns the status a submission holds after a successful field
// edit: a draft is promoted to in_progress on its first edit, an in-progress
// submission stays put, and a completed submission cannot be edited at all.
func NextOnEdit(current string) (string, error) {
	switch current {
	case entity.StatusDraft:
		return entity.StatusInProgress, nil
	case entity.StatusInProgress:
		return entity.StatusInProgress, nil
	case entity.StatusCompleted:
		return current, domain.ErrSubmissionLocked
	default:
		return current, fmt.Errorf("%w: status %q", domain.ErrInvalidTransition, current)
	}
}

// ValidateComplete checks the explicit "complete" action. Completing an
// already-completed submission is allowed and idempotent (alreadyDone=true);
// clients retry over unreliable networks and must not see an error for it.
func ValidateComplete(current string) (alreadyDone bool, err error) {
	switch current {
	case entity.StatusCompleted:
		return true, nil
	case entity.StatusDraft, entity.StatusInProgress:
		return false, nil
	default:
		return false, fmt.Errorf("%w: status %q", domain.ErrInvalidTransition, current)
	}
}
