package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/six-jars/backend/internal/domain/entity"
)

// PendingExpenseStore keeps the expense draft a user has requested but not
// yet confirmed. A user has at most one pending draft.
type PendingExpenseStore interface {
	// Put stores draft, replacing any previous one.
	Put(ctx context.Context, userID uuid.UUID, draft entity.ExpenseDraft) error

	// Get returns the pending draft or domainerror.ErrNoPendingExpense.
	Get(ctx context.Context, userID uuid.UUID) (*entity.ExpenseDraft, error)

	// Take removes and returns the pending draft in one step, or returns
	// domainerror.ErrNoPendingExpense. Of two concurrent callers only one gets it.
	Take(ctx context.Context, userID uuid.UUID) (*entity.ExpenseDraft, error)

	// Restore stores draft again unless a newer draft was put meanwhile.
	Restore(ctx context.Context, userID uuid.UUID, draft entity.ExpenseDraft) error

	// Delete discards the pending draft. It reports whether one existed.
	Delete(ctx context.Context, userID uuid.UUID) (bool, error)
}
