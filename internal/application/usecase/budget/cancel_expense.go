package budget

import (
	"context"
	"fmt"

	"github.com/six-jars/backend/internal/application/adapter"
	"github.com/six-jars/backend/internal/application/usecase/state"
)

// CancelExpenseInput represents the input for discarding the pending expense.
type CancelExpenseInput struct {
	Owner state.Owner
}

// CancelExpenseOutput reports whether a draft was discarded.
type CancelExpenseOutput struct {
	Cancelled bool
}

// CancelExpenseUseCase handles backing out of the confirmation step.
type CancelExpenseUseCase struct {
	pending adapter.PendingExpenseStore
}

// NewCancelExpenseUseCase creates a new CancelExpenseUseCase instance.
func NewCancelExpenseUseCase(pending adapter.PendingExpenseStore) *CancelExpenseUseCase {
	return &CancelExpenseUseCase{pending: pending}
}

// Execute drops the pending draft. The budget is never touched.
func (uc *CancelExpenseUseCase) Execute(ctx context.Context, input CancelExpenseInput) (*CancelExpenseOutput, error) {
	cancelled, err := uc.pending.Delete(ctx, input.Owner.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to discard pending expense: %w", err)
	}
	return &CancelExpenseOutput{Cancelled: cancelled}, nil
}
