// Package budget contains use cases for income, expenses and the jar overview.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/six-jars/backend/internal/application/adapter"
	"github.com/six-jars/backend/internal/application/usecase/state"
	domainbudget "github.com/six-jars/backend/internal/domain/budget"
	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

// GetBudgetInput represents the input for reading a budget.
type GetBudgetInput struct {
	Owner state.Owner
}

// GetBudgetOutput represents the user's full budget view.
type GetBudgetOutput struct {
	State entity.UserData
	// ActivePet is nil when no pet is active.
	ActivePet *domainbudget.TierStatus
	// Pending is the expense awaiting confirmation, if any.
	Pending *entity.ExpenseDraft
}

// GetBudgetUseCase handles reading the budget overview.
type GetBudgetUseCase struct {
	store   *state.Store
	pending adapter.PendingExpenseStore
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(store *state.Store, pending adapter.PendingExpenseStore) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		store:   store,
		pending: pending,
	}
}

// Execute loads the budget with its derived pet tier and pending draft.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	current, err := uc.store.Load(ctx, input.Owner)
	if err != nil {
		return nil, err
	}

	output := &GetBudgetOutput{State: current}
	if tier, ok := domainbudget.ActiveTier(current); ok {
		output.ActivePet = &tier
	}

	draft, err := uc.pending.Get(ctx, input.Owner.ID)
	switch {
	case err == nil:
		output.Pending = draft
	case errors.Is(err, domainerror.ErrNoPendingExpense):
	default:
		return nil, fmt.Errorf("failed to read pending expense: %w", err)
	}

	return output, nil
}
