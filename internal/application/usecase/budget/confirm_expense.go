package budget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/six-jars/backend/internal/application/adapter"
	"github.com/six-jars/backend/internal/application/usecase/state"
	domainbudget "github.com/six-jars/backend/internal/domain/budget"
	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

// ConfirmExpenseInput represents the input for committing the pending expense.
type ConfirmExpenseInput struct {
	Owner state.Owner
}

// ConfirmExpenseOutput represents the recorded expense and the new budget.
type ConfirmExpenseOutput struct {
	Expense entity.Expense
	State   entity.UserData
	Events  []entity.Event
}

// ConfirmExpenseUseCase handles the second step of adding an expense.
type ConfirmExpenseUseCase struct {
	store   *state.Store
	pending adapter.PendingExpenseStore
}

// NewConfirmExpenseUseCase creates a new ConfirmExpenseUseCase instance.
func NewConfirmExpenseUseCase(store *state.Store, pending adapter.PendingExpenseStore) *ConfirmExpenseUseCase {
	return &ConfirmExpenseUseCase{
		store:   store,
		pending: pending,
	}
}

// Execute commits the pending draft against the current budget. The draft is
// taken under the user lock, so it is committed at most once and a cancel that
// ran first always wins. It is consumed even when the jar does not cover it.
func (uc *ConfirmExpenseUseCase) Execute(ctx context.Context, input ConfirmExpenseInput) (*ConfirmExpenseOutput, error) {
	var (
		taken *entity.ExpenseDraft
		flow  *domainbudget.ExpenseFlow
	)
	tr, err := uc.store.Apply(ctx, input.Owner, func(current entity.UserData) (*domainbudget.Transition, error) {
		draft, err := uc.pending.Take(ctx, input.Owner.ID)
		if errors.Is(err, domainerror.ErrNoPendingExpense) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeNoPendingExpense,
				"no expense is awaiting confirmation",
				err,
			)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read pending expense: %w", err)
		}

		taken = draft
		flow = uc.store.Engine().ResumeExpenseFlow(*draft)
		return flow.Confirm(current)
	})
	if err != nil {
		// Committed but not saved: hand the draft back for a retry
		if flow != nil && flow.State() == domainbudget.FlowCommitted {
			if restoreErr := uc.pending.Restore(ctx, input.Owner.ID, *taken); restoreErr != nil {
				slog.Warn("failed to restore pending expense",
					"user_id", input.Owner.ID,
					"error", restoreErr,
				)
			}
		}
		return nil, err
	}

	expense, ok := flow.Committed()
	if !ok {
		return nil, fmt.Errorf("expense flow ended in state %s", flow.State())
	}

	return &ConfirmExpenseOutput{
		Expense: expense,
		State:   tr.State,
		Events:  tr.Events,
	}, nil
}
