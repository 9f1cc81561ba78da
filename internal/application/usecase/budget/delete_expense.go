package budget

import (
	"context"

	"github.com/six-jars/backend/internal/application/usecase/state"
	domainbudget "github.com/six-jars/backend/internal/domain/budget"
	"github.com/six-jars/backend/internal/domain/entity"
)

// DeleteExpenseInput represents the input for deleting an expense.
type DeleteExpenseInput struct {
	Owner     state.Owner
	ExpenseID string
}

// DeleteExpenseOutput represents the budget after the refund.
type DeleteExpenseOutput struct {
	// Deleted is false when no expense had the given id.
	Deleted bool
	State   entity.UserData
	Events  []entity.Event
}

// DeleteExpenseUseCase handles removing an expense and refunding its jar.
type DeleteExpenseUseCase struct {
	store *state.Store
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(store *state.Store) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{store: store}
}

// Execute deletes the expense. Unknown ids succeed without changes.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	engine := uc.store.Engine()

	tr, err := uc.store.Apply(ctx, input.Owner, func(current entity.UserData) (*domainbudget.Transition, error) {
		return engine.DeleteExpense(current, input.ExpenseID), nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteExpenseOutput{
		Deleted: tr.Changed,
		State:   tr.State,
		Events:  tr.Events,
	}, nil
}
