package savings

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/six-jars/backend/internal/application/usecase/state"
	domainbudget "github.com/six-jars/backend/internal/domain/budget"
	"github.com/six-jars/backend/internal/domain/entity"
)

// DeleteGoalInput represents the input for deleting a savings goal.
type DeleteGoalInput struct {
	Owner  state.Owner
	GoalID string
}

// DeleteGoalOutput represents the budget after the goal was removed.
type DeleteGoalOutput struct {
	Deleted  bool
	Refunded decimal.Decimal
	State    entity.UserData
	Events   []entity.Event
}

// DeleteGoalUseCase handles savings goal deletion.
type DeleteGoalUseCase struct {
	store *state.Store
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(store *state.Store) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{store: store}
}

// Execute deletes the goal. Only unfinished goals are refunded.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) (*DeleteGoalOutput, error) {
	engine := uc.store.Engine()

	var refunded decimal.Decimal
	tr, err := uc.store.Apply(ctx, input.Owner, func(current entity.UserData) (*domainbudget.Transition, error) {
		refunded = decimal.Zero
		if idx := current.FindGoal(input.GoalID); idx >= 0 && !current.SavingsGoals[idx].Completed {
			refunded = current.SavingsGoals[idx].CurrentAmount
		}
		return engine.DeleteGoal(current, input.GoalID), nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteGoalOutput{
		Deleted:  tr.Changed,
		Refunded: refunded,
		State:    tr.State,
		Events:   tr.Events,
	}, nil
}
