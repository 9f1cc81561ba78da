package savings

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/six-jars/backend/internal/application/usecase/state"
	domainbudget "github.com/six-jars/backend/internal/domain/budget"
	"github.com/six-jars/backend/internal/domain/entity"
)

// DepositInput represents the input for moving money into a goal.
type DepositInput struct {
	Owner  state.Owner
	GoalID string
	Amount decimal.Decimal
}

// DepositOutput represents the goal after the deposit.
type DepositOutput struct {
	Goal   entity.SavingsGoal
	State  entity.UserData
	Events []entity.Event
	// UnlockedPet is set when completing the goal unlocked a pet.
	UnlockedPet *entity.Pet
}

// DepositUseCase handles deposits from the savings jar into a goal.
type DepositUseCase struct {
	store *state.Store
}

// NewDepositUseCase creates a new DepositUseCase instance.
func NewDepositUseCase(store *state.Store) *DepositUseCase {
	return &DepositUseCase{store: store}
}

// Execute deposits into the goal and reports any pet it unlocked.
func (uc *DepositUseCase) Execute(ctx context.Context, input DepositInput) (*DepositOutput, error) {
	engine := uc.store.Engine()

	tr, err := uc.store.Apply(ctx, input.Owner, func(current entity.UserData) (*domainbudget.Transition, error) {
		return engine.Deposit(current, input.GoalID, input.Amount)
	})
	if err != nil {
		return nil, err
	}

	output := &DepositOutput{State: tr.State, Events: tr.Events}
	if idx := tr.State.FindGoal(input.GoalID); idx >= 0 {
		output.Goal = tr.State.SavingsGoals[idx]
	}
	for _, ev := range tr.Events {
		if ev.Kind != entity.EventPetUnlocked {
			continue
		}
		if pet, ok := ev.Payload["pet"].(entity.Pet); ok {
			output.UnlockedPet = &pet
		}
	}
	return output, nil
}
