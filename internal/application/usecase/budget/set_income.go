package budget

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/six-jars/backend/internal/application/usecase/state"
	domainbudget "github.com/six-jars/backend/internal/domain/budget"
	"github.com/six-jars/backend/internal/domain/entity"
)

// SetIncomeInput represents the input for re-budgeting from a new income.
type SetIncomeInput struct {
	Owner  state.Owner
	Income decimal.Decimal
}

// SetIncomeOutput represents the budget after the income was allocated.
type SetIncomeOutput struct {
	State  entity.UserData
	Events []entity.Event
}

// SetIncomeUseCase handles setting the monthly income.
type SetIncomeUseCase struct {
	store *state.Store
}

// NewSetIncomeUseCase creates a new SetIncomeUseCase instance.
func NewSetIncomeUseCase(store *state.Store) *SetIncomeUseCase {
	return &SetIncomeUseCase{store: store}
}

// Execute allocates income to the jars. Existing expenses and goals are discarded.
func (uc *SetIncomeUseCase) Execute(ctx context.Context, input SetIncomeInput) (*SetIncomeOutput, error) {
	engine := uc.store.Engine()

	tr, err := uc.store.Apply(ctx, input.Owner, func(current entity.UserData) (*domainbudget.Transition, error) {
		return engine.SetIncome(current, input.Income)
	})
	if err != nil {
		return nil, err
	}

	return &SetIncomeOutput{State: tr.State, Events: tr.Events}, nil
}
