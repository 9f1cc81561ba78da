// Package savings contains use cases for savings goals.
package savings

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/six-jars/backend/internal/application/usecase/advisor"
	"github.com/six-jars/backend/internal/application/usecase/state"
	domainbudget "github.com/six-jars/backend/internal/domain/budget"
	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

// CreateGoalInput represents the input for creating a savings goal.
type CreateGoalInput struct {
	Owner        state.Owner
	Name         string
	Icon         string
	TargetAmount decimal.Decimal
}

// CreateGoalOutput represents the created goal and the new budget.
type CreateGoalOutput struct {
	Goal   entity.SavingsGoal
	State  entity.UserData
	Events []entity.Event
	// IconSuggested is true when the advisor picked the icon.
	IconSuggested bool
}

// CreateGoalUseCase handles savings goal creation.
type CreateGoalUseCase struct {
	store     *state.Store
	suggester *advisor.Suggester
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(store *state.Store, suggester *advisor.Suggester) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		store:     store,
		suggester: suggester,
	}
}

// Execute creates the goal. Without an icon the advisor suggests one before
// the budget is locked.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewSavingsError(domainerror.ErrCodeEmptyGoalName, "goal name is required", domainerror.ErrEmptyName)
	}
	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewSavingsError(domainerror.ErrCodeInvalidTargetAmount, "target amount must be greater than zero", domainerror.ErrInvalidTargetAmount)
	}

	icon := strings.TrimSpace(input.Icon)
	suggested := false
	if icon == "" {
		icon, suggested = uc.suggester.SuggestIcon(ctx, name)
	}

	engine := uc.store.Engine()
	tr, err := uc.store.Apply(ctx, input.Owner, func(current entity.UserData) (*domainbudget.Transition, error) {
		return engine.AddGoal(current, name, icon, input.TargetAmount)
	})
	if err != nil {
		return nil, err
	}

	goals := tr.State.SavingsGoals
	return &CreateGoalOutput{
		Goal:          goals[len(goals)-1],
		State:         tr.State,
		Events:        tr.Events,
		IconSuggested: suggested,
	}, nil
}
