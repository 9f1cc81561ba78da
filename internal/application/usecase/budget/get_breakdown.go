package budget

import (
	"context"

	"github.com/six-jars/backend/internal/application/usecase/state"
	domainbudget "github.com/six-jars/backend/internal/domain/budget"
)

// GetBreakdownInput represents the input for the spending analysis.
type GetBreakdownInput struct {
	Owner state.Owner
}

// GetBreakdownUseCase handles the per-jar and per-category spending analysis.
type GetBreakdownUseCase struct {
	store *state.Store
}

// NewGetBreakdownUseCase creates a new GetBreakdownUseCase instance.
func NewGetBreakdownUseCase(store *state.Store) *GetBreakdownUseCase {
	return &GetBreakdownUseCase{store: store}
}

// Execute summarizes the user's current expenses.
func (uc *GetBreakdownUseCase) Execute(ctx context.Context, input GetBreakdownInput) (*domainbudget.Breakdown, error) {
	current, err := uc.store.Load(ctx, input.Owner)
	if err != nil {
		return nil, err
	}
	breakdown := domainbudget.Summarize(current)
	return &breakdown, nil
}
