package budget

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/six-jars/backend/internal/application/adapter"
	"github.com/six-jars/backend/internal/application/usecase/advisor"
	"github.com/six-jars/backend/internal/application/usecase/state"
	"github.com/six-jars/backend/internal/domain/entity"
)

// RequestExpenseInput represents a new expense the user wants to confirm.
// Category and Jar are optional; missing values are suggested by the advisor.
type RequestExpenseInput struct {
	Owner    state.Owner
	Name     string
	Amount   decimal.Decimal
	Category entity.Category
	Jar      entity.JarID
}

// RequestExpenseOutput represents the draft now awaiting confirmation.
type RequestExpenseOutput struct {
	Draft   entity.ExpenseDraft
	Covered bool
	Balance decimal.Decimal
	// Suggested is true when the advisor filled in the category or jar.
	Suggested bool
	// SuggestionFallback is true when a suggestion was needed but the defaults were used.
	SuggestionFallback bool
}

// RequestExpenseUseCase handles the first, non-mutating step of adding an expense.
type RequestExpenseUseCase struct {
	store     *state.Store
	pending   adapter.PendingExpenseStore
	suggester *advisor.Suggester
}

// NewRequestExpenseUseCase creates a new RequestExpenseUseCase instance.
func NewRequestExpenseUseCase(
	store *state.Store,
	pending adapter.PendingExpenseStore,
	suggester *advisor.Suggester,
) *RequestExpenseUseCase {
	return &RequestExpenseUseCase{
		store:     store,
		pending:   pending,
		suggester: suggester,
	}
}

// Execute validates the expense and stores it as the user's pending draft.
// The budget itself is not changed.
func (uc *RequestExpenseUseCase) Execute(ctx context.Context, input RequestExpenseInput) (*RequestExpenseOutput, error) {
	draft := entity.ExpenseDraft{
		Name:     strings.TrimSpace(input.Name),
		Amount:   input.Amount,
		Category: input.Category,
		Jar:      input.Jar,
	}

	output := &RequestExpenseOutput{}

	// Ask the advisor only for what the user left out
	if draft.Name != "" && (draft.Category == "" || draft.Jar == "") {
		suggestion, ok := uc.suggester.Classify(ctx, draft.Name)
		if draft.Category == "" {
			draft.Category = suggestion.Category
		}
		if draft.Jar == "" {
			draft.Jar = suggestion.Jar
		}
		output.Suggested = ok
		output.SuggestionFallback = !ok
	}

	current, err := uc.store.Load(ctx, input.Owner)
	if err != nil {
		return nil, err
	}

	flow := uc.store.Engine().NewExpenseFlow()
	req, err := flow.Request(current, draft)
	if err != nil {
		return nil, err
	}

	if err := uc.pending.Put(ctx, input.Owner.ID, req.Draft); err != nil {
		return nil, fmt.Errorf("failed to store pending expense: %w", err)
	}

	output.Draft = req.Draft
	output.Covered = req.Covered
	output.Balance = req.Balance
	return output, nil
}
