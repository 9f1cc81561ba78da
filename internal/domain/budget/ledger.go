package budget

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

// ExpenseRequest is the outcome of the non-mutating first phase of adding an expense.
type ExpenseRequest struct {
	Draft entity.ExpenseDraft
	// Covered reports whether the jar balance covered the amount when the
	// request was made. Commit re-checks against the state it is given.
	Covered bool
	Balance decimal.Decimal
}

// NormalizeDraft validates a draft and returns it with surrounding whitespace
// trimmed and an unknown category replaced by CategoryOther.
func NormalizeDraft(draft entity.ExpenseDraft) (entity.ExpenseDraft, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Name == "" {
		return draft, domainerror.NewBudgetError(domainerror.ErrCodeEmptyName, "expense name is required", domainerror.ErrEmptyName)
	}
	if !draft.Amount.IsPositive() {
		return draft, domainerror.NewBudgetError(domainerror.ErrCodeInvalidAmount, "expense amount must be greater than zero", domainerror.ErrInvalidAmount)
	}
	if !entity.IsValidJarID(draft.Jar) {
		return draft, domainerror.NewBudgetError(domainerror.ErrCodeUnknownJar, fmt.Sprintf("unknown jar %q", draft.Jar), domainerror.ErrUnknownJar)
	}
	if !entity.IsValidCategory(draft.Category) {
		draft.Category = entity.CategoryOther
	}
	return draft, nil
}

// RequestExpense validates a draft against the current state without changing it.
func (e *Engine) RequestExpense(state entity.UserData, draft entity.ExpenseDraft) (*ExpenseRequest, error) {
	draft, err := NormalizeDraft(draft)
	if err != nil {
		return nil, err
	}

	balance := state.Jars[draft.Jar].Balance
	return &ExpenseRequest{
		Draft:   draft,
		Covered: balance.GreaterThanOrEqual(draft.Amount),
		Balance: balance,
	}, nil
}

// CommitExpense debits the draft's jar and records the expense at the head
// of the list. The state is returned untouched with ErrInsufficientFunds when
// the jar cannot cover the amount.
func (e *Engine) CommitExpense(state entity.UserData, draft entity.ExpenseDraft) (*Transition, error) {
	draft, err := NormalizeDraft(draft)
	if err != nil {
		return nil, err
	}

	jar := state.Jars[draft.Jar]
	if jar.Balance.LessThan(draft.Amount) {
		cfg, _ := entity.FindJarConfig(draft.Jar)
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInsufficientFunds,
			fmt.Sprintf("Ối! Lọ %s không đủ tiền!", cfg.FullName),
			domainerror.ErrInsufficientFunds,
		)
	}

	now := e.now()
	expense := entity.Expense{
		ID:       e.ids.next(now),
		Name:     draft.Name,
		Amount:   draft.Amount,
		Category: draft.Category,
		Jar:      draft.Jar,
		Date:     now,
	}

	next := state.Clone()
	jar.ID = draft.Jar
	jar.Balance = jar.Balance.Sub(draft.Amount)
	next.Jars[draft.Jar] = jar
	next.Expenses = append([]entity.Expense{expense}, next.Expenses...)

	return &Transition{
		State:   next,
		Changed: true,
		Events: []entity.Event{
			e.event(entity.EventExpenseAdded, entity.EventLevelSuccess,
				fmt.Sprintf("Đã thêm chi tiêu \"%s\"!", expense.Name),
				map[string]interface{}{
					"expenseId": expense.ID,
					"jar":       string(expense.Jar),
					"amount":    expense.Amount.String(),
				}),
		},
	}, nil
}

// DeleteExpense refunds an expense to its source jar and removes it.
// An unknown id leaves the state unchanged and is not an error.
func (e *Engine) DeleteExpense(state entity.UserData, id string) *Transition {
	idx := state.FindExpense(id)
	if idx < 0 {
		return unchanged(state)
	}

	next := state.Clone()
	expense := next.Expenses[idx]

	jar := next.Jars[expense.Jar]
	jar.ID = expense.Jar
	jar.Balance = jar.Balance.Add(expense.Amount)
	next.Jars[expense.Jar] = jar
	next.Expenses = append(next.Expenses[:idx], next.Expenses[idx+1:]...)

	return &Transition{
		State:   next,
		Changed: true,
		Events: []entity.Event{
			e.event(entity.EventExpenseDeleted, entity.EventLevelInfo,
				"Đã xóa chi tiêu và hoàn tiền lại vào lọ.",
				map[string]interface{}{
					"expenseId": expense.ID,
					"jar":       string(expense.Jar),
					"refunded":  expense.Amount.String(),
				}),
		},
	}
}
