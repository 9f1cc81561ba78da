package budget

import (
	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

// FlowState is a state of the confirm-then-commit expense flow.
type FlowState string

const (
	FlowIdle                FlowState = "idle"
	FlowPendingConfirmation FlowState = "pending_confirmation"
	FlowCommitted           FlowState = "committed"
)

// ExpenseFlow drives the two-phase add-expense interaction:
// Idle -> PendingConfirmation(draft) -> Committed(expense), with cancel
// returning to Idle without touching the ledger. A flow is not safe for
// concurrent use.
type ExpenseFlow struct {
	engine    *Engine
	state     FlowState
	draft     entity.ExpenseDraft
	committed entity.Expense
}

// NewExpenseFlow returns an idle flow.
func (e *Engine) NewExpenseFlow() *ExpenseFlow {
	return &ExpenseFlow{engine: e, state: FlowIdle}
}

// ResumeExpenseFlow returns a flow already awaiting confirmation of draft.
// Used when the draft was kept outside the process between requests.
func (e *Engine) ResumeExpenseFlow(draft entity.ExpenseDraft) *ExpenseFlow {
	return &ExpenseFlow{engine: e, state: FlowPendingConfirmation, draft: draft}
}

// State returns the current flow state.
func (f *ExpenseFlow) State() FlowState {
	return f.state
}

// Draft returns the draft awaiting confirmation, if any.
func (f *ExpenseFlow) Draft() (entity.ExpenseDraft, bool) {
	if f.state != FlowPendingConfirmation {
		return entity.ExpenseDraft{}, false
	}
	return f.draft, true
}

// Committed returns the expense recorded by the last confirmation, if any.
func (f *ExpenseFlow) Committed() (entity.Expense, bool) {
	if f.state != FlowCommitted {
		return entity.Expense{}, false
	}
	return f.committed, true
}

// Request validates a draft and moves the flow to PendingConfirmation.
// A newer request replaces any draft still pending. State is never modified.
func (f *ExpenseFlow) Request(state entity.UserData, draft entity.ExpenseDraft) (*ExpenseRequest, error) {
	req, err := f.engine.RequestExpense(state, draft)
	if err != nil {
		return nil, err
	}
	f.state = FlowPendingConfirmation
	f.draft = req.Draft
	return req, nil
}

// Confirm commits the pending draft against state. The draft is consumed
// whether or not the commit succeeds; on failure the flow returns to Idle.
func (f *ExpenseFlow) Confirm(state entity.UserData) (*Transition, error) {
	if f.state != FlowPendingConfirmation {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNoPendingExpense,
			"no expense is awaiting confirmation",
			domainerror.ErrNoPendingExpense,
		)
	}

	draft := f.draft
	f.draft = entity.ExpenseDraft{}

	tr, err := f.engine.CommitExpense(state, draft)
	if err != nil {
		f.state = FlowIdle
		return nil, err
	}

	f.state = FlowCommitted
	f.committed = tr.State.Expenses[0]
	return tr, nil
}

// Cancel discards a pending draft. It reports whether a draft was discarded.
func (f *ExpenseFlow) Cancel() bool {
	if f.state != FlowPendingConfirmation {
		return false
	}
	f.state = FlowIdle
	f.draft = entity.ExpenseDraft{}
	return true
}
