// Package error defines domain-specific errors for the Six Jars application.
package error

import "errors"

// Budget ledger errors.
var (
	// ErrInsufficientFunds is returned when a debit exceeds the jar balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount is returned for zero or negative amounts.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidIncome is returned for a negative income.
	ErrInvalidIncome = errors.New("invalid income")

	// ErrEmptyName is returned when a required name is blank.
	ErrEmptyName = errors.New("name is required")

	// ErrUnknownJar is returned when a jar id is not one of the six jars.
	ErrUnknownJar = errors.New("unknown jar")

	// ErrNoPendingExpense is returned when confirming without a pending draft.
	ErrNoPendingExpense = errors.New("no expense awaiting confirmation")

	// ErrSnapshotNotFound is returned when a user has no stored budget yet.
	ErrSnapshotNotFound = errors.New("budget snapshot not found")

	// ErrCorruptSnapshot is returned when a stored budget cannot be decoded.
	ErrCorruptSnapshot = errors.New("budget snapshot is corrupt")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BUD-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount       BudgetErrorCode = "BUD-010001"
	ErrCodeInvalidIncome       BudgetErrorCode = "BUD-010002"
	ErrCodeEmptyName           BudgetErrorCode = "BUD-010003"
	ErrCodeUnknownJar          BudgetErrorCode = "BUD-010004"
	ErrCodeMissingBudgetFields BudgetErrorCode = "BUD-010005"

	// Funds errors (02XXXX)
	ErrCodeInsufficientFunds BudgetErrorCode = "BUD-020001"

	// Flow errors (03XXXX)
	ErrCodeNoPendingExpense BudgetErrorCode = "BUD-030001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
