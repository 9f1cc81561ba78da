// Package error defines domain-specific errors for the Six Jars application.
package error

import "errors"

// Savings goal errors.
var (
	// ErrGoalNotFound is returned when a savings goal is not found.
	ErrGoalNotFound = errors.New("savings goal not found")

	// ErrGoalAlreadyCompleted is returned when depositing into a completed goal.
	ErrGoalAlreadyCompleted = errors.New("savings goal already completed")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("invalid target amount")
)

// SavingsErrorCode defines error codes for savings goal errors.
// Format: SAV-XXYYYY where XX is category and YYYY is specific error.
type SavingsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTargetAmount  SavingsErrorCode = "SAV-010001"
	ErrCodeInvalidDeposit       SavingsErrorCode = "SAV-010002"
	ErrCodeEmptyGoalName        SavingsErrorCode = "SAV-010003"
	ErrCodeMissingSavingsFields SavingsErrorCode = "SAV-010004"

	// State errors (02XXXX)
	ErrCodeGoalNotFound           SavingsErrorCode = "SAV-020001"
	ErrCodeGoalAlreadyCompleted   SavingsErrorCode = "SAV-020002"
	ErrCodeSavingsJarInsufficient SavingsErrorCode = "SAV-020003"
)

// SavingsError represents a savings goal error with code and message.
type SavingsError struct {
	Code    SavingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SavingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SavingsError) Unwrap() error {
	return e.Err
}

// NewSavingsError creates a new SavingsError with the given code and message.
func NewSavingsError(code SavingsErrorCode, message string, err error) *SavingsError {
	return &SavingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
