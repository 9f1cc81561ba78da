// Package error defines domain-specific errors for the Six Jars application.
package error

import "errors"

// Advisor errors. These never abort a ledger mutation.
var (
	// ErrAdvisorNotConfigured is returned when no advisor backend is configured.
	ErrAdvisorNotConfigured = errors.New("advisor is not configured")

	// ErrAdviceUnavailable is returned when advice generation fails.
	ErrAdviceUnavailable = errors.New("advice unavailable")

	// ErrSuggestionUnavailable is returned when a category, jar or icon suggestion fails.
	ErrSuggestionUnavailable = errors.New("suggestion unavailable")
)

// AdvisorErrorCode defines error codes for advisor errors.
// Format: ADV-XXYYYY where XX is category and YYYY is specific error.
type AdvisorErrorCode string

const (
	ErrCodeAdvisorNotConfigured  AdvisorErrorCode = "ADV-010001"
	ErrCodeAdviceUnavailable     AdvisorErrorCode = "ADV-020001"
	ErrCodeSuggestionUnavailable AdvisorErrorCode = "ADV-020002"
	ErrCodeMissingAdvisorFields  AdvisorErrorCode = "ADV-030001"
)

// AdvisorError represents an advisor error with code and message.
type AdvisorError struct {
	Code    AdvisorErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AdvisorError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AdvisorError) Unwrap() error {
	return e.Err
}

// NewAdvisorError creates a new AdvisorError with the given code and message.
func NewAdvisorError(code AdvisorErrorCode, message string, err error) *AdvisorError {
	return &AdvisorError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
