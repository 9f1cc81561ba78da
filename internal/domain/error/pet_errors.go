// Package error defines domain-specific errors for the Six Jars application.
package error

import "errors"

// Pet errors.
var (
	// ErrPetNotFound is returned when a pet id is not in the catalog.
	ErrPetNotFound = errors.New("pet not found")

	// ErrPetNotCollected is returned when selecting a pet the user has not unlocked.
	ErrPetNotCollected = errors.New("pet not in collection")
)

// PetErrorCode defines error codes for pet errors.
// Format: PET-XXYYYY where XX is category and YYYY is specific error.
type PetErrorCode string

const (
	ErrCodePetNotFound     PetErrorCode = "PET-010001"
	ErrCodePetNotCollected PetErrorCode = "PET-010002"
	ErrCodeMissingPetID    PetErrorCode = "PET-010003"
)

// PetError represents a pet error with code and message.
type PetError struct {
	Code    PetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PetError) Unwrap() error {
	return e.Err
}

// NewPetError creates a new PetError with the given code and message.
func NewPetError(code PetErrorCode, message string, err error) *PetError {
	return &PetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
