package auth

import (
	"unicode/utf8"

	domainerror "github.com/six-jars/backend/internal/domain/error"
)

// MinPasswordLength is the shortest password an account accepts, in characters.
const MinPasswordLength = 6

func checkPassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password must be at least 6 characters",
			domainerror.ErrWeakPassword,
		)
	}
	return nil
}
