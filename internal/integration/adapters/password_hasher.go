package adapters

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/six-jars/backend/internal/application/adapter"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

// bcryptHasher implements adapter.PasswordHasher with bcrypt.
type bcryptHasher struct {
	cost int
}

// NewPasswordHasher returns a bcrypt hasher. An out-of-range cost falls back
// to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) adapter.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (h *bcryptHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return domainerror.ErrInvalidCredentials
	}
	return err
}
