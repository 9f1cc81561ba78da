package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/six-jars/backend/internal/application/adapter"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

// ChangePasswordInput represents the input for changing a password.
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePasswordUseCase handles password changes for a signed-in user.
type ChangePasswordUseCase struct {
	userRepo adapter.UserRepository
	hasher   adapter.PasswordHasher
	tokens   adapter.TokenService
}

// NewChangePasswordUseCase creates a new ChangePasswordUseCase instance.
func NewChangePasswordUseCase(
	userRepo adapter.UserRepository,
	hasher adapter.PasswordHasher,
	tokens adapter.TokenService,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// Execute verifies the current password, stores the new one and signs the
// user out of every session. Access tokens already issued stay valid until
// they expire.
func (uc *ChangePasswordUseCase) Execute(ctx context.Context, input ChangePasswordInput) error {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if err := uc.hasher.Compare(user.PasswordHash, input.CurrentPassword); err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"current password is incorrect",
			domainerror.ErrInvalidCredentials,
		)
	}

	if err := checkPassword(input.NewPassword); err != nil {
		return err
	}

	hash, err := uc.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if err := uc.tokens.RevokeAllRefreshTokens(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}
	return nil
}
