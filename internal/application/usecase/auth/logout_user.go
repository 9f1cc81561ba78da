package auth

import (
	"context"
	"fmt"

	"github.com/six-jars/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	RefreshToken string
}

// LogoutUserOutput reports whether a live session was ended.
type LogoutUserOutput struct {
	Revoked bool
}

// LogoutUserUseCase ends the session behind a refresh token.
type LogoutUserUseCase struct {
	tokens adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokens adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{tokens: tokens}
}

// Execute revokes the refresh token. A token that is unknown, expired or
// already revoked is not an error; the output then reports nothing revoked.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	if _, err := uc.tokens.ValidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return &LogoutUserOutput{}, nil
	}

	live, err := uc.tokens.IsRefreshTokenValid(ctx, input.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if !live {
		return &LogoutUserOutput{}, nil
	}

	if err := uc.tokens.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return &LogoutUserOutput{Revoked: true}, nil
}
