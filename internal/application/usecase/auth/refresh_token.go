package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/six-jars/backend/internal/application/adapter"
	"github.com/six-jars/backend/internal/application/usecase/state"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

// RefreshTokenInput represents the input for token refresh.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenOutput carries the rotated token pair and the budget owner it
// was issued for.
type RefreshTokenOutput struct {
	Owner        state.Owner
	AccessToken  string
	RefreshToken string
}

// RefreshTokenUseCase rotates refresh tokens.
type RefreshTokenUseCase struct {
	userRepo adapter.UserRepository
	tokens   adapter.TokenService
}

// NewRefreshTokenUseCase creates a new RefreshTokenUseCase instance.
func NewRefreshTokenUseCase(userRepo adapter.UserRepository, tokens adapter.TokenService) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Execute revokes the presented refresh token and issues a new pair for the
// account as it is stored now. Each refresh token is accepted once.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error) {
	owner, err := uc.sessionOwner(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}

	if err := uc.tokens.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	pair, err := uc.tokens.GenerateTokenPair(ctx, owner.ID, owner.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RefreshTokenOutput{
		Owner:        owner,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// sessionOwner resolves the account behind a live refresh token.
func (uc *RefreshTokenUseCase) sessionOwner(ctx context.Context, token string) (state.Owner, error) {
	claims, err := uc.tokens.ValidateRefreshToken(ctx, token)
	if err != nil {
		return state.Owner{}, invalidSession("invalid or expired refresh token")
	}

	live, err := uc.tokens.IsRefreshTokenValid(ctx, token)
	if err != nil {
		return state.Owner{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if !live {
		return state.Owner{}, invalidSession("refresh token has been revoked")
	}

	user, err := uc.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, domainerror.ErrUserNotFound) {
		return state.Owner{}, invalidSession("account no longer exists")
	}
	if err != nil {
		return state.Owner{}, fmt.Errorf("failed to load account: %w", err)
	}
	return state.Owner{ID: user.ID, Username: user.Username}, nil
}

func invalidSession(message string) error {
	return domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, message, domainerror.ErrInvalidToken)
}
