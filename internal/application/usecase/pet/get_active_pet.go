// Package pet contains use cases for the pet collection.
package pet

import (
	"context"

	"github.com/six-jars/backend/internal/application/usecase/state"
	domainbudget "github.com/six-jars/backend/internal/domain/budget"
)

// GetActivePetInput represents the input for reading the active pet.
type GetActivePetInput struct {
	Owner state.Owner
}

// GetActivePetOutput holds the active pet's tier, or nil when no pet is active.
type GetActivePetOutput struct {
	Tier *domainbudget.TierStatus
}

// GetActivePetUseCase handles reading the active pet's evolution.
type GetActivePetUseCase struct {
	store *state.Store
}

// NewGetActivePetUseCase creates a new GetActivePetUseCase instance.
func NewGetActivePetUseCase(store *state.Store) *GetActivePetUseCase {
	return &GetActivePetUseCase{store: store}
}

// Execute computes the active pet's tier from the user's total savings.
func (uc *GetActivePetUseCase) Execute(ctx context.Context, input GetActivePetInput) (*GetActivePetOutput, error) {
	current, err := uc.store.Load(ctx, input.Owner)
	if err != nil {
		return nil, err
	}

	output := &GetActivePetOutput{}
	if tier, ok := domainbudget.ActiveTier(current); ok {
		output.Tier = &tier
	}
	return output, nil
}
