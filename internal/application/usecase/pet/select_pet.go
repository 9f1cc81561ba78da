package pet

import (
	"context"
	"strings"

	"github.com/six-jars/backend/internal/application/usecase/state"
	domainbudget "github.com/six-jars/backend/internal/domain/budget"
	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

// SelectPetInput represents the input for changing the active pet.
type SelectPetInput struct {
	Owner state.Owner
	PetID string
}

// SelectPetOutput represents the new active pet.
type SelectPetOutput struct {
	Tier   domainbudget.TierStatus
	Events []entity.Event
}

// SelectPetUseCase handles changing the active pet.
type SelectPetUseCase struct {
	store *state.Store
}

// NewSelectPetUseCase creates a new SelectPetUseCase instance.
func NewSelectPetUseCase(store *state.Store) *SelectPetUseCase {
	return &SelectPetUseCase{store: store}
}

// Execute makes a collected pet the active one.
func (uc *SelectPetUseCase) Execute(ctx context.Context, input SelectPetInput) (*SelectPetOutput, error) {
	petID := strings.TrimSpace(input.PetID)
	if petID == "" {
		return nil, domainerror.NewPetError(domainerror.ErrCodeMissingPetID, "pet id is required", domainerror.ErrPetNotFound)
	}

	engine := uc.store.Engine()
	tr, err := uc.store.Apply(ctx, input.Owner, func(current entity.UserData) (*domainbudget.Transition, error) {
		return engine.SelectActivePet(current, petID)
	})
	if err != nil {
		return nil, err
	}

	tier, _ := domainbudget.ActiveTier(tr.State)
	return &SelectPetOutput{Tier: tier, Events: tr.Events}, nil
}
