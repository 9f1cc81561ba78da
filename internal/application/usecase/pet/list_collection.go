package pet

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/six-jars/backend/internal/application/usecase/state"
	domainbudget "github.com/six-jars/backend/internal/domain/budget"
)

// ListCollectionInput represents the input for listing the pet collection.
type ListCollectionInput struct {
	Owner state.Owner
}

// ListCollectionOutput represents the whole catalog with ownership flags.
type ListCollectionOutput struct {
	Entries      []domainbudget.CollectionEntry
	TotalSavings decimal.Decimal
	Collected    int
}

// ListCollectionUseCase handles listing the pet collection.
type ListCollectionUseCase struct {
	store *state.Store
}

// NewListCollectionUseCase creates a new ListCollectionUseCase instance.
func NewListCollectionUseCase(store *state.Store) *ListCollectionUseCase {
	return &ListCollectionUseCase{store: store}
}

// Execute lists every catalog pet in unlock order.
func (uc *ListCollectionUseCase) Execute(ctx context.Context, input ListCollectionInput) (*ListCollectionOutput, error) {
	current, err := uc.store.Load(ctx, input.Owner)
	if err != nil {
		return nil, err
	}

	entries := domainbudget.Collection(current)
	collected := 0
	for _, e := range entries {
		if e.Unlocked {
			collected++
		}
	}

	return &ListCollectionOutput{
		Entries:      entries,
		TotalSavings: current.TotalSavings(),
		Collected:    collected,
	}, nil
}
