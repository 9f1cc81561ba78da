package pet_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/six-jars/backend/internal/application/usecase/pet"
	"github.com/six-jars/backend/internal/application/usecase/state"
	"github.com/six-jars/backend/internal/application/usecase/usecasetest"
	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

func newStore(t *testing.T) (*state.Store, *usecasetest.BudgetRepository, state.Owner) {
	t.Helper()
	repo := usecasetest.NewBudgetRepository()
	engine := usecasetest.NewEngine()
	owner := state.Owner{ID: uuid.New(), Username: "mai"}

	current := usecasetest.Funded(engine, owner.Username, 1000000)
	tr, err := engine.AddGoal(current, "Máy tính", "💻", decimal.NewFromInt(80000))
	if err != nil {
		t.Fatalf("AddGoal() error = %v", err)
	}
	tr, err = engine.Deposit(tr.State, tr.State.SavingsGoals[0].ID, decimal.NewFromInt(80000))
	if err != nil {
		t.Fatalf("Deposit() error = %v", err)
	}
	repo.Put(owner.ID, tr.State)

	return state.NewStore(repo, usecasetest.NewLocker(), &usecasetest.Publisher{}, engine), repo, owner
}

func TestGetActivePetUseCase(t *testing.T) {
	store, _, owner := newStore(t)

	out, err := pet.NewGetActivePetUseCase(store).Execute(context.Background(), pet.GetActivePetInput{Owner: owner})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.Tier == nil || out.Tier.Pet.ID != entity.DefaultPetID || out.Tier.ActiveIndex != 1 {
		t.Fatalf("Tier = %+v, want heo-dat tier 1", out.Tier)
	}
	// (80000-50000)/(200000-50000)
	if !out.Tier.ProgressPercent().Equal(decimal.NewFromInt(20)) {
		t.Errorf("progress = %s%%, want 20%%", out.Tier.ProgressPercent())
	}
}

func TestGetActivePetUseCase_NoActivePet(t *testing.T) {
	store, repo, owner := newStore(t)
	current, _ := repo.Get(owner.ID)
	current.ActivePetID = ""
	repo.Put(owner.ID, current)

	out, err := pet.NewGetActivePetUseCase(store).Execute(context.Background(), pet.GetActivePetInput{Owner: owner})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.Tier != nil {
		t.Errorf("Tier = %+v, want nil", out.Tier)
	}
}

func TestListCollectionUseCase(t *testing.T) {
	store, _, owner := newStore(t)

	out, err := pet.NewListCollectionUseCase(store).Execute(context.Background(), pet.ListCollectionInput{Owner: owner})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(out.Entries) != 3 || out.Collected != 2 {
		t.Errorf("entries = %d collected = %d, want 3 and 2", len(out.Entries), out.Collected)
	}
	if !out.TotalSavings.Equal(decimal.NewFromInt(80000)) {
		t.Errorf("TotalSavings = %s", out.TotalSavings)
	}
}

func TestSelectPetUseCase(t *testing.T) {
	store, repo, owner := newStore(t)
	uc := pet.NewSelectPetUseCase(store)

	out, err := uc.Execute(context.Background(), pet.SelectPetInput{Owner: owner, PetID: "mam-cay"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.Tier.Pet.ID != "mam-cay" || out.Tier.ActiveIndex != 1 {
		t.Errorf("Tier = %+v, want mam-cay tier 1", out.Tier)
	}
	if saved, _ := repo.Get(owner.ID); saved.ActivePetID != "mam-cay" {
		t.Errorf("saved active pet = %q", saved.ActivePetID)
	}

	tests := []struct {
		name    string
		petID   string
		wantErr error
	}{
		{name: "locked pet", petID: "trung-rong", wantErr: domainerror.ErrPetNotCollected},
		{name: "unknown pet", petID: "ca-vang", wantErr: domainerror.ErrPetNotFound},
		{name: "empty id", petID: " ", wantErr: domainerror.ErrPetNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), pet.SelectPetInput{Owner: owner, PetID: tt.petID})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Execute() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
