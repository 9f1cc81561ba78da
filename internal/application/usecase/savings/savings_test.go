package savings_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/six-jars/backend/internal/application/usecase/advisor"
	"github.com/six-jars/backend/internal/application/usecase/savings"
	"github.com/six-jars/backend/internal/application/usecase/state"
	"github.com/six-jars/backend/internal/application/usecase/usecasetest"
	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

type fixture struct {
	repo      *usecasetest.BudgetRepository
	publisher *usecasetest.Publisher
	advisor   *usecasetest.Advisor
	store     *state.Store
	owner     state.Owner
}

func newFixture() *fixture {
	f := &fixture{
		repo:      usecasetest.NewBudgetRepository(),
		publisher: &usecasetest.Publisher{},
		advisor:   &usecasetest.Advisor{Available: true, Icon: "🚲"},
		owner:     state.Owner{ID: uuid.New(), Username: "nam"},
	}
	engine := usecasetest.NewEngine()
	f.store = state.NewStore(f.repo, usecasetest.NewLocker(), f.publisher, engine)
	f.repo.Put(f.owner.ID, usecasetest.Funded(engine, f.owner.Username, 1000000))
	return f
}

func (f *fixture) createGoal(t *testing.T, name, icon string, target int64) *savings.CreateGoalOutput {
	t.Helper()
	uc := savings.NewCreateGoalUseCase(f.store, advisor.NewSuggester(f.advisor, time.Second))
	out, err := uc.Execute(context.Background(), savings.CreateGoalInput{
		Owner:        f.owner,
		Name:         name,
		Icon:         icon,
		TargetAmount: decimal.NewFromInt(target),
	})
	if err != nil {
		t.Fatalf("CreateGoal error = %v", err)
	}
	return out
}

func TestCreateGoalUseCase_Icons(t *testing.T) {
	tests := []struct {
		name          string
		icon          string
		advisorErr    error
		wantIcon      string
		wantSuggested bool
		wantCalls     int
	}{
		{name: "user icon", icon: "📱", wantIcon: "📱"},
		{name: "suggested icon", wantIcon: "🚲", wantSuggested: true, wantCalls: 1},
		{name: "suggestion fails", advisorErr: errors.New("quota"), wantIcon: entity.DefaultGoalIcon, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.advisor.Err = tt.advisorErr

			out := f.createGoal(t, "Xe đạp", tt.icon, 1500000)
			if out.Goal.Icon != tt.wantIcon || out.IconSuggested != tt.wantSuggested {
				t.Errorf("goal icon = %q suggested = %v, want %q %v", out.Goal.Icon, out.IconSuggested, tt.wantIcon, tt.wantSuggested)
			}
			if f.advisor.Calls != tt.wantCalls {
				t.Errorf("advisor calls = %d, want %d", f.advisor.Calls, tt.wantCalls)
			}
			if saved, _ := f.repo.Get(f.owner.ID); len(saved.SavingsGoals) != 1 {
				t.Errorf("saved goals = %d, want 1", len(saved.SavingsGoals))
			}
		})
	}
}

func TestCreateGoalUseCase_ValidatesBeforeAskingAdvisor(t *testing.T) {
	f := newFixture()
	uc := savings.NewCreateGoalUseCase(f.store, advisor.NewSuggester(f.advisor, time.Second))

	_, err := uc.Execute(context.Background(), savings.CreateGoalInput{Owner: f.owner, Name: "Laptop", TargetAmount: decimal.Zero})
	if !errors.Is(err, domainerror.ErrInvalidTargetAmount) {
		t.Errorf("Execute() error = %v, want ErrInvalidTargetAmount", err)
	}
	_, err = uc.Execute(context.Background(), savings.CreateGoalInput{Owner: f.owner, Name: "", TargetAmount: decimal.NewFromInt(10)})
	if !errors.Is(err, domainerror.ErrEmptyName) {
		t.Errorf("Execute() error = %v, want ErrEmptyName", err)
	}
	if f.advisor.Calls != 0 {
		t.Errorf("advisor called for invalid input")
	}
}

func TestDepositUseCase_CompletionUnlocksPet(t *testing.T) {
	f := newFixture()
	goal := f.createGoal(t, "Tai nghe", "🎧", 50000).Goal
	uc := savings.NewDepositUseCase(f.store)

	out, err := uc.Execute(context.Background(), savings.DepositInput{Owner: f.owner, GoalID: goal.ID, Amount: decimal.NewFromInt(20000)})
	if err != nil {
		t.Fatalf("Deposit error = %v", err)
	}
	if out.Goal.Completed || out.UnlockedPet != nil {
		t.Errorf("first deposit completed the goal")
	}

	out, err = uc.Execute(context.Background(), savings.DepositInput{Owner: f.owner, GoalID: goal.ID, Amount: decimal.NewFromInt(30000)})
	if err != nil {
		t.Fatalf("Deposit error = %v", err)
	}
	if !out.Goal.Completed {
		t.Errorf("goal not completed at %s", out.Goal.CurrentAmount)
	}
	if out.UnlockedPet == nil || out.UnlockedPet.ID != "mam-cay" {
		t.Errorf("UnlockedPet = %+v, want mam-cay", out.UnlockedPet)
	}

	saved, _ := f.repo.Get(f.owner.ID)
	if !saved.Jars[entity.SavingsJar].Balance.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("LTSS = %s, want 50000", saved.Jars[entity.SavingsJar].Balance)
	}

	_, err = uc.Execute(context.Background(), savings.DepositInput{Owner: f.owner, GoalID: goal.ID, Amount: decimal.NewFromInt(1000)})
	if !errors.Is(err, domainerror.ErrGoalAlreadyCompleted) {
		t.Errorf("deposit on completed goal error = %v", err)
	}
}

func TestDeleteGoalUseCase(t *testing.T) {
	f := newFixture()
	goal := f.createGoal(t, "Sách", "📚", 20000).Goal
	if _, err := savings.NewDepositUseCase(f.store).Execute(context.Background(), savings.DepositInput{Owner: f.owner, GoalID: goal.ID, Amount: decimal.NewFromInt(5000)}); err != nil {
		t.Fatalf("Deposit error = %v", err)
	}

	uc := savings.NewDeleteGoalUseCase(f.store)
	out, err := uc.Execute(context.Background(), savings.DeleteGoalInput{Owner: f.owner, GoalID: goal.ID})
	if err != nil {
		t.Fatalf("Delete error = %v", err)
	}
	if !out.Deleted || !out.Refunded.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("Delete = %+v, want 5000 refunded", out)
	}
	if !out.State.Jars[entity.SavingsJar].Balance.Equal(decimal.NewFromInt(100000)) {
		t.Errorf("LTSS = %s, want 100000", out.State.Jars[entity.SavingsJar].Balance)
	}

	out, err = uc.Execute(context.Background(), savings.DeleteGoalInput{Owner: f.owner, GoalID: goal.ID})
	if err != nil || out.Deleted || !out.Refunded.IsZero() {
		t.Errorf("second Delete = %+v, %v", out, err)
	}
}
