package advisor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/six-jars/backend/internal/application/adapter"
	"github.com/six-jars/backend/internal/application/usecase/advisor"
	"github.com/six-jars/backend/internal/application/usecase/state"
	"github.com/six-jars/backend/internal/application/usecase/usecasetest"
	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

func TestSuggester_Classify(t *testing.T) {
	tests := []struct {
		name    string
		advisor *usecasetest.Advisor
		want    adapter.ExpenseSuggestion
		wantOK  bool
	}{
		{
			name:    "valid suggestion",
			advisor: &usecasetest.Advisor{Available: true, Suggestion: &adapter.ExpenseSuggestion{Category: entity.CategoryFood, Jar: entity.JarPlay}},
			want:    adapter.ExpenseSuggestion{Category: entity.CategoryFood, Jar: entity.JarPlay},
			wantOK:  true,
		},
		{
			name:    "values outside the fixed sets",
			advisor: &usecasetest.Advisor{Available: true, Suggestion: &adapter.ExpenseSuggestion{Category: "Đồ uống", Jar: "SNACKS"}},
			want:    advisor.DefaultSuggestion,
			wantOK:  true,
		},
		{
			name:    "advisor error",
			advisor: &usecasetest.Advisor{Available: true, Err: errors.New("quota exceeded")},
			want:    advisor.DefaultSuggestion,
		},
		{
			name:    "not configured",
			advisor: &usecasetest.Advisor{},
			want:    advisor.DefaultSuggestion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := advisor.NewSuggester(tt.advisor, time.Second)
			got, ok := s.Classify(context.Background(), "Trà sữa")
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Classify() = %+v, %v; want %+v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSuggester_NilAdvisor(t *testing.T) {
	s := advisor.NewSuggester(nil, 0)

	if got, ok := s.Classify(context.Background(), "Bánh mì"); ok || got != advisor.DefaultSuggestion {
		t.Errorf("Classify() = %+v, %v", got, ok)
	}
	if got, ok := s.SuggestIcon(context.Background(), "Xe đạp"); ok || got != entity.DefaultGoalIcon {
		t.Errorf("SuggestIcon() = %q, %v", got, ok)
	}
}

func TestSuggester_SuggestIcon(t *testing.T) {
	tests := []struct {
		name    string
		advisor *usecasetest.Advisor
		want    string
		wantOK  bool
	}{
		{name: "suggested", advisor: &usecasetest.Advisor{Available: true, Icon: " 🚲\n"}, want: "🚲", wantOK: true},
		{name: "empty answer", advisor: &usecasetest.Advisor{Available: true, Icon: "  "}, want: entity.DefaultGoalIcon},
		{name: "error", advisor: &usecasetest.Advisor{Available: true, Err: errors.New("timeout")}, want: entity.DefaultGoalIcon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := advisor.NewSuggester(tt.advisor, time.Second).SuggestIcon(context.Background(), "Xe đạp")
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("SuggestIcon() = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestClassifyExpenseUseCase(t *testing.T) {
	fake := &usecasetest.Advisor{Available: true, Suggestion: &adapter.ExpenseSuggestion{Category: entity.CategoryStudy, Jar: entity.JarEducation}}
	uc := advisor.NewClassifyExpenseUseCase(advisor.NewSuggester(fake, time.Second))

	out, err := uc.Execute(context.Background(), advisor.ClassifyExpenseInput{Name: "Sách tiếng Anh"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.Category != entity.CategoryStudy || out.Jar != entity.JarEducation || out.Fallback {
		t.Errorf("Execute() = %+v", out)
	}

	_, err = uc.Execute(context.Background(), advisor.ClassifyExpenseInput{Name: "  "})
	var advisorErr *domainerror.AdvisorError
	if !errors.As(err, &advisorErr) || advisorErr.Code != domainerror.ErrCodeMissingAdvisorFields {
		t.Errorf("Execute() with empty name error = %v", err)
	}
}

func newAdviceFixture(fake *usecasetest.Advisor) (*advisor.GetAdviceUseCase, *usecasetest.BudgetRepository, state.Owner) {
	repo := usecasetest.NewBudgetRepository()
	store := state.NewStore(repo, usecasetest.NewLocker(), &usecasetest.Publisher{}, usecasetest.NewEngine())
	owner := state.Owner{ID: uuid.New(), Username: "tuan"}
	return advisor.NewGetAdviceUseCase(store, fake, time.Second), repo, owner
}

func seedExpenses(t *testing.T, repo *usecasetest.BudgetRepository, owner state.Owner, n int) {
	t.Helper()
	engine := usecasetest.NewEngine()
	current := usecasetest.Funded(engine, owner.Username, 1000000)
	for i := 0; i < n; i++ {
		tr, err := engine.CommitExpense(current, entity.ExpenseDraft{Name: "Cơm", Amount: decimal.NewFromInt(1000), Category: entity.CategoryFood, Jar: entity.JarNecessities})
		if err != nil {
			t.Fatalf("CommitExpense() error = %v", err)
		}
		current = tr.State
	}
	repo.Put(owner.ID, current)
}

func TestGetAdviceUseCase_NotEnoughData(t *testing.T) {
	fake := &usecasetest.Advisor{Available: true, Advice: "Giỏi lắm!"}
	uc, repo, owner := newAdviceFixture(fake)
	seedExpenses(t, repo, owner, 2)

	out, err := uc.Execute(context.Background(), advisor.GetAdviceInput{Owner: owner})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !out.NotEnoughData || out.Advice != advisor.NotEnoughDataMessage {
		t.Errorf("Execute() = %+v, want canned message", out)
	}
	if fake.Calls != 0 {
		t.Errorf("advisor called %d times, want 0", fake.Calls)
	}
}

func TestGetAdviceUseCase_SendsRecentExpenses(t *testing.T) {
	fake := &usecasetest.Advisor{Available: true, Advice: "Chào bạn! Bạn đang tiêu rất hợp lý."}
	uc, repo, owner := newAdviceFixture(fake)
	seedExpenses(t, repo, owner, 12)

	out, err := uc.Execute(context.Background(), advisor.GetAdviceInput{Owner: owner})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.Advice != fake.Advice || out.Unavailable != nil || out.NotEnoughData {
		t.Errorf("Execute() = %+v", out)
	}
	if len(fake.Last.Expenses) != 10 {
		t.Errorf("advisor saw %d expenses, want 10", len(fake.Last.Expenses))
	}
	if len(fake.Last.Jars) != 6 || fake.Last.Jars[0].ID != entity.JarNecessities {
		t.Errorf("advisor saw jars %+v, want six in catalog order", fake.Last.Jars)
	}
}

func TestGetAdviceUseCase_FailureFallsBack(t *testing.T) {
	tests := []struct {
		name string
		fake *usecasetest.Advisor
	}{
		{name: "advisor error", fake: &usecasetest.Advisor{Available: true, Err: errors.New("503")}},
		{name: "empty advice", fake: &usecasetest.Advisor{Available: true}},
		{name: "not configured", fake: &usecasetest.Advisor{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, owner := newAdviceFixture(tt.fake)
			seedExpenses(t, repo, owner, 3)
			before, _ := repo.Get(owner.ID)

			out, err := uc.Execute(context.Background(), advisor.GetAdviceInput{Owner: owner})
			if err != nil {
				t.Fatalf("Execute() error = %v, want nil", err)
			}
			if out.Advice != advisor.UnavailableMessage {
				t.Errorf("Advice = %q, want apology", out.Advice)
			}
			if out.Unavailable == nil || !errors.Is(out.Unavailable, domainerror.ErrAdviceUnavailable) {
				t.Errorf("Unavailable = %v, want ErrAdviceUnavailable", out.Unavailable)
			}

			after, _ := repo.Get(owner.ID)
			if len(after.Expenses) != len(before.Expenses) || repo.Saves != 0 {
				t.Errorf("advice failure touched the budget")
			}
		})
	}
}
