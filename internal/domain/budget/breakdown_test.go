package budget

import (
	"testing"

	"github.com/six-jars/backend/internal/domain/entity"
)

func TestSummarize(t *testing.T) {
	e := newTestEngine()
	state := fundedState(t, e)

	drafts := []entity.ExpenseDraft{
		{Name: "Cơm", Amount: d("35000"), Category: entity.CategoryFood, Jar: entity.JarNecessities},
		{Name: "Trà sữa", Amount: d("30000"), Category: entity.CategoryFood, Jar: entity.JarPlay},
		{Name: "Xem phim", Amount: d("90000"), Category: entity.CategoryEntertainment, Jar: entity.JarPlay},
		{Name: "Grab", Amount: d("25000"), Category: entity.CategoryTransport, Jar: entity.JarNecessities},
	}
	for _, draft := range drafts {
		tr, err := e.CommitExpense(state, draft)
		if err == nil {
			state = tr.State
		}
	}

	got := Summarize(state)

	// the cinema ticket no longer fits in PLAY after the milk tea
	if got.ExpenseCount != 3 {
		t.Fatalf("ExpenseCount = %d, want 3", got.ExpenseCount)
	}
	assertDecimal(t, "TotalSpent", got.TotalSpent, d("90000"))
	assertDecimal(t, "TotalBalance", got.TotalBalance, d("910000"))

	if len(got.ByJar) != 2 || got.ByJar[0].Jar.ID != entity.JarNecessities || got.ByJar[1].Jar.ID != entity.JarPlay {
		t.Fatalf("ByJar = %+v, want NEC then PLAY", got.ByJar)
	}
	assertDecimal(t, "NEC spent", got.ByJar[0].Total, d("60000"))
	if got.ByJar[0].Count != 2 {
		t.Errorf("NEC count = %d, want 2", got.ByJar[0].Count)
	}

	if len(got.ByCategory) != 2 || got.ByCategory[0].Category != entity.CategoryFood || got.ByCategory[1].Category != entity.CategoryTransport {
		t.Fatalf("ByCategory = %+v, want food then transport", got.ByCategory)
	}
	assertDecimal(t, "food spent", got.ByCategory[0].Total, d("65000"))
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(entity.NewUserData("an", testNow))
	if got.ExpenseCount != 0 || len(got.ByJar) != 0 || len(got.ByCategory) != 0 {
		t.Errorf("Summarize() = %+v, want empty", got)
	}
	if !got.TotalSpent.IsZero() || !got.TotalSavings.IsZero() {
		t.Errorf("totals = %s/%s, want zero", got.TotalSpent, got.TotalSavings)
	}
}
