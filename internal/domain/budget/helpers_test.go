package budget

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/six-jars/backend/internal/domain/entity"
)

var testNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func newTestEngine() *Engine {
	return NewEngine(WithClock(func() time.Time { return testNow }))
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// fundedState returns a fresh user whose income of 1,000,000 has been allocated.
func fundedState(t *testing.T, e *Engine) entity.UserData {
	t.Helper()
	tr, err := e.SetIncome(entity.NewUserData("lan", testNow), d("1000000"))
	if err != nil {
		t.Fatalf("SetIncome() error = %v", err)
	}
	return tr.State
}

func mustEncode(t *testing.T, state entity.UserData) string {
	t.Helper()
	data, err := EncodeSnapshot(state)
	if err != nil {
		t.Fatalf("EncodeSnapshot() error = %v", err)
	}
	return string(data)
}

func balance(state entity.UserData, id entity.JarID) decimal.Decimal {
	return state.Jars[id].Balance
}

func assertDecimal(t *testing.T, name string, got, want decimal.Decimal) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %s, want %s", name, got.String(), want.String())
	}
}

func hasEvent(events []entity.Event, kind entity.EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}
