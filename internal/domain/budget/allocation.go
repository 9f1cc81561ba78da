package budget

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

func init() {
	if err := ValidateCatalog(entity.JarCatalog); err != nil {
		panic(err)
	}
}

// ValidateCatalog checks that a jar table names six distinct jars whose
// percentages sum to exactly one.
func ValidateCatalog(catalog []entity.JarConfig) error {
	if len(catalog) != 6 {
		return fmt.Errorf("jar catalog has %d jars, want 6", len(catalog))
	}

	seen := make(map[entity.JarID]bool, len(catalog))
	sum := decimal.Zero
	for _, cfg := range catalog {
		if seen[cfg.ID] {
			return fmt.Errorf("jar catalog lists %s twice", cfg.ID)
		}
		seen[cfg.ID] = true
		sum = sum.Add(cfg.Percentage)
	}

	if !sum.Equal(decimal.NewFromInt(1)) {
		return fmt.Errorf("jar percentages sum to %s, want 1", sum.String())
	}
	return nil
}

// Allocate splits income across the six jars by their fixed percentages.
func Allocate(income decimal.Decimal) (map[entity.JarID]entity.Jar, error) {
	if income.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidIncome,
			"income must not be negative",
			domainerror.ErrInvalidIncome,
		)
	}

	jars := make(map[entity.JarID]entity.Jar, len(entity.JarCatalog))
	for _, cfg := range entity.JarCatalog {
		jars[cfg.ID] = entity.Jar{
			ID:      cfg.ID,
			Balance: income.Mul(cfg.Percentage),
		}
	}
	return jars, nil
}

// SetIncome re-budgets the user: every jar is refilled from the new income
// and all expenses and savings goals are discarded. Username and pets survive.
func (e *Engine) SetIncome(state entity.UserData, income decimal.Decimal) (*Transition, error) {
	jars, err := Allocate(income)
	if err != nil {
		return nil, err
	}

	next := state.Clone()
	next.Income = income
	next.Jars = jars
	next.Expenses = []entity.Expense{}
	next.SavingsGoals = []entity.SavingsGoal{}

	return &Transition{
		State:   next,
		Changed: true,
		Events: []entity.Event{
			e.event(entity.EventIncomeSet, entity.EventLevelSuccess,
				"Đã cập nhật thu nhập và phân phối vào các lọ!",
				map[string]interface{}{"income": income.String()}),
		},
	}, nil
}
