package budget

import (
	"github.com/shopspring/decimal"

	"github.com/six-jars/backend/internal/domain/entity"
)

// JarSpending is the amount spent from one jar.
type JarSpending struct {
	Jar   entity.JarConfig
	Total decimal.Decimal
	Count int
}

// CategorySpending is the amount spent in one category.
type CategorySpending struct {
	Category entity.Category
	Total    decimal.Decimal
	Count    int
}

// Breakdown summarizes current spending and savings.
type Breakdown struct {
	ByJar          []JarSpending
	ByCategory     []CategorySpending
	TotalSpent     decimal.Decimal
	TotalBalance   decimal.Decimal
	TotalSavings   decimal.Decimal
	ExpenseCount   int
	GoalCount      int
	CompletedGoals int
}

// Summarize totals the user's expenses per jar and per category. Jars and
// categories without spending are omitted; the rest keep catalog order.
func Summarize(state entity.UserData) Breakdown {
	jarTotals := make(map[entity.JarID]*JarSpending)
	catTotals := make(map[entity.Category]*CategorySpending)

	out := Breakdown{
		TotalSpent:   decimal.Zero,
		TotalBalance: state.TotalBalance(),
		TotalSavings: state.TotalSavings(),
		ExpenseCount: len(state.Expenses),
		GoalCount:    len(state.SavingsGoals),
	}

	for _, exp := range state.Expenses {
		out.TotalSpent = out.TotalSpent.Add(exp.Amount)

		js, ok := jarTotals[exp.Jar]
		if !ok {
			js = &JarSpending{Total: decimal.Zero}
			jarTotals[exp.Jar] = js
		}
		js.Total = js.Total.Add(exp.Amount)
		js.Count++

		cs, ok := catTotals[exp.Category]
		if !ok {
			cs = &CategorySpending{Category: exp.Category, Total: decimal.Zero}
			catTotals[exp.Category] = cs
		}
		cs.Total = cs.Total.Add(exp.Amount)
		cs.Count++
	}

	for _, cfg := range entity.JarCatalog {
		if js, ok := jarTotals[cfg.ID]; ok {
			js.Jar = cfg
			out.ByJar = append(out.ByJar, *js)
		}
	}
	for _, cat := range entity.Categories {
		if cs, ok := catTotals[cat]; ok {
			out.ByCategory = append(out.ByCategory, *cs)
		}
	}

	for _, g := range state.SavingsGoals {
		if g.Completed {
			out.CompletedGoals++
		}
	}
	return out
}
