// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/shopspring/decimal"
)

// DefaultGoalIcon is used when no icon is supplied or suggested.
const DefaultGoalIcon = "🎯"

// SavingsGoal is a named target funded from the long-term savings jar.
// Completed only ever moves from false to true.
type SavingsGoal struct {
	ID            string
	Name          string
	Icon          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Completed     bool
}

// Remaining returns how much is still needed to reach the target, never negative.
func (g SavingsGoal) Remaining() decimal.Decimal {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
