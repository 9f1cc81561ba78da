package adapter

import (
	"context"

	"github.com/six-jars/backend/internal/domain/entity"
)

// ExpenseSuggestion is the advisor's guess for a new expense.
type ExpenseSuggestion struct {
	Category entity.Category
	Jar      entity.JarID
}

// AdviceRequest is the ledger state the advisor comments on.
type AdviceRequest struct {
	Jars     []entity.Jar
	Expenses []entity.Expense
	Goals    []entity.SavingsGoal
}

// Advisor is the external language-model collaborator. Callers must treat
// every error as recoverable and fall back to defaults.
type Advisor interface {
	// Classify suggests a category and source jar for an expense name.
	Classify(ctx context.Context, expenseName string) (*ExpenseSuggestion, error)

	// SuggestIcon suggests a single emoji for a savings goal name.
	SuggestIcon(ctx context.Context, goalName string) (string, error)

	// GetAdvice writes short spending advice for the given state.
	GetAdvice(ctx context.Context, request AdviceRequest) (string, error)

	// IsAvailable checks if the advisor is configured.
	IsAvailable() bool
}
