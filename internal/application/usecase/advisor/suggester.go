// Package advisor contains use cases backed by the advisor collaborator.
package advisor

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/six-jars/backend/internal/application/adapter"
	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

// DefaultSuggestion is used whenever the advisor cannot classify an expense.
var DefaultSuggestion = adapter.ExpenseSuggestion{
	Category: entity.CategoryOther,
	Jar:      entity.JarNecessities,
}

// Suggester wraps the advisor with a per-call timeout and fixed fallbacks.
// It never returns an error: a failed suggestion is reported through the
// boolean result and logged.
type Suggester struct {
	advisor adapter.Advisor
	timeout time.Duration
}

// NewSuggester creates a new Suggester. A nil advisor always falls back.
func NewSuggester(advisor adapter.Advisor, timeout time.Duration) *Suggester {
	return &Suggester{advisor: advisor, timeout: timeout}
}

func (s *Suggester) available() bool {
	return s.advisor != nil && s.advisor.IsAvailable()
}

func (s *Suggester) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// Classify suggests a category and jar for an expense name. Values outside
// the fixed sets are replaced by the defaults. ok is false when the
// fallback was used.
func (s *Suggester) Classify(ctx context.Context, expenseName string) (adapter.ExpenseSuggestion, bool) {
	if !s.available() {
		return DefaultSuggestion, false
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	suggestion, err := s.advisor.Classify(ctx, expenseName)
	if err != nil || suggestion == nil {
		slog.Warn("expense classification failed, using defaults",
			"code", domainerror.ErrCodeSuggestionUnavailable,
			"error", err,
		)
		return DefaultSuggestion, false
	}

	out := *suggestion
	if !entity.IsValidCategory(out.Category) {
		out.Category = DefaultSuggestion.Category
	}
	if !entity.IsValidJarID(out.Jar) {
		out.Jar = DefaultSuggestion.Jar
	}
	return out, true
}

// SuggestIcon suggests an emoji for a goal name, falling back to the default icon.
func (s *Suggester) SuggestIcon(ctx context.Context, goalName string) (string, bool) {
	if !s.available() {
		return entity.DefaultGoalIcon, false
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	icon, err := s.advisor.SuggestIcon(ctx, goalName)
	icon = strings.TrimSpace(icon)
	if err != nil || icon == "" {
		slog.Warn("icon suggestion failed, using default",
			"code", domainerror.ErrCodeSuggestionUnavailable,
			"goal", goalName,
			"error", err,
		)
		return entity.DefaultGoalIcon, false
	}
	return icon, true
}
