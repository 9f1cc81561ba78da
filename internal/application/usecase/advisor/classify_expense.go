package advisor

import (
	"context"
	"strings"

	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

// ClassifyExpenseInput represents the input for classifying an expense name.
type ClassifyExpenseInput struct {
	Name string
}

// ClassifyExpenseOutput represents the suggested category and jar.
type ClassifyExpenseOutput struct {
	Category entity.Category
	Jar      entity.JarID
	// Fallback is true when the defaults were returned instead of a suggestion.
	Fallback bool
}

// ClassifyExpenseUseCase suggests where a new expense belongs.
type ClassifyExpenseUseCase struct {
	suggester *Suggester
}

// NewClassifyExpenseUseCase creates a new ClassifyExpenseUseCase instance.
func NewClassifyExpenseUseCase(suggester *Suggester) *ClassifyExpenseUseCase {
	return &ClassifyExpenseUseCase{suggester: suggester}
}

// Execute returns a suggestion, or the defaults when the advisor fails.
func (uc *ClassifyExpenseUseCase) Execute(ctx context.Context, input ClassifyExpenseInput) (*ClassifyExpenseOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewAdvisorError(
			domainerror.ErrCodeMissingAdvisorFields,
			"expense name is required",
			domainerror.ErrEmptyName,
		)
	}

	suggestion, ok := uc.suggester.Classify(ctx, name)
	return &ClassifyExpenseOutput{
		Category: suggestion.Category,
		Jar:      suggestion.Jar,
		Fallback: !ok,
	}, nil
}
