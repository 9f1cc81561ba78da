package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/six-jars/backend/internal/application/adapter"
	"github.com/six-jars/backend/internal/application/usecase/state"
	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

const (
	// NotEnoughDataMessage is returned without calling the advisor when the
	// user has too little history for useful advice.
	NotEnoughDataMessage = "Bạn cần thêm chi tiêu hoặc mục tiêu tiết kiệm để AI có thể đưa ra lời khuyên chính xác nhé!"

	// UnavailableMessage is returned when advice generation fails.
	UnavailableMessage = "Ối! AI đang bận một chút, bạn thử lại sau nha."

	minExpensesForAdvice = 3
	recentExpenseLimit   = 10
)

// GetAdviceInput represents the input for requesting spending advice.
type GetAdviceInput struct {
	Owner state.Owner
}

// GetAdviceOutput carries the advice text. It never fails because of the advisor.
type GetAdviceOutput struct {
	Advice string
	// NotEnoughData is true when the canned message was returned.
	NotEnoughData bool
	// Unavailable holds the advisor failure when the apology message was returned.
	Unavailable *domainerror.AdvisorError
}

// GetAdviceUseCase asks the advisor to comment on the user's budget.
type GetAdviceUseCase struct {
	store   *state.Store
	advisor adapter.Advisor
	timeout time.Duration
}

// NewGetAdviceUseCase creates a new GetAdviceUseCase instance.
func NewGetAdviceUseCase(store *state.Store, advisor adapter.Advisor, timeout time.Duration) *GetAdviceUseCase {
	return &GetAdviceUseCase{
		store:   store,
		advisor: advisor,
		timeout: timeout,
	}
}

// Execute loads the budget outside any lock and requests advice on it.
func (uc *GetAdviceUseCase) Execute(ctx context.Context, input GetAdviceInput) (*GetAdviceOutput, error) {
	current, err := uc.store.Load(ctx, input.Owner)
	if err != nil {
		return nil, err
	}

	if len(current.Expenses) < minExpensesForAdvice && len(current.SavingsGoals) == 0 {
		return &GetAdviceOutput{Advice: NotEnoughDataMessage, NotEnoughData: true}, nil
	}

	if uc.advisor == nil || !uc.advisor.IsAvailable() {
		return unavailable(domainerror.ErrAdvisorNotConfigured), nil
	}

	adviceCtx := ctx
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		adviceCtx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	advice, err := uc.advisor.GetAdvice(adviceCtx, buildAdviceRequest(current))
	if err != nil || advice == "" {
		if err == nil {
			err = errors.New("advisor returned no text")
		}
		slog.Warn("advice generation failed",
			"user_id", input.Owner.ID,
			"error", err,
		)
		return unavailable(err), nil
	}

	return &GetAdviceOutput{Advice: advice}, nil
}

func unavailable(cause error) *GetAdviceOutput {
	return &GetAdviceOutput{
		Advice: UnavailableMessage,
		Unavailable: domainerror.NewAdvisorError(
			domainerror.ErrCodeAdviceUnavailable,
			"advice unavailable",
			fmt.Errorf("%w: %w", domainerror.ErrAdviceUnavailable, cause),
		),
	}
}

func buildAdviceRequest(current entity.UserData) adapter.AdviceRequest {
	jars := make([]entity.Jar, 0, len(entity.JarCatalog))
	for _, id := range entity.JarIDs() {
		jars = append(jars, current.Jars[id])
	}

	recent := current.Expenses
	if len(recent) > recentExpenseLimit {
		recent = recent[:recentExpenseLimit]
	}

	return adapter.AdviceRequest{
		Jars:     jars,
		Expenses: recent,
		Goals:    current.SavingsGoals,
	}
}
