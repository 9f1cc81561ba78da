package dto

import (
	"time"

	"github.com/shopspring/decimal"

	domainbudget "github.com/six-jars/backend/internal/domain/budget"
	"github.com/six-jars/backend/internal/domain/entity"
)

// SetIncomeRequest represents the request body for allocating a monthly income.
type SetIncomeRequest struct {
	Income *decimal.Decimal `json:"income" binding:"required"`
}

// ExpenseRequest represents the request body for a new expense awaiting confirmation.
// Category and jar are optional and are suggested when left out.
type ExpenseRequest struct {
	Name     string          `json:"name" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Jar      string          `json:"jar"`
}

// JarResponse represents a jar with its catalog metadata and balance.
type JarResponse struct {
	ID          string          `json:"id"`
	FullName    string          `json:"full_name"`
	Icon        string          `json:"icon"`
	Description string          `json:"description"`
	Percentage  decimal.Decimal `json:"percentage"`
	Balance     decimal.Decimal `json:"balance"`
}

// ExpenseResponse represents a committed expense.
type ExpenseResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Jar      string          `json:"jar"`
	Date     time.Time       `json:"date"`
}

// ExpenseDraftResponse represents an expense awaiting confirmation.
type ExpenseDraftResponse struct {
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Jar      string          `json:"jar"`
}

// PendingExpenseResponse represents the response for a new expense request.
type PendingExpenseResponse struct {
	Draft              ExpenseDraftResponse `json:"draft"`
	Covered            bool                 `json:"covered"`
	JarBalance         decimal.Decimal      `json:"jar_balance"`
	Suggested          bool                 `json:"suggested"`
	SuggestionFallback bool                 `json:"suggestion_fallback"`
}

// EventResponse represents a notification emitted by a mutation.
type EventResponse struct {
	Kind       string                 `json:"kind"`
	Level      string                 `json:"level"`
	Message    string                 `json:"message"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// BudgetResponse represents the full budget of the authenticated user.
type BudgetResponse struct {
	Username      string                 `json:"username"`
	Income        decimal.Decimal        `json:"income"`
	Jars          []JarResponse          `json:"jars"`
	Expenses      []ExpenseResponse      `json:"expenses"`
	SavingsGoals  []GoalResponse         `json:"savings_goals"`
	ActivePetID   string                 `json:"active_pet_id"`
	CollectedPets []CollectedPetResponse `json:"collected_pets"`
	TotalBalance  decimal.Decimal        `json:"total_balance"`
	TotalSavings  decimal.Decimal        `json:"total_savings"`
	ActivePet     *PetTierResponse       `json:"active_pet,omitempty"`
	Pending       *ExpenseDraftResponse  `json:"pending,omitempty"`
}

// BudgetMutationResponse represents the budget after a mutation with its events.
type BudgetMutationResponse struct {
	Budget BudgetResponse  `json:"budget"`
	Events []EventResponse `json:"events"`
}

// ConfirmExpenseResponse represents the response for a confirmed expense.
type ConfirmExpenseResponse struct {
	Expense ExpenseResponse `json:"expense"`
	Budget  BudgetResponse  `json:"budget"`
	Events  []EventResponse `json:"events"`
}

// JarSpendingResponse represents spending from a single jar.
type JarSpendingResponse struct {
	Jar      string          `json:"jar"`
	FullName string          `json:"full_name"`
	Icon     string          `json:"icon"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// CategorySpendingResponse represents spending in a single category.
type CategorySpendingResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// BreakdownResponse represents the spending analysis of the current budget.
type BreakdownResponse struct {
	ByJar          []JarSpendingResponse      `json:"by_jar"`
	ByCategory     []CategorySpendingResponse `json:"by_category"`
	TotalSpent     decimal.Decimal            `json:"total_spent"`
	TotalBalance   decimal.Decimal            `json:"total_balance"`
	TotalSavings   decimal.Decimal            `json:"total_savings"`
	ExpenseCount   int                        `json:"expense_count"`
	GoalCount      int                        `json:"goal_count"`
	CompletedGoals int                        `json:"completed_goals"`
}

// ToBudgetResponse converts a budget state to its API representation.
func ToBudgetResponse(state entity.UserData) BudgetResponse {
	resp := BudgetResponse{
		Username:      state.Username,
		Income:        state.Income,
		Jars:          ToJarResponses(state.Jars),
		Expenses:      make([]ExpenseResponse, 0, len(state.Expenses)),
		SavingsGoals:  make([]GoalResponse, 0, len(state.SavingsGoals)),
		ActivePetID:   state.ActivePetID,
		CollectedPets: make([]CollectedPetResponse, 0, len(state.CollectedPets)),
		TotalBalance:  state.TotalBalance(),
		TotalSavings:  state.TotalSavings(),
	}
	for _, exp := range state.Expenses {
		resp.Expenses = append(resp.Expenses, ToExpenseResponse(exp))
	}
	for _, goal := range state.SavingsGoals {
		resp.SavingsGoals = append(resp.SavingsGoals, ToGoalResponse(goal))
	}
	for _, owned := range state.CollectedPets {
		resp.CollectedPets = append(resp.CollectedPets, CollectedPetResponse{
			PetID:      owned.PetID,
			UnlockedAt: owned.UnlockedAt,
		})
	}
	return resp
}

// ToJarResponses lists the jars in catalog order.
func ToJarResponses(jars map[entity.JarID]entity.Jar) []JarResponse {
	resp := make([]JarResponse, 0, len(entity.JarCatalog))
	for _, cfg := range entity.JarCatalog {
		balance := decimal.Zero
		if jar, ok := jars[cfg.ID]; ok {
			balance = jar.Balance
		}
		resp = append(resp, JarResponse{
			ID:          string(cfg.ID),
			FullName:    cfg.FullName,
			Icon:        cfg.Icon,
			Description: cfg.Description,
			Percentage:  cfg.Percentage,
			Balance:     balance,
		})
	}
	return resp
}

// ToExpenseResponse converts an expense entity to a response DTO.
func ToExpenseResponse(exp entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:       exp.ID,
		Name:     exp.Name,
		Amount:   exp.Amount,
		Category: string(exp.Category),
		Jar:      string(exp.Jar),
		Date:     exp.Date,
	}
}

// ToExpenseDraftResponse converts a pending draft to a response DTO.
func ToExpenseDraftResponse(draft entity.ExpenseDraft) ExpenseDraftResponse {
	return ExpenseDraftResponse{
		Name:     draft.Name,
		Amount:   draft.Amount,
		Category: string(draft.Category),
		Jar:      string(draft.Jar),
	}
}

// ToEventResponses converts domain events. A nil slice renders as an empty list.
func ToEventResponses(events []entity.Event) []EventResponse {
	resp := make([]EventResponse, 0, len(events))
	for _, ev := range events {
		resp = append(resp, EventResponse{
			Kind:       string(ev.Kind),
			Level:      string(ev.Level),
			Message:    ev.Message,
			Payload:    toPayload(ev.Payload),
			OccurredAt: ev.OccurredAt,
		})
	}
	return resp
}

func toPayload(payload map[string]interface{}) map[string]interface{} {
	if len(payload) == 0 {
		return nil
	}
	out := make(map[string]interface{}, len(payload))
	for key, value := range payload {
		switch v := value.(type) {
		case entity.Pet:
			out[key] = ToPetResponse(v)
		case *entity.Pet:
			if v != nil {
				out[key] = ToPetResponse(*v)
			}
		default:
			out[key] = v
		}
	}
	return out
}

// ToBreakdownResponse converts a spending breakdown to a response DTO.
func ToBreakdownResponse(b domainbudget.Breakdown) BreakdownResponse {
	resp := BreakdownResponse{
		ByJar:          make([]JarSpendingResponse, 0, len(b.ByJar)),
		ByCategory:     make([]CategorySpendingResponse, 0, len(b.ByCategory)),
		TotalSpent:     b.TotalSpent,
		TotalBalance:   b.TotalBalance,
		TotalSavings:   b.TotalSavings,
		ExpenseCount:   b.ExpenseCount,
		GoalCount:      b.GoalCount,
		CompletedGoals: b.CompletedGoals,
	}
	for _, s := range b.ByJar {
		resp.ByJar = append(resp.ByJar, JarSpendingResponse{
			Jar:      string(s.Jar.ID),
			FullName: s.Jar.FullName,
			Icon:     s.Jar.Icon,
			Total:    s.Total,
			Count:    s.Count,
		})
	}
	for _, s := range b.ByCategory {
		resp.ByCategory = append(resp.ByCategory, CategorySpendingResponse{
			Category: string(s.Category),
			Total:    s.Total,
			Count:    s.Count,
		})
	}
	return resp
}

// CancelExpenseResponse represents the response for a dropped pending expense.
type CancelExpenseResponse struct {
	Cancelled bool `json:"cancelled"`
}
