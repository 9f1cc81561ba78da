package dto

import (
	"github.com/shopspring/decimal"

	"github.com/six-jars/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for creating a savings goal.
// The icon is suggested when left out.
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required"`
	Icon         string          `json:"icon"`
	TargetAmount decimal.Decimal `json:"target_amount"`
}

// DepositRequest represents the request body for a deposit into a savings goal.
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// GoalResponse represents a savings goal in API responses.
type GoalResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Icon          string          `json:"icon"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Remaining     decimal.Decimal `json:"remaining"`
	Completed     bool            `json:"completed"`
}

// CreateGoalResponse represents the response for a created savings goal.
type CreateGoalResponse struct {
	Goal          GoalResponse    `json:"goal"`
	IconSuggested bool            `json:"icon_suggested"`
	Budget        BudgetResponse  `json:"budget"`
	Events        []EventResponse `json:"events"`
}

// DepositResponse represents the response for a deposit into a savings goal.
type DepositResponse struct {
	Goal        GoalResponse    `json:"goal"`
	UnlockedPet *PetResponse    `json:"unlocked_pet,omitempty"`
	Budget      BudgetResponse  `json:"budget"`
	Events      []EventResponse `json:"events"`
}

// DeleteGoalResponse represents the response for a deleted savings goal.
type DeleteGoalResponse struct {
	Deleted  bool            `json:"deleted"`
	Refunded decimal.Decimal `json:"refunded"`
	Budget   BudgetResponse  `json:"budget"`
	Events   []EventResponse `json:"events"`
}

// ToGoalResponse converts a savings goal entity to a response DTO.
func ToGoalResponse(goal entity.SavingsGoal) GoalResponse {
	return GoalResponse{
		ID:            goal.ID,
		Name:          goal.Name,
		Icon:          goal.Icon,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		Remaining:     goal.Remaining(),
		Completed:     goal.Completed,
	}
}
