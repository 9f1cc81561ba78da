package budget

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

// AddGoal appends a new savings goal with nothing saved yet.
// An empty icon falls back to the default goal icon.
func (e *Engine) AddGoal(state entity.UserData, name, icon string, target decimal.Decimal) (*Transition, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerror.NewSavingsError(domainerror.ErrCodeEmptyGoalName, "goal name is required", domainerror.ErrEmptyName)
	}
	if !target.IsPositive() {
		return nil, domainerror.NewSavingsError(domainerror.ErrCodeInvalidTargetAmount, "target amount must be greater than zero", domainerror.ErrInvalidTargetAmount)
	}
	icon = strings.TrimSpace(icon)
	if icon == "" {
		icon = entity.DefaultGoalIcon
	}

	goal := entity.SavingsGoal{
		ID:            e.ids.next(e.now()),
		Name:          name,
		Icon:          icon,
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
	}

	next := state.Clone()
	next.SavingsGoals = append(next.SavingsGoals, goal)

	return &Transition{
		State:   next,
		Changed: true,
		Events: []entity.Event{
			e.event(entity.EventGoalCreated, entity.EventLevelSuccess,
				fmt.Sprintf("Đã tạo mục tiêu \"%s\"! Cố lên nhé!", goal.Name),
				map[string]interface{}{"goalId": goal.ID}),
		},
	}, nil
}

// Deposit moves amount from the savings jar into a goal. The first deposit
// that brings the goal to its target completes it and may unlock a pet.
// Overshoot is kept in the goal. The goal is checked before the amount.
func (e *Engine) Deposit(state entity.UserData, goalID string, amount decimal.Decimal) (*Transition, error) {
	idx := state.FindGoal(goalID)
	if idx < 0 {
		return nil, domainerror.NewSavingsError(domainerror.ErrCodeGoalNotFound, "savings goal not found", domainerror.ErrGoalNotFound)
	}
	if state.SavingsGoals[idx].Completed {
		return nil, domainerror.NewSavingsError(domainerror.ErrCodeGoalAlreadyCompleted, "Mục tiêu này đã hoàn thành rồi!", domainerror.ErrGoalAlreadyCompleted)
	}
	if !amount.IsPositive() {
		return nil, domainerror.NewSavingsError(domainerror.ErrCodeInvalidDeposit, "deposit amount must be greater than zero", domainerror.ErrInvalidAmount)
	}

	jar := state.Jars[entity.SavingsJar]
	if jar.Balance.LessThan(amount) {
		return nil, domainerror.NewSavingsError(
			domainerror.ErrCodeSavingsJarInsufficient,
			"Lọ Tiết kiệm dài hạn (LTSS) không đủ tiền!",
			domainerror.ErrInsufficientFunds,
		)
	}

	next := state.Clone()
	jar.ID = entity.SavingsJar
	jar.Balance = jar.Balance.Sub(amount)
	next.Jars[entity.SavingsJar] = jar

	goal := next.SavingsGoals[idx]
	goal.CurrentAmount = goal.CurrentAmount.Add(amount)

	events := []entity.Event{
		e.event(entity.EventGoalDeposited, entity.EventLevelSuccess,
			fmt.Sprintf("Đã nạp %sđ vào mục tiêu!", amount.String()),
			map[string]interface{}{
				"goalId":        goal.ID,
				"amount":        amount.String(),
				"currentAmount": goal.CurrentAmount.String(),
			}),
	}

	completed := goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount)
	if completed {
		goal.Completed = true
	}
	next.SavingsGoals[idx] = goal

	if completed {
		events = append(events, e.event(entity.EventGoalCompleted, entity.EventLevelSuccess,
			"Chúc mừng! Bạn đã hoàn thành mục tiêu!",
			map[string]interface{}{
				"goalId":       goal.ID,
				"goalName":     goal.Name,
				"goalIcon":     goal.Icon,
				"targetAmount": goal.TargetAmount.String(),
			}))

		unlock := e.OnGoalCompleted(next)
		next = unlock.State
		events = append(events, unlock.Events...)
	}

	return &Transition{State: next, Changed: true, Events: events}, nil
}

// DeleteGoal removes a goal. Money in an unfinished goal is refunded to the
// savings jar; a completed goal's money is not. Unknown ids are a no-op.
func (e *Engine) DeleteGoal(state entity.UserData, goalID string) *Transition {
	idx := state.FindGoal(goalID)
	if idx < 0 {
		return unchanged(state)
	}

	next := state.Clone()
	goal := next.SavingsGoals[idx]

	refund := decimal.Zero
	if !goal.Completed {
		refund = goal.CurrentAmount
	}

	jar := next.Jars[entity.SavingsJar]
	jar.ID = entity.SavingsJar
	jar.Balance = jar.Balance.Add(refund)
	next.Jars[entity.SavingsJar] = jar
	next.SavingsGoals = append(next.SavingsGoals[:idx], next.SavingsGoals[idx+1:]...)

	message := "Đã xóa mục tiêu đã hoàn thành."
	if refund.IsPositive() {
		message = "Đã xóa mục tiêu. Tiền đã được hoàn lại vào lọ LTSS."
	}

	return &Transition{
		State:   next,
		Changed: true,
		Events: []entity.Event{
			e.event(entity.EventGoalDeleted, entity.EventLevelInfo, message,
				map[string]interface{}{
					"goalId":   goal.ID,
					"refunded": refund.String(),
				}),
		},
	}
}
