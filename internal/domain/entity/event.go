// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// EventKind identifies a budget notification.
type EventKind string

const (
	EventIncomeSet        EventKind = "income_set"
	EventExpenseAdded     EventKind = "expense_added"
	EventExpenseDeleted   EventKind = "expense_deleted"
	EventGoalCreated      EventKind = "goal_created"
	EventGoalDeposited    EventKind = "goal_deposited"
	EventGoalCompleted    EventKind = "goal_completed"
	EventGoalDeleted      EventKind = "goal_deleted"
	EventPetUnlocked      EventKind = "pet_unlocked"
	EventAllPetsCollected EventKind = "all_pets_collected"
	EventActivePetChanged EventKind = "active_pet_changed"
)

// EventLevel mirrors the toast styles a client renders.
type EventLevel string

const (
	EventLevelSuccess EventLevel = "success"
	EventLevelInfo    EventLevel = "info"
	EventLevelError   EventLevel = "error"
)

// Event is a structured notification emitted by a state transition.
// Rendering is entirely up to the consumer.
type Event struct {
	Kind       EventKind
	Level      EventLevel
	Message    string
	Payload    map[string]interface{}
	OccurredAt time.Time
}
