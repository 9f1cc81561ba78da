// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserData is the aggregate root holding one user's whole budget state.
// Expenses are ordered most-recent-first.
type UserData struct {
	Username      string
	Income        decimal.Decimal
	Jars          map[JarID]Jar
	Expenses      []Expense
	SavingsGoals  []SavingsGoal
	ActivePetID   string // empty when no pet is active
	CollectedPets []UserPet
}

// NewUserData returns the initial state of a freshly registered user.
func NewUserData(username string, now time.Time) UserData {
	return UserData{
		Username:      username,
		Income:        decimal.Zero,
		Jars:          EmptyJars(),
		Expenses:      []Expense{},
		SavingsGoals:  []SavingsGoal{},
		ActivePetID:   DefaultPetID,
		CollectedPets: []UserPet{{PetID: DefaultPetID, UnlockedAt: now}},
	}
}

// EmptyJars returns all six jars with a zero balance.
func EmptyJars() map[JarID]Jar {
	jars := make(map[JarID]Jar, len(JarCatalog))
	for _, cfg := range JarCatalog {
		jars[cfg.ID] = Jar{ID: cfg.ID, Balance: decimal.Zero}
	}
	return jars
}

// Clone returns a deep copy so a transition never aliases the previous snapshot.
func (u UserData) Clone() UserData {
	out := u

	out.Jars = make(map[JarID]Jar, len(u.Jars))
	for id, jar := range u.Jars {
		out.Jars[id] = jar
	}

	out.Expenses = make([]Expense, len(u.Expenses))
	copy(out.Expenses, u.Expenses)

	out.SavingsGoals = make([]SavingsGoal, len(u.SavingsGoals))
	copy(out.SavingsGoals, u.SavingsGoals)

	out.CollectedPets = make([]UserPet, len(u.CollectedPets))
	copy(out.CollectedPets, u.CollectedPets)

	return out
}

// TotalBalance sums the balances of all jars.
func (u UserData) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, jar := range u.Jars {
		total = total.Add(jar.Balance)
	}
	return total
}

// TotalSavings sums the current amount of every savings goal, completed or not.
func (u UserData) TotalSavings() decimal.Decimal {
	total := decimal.Zero
	for _, goal := range u.SavingsGoals {
		total = total.Add(goal.CurrentAmount)
	}
	return total
}

// TotalExpenses sums the amounts of all recorded expenses.
func (u UserData) TotalExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, e := range u.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// HasCollected reports whether petID is in the user's collection.
func (u UserData) HasCollected(petID string) bool {
	for _, p := range u.CollectedPets {
		if p.PetID == petID {
			return true
		}
	}
	return false
}

// FindGoal returns the index of the goal with the given id, or -1.
func (u UserData) FindGoal(id string) int {
	for i, g := range u.SavingsGoals {
		if g.ID == id {
			return i
		}
	}
	return -1
}

// FindExpense returns the index of the expense with the given id, or -1.
func (u UserData) FindExpense(id string) int {
	for i, e := range u.Expenses {
		if e.ID == id {
			return i
		}
	}
	return -1
}
