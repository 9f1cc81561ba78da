package budget

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

// Document is the persisted JSON shape of a user's budget.
// Jars carry their config alongside the balance; only the balance is read back.
type Document struct {
	Username      string                 `json:"username"`
	Income        decimal.Decimal        `json:"income"`
	Jars          map[string]JarDocument `json:"jars"`
	Expenses      []ExpenseDocument      `json:"expenses"`
	SavingsGoals  []GoalDocument         `json:"savingsGoals"`
	ActivePetID   *string                `json:"activePetId"`
	CollectedPets []CollectedPetDocument `json:"collectedPets"`
}

type JarDocument struct {
	ID          string          `json:"id"`
	FullName    string          `json:"fullName,omitempty"`
	Percentage  decimal.Decimal `json:"percentage"`
	Balance     decimal.Decimal `json:"balance"`
	Icon        string          `json:"icon,omitempty"`
	Description string          `json:"description,omitempty"`
}

type ExpenseDocument struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Jar      string          `json:"jar"`
	Date     time.Time       `json:"date"`
}

type GoalDocument struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Icon          string          `json:"icon"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Completed     bool            `json:"completed"`
}

type CollectedPetDocument struct {
	PetID      string    `json:"petId"`
	UnlockedAt time.Time `json:"unlockedAt"`
}

// EncodeSnapshot serializes state into its persisted JSON document.
func EncodeSnapshot(state entity.UserData) ([]byte, error) {
	activePet := state.ActivePetID
	doc := Document{
		Username:      state.Username,
		Income:        state.Income,
		Jars:          make(map[string]JarDocument, len(entity.JarCatalog)),
		Expenses:      make([]ExpenseDocument, 0, len(state.Expenses)),
		SavingsGoals:  make([]GoalDocument, 0, len(state.SavingsGoals)),
		ActivePetID:   &activePet,
		CollectedPets: make([]CollectedPetDocument, 0, len(state.CollectedPets)),
	}

	for _, cfg := range entity.JarCatalog {
		doc.Jars[string(cfg.ID)] = JarDocument{
			ID:          string(cfg.ID),
			FullName:    cfg.FullName,
			Percentage:  cfg.Percentage,
			Balance:     state.Jars[cfg.ID].Balance,
			Icon:        cfg.Icon,
			Description: cfg.Description,
		}
	}
	for _, e := range state.Expenses {
		doc.Expenses = append(doc.Expenses, ExpenseDocument{
			ID:       e.ID,
			Name:     e.Name,
			Amount:   e.Amount,
			Category: string(e.Category),
			Jar:      string(e.Jar),
			Date:     e.Date.UTC(),
		})
	}
	for _, g := range state.SavingsGoals {
		doc.SavingsGoals = append(doc.SavingsGoals, GoalDocument{
			ID:            g.ID,
			Name:          g.Name,
			Icon:          g.Icon,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
			Completed:     g.Completed,
		})
	}
	for _, p := range state.CollectedPets {
		doc.CollectedPets = append(doc.CollectedPets, CollectedPetDocument{
			PetID:      p.PetID,
			UnlockedAt: p.UnlockedAt.UTC(),
		})
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode budget snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a stored document and migrates it to the current
// shape. Documents written before goals or pets existed get the defaults of
// a new user: no goals, the default pet active and collected at now.
func DecodeSnapshot(data []byte, now time.Time) (entity.UserData, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return entity.UserData{}, fmt.Errorf("%w: %v", domainerror.ErrCorruptSnapshot, err)
	}
	return migrate(doc, now)
}

func migrate(doc Document, now time.Time) (entity.UserData, error) {
	state := entity.UserData{
		Username:      doc.Username,
		Income:        doc.Income,
		Jars:          entity.EmptyJars(),
		Expenses:      make([]entity.Expense, 0, len(doc.Expenses)),
		SavingsGoals:  make([]entity.SavingsGoal, 0, len(doc.SavingsGoals)),
		CollectedPets: make([]entity.UserPet, 0, len(doc.CollectedPets)),
	}

	for id, jar := range doc.Jars {
		jarID := entity.JarID(id)
		if !entity.IsValidJarID(jarID) {
			continue
		}
		state.Jars[jarID] = entity.Jar{ID: jarID, Balance: jar.Balance}
	}

	for _, e := range doc.Expenses {
		jarID := entity.JarID(e.Jar)
		if !entity.IsValidJarID(jarID) {
			return entity.UserData{}, fmt.Errorf("%w: expense %s references unknown jar %q", domainerror.ErrCorruptSnapshot, e.ID, e.Jar)
		}
		category := entity.Category(e.Category)
		if !entity.IsValidCategory(category) {
			category = entity.CategoryOther
		}
		state.Expenses = append(state.Expenses, entity.Expense{
			ID:       e.ID,
			Name:     e.Name,
			Amount:   e.Amount,
			Category: category,
			Jar:      jarID,
			Date:     e.Date,
		})
	}

	for _, g := range doc.SavingsGoals {
		icon := g.Icon
		if icon == "" {
			icon = entity.DefaultGoalIcon
		}
		state.SavingsGoals = append(state.SavingsGoals, entity.SavingsGoal{
			ID:            g.ID,
			Name:          g.Name,
			Icon:          icon,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
			Completed:     g.Completed,
		})
	}

	if doc.ActivePetID == nil {
		state.ActivePetID = entity.DefaultPetID
	} else {
		state.ActivePetID = *doc.ActivePetID
	}

	if doc.CollectedPets == nil {
		state.CollectedPets = append(state.CollectedPets, entity.UserPet{PetID: entity.DefaultPetID, UnlockedAt: now})
	} else {
		for _, p := range doc.CollectedPets {
			state.CollectedPets = append(state.CollectedPets, entity.UserPet{PetID: p.PetID, UnlockedAt: p.UnlockedAt})
		}
	}

	return state, nil
}
