package budget

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

// TierStatus is a pet's evolution tier for a given amount of savings.
type TierStatus struct {
	Pet          entity.Pet
	TotalSavings decimal.Decimal
	ActiveIndex  int
	Active       entity.PetEvolution
	Next         *entity.PetEvolution
	// Progress toward Next as a fraction in [0, 1]. It is 1 when Maxed.
	Progress decimal.Decimal
	Maxed    bool
}

// ProgressPercent returns Progress scaled to 0..100 and rounded to two places.
func (t TierStatus) ProgressPercent() decimal.Decimal {
	return t.Progress.Mul(decimal.NewFromInt(100)).Round(2)
}

// TotalSavings sums every goal's current amount, completed or not.
func TotalSavings(state entity.UserData) decimal.Decimal {
	return state.TotalSavings()
}

// ComputeActiveTier finds the last evolution whose threshold is covered by
// totalSavings and the progress toward the following one.
func ComputeActiveTier(pet entity.Pet, totalSavings decimal.Decimal) TierStatus {
	status := TierStatus{Pet: pet, TotalSavings: totalSavings}
	if len(pet.Evolutions) == 0 {
		status.Progress = decimal.NewFromInt(1)
		status.Maxed = true
		return status
	}

	for i, evo := range pet.Evolutions {
		if evo.RequiredSavings.LessThanOrEqual(totalSavings) {
			status.ActiveIndex = i
		}
	}
	status.Active = pet.Evolutions[status.ActiveIndex]

	if status.ActiveIndex == len(pet.Evolutions)-1 {
		status.Progress = decimal.NewFromInt(1)
		status.Maxed = true
		return status
	}

	next := pet.Evolutions[status.ActiveIndex+1]
	status.Next = &next

	span := next.RequiredSavings.Sub(status.Active.RequiredSavings)
	if !span.IsPositive() {
		status.Progress = decimal.NewFromInt(1)
		return status
	}
	progress := totalSavings.Sub(status.Active.RequiredSavings).DivRound(span, 8)
	status.Progress = clamp(progress, decimal.Zero, decimal.NewFromInt(1))
	return status
}

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}

// ActiveTier returns the tier of the user's active pet, or false when no
// pet is active or the active id is not in the catalog.
func ActiveTier(state entity.UserData) (TierStatus, bool) {
	if state.ActivePetID == "" {
		return TierStatus{}, false
	}
	pet, ok := entity.FindPet(state.ActivePetID)
	if !ok {
		return TierStatus{}, false
	}
	return ComputeActiveTier(pet, state.TotalSavings()), true
}

// OnGoalCompleted unlocks the first catalog pet the user does not own yet.
// When every pet is already owned it only emits a notice.
func (e *Engine) OnGoalCompleted(state entity.UserData) *Transition {
	for _, pet := range entity.PetCatalog {
		if state.HasCollected(pet.ID) {
			continue
		}

		now := e.now()
		next := state.Clone()
		next.CollectedPets = append(next.CollectedPets, entity.UserPet{PetID: pet.ID, UnlockedAt: now})

		return &Transition{
			State:   next,
			Changed: true,
			Events: []entity.Event{
				e.event(entity.EventPetUnlocked, entity.EventLevelSuccess,
					fmt.Sprintf("Chúc mừng! Bạn đã hoàn thành mục tiêu và mở khóa pet %s!", pet.Name),
					map[string]interface{}{
						"petId":   pet.ID,
						"petName": pet.Name,
						"pet":     pet,
					}),
			},
		}
	}

	return &Transition{
		State: state,
		Events: []entity.Event{
			e.event(entity.EventAllPetsCollected, entity.EventLevelInfo,
				"Bạn đã sưu tầm đủ tất cả thú cưng!", nil),
		},
	}
}

// SelectActivePet makes a collected pet the active one.
func (e *Engine) SelectActivePet(state entity.UserData, petID string) (*Transition, error) {
	pet, ok := entity.FindPet(petID)
	if !ok {
		return nil, domainerror.NewPetError(domainerror.ErrCodePetNotFound, fmt.Sprintf("pet %q not found", petID), domainerror.ErrPetNotFound)
	}
	if !state.HasCollected(petID) {
		return nil, domainerror.NewPetError(domainerror.ErrCodePetNotCollected, fmt.Sprintf("pet %q is not in the collection", petID), domainerror.ErrPetNotCollected)
	}

	next := state.Clone()
	next.ActivePetID = petID

	return &Transition{
		State:   next,
		Changed: true,
		Events: []entity.Event{
			e.event(entity.EventActivePetChanged, entity.EventLevelSuccess,
				"Đã đổi thú cưng đồng hành!",
				map[string]interface{}{"petId": pet.ID}),
		},
	}, nil
}

// CollectionEntry is a catalog pet annotated with the user's ownership.
type CollectionEntry struct {
	Pet        entity.Pet
	Unlocked   bool
	UnlockedAt *time.Time
	Active     bool
	Tier       TierStatus
}

// Collection lists the whole catalog in unlock order with ownership flags
// and each pet's tier at the user's current savings.
func Collection(state entity.UserData) []CollectionEntry {
	unlocked := make(map[string]entity.UserPet, len(state.CollectedPets))
	for _, p := range state.CollectedPets {
		unlocked[p.PetID] = p
	}

	total := state.TotalSavings()
	entries := make([]CollectionEntry, 0, len(entity.PetCatalog))
	for _, pet := range entity.PetCatalog {
		entry := CollectionEntry{
			Pet:    pet,
			Active: pet.ID == state.ActivePetID,
			Tier:   ComputeActiveTier(pet, total),
		}
		if up, ok := unlocked[pet.ID]; ok {
			at := up.UnlockedAt
			entry.Unlocked = true
			entry.UnlockedAt = &at
		}
		entries = append(entries, entry)
	}
	return entries
}
