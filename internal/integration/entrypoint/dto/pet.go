package dto

import (
	"time"

	"github.com/shopspring/decimal"

	domainbudget "github.com/six-jars/backend/internal/domain/budget"
	"github.com/six-jars/backend/internal/domain/entity"
)

// SelectPetRequest represents the request body for changing the active pet.
type SelectPetRequest struct {
	PetID string `json:"pet_id" binding:"required"`
}

// EvolutionResponse represents one evolution stage of a pet.
type EvolutionResponse struct {
	Name            string          `json:"name"`
	Image           string          `json:"image"`
	RequiredSavings decimal.Decimal `json:"required_savings"`
}

// PetResponse represents a catalog pet.
type PetResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Evolutions  []EvolutionResponse `json:"evolutions"`
}

// CollectedPetResponse represents a pet the user has unlocked.
type CollectedPetResponse struct {
	PetID      string    `json:"pet_id"`
	UnlockedAt time.Time `json:"unlocked_at"`
}

// PetTierResponse represents a pet's evolution tier at the user's savings.
type PetTierResponse struct {
	Pet             PetResponse        `json:"pet"`
	TotalSavings    decimal.Decimal    `json:"total_savings"`
	Stage           int                `json:"stage"`
	Current         EvolutionResponse  `json:"current"`
	Next            *EvolutionResponse `json:"next,omitempty"`
	ProgressPercent decimal.Decimal    `json:"progress_percent"`
	Maxed           bool               `json:"maxed"`
}

// ActivePetResponse represents the active pet, which may be absent.
type ActivePetResponse struct {
	ActivePet *PetTierResponse `json:"active_pet"`
}

// SelectPetResponse represents the response for a changed active pet.
type SelectPetResponse struct {
	ActivePet PetTierResponse `json:"active_pet"`
	Events    []EventResponse `json:"events"`
}

// CollectionEntryResponse represents a catalog pet annotated with ownership.
type CollectionEntryResponse struct {
	Pet        PetResponse     `json:"pet"`
	Unlocked   bool            `json:"unlocked"`
	UnlockedAt *time.Time      `json:"unlocked_at,omitempty"`
	Active     bool            `json:"active"`
	Tier       PetTierResponse `json:"tier"`
}

// CollectionResponse represents the user's pet collection.
type CollectionResponse struct {
	Pets         []CollectionEntryResponse `json:"pets"`
	Collected    int                       `json:"collected"`
	Total        int                       `json:"total"`
	TotalSavings decimal.Decimal           `json:"total_savings"`
}

// ToPetResponse converts a catalog pet to a response DTO.
func ToPetResponse(pet entity.Pet) PetResponse {
	resp := PetResponse{
		ID:          pet.ID,
		Name:        pet.Name,
		Description: pet.Description,
		Evolutions:  make([]EvolutionResponse, 0, len(pet.Evolutions)),
	}
	for _, evo := range pet.Evolutions {
		resp.Evolutions = append(resp.Evolutions, toEvolutionResponse(evo))
	}
	return resp
}

func toEvolutionResponse(evo entity.PetEvolution) EvolutionResponse {
	return EvolutionResponse{
		Name:            evo.Name,
		Image:           evo.Image,
		RequiredSavings: evo.RequiredSavings,
	}
}

// ToPetTierResponse converts a tier status to a response DTO.
func ToPetTierResponse(tier domainbudget.TierStatus) PetTierResponse {
	resp := PetTierResponse{
		Pet:             ToPetResponse(tier.Pet),
		TotalSavings:    tier.TotalSavings,
		Stage:           tier.ActiveIndex,
		Current:         toEvolutionResponse(tier.Active),
		ProgressPercent: tier.ProgressPercent(),
		Maxed:           tier.Maxed,
	}
	if tier.Next != nil {
		next := toEvolutionResponse(*tier.Next)
		resp.Next = &next
	}
	return resp
}

// ToCollectionResponse converts the collection entries to a response DTO.
func ToCollectionResponse(entries []domainbudget.CollectionEntry, collected int, totalSavings decimal.Decimal) CollectionResponse {
	resp := CollectionResponse{
		Pets:         make([]CollectionEntryResponse, 0, len(entries)),
		Collected:    collected,
		Total:        len(entries),
		TotalSavings: totalSavings,
	}
	for _, entry := range entries {
		resp.Pets = append(resp.Pets, CollectionEntryResponse{
			Pet:        ToPetResponse(entry.Pet),
			Unlocked:   entry.Unlocked,
			UnlockedAt: entry.UnlockedAt,
			Active:     entry.Active,
			Tier:       ToPetTierResponse(entry.Tier),
		})
	}
	return resp
}
