// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PetEvolution is one evolution tier of a pet.
type PetEvolution struct {
	Name            string
	Image           string
	RequiredSavings decimal.Decimal
}

// Pet is a collectible companion whose tier follows total savings.
type Pet struct {
	ID          string
	Name        string
	Description string
	Evolutions  []PetEvolution
}

// UserPet records when a user unlocked a catalog pet.
type UserPet struct {
	PetID      string
	UnlockedAt time.Time
}

// DefaultPetID is the pet every user starts with.
const DefaultPetID = "heo-dat"

// PetCatalog lists the collectible pets in unlock order.
// Thresholds are strictly increasing per pet and start at zero.
var PetCatalog = []Pet{
	{
		ID:          "heo-dat",
		Name:        "Heo Đất",
		Description: "Một người bạn đồng hành quen thuộc, giúp bạn giữ tiền an toàn.",
		Evolutions: []PetEvolution{
			{Name: "Heo Con", Image: "🐷", RequiredSavings: decimal.NewFromInt(0)},
			{Name: "Heo Trưởng Thành", Image: "🐖", RequiredSavings: decimal.NewFromInt(50000)},
			{Name: "Heo Vàng", Image: "💰", RequiredSavings: decimal.NewFromInt(200000)},
			{Name: "Vua Heo", Image: "👑", RequiredSavings: decimal.NewFromInt(500000)},
		},
	},
	{
		ID:          "mam-cay",
		Name:        "Mầm Cây Tài Lộc",
		Description: "Nuôi dưỡng hạt mầm tiết kiệm để nó lớn thành cây tiền vững chãi.",
		Evolutions: []PetEvolution{
			{Name: "Hạt Mầm", Image: "🌱", RequiredSavings: decimal.NewFromInt(0)},
			{Name: "Cây Non", Image: "🌿", RequiredSavings: decimal.NewFromInt(75000)},
			{Name: "Cây Lớn", Image: "🌳", RequiredSavings: decimal.NewFromInt(250000)},
			{Name: "Cây Ra Vàng", Image: "🪙", RequiredSavings: decimal.NewFromInt(600000)},
		},
	},
	{
		ID:          "trung-rong",
		Name:        "Trứng Rồng",
		Description: "Một quả trứng bí ẩn. Ai biết được sinh vật huyền thoại nào sẽ nở ra?",
		Evolutions: []PetEvolution{
			{Name: "Trứng Bí Ẩn", Image: "🥚", RequiredSavings: decimal.NewFromInt(0)},
			{Name: "Trứng Nứt", Image: "🐣", RequiredSavings: decimal.NewFromInt(100000)},
			{Name: "Rồng Con", Image: "🐲", RequiredSavings: decimal.NewFromInt(400000)},
			{Name: "Hỏa Long", Image: "🔥", RequiredSavings: decimal.NewFromInt(1000000)},
		},
	},
}

// FindPet returns the catalog pet with the given id.
func FindPet(id string) (Pet, bool) {
	for _, p := range PetCatalog {
		if p.ID == id {
			return p, true
		}
	}
	return Pet{}, false
}
