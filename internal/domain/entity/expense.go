// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the informational spending category of an expense.
type Category string

const (
	CategoryFood          Category = "Ăn uống"
	CategoryStudy         Category = "Học tập"
	CategoryEntertainment Category = "Giải trí"
	CategoryTransport     Category = "Di chuyển"
	CategoryShopping      Category = "Mua sắm"
	CategoryOther         Category = "Khác"
)

// Categories lists the closed set of expense categories.
var Categories = []Category{
	CategoryFood,
	CategoryStudy,
	CategoryEntertainment,
	CategoryTransport,
	CategoryShopping,
	CategoryOther,
}

// IsValidCategory reports whether c is one of the fixed categories.
func IsValidCategory(c Category) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}

// Expense is a single spending record debited from exactly one jar.
type Expense struct {
	ID       string
	Name     string
	Amount   decimal.Decimal
	Category Category
	Jar      JarID
	Date     time.Time
}

// ExpenseDraft is an expense awaiting confirmation. It has no id or date yet.
type ExpenseDraft struct {
	Name     string
	Amount   decimal.Decimal
	Category Category
	Jar      JarID
}
