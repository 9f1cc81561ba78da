package model

import (
	"time"

	"github.com/google/uuid"
)

// BudgetSnapshotModel stores one user's whole budget as a JSON document.
type BudgetSnapshotModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Document  string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the BudgetSnapshotModel.
func (BudgetSnapshotModel) TableName() string {
	return "budget_snapshots"
}
