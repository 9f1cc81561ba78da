// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/six-jars/backend/internal/domain/entity"
)

// BudgetRepository loads and saves a user's whole budget snapshot.
type BudgetRepository interface {
	// Load returns the user's budget, or domainerror.ErrSnapshotNotFound when
	// nothing has been saved yet.
	Load(ctx context.Context, userID uuid.UUID) (*entity.UserData, error)

	// Save replaces the user's stored budget. The last write wins.
	Save(ctx context.Context, userID uuid.UUID, state entity.UserData) error
}
