package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/six-jars/backend/internal/application/adapter"
	"github.com/six-jars/backend/internal/domain/budget"
	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
	"github.com/six-jars/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewBudgetRepository creates a new budget snapshot repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Load decodes the user's snapshot, migrating documents written by older versions.
func (r *budgetRepository) Load(ctx context.Context, userID uuid.UUID) (*entity.UserData, error) {
	var snapshot model.BudgetSnapshotModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&snapshot)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSnapshotNotFound
		}
		return nil, result.Error
	}

	state, err := budget.DecodeSnapshot([]byte(snapshot.Document), r.now())
	if err != nil {
		return nil, fmt.Errorf("failed to decode budget of user %s: %w", userID, err)
	}
	return &state, nil
}

// Save replaces the user's snapshot.
func (r *budgetRepository) Save(ctx context.Context, userID uuid.UUID, state entity.UserData) error {
	document, err := budget.EncodeSnapshot(state)
	if err != nil {
		return fmt.Errorf("failed to encode budget: %w", err)
	}

	snapshot := &model.BudgetSnapshotModel{
		UserID:    userID,
		Document:  string(document),
		UpdatedAt: r.now(),
	}
	return r.db.WithContext(ctx).Save(snapshot).Error
}
