// Package state loads, mutates and saves a user's budget snapshot.
package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/six-jars/backend/internal/application/adapter"
	"github.com/six-jars/backend/internal/domain/budget"
	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

// Owner identifies the user whose budget is being read or changed.
type Owner struct {
	ID       uuid.UUID
	Username string
}

// Mutation computes the next snapshot from the current one.
type Mutation func(current entity.UserData) (*budget.Transition, error)

// Store is the single entry point for reading and changing budgets.
// Every change runs as lock, load, mutate, save, unlock; events are
// published only after the save succeeded.
type Store struct {
	repo      adapter.BudgetRepository
	locker    adapter.UserLocker
	publisher adapter.EventPublisher
	engine    *budget.Engine
}

// NewStore creates a new Store instance.
func NewStore(
	repo adapter.BudgetRepository,
	locker adapter.UserLocker,
	publisher adapter.EventPublisher,
	engine *budget.Engine,
) *Store {
	return &Store{
		repo:      repo,
		locker:    locker,
		publisher: publisher,
		engine:    engine,
	}
}

// Engine returns the engine mutations should use.
func (s *Store) Engine() *budget.Engine {
	return s.engine
}

// Load returns the owner's budget. A user who has never saved anything gets
// the default state of a new account.
func (s *Store) Load(ctx context.Context, owner Owner) (entity.UserData, error) {
	current, err := s.repo.Load(ctx, owner.ID)
	if errors.Is(err, domainerror.ErrSnapshotNotFound) {
		return entity.NewUserData(owner.Username, s.engine.Now()), nil
	}
	if err != nil {
		return entity.UserData{}, fmt.Errorf("failed to load budget: %w", err)
	}
	if current.Username == "" {
		current.Username = owner.Username
	}
	return *current, nil
}

// Apply runs fn against the owner's current budget under the user lock and
// saves the result when it changed anything. Errors from fn are returned
// unwrapped so callers can match domain errors.
func (s *Store) Apply(ctx context.Context, owner Owner, fn Mutation) (*budget.Transition, error) {
	tr, err := s.applyLocked(ctx, owner, fn)
	if err != nil {
		return nil, err
	}

	if len(tr.Events) > 0 && s.publisher != nil {
		if err := s.publisher.Publish(ctx, owner.ID, tr.Events); err != nil {
			slog.Warn("failed to publish budget events",
				"user_id", owner.ID,
				"events", len(tr.Events),
				"error", err,
			)
		}
	}
	return tr, nil
}

func (s *Store) applyLocked(ctx context.Context, owner Owner, fn Mutation) (*budget.Transition, error) {
	unlock, err := s.locker.Lock(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock budget: %w", err)
	}
	defer unlock()

	current, err := s.Load(ctx, owner)
	if err != nil {
		return nil, err
	}

	tr, err := fn(current)
	if err != nil {
		return nil, err
	}

	if tr.Changed {
		if err := s.repo.Save(ctx, owner.ID, tr.State); err != nil {
			return nil, fmt.Errorf("failed to save budget: %w", err)
		}
	}
	return tr, nil
}
