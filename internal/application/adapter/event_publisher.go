package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/six-jars/backend/internal/domain/entity"
)

// EventPublisher delivers budget events after the state that produced them
// has been saved. Publishing failures never undo a mutation.
type EventPublisher interface {
	Publish(ctx context.Context, userID uuid.UUID, events []entity.Event) error
}
