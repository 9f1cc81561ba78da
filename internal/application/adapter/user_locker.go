package adapter

import (
	"context"

	"github.com/google/uuid"
)

// UserLocker serializes budget mutations per user.
type UserLocker interface {
	// Lock blocks until the user's lock is held or ctx is done.
	// The returned function releases the lock.
	Lock(ctx context.Context, userID uuid.UUID) (func(), error)
}
