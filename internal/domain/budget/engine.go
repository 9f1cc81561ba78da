// Package budget implements the six jars state-update engine.
//
// Every operation takes a UserData snapshot, clones it and returns a
// Transition carrying the new snapshot and the events it produced. The input
// snapshot is never modified, so a failed operation leaves the caller's state
// exactly as it was.
package budget

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/six-jars/backend/internal/domain/entity"
)

// Transition is the result of applying one operation to a snapshot.
type Transition struct {
	State   entity.UserData
	Events  []entity.Event
	Changed bool
}

func unchanged(state entity.UserData) *Transition {
	return &Transition{State: state}
}

// Engine applies budget operations. It is safe for concurrent use; callers
// are responsible for serializing operations on the same user.
type Engine struct {
	now func() time.Time
	ids *idGenerator
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source used for expense dates, pet unlocks and events.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithEntropy overrides the randomness behind generated ids.
func WithEntropy(r io.Reader) Option {
	return func(e *Engine) {
		e.ids = newIDGenerator(r)
	}
}

// NewEngine creates a new Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now: func() time.Time { return time.Now().UTC() },
		ids: newIDGenerator(rand.Reader),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Now returns the engine clock's current time.
func (e *Engine) Now() time.Time {
	return e.now()
}

func (e *Engine) event(kind entity.EventKind, level entity.EventLevel, message string, payload map[string]interface{}) entity.Event {
	return entity.Event{
		Kind:       kind,
		Level:      level,
		Message:    message,
		Payload:    payload,
		OccurredAt: e.now(),
	}
}

// idGenerator produces monotonic ULIDs so ids sort in generation order,
// including ids created within the same millisecond.
type idGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func newIDGenerator(r io.Reader) *idGenerator {
	return &idGenerator{entropy: ulid.Monotonic(r, 0)}
}

func (g *idGenerator) next(t time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), g.entropy).String()
}
