// Package usecasetest provides in-memory collaborators for use case tests.
package usecasetest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/six-jars/backend/internal/application/adapter"
	"github.com/six-jars/backend/internal/domain/budget"
	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

// Now is the fixed time used by test engines.
var Now = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

// NewEngine returns an engine with a fixed clock.
func NewEngine() *budget.Engine {
	return budget.NewEngine(budget.WithClock(func() time.Time { return Now }))
}

// BudgetRepository stores snapshots in a map.
type BudgetRepository struct {
	mu        sync.Mutex
	snapshots map[uuid.UUID]entity.UserData
	Saves     int
	LoadErr   error
	SaveErr   error
}

func NewBudgetRepository() *BudgetRepository {
	return &BudgetRepository{snapshots: make(map[uuid.UUID]entity.UserData)}
}

func (r *BudgetRepository) Load(_ context.Context, userID uuid.UUID) (*entity.UserData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.LoadErr != nil {
		return nil, r.LoadErr
	}
	s, ok := r.snapshots[userID]
	if !ok {
		return nil, domainerror.ErrSnapshotNotFound
	}
	out := s.Clone()
	return &out, nil
}

func (r *BudgetRepository) Save(_ context.Context, userID uuid.UUID, state entity.UserData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.snapshots[userID] = state.Clone()
	r.Saves++
	return nil
}

// Put seeds a snapshot without counting it as a save.
func (r *BudgetRepository) Put(userID uuid.UUID, state entity.UserData) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[userID] = state.Clone()
}

// Get returns the stored snapshot.
func (r *BudgetRepository) Get(userID uuid.UUID) (entity.UserData, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.snapshots[userID]
	return s, ok
}

// Locker is a per-user mutex that counts acquisitions.
type Locker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
	Taken int
}

func NewLocker() *Locker {
	return &Locker{locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (l *Locker) Lock(_ context.Context, userID uuid.UUID) (func(), error) {
	l.mu.Lock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.Taken++
	l.mu.Unlock()

	m.Lock()
	return m.Unlock, nil
}

// Acquisitions returns how many Lock calls have started, including ones still waiting.
func (l *Locker) Acquisitions() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.Taken
}

// Publisher records published events.
type Publisher struct {
	mu     sync.Mutex
	Events []entity.Event
	Err    error
}

func (p *Publisher) Publish(_ context.Context, _ uuid.UUID, events []entity.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, events...)
	return p.Err
}

// Kinds returns the kinds of every published event in order.
func (p *Publisher) Kinds() []entity.EventKind {
	p.mu.Lock()
	defer p.mu.Unlock()
	kinds := make([]entity.EventKind, len(p.Events))
	for i, ev := range p.Events {
		kinds[i] = ev.Kind
	}
	return kinds
}

// PendingStore keeps drafts in a map.
type PendingStore struct {
	mu     sync.Mutex
	drafts map[uuid.UUID]entity.ExpenseDraft
}

func NewPendingStore() *PendingStore {
	return &PendingStore{drafts: make(map[uuid.UUID]entity.ExpenseDraft)}
}

func (s *PendingStore) Put(_ context.Context, userID uuid.UUID, draft entity.ExpenseDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[userID] = draft
	return nil
}

func (s *PendingStore) Get(_ context.Context, userID uuid.UUID) (*entity.ExpenseDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[userID]
	if !ok {
		return nil, domainerror.ErrNoPendingExpense
	}
	return &d, nil
}

func (s *PendingStore) Take(_ context.Context, userID uuid.UUID) (*entity.ExpenseDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[userID]
	if !ok {
		return nil, domainerror.ErrNoPendingExpense
	}
	delete(s.drafts, userID)
	return &d, nil
}

func (s *PendingStore) Restore(_ context.Context, userID uuid.UUID, draft entity.ExpenseDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drafts[userID]; !ok {
		s.drafts[userID] = draft
	}
	return nil
}

func (s *PendingStore) Delete(_ context.Context, userID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.drafts[userID]
	delete(s.drafts, userID)
	return ok, nil
}

// Advisor returns canned answers or errors.
type Advisor struct {
	Suggestion *adapter.ExpenseSuggestion
	Icon       string
	Advice     string
	Err        error
	Available  bool

	mu    sync.Mutex
	Calls int
	Last  adapter.AdviceRequest
}

func (a *Advisor) record() {
	a.mu.Lock()
	a.Calls++
	a.mu.Unlock()
}

func (a *Advisor) Classify(_ context.Context, _ string) (*adapter.ExpenseSuggestion, error) {
	a.record()
	if a.Err != nil {
		return nil, a.Err
	}
	return a.Suggestion, nil
}

func (a *Advisor) SuggestIcon(_ context.Context, _ string) (string, error) {
	a.record()
	if a.Err != nil {
		return "", a.Err
	}
	return a.Icon, nil
}

func (a *Advisor) GetAdvice(_ context.Context, request adapter.AdviceRequest) (string, error) {
	a.record()
	a.mu.Lock()
	a.Last = request
	a.mu.Unlock()
	if a.Err != nil {
		return "", a.Err
	}
	return a.Advice, nil
}

func (a *Advisor) IsAvailable() bool {
	return a.Available
}

// Funded returns a user state with the given income already allocated.
func Funded(engine *budget.Engine, username string, income int64) entity.UserData {
	tr, err := engine.SetIncome(entity.NewUserData(username, Now), decimal.NewFromInt(income))
	if err != nil {
		panic(err)
	}
	return tr.State
}
