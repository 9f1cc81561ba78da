// Package cache implements short-lived per-user state on Redis, with
// in-process fallbacks for single-instance deployments.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/six-jars/backend/internal/application/adapter"
	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

const pendingKeyPrefix = "sixjars:pending:"

// pendingDraft is the stored form of an expense draft.
type pendingDraft struct {
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
	Jar      string `json:"jar"`
}

// redisPendingStore implements adapter.PendingExpenseStore on Redis.
type redisPendingStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPendingStore creates a pending expense store whose drafts expire after ttl.
func NewRedisPendingStore(client *redis.Client, ttl time.Duration) adapter.PendingExpenseStore {
	return &redisPendingStore{client: client, ttl: ttl}
}

func pendingKey(userID uuid.UUID) string {
	return pendingKeyPrefix + userID.String()
}

func encodeDraft(draft entity.ExpenseDraft) ([]byte, error) {
	payload, err := json.Marshal(pendingDraft{
		Name:     draft.Name,
		Amount:   draft.Amount.String(),
		Category: string(draft.Category),
		Jar:      string(draft.Jar),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode pending expense: %w", err)
	}
	return payload, nil
}

func decodeDraft(payload []byte, err error) (*entity.ExpenseDraft, error) {
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrNoPendingExpense
		}
		return nil, fmt.Errorf("failed to read pending expense: %w", err)
	}

	var stored pendingDraft
	if err := json.Unmarshal(payload, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode pending expense: %w", err)
	}
	return stored.toDraft()
}

// Put stores draft, replacing any previous one.
func (s *redisPendingStore) Put(ctx context.Context, userID uuid.UUID, draft entity.ExpenseDraft) error {
	payload, err := encodeDraft(draft)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, pendingKey(userID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store pending expense: %w", err)
	}
	return nil
}

// Get returns the pending draft or domainerror.ErrNoPendingExpense.
func (s *redisPendingStore) Get(ctx context.Context, userID uuid.UUID) (*entity.ExpenseDraft, error) {
	return decodeDraft(s.client.Get(ctx, pendingKey(userID)).Bytes())
}

// Take reads and deletes the draft with a single GETDEL.
func (s *redisPendingStore) Take(ctx context.Context, userID uuid.UUID) (*entity.ExpenseDraft, error) {
	return decodeDraft(s.client.GetDel(ctx, pendingKey(userID)).Bytes())
}

// Restore puts draft back with SET NX, so a newer draft wins.
func (s *redisPendingStore) Restore(ctx context.Context, userID uuid.UUID, draft entity.ExpenseDraft) error {
	payload, err := encodeDraft(draft)
	if err != nil {
		return err
	}
	if err := s.client.SetNX(ctx, pendingKey(userID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to restore pending expense: %w", err)
	}
	return nil
}

// Delete discards the pending draft.
func (s *redisPendingStore) Delete(ctx context.Context, userID uuid.UUID) (bool, error) {
	n, err := s.client.Del(ctx, pendingKey(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to delete pending expense: %w", err)
	}
	return n > 0, nil
}

func (p pendingDraft) toDraft() (*entity.ExpenseDraft, error) {
	amount, err := decimal.NewFromString(p.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to decode pending amount: %w", err)
	}
	return &entity.ExpenseDraft{
		Name:     p.Name,
		Amount:   amount,
		Category: entity.Category(p.Category),
		Jar:      entity.JarID(p.Jar),
	}, nil
}

type memoryDraft struct {
	draft     entity.ExpenseDraft
	expiresAt time.Time
}

// memoryPendingStore implements adapter.PendingExpenseStore in process memory.
type memoryPendingStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	drafts map[uuid.UUID]memoryDraft
}

// NewMemoryPendingStore creates an in-process pending expense store.
func NewMemoryPendingStore(ttl time.Duration) adapter.PendingExpenseStore {
	return &memoryPendingStore{
		ttl:    ttl,
		now:    time.Now,
		drafts: make(map[uuid.UUID]memoryDraft),
	}
}

func (s *memoryPendingStore) Put(_ context.Context, userID uuid.UUID, draft entity.ExpenseDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[userID] = memoryDraft{draft: draft, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *memoryPendingStore) Get(_ context.Context, userID uuid.UUID) (*entity.ExpenseDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.drafts[userID]
	if !ok || !s.now().Before(stored.expiresAt) {
		delete(s.drafts, userID)
		return nil, domainerror.ErrNoPendingExpense
	}
	draft := stored.draft
	return &draft, nil
}

func (s *memoryPendingStore) Take(_ context.Context, userID uuid.UUID) (*entity.ExpenseDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.drafts[userID]
	delete(s.drafts, userID)
	if !ok || !s.now().Before(stored.expiresAt) {
		return nil, domainerror.ErrNoPendingExpense
	}
	draft := stored.draft
	return &draft, nil
}

func (s *memoryPendingStore) Restore(_ context.Context, userID uuid.UUID, draft entity.ExpenseDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if stored, ok := s.drafts[userID]; ok && s.now().Before(stored.expiresAt) {
		return nil
	}
	s.drafts[userID] = memoryDraft{draft: draft, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *memoryPendingStore) Delete(_ context.Context, userID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.drafts[userID]
	delete(s.drafts, userID)
	return ok && s.now().Before(stored.expiresAt), nil
}
