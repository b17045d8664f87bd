package authz

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// ImpersonationStore persists which email an admin is currently viewing the
// dashboard as. Get returns "" when the admin is not impersonating anyone.
// The store is an injected port so tests can use the in-memory fake.
type ImpersonationStore interface {
	Get(ctx context.Context, adminID uuid.UUID) (string, error)
	Set(ctx context.Context, adminID uuid.UUID, email string) error
	Clear(ctx context.Context, adminID uuid.UUID) error
}

// MemoryImpersonationStore keeps impersonation state in memory. Used in
// tests and as a fallback when no durable store is wired.
type MemoryImpersonationStore struct {
	mu    sync.RWMutex
	state map[uuid.UUID]string
}

func NewMemoryImpersonationStore() *MemoryImpersonationStore {
	return &MemoryImpersonationStore{state: make(map[uuid.UUID]string)}
}

func (s *MemoryImpersonationStore) Get(_ context.Context, adminID uuid.UUID) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state[adminID], nil
}

func (s *MemoryImpersonationStore) Set(_ context.Context, adminID uuid.UUID, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state[adminID] = email
	return nil
}

func (s *MemoryImpersonationStore) Clear(_ context.Context, adminID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.state, adminID)
	return nil
}
