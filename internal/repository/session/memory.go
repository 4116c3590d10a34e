package session

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain"
)

type memoryEntry struct {
	CartID    string
	ExpiresAt time.Time
}

type memoryRepo struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemory(ttl time.Duration) Repository {
	return &memoryRepo{
		entries: make(map[string]memoryEntry),
		ttl:     ttlOrDefault(ttl),
		now:     time.Now,
	}
}

func (r *memoryRepo) Get(_ context.Context, sessionID string) (string, error) {
	r.mu.RLock()
	entry, ok := r.entries[sessionID]
	r.mu.RUnlock()
	if !ok {
		return "", domain.ErrNotFound
	}
	if r.now().After(entry.ExpiresAt) {
		r.mu.Lock()
		delete(r.entries, sessionID)
		r.mu.Unlock()
		return "", domain.ErrNotFound
	}
	return entry.CartID, nil
}

func (r *memoryRepo) Bind(_ context.Context, sessionID, cartID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	if entry, ok := r.entries[sessionID]; ok && !now.After(entry.ExpiresAt) {
		return entry.CartID, nil
	}
	r.entries[sessionID] = memoryEntry{CartID: cartID, ExpiresAt: now.Add(r.ttl)}
	return cartID, nil
}

func (r *memoryRepo) Ping(_ context.Context) error {
	return nil
}
