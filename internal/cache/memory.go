package cache

import (
	"context"
	"sync"
	"time"

	"github.com/package-pricing/package-pricing-and-aggregation-engine/internal/infrastructure/timeutil"
)

// MemoryStore is an in-process Store guarded by a mutex. Expiry is lazy: an
// entry past its ExpiresAt is reported absent even before EvictExpired has
// physically removed it.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*Entry
	clock   timeutil.Clock
}

// NewMemoryStore creates a MemoryStore using the given clock. Pass a
// MockClock in tests to assert expiry behavior deterministically.
func NewMemoryStore(clock timeutil.Clock) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*Entry),
		clock:   clock,
	}
}

// Get implements Store.Get. Hits increment the entry's HitCount.
func (s *MemoryStore) Get(_ context.Context, key string) (*Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if s.clock.Now().After(entry.ExpiresAt) {
		return nil, false
	}

	entry.HitCount++

	// Return a copy so readers never observe a torn entry while a
	// concurrent Put replaces it.
	copied := *entry
	return &copied, true
}

// Put implements Store.Put with last-write-wins semantics.
func (s *MemoryStore) Put(_ context.Context, key string, payload []byte, ttl time.Duration) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = &Entry{
		Key:       key,
		Payload:   payload,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// EvictExpired implements Store.EvictExpired.
func (s *MemoryStore) EvictExpired(_ context.Context) int {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, entry := range s.entries {
		if now.After(entry.ExpiresAt) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of physically stored entries, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Ensure MemoryStore implements Store at compile time.
var _ Store = (*MemoryStore)(nil)
