package stormguard

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Store is the counter backend for the guard. Increment must be atomic per
// key; keys expire after ttl so stale buckets do not accumulate.
type Store interface {
	// Increment atomically adds one to the counter for key and returns the
	// new value. The key expires ttl after its first increment.
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

type bucket struct {
	count     atomic.Int64
	expiresAt time.Time
}

// MemoryStore is an in-memory implementation of the Store interface using
// per-key atomic counters. Expired buckets are swept opportunistically on
// increment.
type MemoryStore struct {
	buckets sync.Map // key -> *bucket
}

// NewMemoryStore creates a new in-memory counter store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Increment(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	now := time.Now()

	fresh := &bucket{expiresAt: now.Add(ttl)}
	actual, loaded := s.buckets.LoadOrStore(key, fresh)
	b := actual.(*bucket)

	if loaded && now.After(b.expiresAt) {
		// Replace the expired bucket; losing a race here only means both
		// callers count against the same fresh bucket.
		s.buckets.Delete(key)
		actual, _ = s.buckets.LoadOrStore(key, fresh)
		b = actual.(*bucket)
	}

	s.sweep(now)
	return b.count.Add(1), nil
}

// sweep drops expired buckets. Cheap enough to run inline because the key
// space is bounded by categories x severities x live windows.
func (s *MemoryStore) sweep(now time.Time) {
	s.buckets.Range(func(key, value any) bool {
		if now.After(value.(*bucket).expiresAt) {
			s.buckets.Delete(key)
		}
		return true
	})
}
