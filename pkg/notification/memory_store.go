package notification

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// record keeps the mutable read flag separate from the immutable fields so
// MarkRead is a lock-free compare-and-set rather than a read-modify-write
// under the map lock.
type record struct {
	n      Notification
	read   atomic.Bool
	readAt atomic.Pointer[time.Time]
}

func (r *record) snapshot() Notification {
	n := r.n
	n.Read = r.read.Load()
	n.ReadAt = r.readAt.Load()
	return n
}

// MemoryStore is an in-memory implementation of the Store interface.
// Suitable for development and testing.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*record
	byUser  map[string][]string
}

// NewMemoryStore creates a new in-memory notification store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*record),
		byUser:  make(map[string][]string),
	}
}

func (s *MemoryStore) Create(ctx context.Context, n Notification) error {
	if n.ID == "" {
		return ErrIDRequired
	}
	if n.UserID == "" {
		return ErrUserIDRequired
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[n.ID]; exists {
		return ErrAlreadyExists
	}

	rec := &record{n: n}
	if n.Read {
		rec.read.Store(true)
		rec.readAt.Store(n.ReadAt)
	}
	rec.n.Read = false
	rec.n.ReadAt = nil

	s.records[n.ID] = rec
	s.byUser[n.UserID] = append(s.byUser[n.UserID], n.ID)
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (Notification, error) {
	s.mu.RLock()
	rec, exists := s.records[id]
	s.mu.RUnlock()

	if !exists {
		return Notification{}, ErrNotFound
	}
	return rec.snapshot(), nil
}

func (s *MemoryStore) List(ctx context.Context, userID string) ([]Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byUser[userID]
	out := make([]Notification, 0, len(ids))
	for _, id := range ids {
		if rec, exists := s.records[id]; exists {
			out = append(out, rec.snapshot())
		}
	}
	return out, nil
}

func (s *MemoryStore) MarkRead(ctx context.Context, id string) (bool, error) {
	s.mu.RLock()
	rec, exists := s.records[id]
	s.mu.RUnlock()

	if !exists {
		return false, ErrNotFound
	}

	if !rec.read.CompareAndSwap(false, true) {
		// Already read; idempotent no-op.
		return false, nil
	}

	now := time.Now()
	rec.readAt.Store(&now)
	return true, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.records[id]
	if !exists {
		return ErrNotFound
	}

	delete(s.records, id)

	ids := s.byUser[rec.n.UserID]
	for i, candidate := range ids {
		if candidate == id {
			s.byUser[rec.n.UserID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(s.byUser[rec.n.UserID]) == 0 {
		delete(s.byUser, rec.n.UserID)
	}
	return nil
}

func (s *MemoryStore) CountUnread(ctx context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, id := range s.byUser[userID] {
		if rec, exists := s.records[id]; exists && !rec.read.Load() {
			count++
		}
	}
	return count, nil
}
