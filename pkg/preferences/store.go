package preferences

import (
	"context"
	"sync"

	"github.com/dmitrymomot/notifykit/pkg/notification"
)

// Store handles preference profile persistence. A missing profile is not an
// error: Get falls back to the conservative default so a routing decision is
// always possible.
type Store interface {
	// Get returns the stored profile for a user, or Default() when none
	// exists.
	Get(ctx context.Context, userID string) (Profile, error)

	// Set validates and stores a whole profile, replacing any previous one.
	Set(ctx context.Context, userID string, p Profile) error
}

// MemoryStore is an in-memory implementation of the Store interface.
// Suitable for development and testing.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

// NewMemoryStore creates a new in-memory preference store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[string]Profile)}
}

func (s *MemoryStore) Get(ctx context.Context, userID string) (Profile, error) {
	if userID == "" {
		return Profile{}, ErrUserIDRequired
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.profiles[userID]
	if !exists {
		return Default(), nil
	}
	return clone(p), nil
}

func (s *MemoryStore) Set(ctx context.Context, userID string, p Profile) error {
	if userID == "" {
		return ErrUserIDRequired
	}
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[userID] = clone(p)
	return nil
}

// clone deep-copies the category map so stored profiles are not mutated
// through caller references.
func clone(p Profile) Profile {
	out := p
	out.Categories = make(map[notification.Category]CategoryRule, len(p.Categories))
	for k, v := range p.Categories {
		out.Categories[k] = v
	}
	return out
}
