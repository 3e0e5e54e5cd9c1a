package feed

import (
	"context"
	"sync"

	"github.com/dmitrymomot/notifykit/pkg/notification"
)

// Subscriber receives a user's notifications in real time.
// Safe for concurrent use.
type Subscriber interface {
	// Receive returns the channel notifications arrive on. The channel is
	// closed when the subscriber is closed.
	Receive() <-chan notification.Notification

	// Close closes the subscriber and releases resources. Idempotent.
	Close() error
}

type subscriber struct {
	ch     chan notification.Notification
	closed bool
	mu     sync.RWMutex
}

func newSubscriber(bufferSize int) *subscriber {
	return &subscriber{ch: make(chan notification.Notification, bufferSize)}
}

func (s *subscriber) Receive() <-chan notification.Notification {
	return s.ch
}

func (s *subscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

func (s *subscriber) send(n notification.Notification) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- n:
		return true
	default:
		return false
	}
}

// Feed fans stored notifications out to in-app subscribers keyed by user.
// Sends are non-blocking: when a subscriber's buffer is full the message is
// dropped for that subscriber rather than stalling delivery, and the
// subscriber is evicted. Clients reconcile through the polling query layer.
type Feed struct {
	mu          sync.RWMutex
	subscribers map[string]map[*subscriber]struct{} // userID -> subscribers
	bufferSize  int
	closed      bool
	cleanupWg   sync.WaitGroup
}

// New creates a feed whose subscribers buffer up to bufferSize notifications.
// A minimum buffer of 1 is enforced so sends never block.
func New(bufferSize int) *Feed {
	return &Feed{
		subscribers: make(map[string]map[*subscriber]struct{}),
		bufferSize:  max(bufferSize, 1),
	}
}

// Subscribe registers a subscriber for one user's notifications. The
// subscription is cleaned up automatically when ctx is cancelled. A closed
// feed returns an already-closed subscriber.
func (f *Feed) Subscribe(ctx context.Context, userID string) Subscriber {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		sub := newSubscriber(f.bufferSize)
		_ = sub.Close()
		return sub
	}

	sub := newSubscriber(f.bufferSize)
	if f.subscribers[userID] == nil {
		f.subscribers[userID] = make(map[*subscriber]struct{})
	}
	f.subscribers[userID][sub] = struct{}{}

	if ctx.Done() != nil {
		f.cleanupWg.Add(1)
		go func() {
			defer f.cleanupWg.Done()
			<-ctx.Done()
			f.unsubscribe(userID, sub)
		}()
	}

	return sub
}

// Publish sends a notification to every active subscriber of its recipient.
// Returns nil even when some subscribers were too slow to receive it.
func (f *Feed) Publish(ctx context.Context, n notification.Notification) error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.closed {
		return nil
	}

	for sub := range f.subscribers[n.UserID] {
		if !sub.send(n) {
			// Evict slow or closed subscribers asynchronously so one stuck
			// client cannot hold up the publish path.
			go f.unsubscribe(n.UserID, sub)
		}
	}
	return nil
}

// Close shuts down the feed and closes all subscribers. Idempotent.
func (f *Feed) Close() error {
	f.mu.Lock()

	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true

	for _, subs := range f.subscribers {
		for sub := range subs {
			_ = sub.Close()
		}
	}
	clear(f.subscribers)
	f.mu.Unlock()

	f.cleanupWg.Wait()
	return nil
}

func (f *Feed) unsubscribe(userID string, sub *subscriber) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if subs, ok := f.subscribers[userID]; ok {
		if _, ok := subs[sub]; ok {
			delete(subs, sub)
			if len(subs) == 0 {
				delete(f.subscribers, userID)
			}
			_ = sub.Close()
		}
	}
}
