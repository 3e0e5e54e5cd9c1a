package feed_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/feed"
	"github.com/dmitrymomot/notifykit/pkg/notification"
)

func notif(id, userID string) notification.Notification {
	return notification.Notification{
		ID:       id,
		UserID:   userID,
		Category: notification.CategorySystem,
		Severity: notification.SeverityInfo,
		Title:    "title",
	}
}

func TestFeed_PublishRoutesByUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := feed.New(4)
	defer f.Close()

	alice := f.Subscribe(ctx, "alice")
	bob := f.Subscribe(ctx, "bob")

	require.NoError(t, f.Publish(ctx, notif("n-1", "alice")))

	select {
	case got := <-alice.Receive():
		assert.Equal(t, "n-1", got.ID)
	case <-time.After(time.Second):
		t.Fatal("alice did not receive the notification")
	}

	select {
	case got := <-bob.Receive():
		t.Fatalf("bob received %s meant for alice", got.ID)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestFeed_MultipleSubscribersSameUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := feed.New(4)
	defer f.Close()

	first := f.Subscribe(ctx, "alice")
	second := f.Subscribe(ctx, "alice")

	require.NoError(t, f.Publish(ctx, notif("n-1", "alice")))

	for _, sub := range []feed.Subscriber{first, second} {
		select {
		case got := <-sub.Receive():
			assert.Equal(t, "n-1", got.ID)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive the notification")
		}
	}
}

func TestFeed_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := feed.New(1)
	defer f.Close()

	_ = f.Subscribe(ctx, "alice")

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Buffer of one; further publishes must not block.
		for i := 0; i < 10; i++ {
			_ = f.Publish(ctx, notif("n", "alice"))
			_ = i
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestFeed_ContextCancellationCleansUp(t *testing.T) {
	t.Parallel()

	f := feed.New(4)
	defer f.Close()

	subCtx, cancel := context.WithCancel(context.Background())
	sub := f.Subscribe(subCtx, "alice")
	cancel()

	select {
	case _, open := <-sub.Receive():
		assert.False(t, open, "channel should close after cancellation")
	case <-time.After(time.Second):
		t.Fatal("subscriber channel was not closed")
	}
}

func TestFeed_Close(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := feed.New(4)
	sub := f.Subscribe(ctx, "alice")

	require.NoError(t, f.Close())
	require.NoError(t, f.Close(), "close is idempotent")

	_, open := <-sub.Receive()
	assert.False(t, open)

	// Publishing after close is a no-op, subscribing yields a closed subscriber.
	assert.NoError(t, f.Publish(ctx, notif("n-1", "alice")))
	late := f.Subscribe(ctx, "alice")
	_, open = <-late.Receive()
	assert.False(t, open)
}
