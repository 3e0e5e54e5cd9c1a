// Package feed provides the in-app realtime fan-out for the notification
// engine: a per-user publish/subscribe hub that streams stored notifications
// to connected clients.
//
// Delivery is best effort. Sends never block; a subscriber whose buffer is
// full has the message dropped and is evicted, and clients reconcile any gap
// through the polling query layer, which remains the consistency contract.
//
//	f := feed.New(16)
//	sub := f.Subscribe(ctx, "user-123")
//	defer sub.Close()
//
//	for n := range sub.Receive() {
//	    render(n)
//	}
package feed
