// Package poller models the refresh cycle of the notification UI as a
// cancellable recurring task: an immediate first tick, then one tick per
// interval until the context is cancelled.
//
// Each tick should read an immutable snapshot through the query layer.
// Consumers tolerate eventual consistency between ticks; no tick blocks
// waiting for a fresher read, and stopping the poller has no effect on
// mutation calls already in flight.
package poller
