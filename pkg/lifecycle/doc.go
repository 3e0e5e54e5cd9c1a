// Package lifecycle owns the state transitions of stored notifications:
// unread to read, and explicit deletion. Archived exists in the transition
// table but no operation exposes it yet.
//
// MarkRead is idempotent and commutative under concurrency; it compiles down
// to the store's compare-and-set, so duplicate and racing calls converge to
// the same state. MarkAllRead is scoped strictly to the caller's filtered
// view and skips IDs deleted mid-batch instead of failing.
package lifecycle
