// Package query answers the read side of the notification engine: composed
// multi-predicate filtering, the realtime and historical views, deterministic
// ordering, and CSV export.
//
// Filters are conjunctions of independent predicates that each default to
// "match everything" when unset. The realtime view additionally intersects
// with a 24-hour age window relative to the caller's clock; the historical
// view has no implicit bound.
//
// All functions are pure over slices. Consumers read an immutable snapshot
// per polling tick and tolerate eventual consistency between polls.
package query
