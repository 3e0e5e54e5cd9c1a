// Package notifykit is a notification preference and delivery-routing engine.
//
// Given an incoming event, the engine decides whether it becomes a visible
// notification, which channels should receive it, and whether quiet hours
// currently suppress it. It then owns the notification's lifecycle:
// read state, bulk operations, filtered realtime and historical views, and
// export. Actual message transmission stays with external gateway
// collaborators; the engine only computes the delivery plan.
//
// The module is organized as focused packages under pkg/:
//
//   - notification: domain model, event ingestion, storage contract
//   - preferences: per-user routing preferences and quiet hours
//   - routing: the pure decision function producing delivery plans
//   - lifecycle: read-state transitions and bulk operations
//   - query: filtering, views, ordering, CSV export
//   - notifier: the orchestrator tying the flow together
//   - feed: in-app realtime fan-out
//   - stormguard: burst protection per category and severity
//   - poller: the cancellable polling refresh cycle
//   - pgstore: PostgreSQL persistence for notifications and profiles
//
// modules/notifications mounts the whole engine as a chi HTTP router.
package notifykit
