// Package routing contains the core decision logic of the notification
// engine: a pure function from (Notification, Profile, clock) to a delivery
// Plan.
//
// The decision proceeds in order: category toggle, severity-specific flag,
// channel candidate set, critical safety override, quiet hours. Two rules are
// deliberate policy rather than accidents:
//
//   - A critical notification is never fully suppressed. It always keeps at
//     least the in-app channel; category and severity toggles only strip
//     external channels for critical events.
//
//   - Quiet hours suppress external channels for everything below critical
//     and force sound off. The window is start-inclusive, end-exclusive, and
//     may wrap past midnight (start > end).
//
// Decide never persists anything. The caller stores the notification
// unconditionally and hands the plan's channels to gateway collaborators.
package routing
