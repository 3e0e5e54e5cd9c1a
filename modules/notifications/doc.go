// Package notifications exposes the notification engine over HTTP as a
// mountable chi router: event submission, filtered listing in realtime or
// historical views, read-state mutations, CSV export, and preference profile
// management.
//
// The router is storage-agnostic; wire it with whatever stores the notifier
// manager was built on. Responses use a {data, error} JSON envelope, with
// validation failures carrying per-field details.
package notifications
