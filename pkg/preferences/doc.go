// Package preferences holds per-user routing preferences: channel toggles,
// per-category severity rules, quiet hours, and the sound toggle.
//
// The model is fail-closed: a category absent from a profile's rule map is
// treated as disabled, and a user without a stored profile gets the
// conservative Default() (in-app only, no category rules, quiet hours off)
// rather than an error. Only the critical-severity safety override in
// pkg/routing delivers anything under the default profile.
//
// Set replaces the whole profile after validation; partial updates are
// rejected to avoid inconsistent merges between the channel, category, and
// quiet-hours sections.
package preferences
