// Package pgstore provides PostgreSQL-backed implementations of the
// notification and preference store interfaces using the pgx/v5 driver,
// plus connection pooling with retry and goose-based schema migrations
// embedded in the binary.
//
// Mutations rely on conditional single-statement updates, so the
// compare-and-set behavior the engine requires for read-flag and existence
// changes holds across multiple service instances without any application
// lock.
//
//	pool, err := pgstore.Connect(ctx, cfg)
//	if err != nil { ... }
//	if err := pgstore.Migrate(ctx, pool, log); err != nil { ... }
//
//	store := pgstore.NewNotificationStore(pool)
//	prefs := pgstore.NewProfileStore(pool)
//	manager := notifier.New(store, prefs)
package pgstore
