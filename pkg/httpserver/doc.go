// Package httpserver hosts the notification engine's HTTP surface with
// graceful shutdown and probe endpoints.
//
// # Usage
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	r := chi.NewRouter()
//	r.Mount("/notifications", notifications.Router(manager))
//	r.Get("/healthz", httpserver.Healthcheck(log))
//	r.Get("/readyz", httpserver.Healthcheck(log, pgstore.Healthcheck(pool)))
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until the context is cancelled or the process receives SIGINT
// or SIGTERM, then drains in-flight requests within Config.ShutdownTimeout.
package httpserver
