package poller

import (
	"context"
	"log/slog"
	"time"
)

// TickFunc runs once per polling tick. It should read an immutable snapshot
// and must not share mutable state across ticks.
type TickFunc func(ctx context.Context) error

// Poller runs a recurring refresh task on a bounded interval. Clients of the
// engine poll rather than receive pushes, so the poller owns only reads;
// cancelling it never affects in-flight mutation calls, which run on their
// own contexts.
type Poller struct {
	interval time.Duration
	fn       TickFunc
	logger   *slog.Logger
}

// Option configures a Poller.
type Option func(*Poller)

// WithLogger sets the logger for the Poller.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Poller) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a poller that invokes fn every interval.
func New(interval time.Duration, fn TickFunc, opts ...Option) (*Poller, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if fn == nil {
		return nil, ErrTickFuncRequired
	}

	p := &Poller{
		interval: interval,
		fn:       fn,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Start runs the polling loop until ctx is cancelled, ticking once
// immediately and then every interval. Tick errors are logged and the loop
// continues; the only exit path is cancellation, whose cause is returned.
func (p *Poller) Start(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			p.logger.InfoContext(ctx, "poller shutting down")
			return ctx.Err()
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	if err := p.fn(ctx); err != nil {
		p.logger.LogAttrs(ctx, slog.LevelWarn, "poll tick failed",
			slog.String("error", err.Error()),
		)
	}
}
