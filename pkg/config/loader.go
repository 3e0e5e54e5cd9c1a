package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var dotenvLoaded sync.Once

// Load populates a configuration struct from environment variables using
// `env` field tags. The default .env file is loaded once per process if it
// exists; a missing file is not an error.
//
//	type EngineConfig struct {
//	    PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"10s"`
//	    StormLimit   int           `env:"STORM_LIMIT" envDefault:"50"`
//	}
//
//	var cfg EngineConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvLoaded.Do(func() {
		// The .env file is optional; environment variables win regardless.
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Use for configuration the
// process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
