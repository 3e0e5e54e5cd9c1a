// Package config loads typed configuration structs from environment
// variables, with optional .env bootstrap for local development.
//
// Structs declare their variables through `env` tags (github.com/caarlos0/env
// semantics, including envDefault and required markers). Load is safe to call
// from multiple packages; the .env file is read once per process.
package config
