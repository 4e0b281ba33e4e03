package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/flowmaster/internal/storage"
	"github.com/thenoetrevino/flowmaster/internal/types"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	kv     storage.KeyValue
	logger *slog.Logger
	now    func() time.Time
	newID  types.IDFunc
	host   string
}

// WithKeyValue mirrors state into kv instead of opening the configured database
func WithKeyValue(kv storage.KeyValue) Option {
	return func(cfg *appConfig) {
		cfg.kv = kv
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithClock sets the time source for the store and auth service
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.now = now
	}
}

// WithIDGenerator sets the id generator for new entities and accounts
func WithIDGenerator(fn types.IDFunc) Option {
	return func(cfg *appConfig) {
		cfg.newID = fn
	}
}

// WithHost binds auth sessions to the given local account name
func WithHost(host string) Option {
	return func(cfg *appConfig) {
		cfg.host = host
	}
}
