package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/flowmaster/internal/auth"
	"github.com/thenoetrevino/flowmaster/internal/config"
	"github.com/thenoetrevino/flowmaster/internal/database"
	"github.com/thenoetrevino/flowmaster/internal/drag"
	"github.com/thenoetrevino/flowmaster/internal/events"
	"github.com/thenoetrevino/flowmaster/internal/storage"
	"github.com/thenoetrevino/flowmaster/internal/store"
)

// changeBuffer is how many change events the audit log may lag behind.
const changeBuffer = 64

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config *config.Config

	// Board state and the operations on it
	Store *store.Store

	// Mock credential store gating access to the board
	Auth *auth.Service

	// Drag preview state for pointer-driven moves
	Drag *drag.Controller

	// Change notifications published by the store
	Events *events.Bus

	db        *sql.DB
	logger    *slog.Logger
	stopAudit func()
	auditDone sync.WaitGroup
	closeOnce sync.Once
}

// New creates a new App with all services initialized and rehydrated.
// This is the single entry point for creating the application container.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	options := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}

	a := &App{
		Config: cfg,
		Events: events.NewBus(),
		Drag:   drag.NewController(),
		logger: options.logger,
	}

	kv := options.kv
	if kv == nil {
		db, err := database.InitDB(ctx, cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open storage: %w", err)
		}
		a.db = db
		kv = database.NewKVStore(db)
	}

	storeOpts := []store.Option{
		store.WithMirror(storage.NewJSONMirror(kv, cfg.Storage.WorkflowKey)),
		store.WithPublisher(a.Events),
		store.WithLogger(options.logger),
	}
	authOpts := []auth.Option{
		auth.WithSessionMirror(storage.NewJSONMirror(kv, cfg.Storage.AuthKey)),
		auth.WithAccountMirror(storage.NewJSONMirror(kv, cfg.Storage.AccountsKey)),
		auth.WithSecret(cfg.Auth.Secret),
		auth.WithSessionTTL(cfg.SessionTTL()),
		auth.WithHashCost(cfg.Auth.HashCost),
		auth.WithLogger(options.logger),
	}
	if options.now != nil {
		storeOpts = append(storeOpts, store.WithClock(options.now))
		authOpts = append(authOpts, auth.WithClock(options.now))
	}
	if options.newID != nil {
		storeOpts = append(storeOpts, store.WithIDGenerator(options.newID))
		authOpts = append(authOpts, auth.WithIDGenerator(options.newID))
	}
	if options.host != "" {
		authOpts = append(authOpts, auth.WithHost(options.host))
	}

	a.Store = store.New(storeOpts...)
	a.Store.Load(ctx)

	a.Auth = auth.New(authOpts...)
	a.Auth.Load(ctx)

	a.startAudit()
	return a, nil
}

// startAudit logs every committed change at debug level until Close.
func (a *App) startAudit() {
	changes, cancel := a.Events.Subscribe(changeBuffer)
	a.stopAudit = cancel

	a.auditDone.Add(1)
	go func() {
		defer a.auditDone.Done()
		for event := range changes {
			a.logger.Debug("change committed",
				"event_type", event.Type,
				"workflow_id", event.WorkflowID,
				"entity_id", event.EntityID,
				"sequence_id", event.SequenceID)
		}
	}()
}

// Close stops the audit log, closes the event bus and the database.
func (a *App) Close() error {
	var err error
	a.closeOnce.Do(func() {
		a.stopAudit()
		a.auditDone.Wait()

		metrics := a.Events.Metrics()
		if metrics.Dropped > 0 {
			a.logger.Warn("change events were dropped", "count", metrics.Dropped)
		}
		a.logger.Debug("event bus closed",
			"published", metrics.Published,
			"delivered", metrics.Delivered,
			"uptime", metrics.Uptime)

		err = a.Events.Close()
		if a.db != nil {
			err = errors.Join(err, a.db.Close())
		}
	})
	return err
}
