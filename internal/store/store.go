// Package store is the board's entity store: normalized workflow, stage, task
// and user mappings with the CRUD, cascade and move operations that keep them
// consistent.
//
// Every mutation runs under a single lock and validates all lookups before it
// touches state, so no reader ever observes a half-applied change. Reads hand
// out deep copies. Operations that reference an unknown id are silent no-ops
// reported through a false return.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/flowmaster/internal/events"
	"github.com/thenoetrevino/flowmaster/internal/models"
	"github.com/thenoetrevino/flowmaster/internal/storage"
	"github.com/thenoetrevino/flowmaster/internal/types"
)

// board is the durable subset of the store's state.
type board struct {
	workflows        map[string]*models.Workflow
	stages           map[string]*models.Stage
	tasks            map[string]*models.Task
	users            map[string]*models.User
	activeWorkflowID string
}

func newBoard() board {
	return board{
		workflows: make(map[string]*models.Workflow),
		stages:    make(map[string]*models.Stage),
		tasks:     make(map[string]*models.Task),
		users:     make(map[string]*models.User),
	}
}

// Store holds the board state for one user session.
type Store struct {
	mu sync.Mutex
	board
	ui UIState

	mirror    storage.Mirror
	publisher events.Publisher
	logger    *slog.Logger
	now       func() time.Time
	newID     types.IDFunc
	sequence  int64
}

// Option configures a Store.
type Option func(*Store)

// WithMirror writes the durable state through to m after every mutation.
func WithMirror(m storage.Mirror) Option {
	return func(s *Store) {
		s.mirror = m
	}
}

// WithPublisher emits a change event to p after every mutation.
func WithPublisher(p events.Publisher) Option {
	return func(s *Store) {
		s.publisher = p
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithClock sets the time source used for CreatedAt/UpdatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator sets the id generator used for new entities.
func WithIDGenerator(fn types.IDFunc) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		board:  newBoard(),
		logger: slog.Default(),
		now:    time.Now,
		newID:  types.NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load rehydrates the store from its mirror. Missing, unreadable or
// inconsistent persisted state leaves the store empty; the return value
// reports whether anything was loaded.
func (s *Store) Load(ctx context.Context) bool {
	if s.mirror == nil {
		return false
	}

	var state persistedState
	found, err := s.mirror.Load(ctx, &state)
	if err != nil {
		s.logger.Warn("failed to rehydrate board state, starting empty", "error", err)
		return false
	}
	if !found {
		return false
	}

	candidate := state.toBoard()
	if err := candidate.validate(); err != nil {
		s.logger.Warn("persisted board state is inconsistent, starting empty", "error", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.board = candidate
	s.logger.Debug("board state rehydrated",
		"workflows", len(candidate.workflows),
		"stages", len(candidate.stages),
		"tasks", len(candidate.tasks))
	return true
}

// stamp returns the current time for CreatedAt/UpdatedAt fields.
func (s *Store) stamp() time.Time {
	return s.now().UTC()
}

// touchWorkflow sets UpdatedAt on the workflow if it exists.
func (s *Store) touchWorkflow(id string, at time.Time) {
	if wf, ok := s.workflows[id]; ok {
		wf.UpdatedAt = at
	}
}

// commit writes the durable state through to the mirror and publishes the
// change. Callers hold s.mu. A failed write is logged and does not roll back
// the in-memory change, which stays authoritative.
func (s *Store) commit(ctx context.Context, typ events.EventType, workflowID, entityID string) {
	if s.mirror != nil {
		if err := s.mirror.Save(ctx, s.persisted()); err != nil {
			s.logger.Error("failed to persist board state", "error", err)
		}
	}

	s.sequence++
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(events.Event{
		Type:       typ,
		WorkflowID: workflowID,
		EntityID:   entityID,
		Timestamp:  s.stamp(),
		SequenceID: s.sequence,
	}); err != nil {
		s.logger.Warn("failed to publish change event", "event_type", typ, "error", err)
	}
}
