package actions

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/asha-actions/internal/logger"
	"github.com/spigell/asha-actions/internal/session"
)

type Response struct {
	Messages []string `json:"messages"`
	Events   []Event  `json:"events"`
}

// Executor runs actions against stored sessions. Turns of one session are
// serialized; different sessions run concurrently.
type Executor struct {
	registry *Registry
	store    session.Store
	logger   *zap.Logger
	locks    session.Locks
}

func NewExecutor(registry *Registry, store session.Store, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{registry: registry, store: store, logger: logger}
}

func (e *Executor) Registry() *Registry { return e.registry }

// Execute loads the session, runs the named action for the turn, applies the
// resulting events and saves the session.
func (e *Executor) Execute(ctx context.Context, sessionID, name string, turn Turn) (*Response, error) {
	if sessionID == "" {
		return nil, session.ErrEmptyID
	}
	action, err := e.registry.Get(name)
	if err != nil {
		return nil, err
	}

	unlock := e.locks.Lock(sessionID)
	defer unlock()

	log := logger.ForAction(e.logger, name, sessionID)

	state, err := e.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	for slot, value := range turn.Slots {
		state.SetSlot(slot, value)
	}
	state.LatestMessage = turn.Text

	dispatcher := &Dispatcher{}
	started := time.Now()
	events, err := action.Run(ctx, dispatcher, NewTracker(state, turn.Entities))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	apply(state, events)
	state.LatestAction = name
	if err := e.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	resp := &Response{Messages: dispatcher.Messages(), Events: events}
	log.Info("action executed",
		zap.Int("messages", len(resp.Messages)),
		zap.Int("events", len(resp.Events)),
		zap.Duration("took", time.Since(started)),
	)
	return resp, nil
}
