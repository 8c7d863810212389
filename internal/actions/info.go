package actions

import (
	"context"

	"go.uber.org/zap"

	"github.com/spigell/asha-actions/internal/events"
)

type provideInfo struct {
	name   string
	kind   events.Kind
	path   string
	logger *zap.Logger
}

// NewEventsInfo lists upcoming events, narrowed by requested event types.
func NewEventsInfo(path string, logger *zap.Logger) Action {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &provideInfo{name: NameEventsInfo, kind: events.KindEvent, path: path, logger: logger}
}

// NewSessionsInfo lists upcoming learning sessions.
func NewSessionsInfo(path string, logger *zap.Logger) Action {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &provideInfo{name: NameSessionsInfo, kind: events.KindSession, path: path, logger: logger}
}

func (a *provideInfo) Name() string { return a.name }

func (a *provideInfo) Run(_ context.Context, d *Dispatcher, t *Tracker) ([]Event, error) {
	catalog, err := events.Load(a.path)
	if err != nil {
		a.logger.Warn("entries file unavailable, using built-in listing",
			zap.String("path", a.path),
			zap.String("kind", string(a.kind)),
			zap.Error(err),
		)
		d.Utter(events.Fallback(a.kind))
		return nil, nil
	}

	entries := catalog.Of(a.kind)
	if a.kind == events.KindEvent {
		entries = events.Narrow(entries, t.Entities(entityEventType))
	}
	d.Utter(events.Format(a.kind, events.Upcoming(entries)))
	return nil, nil
}
