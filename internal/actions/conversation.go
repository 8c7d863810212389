package actions

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/spigell/asha-actions/internal/session"
)

type pauseConversation struct{}

func NewPauseConversation() Action { return pauseConversation{} }

func (pauseConversation) Name() string { return NamePauseConversation }

// Run stores a snapshot of the conversation, replacing any earlier one.
func (pauseConversation) Run(_ context.Context, d *Dispatcher, t *Tracker) ([]Event, error) {
	d.Utter(pausedMessage)
	return []Event{SlotSet(session.PausedSlot, t.Snapshot())}, nil
}

type resumeConversation struct {
	logger *zap.Logger
}

func NewResumeConversation(logger *zap.Logger) Action {
	if logger == nil {
		logger = zap.NewNop()
	}
	return resumeConversation{logger: logger}
}

func (resumeConversation) Name() string { return NameResumeConversation }

// Run restores the paused form and any snapshot slot the user has not
// filled since, then drops the snapshot.
func (a resumeConversation) Run(_ context.Context, d *Dispatcher, t *Tracker) ([]Event, error) {
	snapshot, ok, err := t.Paused()
	if err != nil {
		a.logger.Warn("paused snapshot is unreadable", zap.Error(err))
	}
	if !ok || err != nil {
		d.Utter(noPausedMessage)
		return nil, nil
	}

	d.Utter(resumedMessage)

	var evs []Event
	if snapshot.ActiveForm != "" && snapshot.ActiveForm != t.ActiveForm() {
		evs = append(evs, ActiveForm(snapshot.ActiveForm))
	}

	names := make([]string, 0, len(snapshot.Slots))
	for name := range snapshot.Slots {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		value := snapshot.Slots[name]
		if name == session.PausedSlot || !isSet(value) || isSet(t.Slot(name)) {
			continue
		}
		evs = append(evs, SlotSet(name, value))
	}

	return append(evs, SlotSet(session.PausedSlot, nil)), nil
}
