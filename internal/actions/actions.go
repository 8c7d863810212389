// Package actions runs the assistant's side-effecting actions against a
// conversation session and reports the messages and state changes they
// produce.
package actions

import (
	"context"
	"strings"

	"github.com/spigell/asha-actions/internal/session"
)

// Action names as the dialogue manager knows them.
const (
	NameSearchJobs         = "action_search_jobs"
	NameEventsInfo         = "action_provide_events_info"
	NameSessionsInfo       = "action_provide_sessions_info"
	NameMentorshipInfo     = "action_provide_mentorship_info"
	NameHandleFAQ          = "action_handle_faq"
	NameAddressGenderBias  = "action_address_gender_bias"
	NameValidateJobSearch  = "validate_job_search_form"
	NamePauseConversation  = "action_pause_conversation"
	NameResumeConversation = "action_resume_conversation"
)

const (
	requestedSlot   = "requested_slot"
	entityEventType = "event_type"
)

type Action interface {
	Name() string
	Run(ctx context.Context, d *Dispatcher, t *Tracker) ([]Event, error)
}

type EventKind string

const (
	EventSlot       EventKind = "slot"
	EventActiveForm EventKind = "active_loop"
)

// Event is a state change requested by an action.
type Event struct {
	Kind  EventKind `json:"event"`
	Name  string    `json:"name"`
	Value any       `json:"value,omitempty"`
}

// SlotSet assigns value to the slot. A nil value clears it.
func SlotSet(name string, value any) Event {
	return Event{Kind: EventSlot, Name: name, Value: value}
}

// ActiveForm activates the named form, or deactivates the current one when
// name is empty.
func ActiveForm(name string) Event {
	return Event{Kind: EventActiveForm, Name: name}
}

// Dispatcher collects the messages an action sends to the user.
type Dispatcher struct {
	messages []string
}

func (d *Dispatcher) Utter(text string) {
	if text = strings.TrimSpace(text); text != "" {
		d.messages = append(d.messages, text)
	}
}

func (d *Dispatcher) Messages() []string {
	return append([]string(nil), d.messages...)
}

// Turn is the inbound part of one dialogue turn.
type Turn struct {
	Text     string
	Entities map[string][]string
	// Slots are values filled by the NLU for this turn.
	Slots map[string]any
}

// Tracker is a read-only view of the session an action runs against.
type Tracker struct {
	state    *session.State
	entities map[string][]string
}

func NewTracker(state *session.State, entities map[string][]string) *Tracker {
	if state == nil {
		state = session.New("")
	}
	return &Tracker{state: state.Clone(), entities: entities}
}

func (t *Tracker) SessionID() string     { return t.state.ID }
func (t *Tracker) LatestMessage() string { return t.state.LatestMessage }
func (t *Tracker) ActiveForm() string    { return t.state.ActiveForm }
func (t *Tracker) LatestAction() string  { return t.state.LatestAction }

func (t *Tracker) Slot(name string) any { return t.state.Slot(name) }

func (t *Tracker) SlotString(name string) string { return t.state.SlotString(name) }

// Slots returns a copy of all slot values.
func (t *Tracker) Slots() map[string]any { return t.state.Clone().Slots }

func (t *Tracker) Entities(name string) []string {
	return append([]string(nil), t.entities[name]...)
}

func (t *Tracker) Snapshot() session.Snapshot { return t.state.Snapshot() }

func (t *Tracker) Paused() (*session.Snapshot, bool, error) { return t.state.Paused() }

// apply mutates state with the events in order.
func apply(state *session.State, events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventSlot:
			state.SetSlot(ev.Name, ev.Value)
		case EventActiveForm:
			state.ActiveForm = ev.Name
		}
	}
}

func isSet(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	default:
		return true
	}
}
