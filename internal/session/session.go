// Package session holds per-conversation dialogue state and the stores that
// keep it between turns.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// PausedSlot is the slot that carries the paused conversation snapshot.
const PausedSlot = "paused_state"

var ErrEmptyID = errors.New("session id is required")

// Store keeps session state keyed by session id. Load returns a fresh state
// for unknown ids. Implementations hand out copies so callers never share
// mutable state across sessions.
type Store interface {
	Load(ctx context.Context, id string) (*State, error)
	Save(ctx context.Context, state *State) error
	Delete(ctx context.Context, id string) error
}

type State struct {
	ID            string         `json:"id"`
	Slots         map[string]any `json:"slots"`
	ActiveForm    string         `json:"active_form,omitempty"`
	LatestAction  string         `json:"latest_action,omitempty"`
	LatestMessage string         `json:"latest_message,omitempty"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Snapshot captures what is needed to pick a paused conversation back up.
type Snapshot struct {
	ActiveForm   string         `json:"active_form" mapstructure:"active_form"`
	Slots        map[string]any `json:"slots" mapstructure:"slots"`
	LatestAction string         `json:"latest_action" mapstructure:"latest_action"`
}

func New(id string) *State {
	return &State{ID: id, Slots: make(map[string]any)}
}

// Slot returns the raw slot value or nil.
func (s *State) Slot(name string) any {
	if s == nil || s.Slots == nil {
		return nil
	}
	return s.Slots[name]
}

// SlotString returns the slot value as trimmed text; non-string values are
// formatted with %v.
func (s *State) SlotString(name string) string {
	switch v := s.Slot(name).(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// SetSlot assigns value to name. A nil value clears the slot.
func (s *State) SetSlot(name string, value any) {
	if s.Slots == nil {
		s.Slots = make(map[string]any)
	}
	if value == nil {
		delete(s.Slots, name)
		return
	}
	s.Slots[name] = value
}

// Snapshot captures the current form, slots and latest action. The paused
// slot itself is never part of a snapshot.
func (s *State) Snapshot() Snapshot {
	slots := cloneMap(s.Slots)
	delete(slots, PausedSlot)
	return Snapshot{
		ActiveForm:   s.ActiveForm,
		Slots:        slots,
		LatestAction: s.LatestAction,
	}
}

// Paused decodes the snapshot stored in PausedSlot. The value may be a
// Snapshot or the generic map produced by a JSON round trip.
func (s *State) Paused() (*Snapshot, bool, error) {
	raw := s.Slot(PausedSlot)
	switch v := raw.(type) {
	case nil:
		return nil, false, nil
	case Snapshot:
		return &v, true, nil
	case *Snapshot:
		if v == nil {
			return nil, false, nil
		}
		return v, true, nil
	}

	var snapshot Snapshot
	if err := mapstructure.Decode(raw, &snapshot); err != nil {
		return nil, false, fmt.Errorf("decode paused snapshot: %w", err)
	}
	return &snapshot, true, nil
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	clone := *s
	clone.Slots = cloneMap(s.Slots)
	return &clone
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return append([]string(nil), val...)
	case Snapshot:
		val.Slots = cloneMap(val.Slots)
		return val
	case *Snapshot:
		if val == nil {
			return val
		}
		copied := *val
		copied.Slots = cloneMap(val.Slots)
		return &copied
	default:
		return v
	}
}
