package actions

import (
	"context"

	"github.com/spigell/asha-actions/internal/form"
)

type validateJobSearch struct{}

func NewValidateJobSearch() Action { return validateJobSearch{} }

func (validateJobSearch) Name() string { return NameValidateJobSearch }

// Run validates the slot the form is asking for and either asks for the next
// missing field or closes the form.
func (validateJobSearch) Run(_ context.Context, d *Dispatcher, t *Tracker) ([]Event, error) {
	slots := t.Slots()
	requested := ""
	if t.ActiveForm() == form.JobSearch {
		requested = t.SlotString(requestedSlot)
	}

	result, done, err := form.Validate(slots, requested, t.LatestMessage())
	if err != nil {
		return nil, err
	}

	var evs []Event
	if t.ActiveForm() != form.JobSearch && !done {
		evs = append(evs, ActiveForm(form.JobSearch))
	}

	if result.Field != "" {
		if !result.Accepted {
			d.Utter(result.Prompt)
			return append(evs,
				SlotSet(result.Field, nil),
				SlotSet(requestedSlot, result.Field),
			), nil
		}
		evs = append(evs, SlotSet(result.Field, result.Value))
		slots[result.Field] = result.Value
	}

	if done {
		if t.ActiveForm() == form.JobSearch {
			evs = append(evs, ActiveForm(""))
		}
		return append(evs, SlotSet(requestedSlot, nil)), nil
	}

	next, _ := form.NextMissing(slots)
	d.Utter(form.Question(next))
	return append(evs, SlotSet(requestedSlot, next)), nil
}
