package actions

import (
	"context"
	"strings"

	"github.com/spigell/asha-actions/internal/utils"
)

type adviceRule struct {
	match func(text string) bool
	reply string
}

func mentions(words ...string) func(string) bool {
	return func(text string) bool {
		for _, w := range words {
			if !strings.Contains(text, w) {
				return false
			}
		}
		return true
	}
}

func mentionsAny(words ...string) func(string) bool {
	return func(text string) bool { return utils.ContainsAny(text, words...) }
}

// adviceAction answers with the reply of the first rule that matches the
// lower-cased latest message.
type adviceAction struct {
	name     string
	rules    []adviceRule
	fallback string
}

func (a *adviceAction) Name() string { return a.name }

func (a *adviceAction) Run(_ context.Context, d *Dispatcher, t *Tracker) ([]Event, error) {
	text := strings.ToLower(t.LatestMessage())
	for _, r := range a.rules {
		if r.match(text) {
			d.Utter(r.reply)
			return nil, nil
		}
	}
	d.Utter(a.fallback)
	return nil, nil
}

func NewMentorshipInfo() Action {
	return &adviceAction{
		name: NameMentorshipInfo,
		rules: []adviceRule{
			{match: mentions("find", "mentor"), reply: mentorshipFind},
			{match: mentions("benefit", "mentor"), reply: mentorshipBenefits},
			{match: mentions("type", "mentor"), reply: mentorshipTypes},
		},
		fallback: mentorshipGeneral,
	}
}

func NewAddressGenderBias() Action {
	return &adviceAction{
		name: NameAddressGenderBias,
		rules: []adviceRule{
			{match: mentionsAny("technical", "tech"), reply: biasTechnical},
			{match: mentionsAny("leadership", "lead"), reply: biasLeadership},
		},
		fallback: biasGeneral,
	}
}
