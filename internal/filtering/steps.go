package filtering

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/asha-actions/internal/jobs"
)

var firstNumber = regexp.MustCompile(`\d+`)

// containsFilter keeps listings where any of the selected columns contains
// the criterion, ignoring case. An empty criterion keeps everything.
type containsFilter struct {
	name     string
	term     func(*Criteria) string
	columns  func(*jobs.Listing) []string
	disabled bool
	reason   string
	value    string
}

func NewRole() Filter {
	return &containsFilter{
		name:    "role",
		term:    func(c *Criteria) string { return c.Role },
		columns: func(l *jobs.Listing) []string { return []string{l.Role, l.Title} },
	}
}

func NewLocation() Filter {
	return &containsFilter{
		name:    "location",
		term:    func(c *Criteria) string { return c.Location },
		columns: func(l *jobs.Listing) []string { return []string{l.Location} },
	}
}

// NewExperience matches the first number of the criterion against the
// experience column, so "5 years" keeps "3-5 years" and "5+" and a range like
// "3-5 years" searches for 3. Criteria without digits keep everything.
func NewExperience() Filter {
	return &containsFilter{
		name:    "experience",
		term:    func(c *Criteria) string { return firstNumber.FindString(c.Experience) },
		columns: func(l *jobs.Listing) []string { return []string{l.Experience} },
	}
}

func NewJobType() Filter {
	return &containsFilter{
		name:    "job_type",
		term:    func(c *Criteria) string { return c.JobType },
		columns: func(l *jobs.Listing) []string { return []string{l.JobType} },
	}
}

func NewSkill() Filter {
	return &containsFilter{
		name:    "skill",
		term:    func(c *Criteria) string { return c.Skill },
		columns: func(l *jobs.Listing) []string { return []string{l.Skills} },
	}
}

func (f *containsFilter) Name() string { return f.name }

func (f *containsFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *containsFilter) IsEnabled() bool { return !f.disabled }

func (f *containsFilter) Validate(c *Criteria) error {
	f.value = ""
	if c != nil {
		f.value = strings.ToLower(strings.TrimSpace(f.term(c)))
	}
	return nil
}

func (f *containsFilter) Apply(_ context.Context, deps Deps, v *jobs.Listings) (*jobs.Listings, Step, error) {
	initial := v.Len()
	if f.value == "" {
		return v, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	dropped := v.Keep(func(l *jobs.Listing) bool {
		for _, column := range f.columns(l) {
			if strings.Contains(strings.ToLower(column), f.value) {
				return true
			}
		}
		return false
	})
	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Debug("excluding listings",
			zap.String("filter", f.name),
			zap.String("term", f.value),
			zap.Int("excluded", len(dropped)),
			zap.Int("listings_left", v.Len()),
		)
	}

	return v, Step{Initial: initial, Dropped: len(dropped), Left: v.Len()}, nil
}

func (f *containsFilter) Status() Status {
	details := map[string]string{}
	if f.value != "" {
		details["term"] = f.value
	}
	return Status{Name: f.name, Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
