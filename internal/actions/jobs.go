package actions

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/asha-actions/internal/ai"
	"github.com/spigell/asha-actions/internal/filtering"
	"github.com/spigell/asha-actions/internal/form"
	"github.com/spigell/asha-actions/internal/jobs"
	"github.com/spigell/asha-actions/internal/utils"
)

const (
	slotJobType = "job_type"
	slotSkill   = "skill"
	countSome   = "several"
)

type searchJobs struct {
	path      string
	generator ai.JobGenerator
	logger    *zap.Logger
}

// NewSearchJobs searches the job table at path. generator is consulted when
// the table cannot be read; a nil generator means the built-in sample.
func NewSearchJobs(path string, generator ai.JobGenerator, logger *zap.Logger) Action {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &searchJobs{path: path, generator: generator, logger: logger}
}

func (a *searchJobs) Name() string { return NameSearchJobs }

func (a *searchJobs) Run(ctx context.Context, d *Dispatcher, t *Tracker) ([]Event, error) {
	criteria := filtering.Criteria{
		Role:       roleFromMessage(t.LatestMessage(), t.SlotString(form.FieldJobRole)),
		Location:   t.SlotString(form.FieldLocation),
		Experience: t.SlotString(form.FieldExperience),
		JobType:    t.SlotString(slotJobType),
		Skill:      t.SlotString(slotSkill),
	}
	a.logger.Debug("searching jobs",
		zap.String("job_role", criteria.Role),
		zap.String("location", criteria.Location),
		zap.String("experience", criteria.Experience),
	)

	table, err := jobs.Load(a.path)
	if err != nil {
		a.logger.Warn("job table unavailable", zap.String("path", a.path), zap.Error(err))
		a.generated(ctx, d, criteria)
		return nil, nil
	}

	deps := filtering.Deps{Logger: a.logger}
	matched, err := filtering.Run(ctx, &criteria, deps, filtering.Default(), table)
	if err != nil {
		return nil, err
	}
	if matched.Len() > 0 {
		d.Utter(jobs.ResultsMessage(strconv.Itoa(matched.Len()), matched.Format(jobs.Top)))
		return nil, nil
	}

	var evs []Event
	role := strings.ToLower(criteria.Role)
	if role != "" && role != t.SlotString(form.FieldJobRole) {
		evs = append(evs, SlotSet(form.FieldJobRole, role))
	}

	message := noMatchesPrefix + broadenSuggestion
	if role != "" && criteria.Location != "" {
		steps := filtering.Default()
		for _, name := range []string{"location", "experience", "job_type", "skill"} {
			filtering.DisableByName(steps, name, "looking for the role in other locations")
		}
		roleOnly, err := filtering.Run(ctx, &filtering.Criteria{Role: role}, deps, steps, table)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("role-only search",
			zap.String("job_role", role),
			zap.Int("found", roleOnly.Len()),
			zap.Any("filters", filtering.Describe(steps)),
		)
		if roleOnly.Len() > 0 {
			message = noMatchesPrefix + fmt.Sprintf("I found %d %s positions in other locations. Would you like to search without location restrictions?", roleOnly.Len(), role)
		} else {
			message = noMatchesPrefix + fmt.Sprintf("I don't have any current listings for %s roles. Would you like to try a different role or broaden your search criteria?", role)
		}
	}
	d.Utter(message)
	return evs, nil
}

// generated answers from the job generator, or from the built-in sample
// when there is none or it fails.
func (a *searchJobs) generated(ctx context.Context, d *Dispatcher, c filtering.Criteria) {
	listings := jobs.Sample()
	if a.generator != nil {
		got, err := a.generator.Generate(ctx, ai.Criteria{Role: c.Role, Location: c.Location, Experience: c.Experience})
		switch {
		case err != nil:
			a.logger.Warn("job generator failed, using sample listings", zap.Error(err))
		case got.Len() > 0:
			listings = got
		}
	}
	d.Utter(jobs.ResultsMessage(countSome, listings.Format(jobs.Top)))
}

// roleFromMessage lets an explicit role mention in the latest message win
// over the stored slot.
func roleFromMessage(message, slot string) string {
	text := strings.ToLower(message)
	switch {
	case utils.ContainsAny(text, "data science", "scientist"):
		return "data science"
	case strings.Contains(text, "software") && utils.ContainsAny(text, "engineer", "developer"):
		return "software developer"
	default:
		return slot
	}
}
