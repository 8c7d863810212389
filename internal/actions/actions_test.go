package actions

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/asha-actions/internal/ai"
	"github.com/spigell/asha-actions/internal/faq"
	"github.com/spigell/asha-actions/internal/filtering"
	"github.com/spigell/asha-actions/internal/form"
	"github.com/spigell/asha-actions/internal/jobs"
	"github.com/spigell/asha-actions/internal/session"
	"github.com/spigell/asha-actions/internal/session/memory"
)

const jobTable = `role,title,company,location,experience,job_type,skills
software developer,Backend Engineer,Acme,Bangalore,3-5 years,Full-time,go
software developer,Frontend Developer,Initech,Delhi,2 years,Full-time,react
data science,Data Scientist,Globex,Remote,2 years,Contract,python
`

const entriesFile = `[
  {"type": "event", "title": "Networking Mixer", "date": "May 25, 2025", "time": "5:00 PM", "description": "Meet people."},
  {"type": "event", "title": "Resume Building Workshop", "date": "May 15, 2025", "time": "3:30 PM", "description": "Resumes."},
  {"type": "session", "title": "Career Growth Strategies", "date": "May 12, 2025", "time": "2:00 PM", "description": "Grow."}
]`

type stubJobGenerator struct {
	listings *jobs.Listings
	err      error
	got      ai.Criteria
}

func (s *stubJobGenerator) Generate(_ context.Context, c ai.Criteria) (*jobs.Listings, error) {
	s.got = c
	return s.listings, s.err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testMatcher() *faq.Matcher {
	idx := faq.Build(faq.Corpus{FAQ: []faq.Category{
		{Category: "Technical Support", Questions: []faq.Pair{
			{Question: "How do I reset my password?", Answer: "Use the 'Forgot password' link on the JobsForHer login page."},
		}},
		{Category: "Mentorship", Questions: []faq.Pair{
			{Question: "How do I find a mentor?", Answer: "Join groups and sessions."},
		}},
	}})
	return faq.NewMatcher(idx, faq.DefaultCutoff, zap.NewNop())
}

type fixture struct {
	executor *Executor
	store    *memory.Store
}

func newFixture(t *testing.T, deps Deps) fixture {
	t.Helper()
	if deps.FAQ == nil {
		deps.FAQ = testMatcher()
	}
	if deps.JobsFile == "" {
		deps.JobsFile = writeFile(t, "jobs.csv", jobTable)
	}
	if deps.SessionsFile == "" {
		deps.SessionsFile = writeFile(t, "entries.json", entriesFile)
	}
	registry, err := Default(deps)
	require.NoError(t, err)

	store := memory.New(0)
	return fixture{executor: NewExecutor(registry, store, zap.NewNop()), store: store}
}

func (f fixture) run(t *testing.T, sessionID, action string, turn Turn) *Response {
	t.Helper()
	resp, err := f.executor.Execute(context.Background(), sessionID, action, turn)
	require.NoError(t, err)
	return resp
}

func (f fixture) state(t *testing.T, sessionID string) *session.State {
	t.Helper()
	state, err := f.store.Load(context.Background(), sessionID)
	require.NoError(t, err)
	return state
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	registry, err := Default(Deps{})
	require.NoError(t, err)
	assert.Len(t, registry.Describe(), 9)
	assert.Equal(t, NameValidateJobSearch, registry.Describe()[len(registry.Describe())-1])

	_, err = registry.Get("action_launch_rockets")
	assert.ErrorIs(t, err, ErrUnknownAction)

	_, err = NewRegistry(NewMentorshipInfo(), NewMentorshipInfo())
	assert.Error(t, err)
}

func TestExecuteRejectsBadInput(t *testing.T) {
	t.Parallel()

	f := newFixture(t, Deps{})
	_, err := f.executor.Execute(context.Background(), "", NameHandleFAQ, Turn{})
	assert.ErrorIs(t, err, session.ErrEmptyID)

	_, err = f.executor.Execute(context.Background(), "s1", "nope", Turn{})
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestHandleFAQ(t *testing.T) {
	t.Parallel()

	f := newFixture(t, Deps{})

	resp := f.run(t, "s1", NameHandleFAQ, Turn{Text: "how do i reset my password"})
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "I understand technical issues can be frustrating. Use the 'Forgot password' link on the Herkey login page.", resp.Messages[0])
	assert.Empty(t, resp.Events)

	resp = f.run(t, "s1", NameHandleFAQ, Turn{Text: "asdkjalksdj"})
	assert.Equal(t, []string{faq.FallbackMessage}, resp.Messages)

	state := f.state(t, "s1")
	assert.Equal(t, NameHandleFAQ, state.LatestAction)
	assert.Equal(t, "asdkjalksdj", state.LatestMessage)
}

func TestJobSearchFormFlow(t *testing.T) {
	t.Parallel()

	f := newFixture(t, Deps{})
	const id = "form"

	resp := f.run(t, id, NameValidateJobSearch, Turn{Text: "I'm looking for software engineering roles"})
	assert.Equal(t, []Event{
		ActiveForm(form.JobSearch),
		SlotSet(form.FieldJobRole, "software developer"),
		SlotSet(requestedSlot, form.FieldLocation),
	}, resp.Events)
	assert.Equal(t, []string{form.Question(form.FieldLocation)}, resp.Messages)

	resp = f.run(t, id, NameValidateJobSearch, Turn{Text: "NY", Slots: map[string]any{form.FieldLocation: "NY"}})
	assert.Equal(t, []string{"Please provide a valid location, such as 'Bangalore' or 'Remote'."}, resp.Messages)
	assert.Empty(t, f.state(t, id).SlotString(form.FieldLocation))

	f.run(t, id, NameValidateJobSearch, Turn{Text: "bangalore please"})
	state := f.state(t, id)
	assert.Equal(t, "Bangalore", state.SlotString(form.FieldLocation))
	assert.Equal(t, form.FieldExperience, state.SlotString(requestedSlot))

	resp = f.run(t, id, NameValidateJobSearch, Turn{Text: "I have 5 yrs of experience"})
	assert.Empty(t, resp.Messages)
	assert.Contains(t, resp.Events, SlotSet(form.FieldExperience, "5 years"))

	state = f.state(t, id)
	assert.Empty(t, state.ActiveForm)
	assert.Empty(t, state.SlotString(requestedSlot))
	assert.Equal(t, "software developer", state.SlotString(form.FieldJobRole))

	resp = f.run(t, id, NameSearchJobs, Turn{Text: "show me jobs"})
	assert.Equal(t, []string{"I found 1 jobs matching your criteria:\n- Backend Engineer at Acme (Bangalore)"}, resp.Messages)
}

func TestPauseAndResume(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t, Deps{})
	const id = "pause"

	f.run(t, id, NameValidateJobSearch, Turn{Text: "marketing jobs"})
	resp := f.run(t, id, NamePauseConversation, Turn{Text: "wait"})
	assert.Equal(t, []string{pausedMessage}, resp.Messages)

	snapshot, ok, err := f.state(t, id).Paused()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, form.JobSearch, snapshot.ActiveForm)
	assert.Equal(t, NameValidateJobSearch, snapshot.LatestAction)
	assert.Equal(t, "marketing", snapshot.Slots[form.FieldJobRole])

	state := f.state(t, id)
	state.ActiveForm = ""
	state.SetSlot(form.FieldJobRole, nil)
	state.SetSlot(requestedSlot, nil)
	state.SetSlot(form.FieldLocation, "Delhi")
	require.NoError(t, f.store.Save(ctx, state))

	resp = f.run(t, id, NameResumeConversation, Turn{Text: "let's continue"})
	assert.Equal(t, []string{resumedMessage}, resp.Messages)
	assert.Equal(t, []Event{
		ActiveForm(form.JobSearch),
		SlotSet(form.FieldJobRole, "marketing"),
		SlotSet(requestedSlot, form.FieldLocation),
		SlotSet(session.PausedSlot, nil),
	}, resp.Events)

	state = f.state(t, id)
	assert.Equal(t, form.JobSearch, state.ActiveForm)
	assert.Equal(t, "Delhi", state.SlotString(form.FieldLocation))
	assert.Nil(t, state.Slot(session.PausedSlot))

	resp = f.run(t, id, NameResumeConversation, Turn{Text: "continue"})
	assert.Equal(t, []string{noPausedMessage}, resp.Messages)
	assert.Empty(t, resp.Events)
}

func TestPauseOverwritesEarlierSnapshot(t *testing.T) {
	t.Parallel()

	f := newFixture(t, Deps{})
	const id = "twice"

	f.run(t, id, NamePauseConversation, Turn{Slots: map[string]any{form.FieldJobRole: "designer"}})
	f.run(t, id, NamePauseConversation, Turn{Slots: map[string]any{form.FieldJobRole: "marketing"}})

	snapshot, ok, err := f.state(t, id).Paused()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "marketing", snapshot.Slots[form.FieldJobRole])
	assert.NotContains(t, snapshot.Slots, session.PausedSlot)
}

func TestSearchJobs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		text     string
		slots    map[string]any
		messages []string
		events   []Event
	}{
		{
			name:     "matches",
			slots:    map[string]any{form.FieldJobRole: "Software Developer"},
			messages: []string{"I found 2 jobs matching your criteria:\n- Backend Engineer at Acme (Bangalore)\n- Frontend Developer at Initech (Delhi)"},
		},
		{
			name:     "role elsewhere",
			slots:    map[string]any{form.FieldJobRole: "software developer", form.FieldLocation: "Pune"},
			messages: []string{"I couldn't find exact matches for your criteria. I found 2 software developer positions in other locations. Would you like to search without location restrictions?"},
		},
		{
			name:     "message overrides role",
			text:     "any data scientist openings?",
			slots:    map[string]any{form.FieldJobRole: "marketing", form.FieldLocation: "Delhi"},
			messages: []string{"I couldn't find exact matches for your criteria. I found 1 data science positions in other locations. Would you like to search without location restrictions?"},
			events:   []Event{SlotSet(form.FieldJobRole, "data science")},
		},
		{
			name:     "unknown role with location",
			slots:    map[string]any{form.FieldJobRole: "designer", form.FieldLocation: "Delhi"},
			messages: []string{"I couldn't find exact matches for your criteria. I don't have any current listings for designer roles. Would you like to try a different role or broaden your search criteria?"},
		},
		{
			name:     "unknown role only",
			slots:    map[string]any{form.FieldJobRole: "designer"},
			messages: []string{"I couldn't find exact matches for your criteria. Would you like to broaden your search criteria or try a different role?"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, Deps{})
			resp := f.run(t, tc.name, NameSearchJobs, Turn{Text: tc.text, Slots: tc.slots})
			assert.Equal(t, tc.messages, resp.Messages)
			assert.Equal(t, tc.events, resp.Events)
		})
	}
}

func TestSearchJobsRoleOnlyRetryReportsFilters(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	f := newFixture(t, Deps{Logger: zap.New(core)})
	f.run(t, "retry", NameSearchJobs, Turn{Slots: map[string]any{
		form.FieldJobRole:    "software developer",
		form.FieldLocation:   "Pune",
		form.FieldExperience: "3-5 years",
	}})

	entries := logs.FilterMessage("role-only search").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 2, fields["found"])

	statuses, ok := fields["filters"].([]filtering.Status)
	require.True(t, ok, "filters field has type %T", fields["filters"])
	require.Len(t, statuses, 5)
	assert.Equal(t, "role", statuses[0].Name)
	assert.True(t, statuses[0].Enabled)
	assert.Equal(t, "software developer", statuses[0].Details["term"])
	for _, status := range statuses[1:] {
		assert.False(t, status.Enabled, status.Name)
		assert.NotEmpty(t, status.Reason, status.Name)
	}
}

func TestActionsWithoutLogger(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing")
	registry, err := NewRegistry(
		NewSearchJobs(missing, nil, nil),
		NewEventsInfo(missing, nil),
		NewSessionsInfo(missing, nil),
		NewHandleFAQ(nil, nil),
		NewResumeConversation(nil),
	)
	require.NoError(t, err)

	executor := NewExecutor(registry, memory.New(0), nil)
	ctx := context.Background()
	for _, name := range registry.Describe() {
		turn := Turn{Text: "hello", Slots: map[string]any{session.PausedSlot: "not a snapshot"}}
		resp, err := executor.Execute(ctx, "nil-logger-"+name, name, turn)
		require.NoError(t, err, name)
		assert.NotEmpty(t, resp.Messages, name)
	}
}

func TestSearchJobsWithoutTable(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.csv")
	sample := jobs.ResultsMessage("several", jobs.Sample().Format(jobs.Top))

	generator := &stubJobGenerator{listings: &jobs.Listings{Items: []*jobs.Listing{
		{Title: "Senior Marketing", Company: "TechInnovate", Location: "Delhi"},
	}}}
	f := newFixture(t, Deps{JobsFile: missing, Generator: generator})
	resp := f.run(t, "gen", NameSearchJobs, Turn{Slots: map[string]any{form.FieldJobRole: "marketing", form.FieldLocation: "Delhi", form.FieldExperience: "2 years"}})
	assert.Equal(t, []string{"I found several jobs matching your criteria:\n- Senior Marketing at TechInnovate (Delhi)"}, resp.Messages)
	assert.Equal(t, ai.Criteria{Role: "marketing", Location: "Delhi", Experience: "2 years"}, generator.got)

	failing := newFixture(t, Deps{JobsFile: missing, Generator: &stubJobGenerator{err: errors.New("quota")}})
	resp = failing.run(t, "fail", NameSearchJobs, Turn{})
	assert.Equal(t, []string{sample}, resp.Messages)

	none := newFixture(t, Deps{JobsFile: missing})
	resp = none.run(t, "none", NameSearchJobs, Turn{})
	assert.Equal(t, []string{sample}, resp.Messages)

	mock := newFixture(t, Deps{JobsFile: missing, Generator: ai.Mock{}})
	resp = mock.run(t, "mock", NameSearchJobs, Turn{Slots: map[string]any{form.FieldJobRole: "marketing"}})
	require.Len(t, resp.Messages, 1)
	assert.Contains(t, resp.Messages[0], "- Senior Marketing at TechInnovate (Bangalore)")
}

func TestEventsAndSessions(t *testing.T) {
	t.Parallel()

	f := newFixture(t, Deps{})

	resp := f.run(t, "e", NameEventsInfo, Turn{Text: "any events?"})
	require.Len(t, resp.Messages, 1)
	assert.Contains(t, resp.Messages[0], "Here are some upcoming events:\n\n- Resume Building Workshop on May 15, 2025 at 3:30 PM")
	assert.Contains(t, resp.Messages[0], "- Networking Mixer on May 25, 2025")

	resp = f.run(t, "e", NameEventsInfo, Turn{Entities: map[string][]string{entityEventType: {"mixer"}}})
	assert.NotContains(t, resp.Messages[0], "Resume Building")
	assert.Contains(t, resp.Messages[0], "Networking Mixer")

	resp = f.run(t, "e", NameSessionsInfo, Turn{})
	assert.Contains(t, resp.Messages[0], "Here are some upcoming learning sessions:\n\n- Career Growth Strategies on May 12, 2025 at 2:00 PM")

	missing := newFixture(t, Deps{SessionsFile: filepath.Join(t.TempDir(), "missing.json")})
	resp = missing.run(t, "m", NameSessionsInfo, Turn{})
	assert.Contains(t, resp.Messages[0], "Negotiation Tactics Session on June 5, 2025")
}

func TestAdvice(t *testing.T) {
	t.Parallel()

	cases := []struct {
		action Action
		text   string
		want   string
	}{
		{NewMentorshipInfo(), "How can I find a mentor?", mentorshipFind},
		{NewMentorshipInfo(), "what are the benefits of a mentor", mentorshipBenefits},
		{NewMentorshipInfo(), "Which TYPES of mentoring exist?", mentorshipTypes},
		{NewMentorshipInfo(), "tell me about mentorship", mentorshipGeneral},
		{NewAddressGenderBias(), "women can't do tech jobs", biasTechnical},
		{NewAddressGenderBias(), "women are bad leaders", biasLeadership},
		{NewAddressGenderBias(), "women shouldn't work", biasGeneral},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("%s/%d", tc.action.Name(), i), func(t *testing.T) {
			t.Parallel()

			state := session.New("advice")
			state.LatestMessage = tc.text
			d := &Dispatcher{}
			evs, err := tc.action.Run(context.Background(), d, NewTracker(state, nil))
			require.NoError(t, err)
			assert.Empty(t, evs)
			assert.Equal(t, []string{tc.want}, d.Messages())
		})
	}
}

func TestExecuteConcurrentSessions(t *testing.T) {
	t.Parallel()

	f := newFixture(t, Deps{})
	var wg sync.WaitGroup
	errs := make(chan error, 40)

	for i := range 40 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("s%d", i%4)
			_, err := f.executor.Execute(context.Background(), id, NamePauseConversation, Turn{
				Slots: map[string]any{fmt.Sprintf("n%d", i): i},
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	for i := range 4 {
		state := f.state(t, fmt.Sprintf("s%d", i))
		assert.Len(t, state.Slots, 11, "ten turns of slots plus the snapshot")
	}
}
