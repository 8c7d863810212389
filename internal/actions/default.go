package actions

import (
	"go.uber.org/zap"

	"github.com/spigell/asha-actions/internal/ai"
	"github.com/spigell/asha-actions/internal/faq"
)

// Deps are the data sources the built-in actions read.
type Deps struct {
	Logger       *zap.Logger
	FAQ          *faq.Matcher
	JobsFile     string
	Generator    ai.JobGenerator
	SessionsFile string
}

// Default registers every built-in action.
func Default(deps Deps) (*Registry, error) {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return NewRegistry(
		NewSearchJobs(deps.JobsFile, deps.Generator, log),
		NewEventsInfo(deps.SessionsFile, log),
		NewSessionsInfo(deps.SessionsFile, log),
		NewMentorshipInfo(),
		NewHandleFAQ(deps.FAQ, log),
		NewAddressGenderBias(),
		NewValidateJobSearch(),
		NewPauseConversation(),
		NewResumeConversation(log),
	)
}
