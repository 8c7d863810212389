package actions

import (
	"context"

	"go.uber.org/zap"

	"github.com/spigell/asha-actions/internal/faq"
)

type handleFAQ struct {
	matcher *faq.Matcher
	logger  *zap.Logger
}

func NewHandleFAQ(matcher *faq.Matcher, logger *zap.Logger) Action {
	if logger == nil {
		logger = zap.NewNop()
	}
	if matcher == nil {
		matcher = faq.NewMatcher(nil, faq.DefaultCutoff, logger)
	}
	return &handleFAQ{matcher: matcher, logger: logger}
}

func (a *handleFAQ) Name() string { return NameHandleFAQ }

func (a *handleFAQ) Run(_ context.Context, d *Dispatcher, t *Tracker) ([]Event, error) {
	result := a.matcher.Match(t.LatestMessage())
	if !result.Found {
		a.logger.Debug("no faq match", zap.String("session_id", t.SessionID()))
	}
	d.Utter(faq.Reply(result))
	return nil, nil
}
