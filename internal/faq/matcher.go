package faq

import (
	"github.com/pmezard/go-difflib/difflib"
	"go.uber.org/zap"

	"github.com/spigell/asha-actions/internal/utils"
)

// DefaultCutoff is the minimum similarity a question needs to be considered a match.
const DefaultCutoff = 0.6

const defaultMaxLogLength = 80

// MatchResult is the outcome of a lookup. Found is false when no indexed
// question reached the cutoff.
type MatchResult struct {
	Found    bool
	Question string
	Answer   string
	Category string
	Score    float64
}

type Matcher struct {
	index  *Index
	cutoff float64
	logger *zap.Logger
}

// NewMatcher wraps idx. A cutoff outside (0, 1] falls back to DefaultCutoff.
func NewMatcher(idx *Index, cutoff float64, logger *zap.Logger) *Matcher {
	if cutoff <= 0 || cutoff > 1 {
		cutoff = DefaultCutoff
	}
	if idx == nil {
		idx = Build(Corpus{})
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Matcher{index: idx, cutoff: cutoff, logger: logger}
}

// Match returns the indexed question most similar to query. Ties keep the
// earliest indexed question.
func (m *Matcher) Match(query string) MatchResult {
	normalized := m.index.NormalizeQuery(query)

	seq := difflib.NewMatcher(nil, splitChars(normalized))

	best := -1
	bestScore := 0.0
	for i, candidate := range m.index.chars {
		seq.SetSeq1(candidate)
		if seq.RealQuickRatio() < m.cutoff || seq.QuickRatio() < m.cutoff {
			continue
		}

		score := seq.Ratio()
		if score < m.cutoff || score <= bestScore {
			continue
		}
		best = i
		bestScore = score
	}

	if best < 0 {
		m.logger.Debug("faq lookup found no match",
			zap.String("query", utils.TruncateForLog(normalized, defaultMaxLogLength)),
			zap.Float64("cutoff", m.cutoff),
		)
		return MatchResult{}
	}

	question := m.index.questions[best]
	m.logger.Debug("faq lookup matched",
		zap.String("query", utils.TruncateForLog(normalized, defaultMaxLogLength)),
		zap.String("question", question),
		zap.Float64("score", bestScore),
	)

	return MatchResult{
		Found:    true,
		Question: question,
		Answer:   m.index.answers[question],
		Category: m.index.categories[question],
		Score:    bestScore,
	}
}

// Similarity returns the character-level matching-blocks ratio of a and b.
func Similarity(a, b string) float64 {
	return difflib.NewMatcher(splitChars(a), splitChars(b)).Ratio()
}
