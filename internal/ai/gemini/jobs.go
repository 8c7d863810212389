package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/spigell/asha-actions/internal/ai"
	"github.com/spigell/asha-actions/internal/jobs"
	"github.com/spigell/asha-actions/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

var errNoListings = errors.New("gemini response has no job listings")

// JobSource asks the model for listings matching the search criteria.
type JobSource struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

var _ ai.JobGenerator = (*JobSource)(nil)

func NewJobSource(generator contentGenerator, logger *zap.Logger, maxLogLength int) *JobSource {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobSource{generator: generator, logger: logger, maxLogLen: maxLogLength}
}

func (s *JobSource) Generate(ctx context.Context, c ai.Criteria) (*jobs.Listings, error) {
	if strings.TrimSpace(c.Role) == "" {
		return nil, errors.New("job role is required")
	}

	prompt := buildPrompt(c)
	s.logger.Debug("gemini generate content request",
		zap.String("job_role", c.Role),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, s.maxLogLen)),
	)

	raw, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("gemini generate content response",
		zap.String("job_role", c.Role),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, s.maxLogLen)),
	)

	return parseListings(raw)
}

func buildPrompt(c ai.Criteria) string {
	location, experience := "", ""
	if v := strings.TrimSpace(c.Location); v != "" {
		location = " in " + v
	}
	if v := strings.TrimSpace(c.Experience); v != "" {
		experience = " with " + v + " of experience"
	}

	prompt := strings.ReplaceAll(promptTemplate, "{{ROLE}}", strings.TrimSpace(c.Role))
	prompt = strings.ReplaceAll(prompt, "{{LOCATION}}", location)
	prompt = strings.ReplaceAll(prompt, "{{EXPERIENCE}}", experience)
	return strings.TrimSpace(prompt)
}

func parseListings(raw string) (*jobs.Listings, error) {
	payload, ok := extractJSONArray(raw)
	if !ok {
		return nil, errNoListings
	}

	var items []map[string]any
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	var decoded []*jobs.Listing
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &decoded,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(items); err != nil {
		return nil, fmt.Errorf("decode gemini listings: %w", err)
	}

	listings := &jobs.Listings{}
	for _, listing := range decoded {
		if listing == nil || strings.TrimSpace(listing.Title) == "" {
			continue
		}
		listings.Items = append(listings.Items, listing)
	}
	if listings.Len() == 0 {
		return nil, errNoListings
	}
	return listings, nil
}

// extractJSONArray returns the text between the first '[' and the last ']'.
// Surrounding prose and code fences are ignored.
func extractJSONArray(raw string) (string, bool) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}
