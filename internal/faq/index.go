// Package faq builds a searchable index over question/answer pairs and
// resolves free-text user questions to the closest known answer.
package faq

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

const (
	DefaultBrandAlias = "jobsforher"
	DefaultBrandName  = "Herkey"

	defaultCategory = "General"
)

// Corpus mirrors the on-disk FAQ document.
type Corpus struct {
	FAQ []Category `json:"faq"`
}

type Category struct {
	Category  string `json:"category"`
	Questions []Pair `json:"questions"`
}

type Pair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Entry is one normalized question/answer pair as stored in the index.
type Entry struct {
	Category string
	Question string
	Answer   string
}

// Index is immutable once Build returns and safe for concurrent readers.
type Index struct {
	brand *brand

	questions  []string
	chars      [][]string
	answers    map[string]string
	categories map[string]string
}

type Option func(*Index)

// WithBrand replaces every case-insensitive occurrence of alias with name in
// questions, answers and queries. An empty alias disables the replacement.
func WithBrand(alias, name string) Option {
	return func(idx *Index) {
		idx.brand = newBrand(alias, name)
	}
}

// Build creates an index from the corpus. Pairs with an empty question or
// answer are dropped; a later duplicate question overwrites the earlier answer
// and category but keeps the original position.
func Build(corpus Corpus, opts ...Option) *Index {
	idx := &Index{
		brand:      newBrand(DefaultBrandAlias, DefaultBrandName),
		answers:    make(map[string]string),
		categories: make(map[string]string),
	}
	for _, opt := range opts {
		opt(idx)
	}

	for _, category := range corpus.FAQ {
		name := strings.TrimSpace(category.Category)
		if name == "" {
			name = defaultCategory
		}

		for _, pair := range category.Questions {
			question := idx.NormalizeQuery(pair.Question)
			answer := strings.TrimSpace(idx.brand.replace(pair.Answer))
			if question == "" || answer == "" {
				continue
			}

			if _, exists := idx.answers[question]; !exists {
				idx.questions = append(idx.questions, question)
				idx.chars = append(idx.chars, splitChars(question))
			}
			idx.answers[question] = answer
			idx.categories[question] = name
		}
	}

	return idx
}

// Load reads the FAQ document at path. A missing or unparsable document
// yields an empty index and a warning; other read failures are returned.
func Load(path string, logger *zap.Logger, opts ...Option) (*Index, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("faq file not found, continuing with an empty index", zap.String("path", path))
			return Build(Corpus{}, opts...), nil
		}
		return nil, fmt.Errorf("reading faq file %q: %w", path, err)
	}

	var corpus Corpus
	if err := json.Unmarshal(data, &corpus); err != nil {
		logger.Warn("faq file is malformed, continuing with an empty index",
			zap.String("path", path),
			zap.Error(err),
		)
		return Build(Corpus{}, opts...), nil
	}

	idx := Build(corpus, opts...)
	logger.Info("faq index built",
		zap.String("path", path),
		zap.Int("questions", idx.Len()),
		zap.Strings("categories", idx.Categories()),
	)

	return idx, nil
}

// NormalizeQuery applies the same folding used for indexed questions.
func (idx *Index) NormalizeQuery(text string) string {
	return strings.ToLower(strings.TrimSpace(idx.brand.replace(text)))
}

func (idx *Index) Len() int {
	return len(idx.questions)
}

// Categories returns the distinct category labels in first-seen order.
func (idx *Index) Categories() []string {
	seen := make(map[string]struct{})
	result := make([]string, 0)
	for _, q := range idx.questions {
		name := idx.categories[q]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}
	return result
}

// Entries returns the indexed pairs in index order.
func (idx *Index) Entries() []Entry {
	entries := make([]Entry, 0, len(idx.questions))
	for _, q := range idx.questions {
		entries = append(entries, Entry{
			Category: idx.categories[q],
			Question: q,
			Answer:   idx.answers[q],
		})
	}
	return entries
}

type brand struct {
	pattern *regexp.Regexp
	name    string
}

func newBrand(alias, name string) *brand {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return &brand{}
	}
	return &brand{
		pattern: regexp.MustCompile(`(?i)` + regexp.QuoteMeta(alias)),
		name:    strings.TrimSpace(name),
	}
}

func (b *brand) replace(text string) string {
	if b == nil || b.pattern == nil {
		return text
	}
	return b.pattern.ReplaceAllLiteralString(text, b.name)
}

// splitChars turns text into the per-character sequence compared by the matcher.
func splitChars(text string) []string {
	return strings.Split(text, "")
}
