// Package ai describes generators that produce job listings when no job
// table is available.
package ai

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spigell/asha-actions/internal/jobs"
)

// Criteria are the search terms a generator tailors its listings to.
type Criteria struct {
	Role       string
	Location   string
	Experience string
}

type JobGenerator interface {
	Generate(ctx context.Context, c Criteria) (*jobs.Listings, error)
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func slug(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
