// Package form validates and extracts the job-search form fields.
package form

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	FieldJobRole    = "job_role"
	FieldLocation   = "location"
	FieldExperience = "experience"
)

var ErrUnknownField = errors.New("unknown form field")

// Result is either an accepted value or a rejection carrying the prompt that
// asks the user to try again. A rejected field must stay unset.
type Result struct {
	Field    string
	Value    string
	Accepted bool
	Prompt   string
}

type fieldRules struct {
	valid     func(value string) bool
	normalize func(value string) string
	extract   func(text string) (string, bool)
	// missing is shown when nothing usable was provided, invalid when an
	// explicit value failed validation and extraction found nothing either.
	missing string
	invalid string
}

var fields = map[string]fieldRules{
	FieldJobRole: {
		valid: longerThan(2),
		normalize: alias(jobRoleAliases),
		extract: func(text string) (string, bool) { return firstMatch(jobRoleRules, text) },
		missing: "Please provide a valid job role, such as 'Software Developer', 'Data Scientist', or 'Marketing Manager'.",
		invalid: "Please provide a more specific job role, such as 'Software Developer' or 'Marketing Manager'.",
	},
	FieldLocation: {
		valid: longerThan(2),
		normalize: alias(locationAliases),
		extract: func(text string) (string, bool) { return firstMatch(locationRules, text) },
		missing: "Please provide a valid location, such as 'Bangalore', 'Mumbai', or 'Remote'.",
		invalid: "Please provide a valid location, such as 'Bangalore' or 'Remote'.",
	},
	FieldExperience: {
		valid: func(value string) bool { return value != "" },
		// a number, a range or a level, kept as given
		normalize: func(value string) string { return value },
		extract: extractExperience,
		missing: "Please provide your years of experience, such as '3 years' or specify if you're at entry, mid, or senior level.",
		invalid: "Please provide your years of experience, such as '3 years' or specify if you're at entry, mid, or senior level.",
	},
}

func longerThan(n int) func(string) bool {
	return func(value string) bool {
		return utf8.RuneCountInString(value) > n
	}
}

// Resolve validates explicit for field, falling back to extracting a value
// from utterance. It has no memory between calls.
func Resolve(field, explicit, utterance string) (Result, error) {
	rules, ok := fields[field]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	explicit = strings.TrimSpace(explicit)
	if explicit != "" && rules.valid(explicit) {
		return Result{Field: field, Value: rules.normalize(explicit), Accepted: true}, nil
	}

	if text := strings.ToLower(strings.TrimSpace(utterance)); text != "" {
		if value, ok := rules.extract(text); ok {
			return Result{Field: field, Value: value, Accepted: true}, nil
		}
	}

	prompt := rules.missing
	if explicit != "" {
		prompt = rules.invalid
	}
	return Result{Field: field, Prompt: prompt}, nil
}

// Known reports whether field has resolution rules.
func Known(field string) bool {
	_, ok := fields[field]
	return ok
}
