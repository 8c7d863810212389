package form

import (
	"fmt"
	"strings"
)

// JobSearch is the name of the form that collects job search criteria.
const JobSearch = "job_search_form"

var jobSearchFields = []string{FieldJobRole, FieldLocation, FieldExperience}

// RequiredFields returns the job search fields in the order they are asked.
func RequiredFields() []string {
	fields := make([]string, len(jobSearchFields))
	copy(fields, jobSearchFields)
	return fields
}

// NextMissing returns the first required field without a usable value.
func NextMissing(slots map[string]any) (string, bool) {
	for _, field := range jobSearchFields {
		if !isSet(slots[field]) {
			return field, true
		}
	}
	return "", false
}

// Question returns the prompt used when asking the user for field.
func Question(field string) string {
	switch field {
	case FieldJobRole:
		return "What kind of role are you looking for?"
	case FieldLocation:
		return "Where would you like to work?"
	case FieldExperience:
		return "How much experience do you have?"
	default:
		return fmt.Sprintf("Please provide %s.", strings.ReplaceAll(field, "_", " "))
	}
}

// Validate resolves the requested field against the value already in slots
// and the user's utterance. An empty requested field means the next missing
// one. done is true when every required field is filled.
func Validate(slots map[string]any, requested, utterance string) (result Result, done bool, err error) {
	if requested == "" {
		next, missing := NextMissing(slots)
		if !missing {
			return Result{}, true, nil
		}
		requested = next
	}

	explicit, _ := slots[requested].(string)
	result, err = Resolve(requested, explicit, utterance)
	if err != nil {
		return Result{}, false, err
	}

	filled := make(map[string]any, len(slots)+1)
	for k, v := range slots {
		filled[k] = v
	}
	if result.Accepted {
		filled[requested] = result.Value
	} else {
		delete(filled, requested)
	}
	_, missing := NextMissing(filled)
	return result, !missing, nil
}

func isSet(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	default:
		return true
	}
}
