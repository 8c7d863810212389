package form

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spigell/asha-actions/internal/utils"
)

// rule maps a folded utterance to a canonical value. Tables are evaluated top
// to bottom and the first hit wins.
type rule struct {
	match     func(text string) bool
	canonical string
}

func anyOf(substrings ...string) func(string) bool {
	return func(text string) bool {
		return utils.ContainsAny(text, substrings...)
	}
}

func allOf(groups ...[]string) func(string) bool {
	return func(text string) bool {
		for _, group := range groups {
			if !utils.ContainsAny(text, group...) {
				return false
			}
		}
		return true
	}
}

var jobRoleRules = []rule{
	{match: anyOf("data science", "data scientist"), canonical: "data science"},
	{match: allOf([]string{"software"}, []string{"engineer", "developer"}), canonical: "software developer"},
	{match: anyOf("product manager"), canonical: "product manager"},
	{match: anyOf("marketing"), canonical: "marketing"},
	{match: anyOf("designer", "design"), canonical: "designer"},
}

var locationRules = []rule{
	{match: anyOf("bangalore"), canonical: "Bangalore"},
	{match: anyOf("mumbai"), canonical: "Mumbai"},
	{match: anyOf("delhi"), canonical: "Delhi"},
	{match: anyOf("hyderabad"), canonical: "Hyderabad"},
	{match: anyOf("remote", "work from home"), canonical: "Remote"},
}

// Explicit values are canonicalized only when they are exactly one of these
// phrases; anything else is kept as the user gave it.
var jobRoleAliases = map[string]string{
	"data science":       "data science",
	"data scientist":     "data science",
	"software developer": "software developer",
	"software engineer":  "software developer",
	"product manager":    "product manager",
	"marketing":          "marketing",
	"designer":           "designer",
	"design":             "designer",
}

var locationAliases = map[string]string{
	"bangalore":      "Bangalore",
	"mumbai":         "Mumbai",
	"delhi":          "Delhi",
	"hyderabad":      "Hyderabad",
	"remote":         "Remote",
	"work from home": "Remote",
}

var experienceLevelRules = []rule{
	{match: anyOf("entry", "junior", "fresher"), canonical: "entry level"},
	{match: anyOf("mid"), canonical: "mid level"},
	{match: anyOf("senior", "experienced"), canonical: "senior level"},
}

var yearsPattern = regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)`)

func firstMatch(rules []rule, text string) (string, bool) {
	for _, r := range rules {
		if r.match(text) {
			return r.canonical, true
		}
	}
	return "", false
}

func alias(aliases map[string]string) func(string) string {
	return func(value string) string {
		if canonical, ok := aliases[strings.Join(strings.Fields(strings.ToLower(value)), " ")]; ok {
			return canonical
		}
		return value
	}
}

func extractExperience(text string) (string, bool) {
	if m := yearsPattern.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("%s years", m[1]), true
	}
	return firstMatch(experienceLevelRules, text)
}
