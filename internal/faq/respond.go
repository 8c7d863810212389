package faq

import "strings"

// FallbackMessage is returned when no question clears the cutoff.
const FallbackMessage = "I don't have specific information on that. Please try rewording your question, or ask about job opportunities, career advice, or Herkey's services."

const neutralLeadIn = "Here's what I found for you: "

type leadInRule struct {
	keyword string
	leadIn  string
}

// Evaluated top to bottom against the lower-cased category label.
var leadInRules = []leadInRule{
	{keyword: "technical", leadIn: "I understand technical issues can be frustrating. "},
	{keyword: "career", leadIn: "Great question about career development! "},
	{keyword: "job search", leadIn: "I'm happy to help with your job search journey. "},
	{keyword: "mentorship", leadIn: "Mentorship is key to career growth. "},
}

// LeadIn picks the empathetic opening for a category.
func LeadIn(category string) string {
	lower := strings.ToLower(category)
	for _, rule := range leadInRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.leadIn
		}
	}
	return neutralLeadIn
}

// Respond prefixes answer with the lead-in selected by category.
func Respond(answer, category string) string {
	return LeadIn(category) + answer
}

// Reply renders a match result as display text.
func Reply(result MatchResult) string {
	if !result.Found {
		return FallbackMessage
	}
	return Respond(result.Answer, result.Category)
}
