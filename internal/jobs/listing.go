// Package jobs holds job listings and the table they are loaded from.
package jobs

import (
	"fmt"
	"strings"
)

// Top is how many listings a search answer shows.
const Top = 5

type Listing struct {
	Role       string `json:"role,omitempty" mapstructure:"role"`
	Title      string `json:"title" mapstructure:"title"`
	Company    string `json:"company" mapstructure:"company"`
	Location   string `json:"location" mapstructure:"location"`
	Experience string `json:"experience,omitempty" mapstructure:"experience"`
	JobType    string `json:"type,omitempty" mapstructure:"type"`
	Skills     string `json:"skills,omitempty" mapstructure:"skills"`
	PostedDate string `json:"posted_date,omitempty" mapstructure:"posted_date"`
	URL        string `json:"url,omitempty" mapstructure:"url"`
}

// Line renders the listing the way search answers show it.
func (l *Listing) Line() string {
	return fmt.Sprintf("- %s at %s (%s)", l.Title, l.Company, l.Location)
}

type Listings struct {
	Items []*Listing
}

func (v *Listings) Len() int {
	if v == nil {
		return 0
	}
	return len(v.Items)
}

// Clone returns a copy of the list that shares listing pointers.
func (v *Listings) Clone() *Listings {
	if v == nil {
		return &Listings{}
	}
	return &Listings{Items: append([]*Listing(nil), v.Items...)}
}

// Keep drops every listing the predicate rejects, preserving order, and
// returns the titles of the dropped ones.
func (v *Listings) Keep(pred func(*Listing) bool) []string {
	kept := v.Items[:0]
	var dropped []string
	for _, listing := range v.Items {
		if pred(listing) {
			kept = append(kept, listing)
			continue
		}
		dropped = append(dropped, listing.Title)
	}
	clear(v.Items[len(kept):])
	v.Items = kept
	return dropped
}

// Head returns the first n listings.
func (v *Listings) Head(n int) []*Listing {
	if n > v.Len() {
		n = v.Len()
	}
	if n <= 0 {
		return nil
	}
	return v.Items[:n]
}

// Format renders at most n listings, one per line, newline terminated.
func (v *Listings) Format(n int) string {
	var b strings.Builder
	for _, listing := range v.Head(n) {
		b.WriteString(listing.Line())
		b.WriteString("\n")
	}
	return b.String()
}

// ResultsMessage is the answer for a successful search. count is a number
// or a word such as "several".
func ResultsMessage(count string, results string) string {
	return fmt.Sprintf("I found %s jobs matching your criteria:\n%s", count, strings.TrimRight(results, "\n"))
}

// Sample is shown when no job table is available.
func Sample() *Listings {
	return &Listings{Items: []*Listing{
		{Title: "Software Developer", Company: "TechCorp", Location: "Bangalore"},
		{Title: "Marketing Manager", Company: "BrandX", Location: "Delhi"},
		{Title: "Data Analyst", Company: "DataInsights", Location: "Remote"},
		{Title: "Product Manager", Company: "InnovateTech", Location: "Mumbai"},
		{Title: "HR Specialist", Company: "PeopleFirst", Location: "Hyderabad"},
	}}
}
