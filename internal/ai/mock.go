package ai

import (
	"context"
	"strings"

	"github.com/spigell/asha-actions/internal/jobs"
)

const applyURLFmt = "https://herkey.com/jobs/apply/"

// Mock produces deterministic listings shaped after the requested role. A
// requested location replaces every template location.
type Mock struct{}

var _ JobGenerator = Mock{}

type mockTemplate struct {
	prefix, suffix string
	fallbackTitle  string
	company        string
	location       string
	jobType        string
	posted         string
	urlSuffix      string
}

var mockTemplates = []mockTemplate{
	{prefix: "Senior ", fallbackTitle: "Software Developer", company: "TechInnovate", location: "Bangalore", jobType: "Full-time", posted: "3 days ago", urlSuffix: "-senior"},
	{fallbackTitle: "Data Analyst", company: "Analytics Pro", location: "Mumbai", jobType: "Full-time", posted: "1 day ago"},
	{prefix: "Junior ", fallbackTitle: "Web Developer", company: "WebDesign Solutions", location: "Remote", jobType: "Contract", posted: "5 days ago", urlSuffix: "-junior"},
}

func (Mock) Generate(_ context.Context, c Criteria) (*jobs.Listings, error) {
	role := strings.TrimSpace(c.Role)
	location := strings.TrimSpace(c.Location)
	base := "job"
	if role != "" {
		base = slug(role)
	}

	listings := &jobs.Listings{}
	for _, t := range mockTemplates {
		title := t.fallbackTitle
		if role != "" {
			title = titleCase(role)
		}
		loc := t.location
		if location != "" {
			loc = location
		}
		listings.Items = append(listings.Items, &jobs.Listing{
			Title:      t.prefix + title + t.suffix,
			Company:    t.company,
			Location:   loc,
			JobType:    t.jobType,
			PostedDate: t.posted,
			URL:        applyURLFmt + base + t.urlSuffix,
		})
	}
	return listings, nil
}
