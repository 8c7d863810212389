// Package events lists upcoming community events and learning sessions.
package events

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mitchellh/mapstructure"
)

type Kind string

const (
	KindEvent   Kind = "event"
	KindSession Kind = "session"
)

// Top is how many entries an answer lists.
const Top = 5

const dateLayout = "January 2, 2006"

type Entry struct {
	Type        Kind   `mapstructure:"type"`
	Title       string `mapstructure:"title"`
	Date        string `mapstructure:"date"`
	Time        string `mapstructure:"time"`
	Description string `mapstructure:"description"`
}

// Catalog is the parsed entries file, in file order.
type Catalog struct {
	Entries []Entry
}

// Load reads a JSON array of entries. Fields with unexpected scalar types
// are coerced to text.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var entries []Entry
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &entries,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &Catalog{Entries: entries}, nil
}

// Of returns the entries of the given kind.
func (c *Catalog) Of(kind Kind) []Entry {
	if c == nil {
		return nil
	}
	var out []Entry
	for _, e := range c.Entries {
		if e.Type == kind {
			out = append(out, e)
		}
	}
	return out
}

// Narrow keeps entries whose title contains any of the terms. When no entry
// matches, or no terms are given, entries are returned unchanged.
func Narrow(entries []Entry, terms []string) []Entry {
	var out []Entry
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		for _, e := range entries {
			if strings.Contains(strings.ToLower(e.Title), term) {
				out = append(out, e)
			}
		}
	}
	if len(out) == 0 {
		return entries
	}
	return out
}

// Upcoming sorts a copy of entries by date. Entries with unreadable dates
// keep their relative order after the dated ones.
func Upcoming(entries []Entry) []Entry {
	type keyed struct {
		entry Entry
		at    time.Time
		ok    bool
	}

	items := make([]keyed, len(entries))
	for i, e := range entries {
		at, ok := parseDate(e.Date)
		items[i] = keyed{entry: e, at: at, ok: ok}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.ok != b.ok {
			return a.ok
		}
		return a.ok && a.at.Before(b.at)
	})

	out := make([]Entry, len(items))
	for i, item := range items {
		out[i] = item.entry
	}
	return out
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, true
	}
	if t, err := dateparse.ParseAny(s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
