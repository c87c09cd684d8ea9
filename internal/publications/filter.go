// Package publications holds the publication list shown on the profile page
// and the search used to narrow it.
package publications

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Record is one published paper.
type Record struct {
	Year     int      `json:"year"`
	Venue    string   `json:"venue"`
	Title    string   `json:"title"`
	Authors  string   `json:"authors"`
	Keywords []string `json:"keywords,omitempty"`
	Summary  string   `json:"summary,omitempty"`
	Link     string   `json:"link,omitempty"`
}

func lower(s string) string {
	// cases.Caser is stateful, so each call gets its own.
	return cases.Lower(language.Und).String(s)
}

func (r Record) matches(q string) bool {
	if strings.Contains(lower(r.Title), q) ||
		strings.Contains(lower(r.Authors), q) ||
		strings.Contains(lower(r.Venue), q) ||
		strings.Contains(lower(r.Summary), q) {
		return true
	}
	for _, k := range r.Keywords {
		if strings.Contains(lower(k), q) {
			return true
		}
	}
	return false
}

// Filter returns the records matching query, case-insensitively, across
// title, authors, venue, keywords and summary. A blank query returns records
// as given. Order is preserved. No match yields an empty, non-nil slice.
func Filter(query string, records []Record) []Record {
	q := strings.TrimSpace(query)
	if q == "" {
		return records
	}
	q = lower(q)

	out := []Record{}
	for _, r := range records {
		if r.matches(q) {
			out = append(out, r)
		}
	}
	return out
}

// Search keeps a query and the records it selects. Results are recomputed
// only when the query changes.
type Search struct {
	records []Record
	query   string
	results []Record
}

// NewSearch starts with an empty query, so Results is the full list.
func NewSearch(records []Record) *Search {
	return &Search{records: records, results: records}
}

// SetQuery updates the query.
func (s *Search) SetQuery(q string) {
	if q == s.query {
		return
	}
	s.query = q
	s.results = Filter(q, s.records)
}

func (s *Search) Query() string     { return s.query }
func (s *Search) Results() []Record { return s.results }
