package query

import (
	"regexp"
	"strings"

	"murima/internal/registry/models"
)

// searchFields returns the values the free-text search runs over: business
// name, owner name, tax id, phone, and each production item name.
func searchFields(b models.Business) []string {
	fields := []string{b.Name, b.OwnerName, b.TIN, b.Phone}
	for _, item := range b.Production {
		fields = append(fields, item.Name)
	}
	return fields
}

// MatchesQuery reports whether the record contains the query as a
// case-insensitive substring in at least one searchable field (logical OR).
// An empty or whitespace-only query matches every record.
func MatchesQuery(b models.Business, q string) bool {
	q = strings.TrimSpace(q)
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	for _, field := range searchFields(b) {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// Span is one run of a field value, marked matched or not. A renderer
// emphasizes the matched runs.
type Span struct {
	Text  string `json:"text"`
	Match bool   `json:"match"`
}

// Highlight splits text into alternating unmatched/matched spans around every
// case-insensitive occurrence of the query. The span computation must agree
// exactly with MatchesQuery: a value that produces a matched span is one that
// caused inclusion, and vice versa, for any given field.
func Highlight(text, q string) []Span {
	q = strings.TrimSpace(q)
	if q == "" || text == "" {
		if text == "" {
			return nil
		}
		return []Span{{Text: text}}
	}

	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(q))
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []Span{{Text: text}}
	}

	spans := make([]Span, 0, 2*len(locs)+1)
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			spans = append(spans, Span{Text: text[prev:loc[0]]})
		}
		spans = append(spans, Span{Text: text[loc[0]:loc[1]], Match: true})
		prev = loc[1]
	}
	if prev < len(text) {
		spans = append(spans, Span{Text: text[prev:]})
	}
	return spans
}
