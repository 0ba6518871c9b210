package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"murima/internal/registry/models"
)

func TestMatchesQuery(t *testing.T) {
	b := models.Business{
		Name:      "Kaze Agro Supplies",
		OwnerName: "Claudine Uwase",
		TIN:       "102345678",
		Phone:     "+250788123456",
		Production: []models.ProductionItem{
			{Name: "Maize flour"},
			{Name: "Cassava"},
		},
	}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty query matches", "", true},
		{"whitespace query matches", "   ", true},
		{"case-insensitive name match", "AGRO", true},
		{"owner name match", "uwase", true},
		{"tax id match", "10234", true},
		{"phone match", "788123", true},
		{"production item match", "cassava", true},
		{"substring across no field", "banana", false},
		{"query longer than any field", strings.Repeat("x", 80), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesQuery(b, tt.query))
		})
	}
}

func TestHighlight(t *testing.T) {
	t.Run("single occurrence yields three spans", func(t *testing.T) {
		spans := Highlight("Kaze Agro Supplies", "agro")
		assert.Equal(t, []Span{
			{Text: "Kaze "},
			{Text: "Agro", Match: true},
			{Text: " Supplies"},
		}, spans)
	})

	t.Run("multiple occurrences alternate", func(t *testing.T) {
		spans := Highlight("abab", "a")
		assert.Equal(t, []Span{
			{Text: "a", Match: true},
			{Text: "b"},
			{Text: "a", Match: true},
			{Text: "b"},
		}, spans)
	})

	t.Run("no occurrence yields one unmatched span", func(t *testing.T) {
		spans := Highlight("Kaze", "zebra")
		assert.Equal(t, []Span{{Text: "Kaze"}}, spans)
	})

	t.Run("empty query yields one unmatched span", func(t *testing.T) {
		spans := Highlight("Kaze", "  ")
		assert.Equal(t, []Span{{Text: "Kaze"}}, spans)
	})

	t.Run("regex metacharacters are literal", func(t *testing.T) {
		spans := Highlight("a+b", "a+b")
		assert.Equal(t, []Span{{Text: "a+b", Match: true}}, spans)
	})

	t.Run("agrees with the match predicate", func(t *testing.T) {
		b := models.Business{Name: "Kaze Agro Supplies"}
		for _, q := range []string{"agro", "AGRO", "zebra", "kaze a"} {
			matched := MatchesQuery(b, q)
			var highlighted bool
			for _, s := range Highlight(b.Name, q) {
				if s.Match {
					highlighted = true
				}
			}
			assert.Equal(t, matched, highlighted, "query %q", q)
		}
	})
}

func TestHighlightReassemblesText(t *testing.T) {
	text := "Maize flour and maize seed"
	var sb strings.Builder
	for _, s := range Highlight(text, "maize") {
		sb.WriteString(s.Text)
	}
	assert.Equal(t, text, sb.String())
}
