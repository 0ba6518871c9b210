// Package query implements the faceted query pipeline: filter, free-text
// search, multi-key sort, and pagination over an immutable record snapshot.
// Every run is a pure computation; the engine holds no cross-call state.
package query

import (
	"strconv"
	"strings"

	"murima/internal/registry/models"
)

// Range constrains a numeric facet. A nil bound means unconstrained, so the
// zero Range matches everything. Unparsable bounds in a request are dropped
// at parse time rather than rejected (the facet just loses that constraint).
type Range struct {
	Min *float64
	Max *float64
}

func (r Range) active() bool {
	return r.Min != nil || r.Max != nil
}

func (r Range) contains(v float64) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// FilterSpec holds one value per supported facet. Empty string or zero Range
// means "no constraint". A record matches iff it matches every facet present
// (logical AND); there is no OR composition across facets.
type FilterSpec struct {
	Ownership        string
	Gender           string
	Province         string
	District         string
	BusinessType     string
	BusinessSize     string
	EducationLevel   string
	DisabilityStatus string

	AnnualIncome Range
	Age          Range
}

// Matches decides inclusion of one record. Categorical facets use
// case-sensitive exact equality; an empty record field never matches a
// non-empty facet value. Range facets extract a number from the record field
// and exclude records whose field cannot be parsed.
func (s FilterSpec) Matches(b models.Business) bool {
	if s.Province != "" && s.District != "" && !models.DistrictInProvince(s.Province, s.District) {
		// Inconsistent province/district combination matches nothing.
		return false
	}

	categorical := []struct{ want, got string }{
		{s.Ownership, string(b.Ownership)},
		{s.Gender, b.Gender},
		{s.Province, b.Province},
		{s.District, b.District},
		{s.BusinessType, b.BusinessType},
		{s.BusinessSize, b.BusinessSize},
		{s.EducationLevel, b.EducationLevel},
		{s.DisabilityStatus, b.DisabilityStatus},
	}
	for _, f := range categorical {
		if f.want != "" && f.got != f.want {
			return false
		}
	}

	if s.AnnualIncome.active() {
		income, ok := ExtractNumber(b.AnnualIncome)
		if !ok || !s.AnnualIncome.contains(income) {
			return false
		}
	}
	if s.Age.active() && !s.Age.contains(float64(b.Age)) {
		return false
	}
	return true
}

// ExtractNumber pulls a numeric value out of a free-text field such as
// "1,200,000 RWF". All characters except digits and the decimal point are
// stripped before parsing. Returns false when nothing parsable remains.
func ExtractNumber(s string) (float64, bool) {
	var sb strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
