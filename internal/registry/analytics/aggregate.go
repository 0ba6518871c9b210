package analytics

import (
	"strings"
	"time"

	"murima/internal/registry/models"
	pstrings "murima/pkg/platform/strings"
)

// NotSpecified is the placeholder bucket for records missing a categorical
// value.
const NotSpecified = "Not specified"

// topListLimit caps the district and value chain distributions.
const topListLimit = 10

func countBy(records []models.Business, extract func(models.Business) string) *counter {
	c := newCounter()
	for _, b := range records {
		name := extract(b)
		if name == "" {
			name = NotSpecified
		}
		c.add(name, 1)
	}
	return c
}

// ByProvince counts records per province, descending by count.
func ByProvince(records []models.Business) []Bucket {
	return countBy(records, func(b models.Business) string { return b.Province }).byValueDesc()
}

// ByDistrictTop counts records per district, descending, truncated to the top
// ten after full aggregation.
func ByDistrictTop(records []models.Business) []Bucket {
	return TopN(countBy(records, func(b models.Business) string { return b.District }).byValueDesc(), topListLimit)
}

// ByGender counts records per gender in first-seen order.
func ByGender(records []models.Business) []Bucket {
	return countBy(records, func(b models.Business) string { return b.Gender }).insertionOrder()
}

// ByOwnership counts records per ownership category in first-seen order.
func ByOwnership(records []models.Business) []Bucket {
	return countBy(records, func(b models.Business) string { return string(b.Ownership) }).insertionOrder()
}

// ByDisability counts records per disability status in first-seen order.
func ByDisability(records []models.Business) []Bucket {
	return countBy(records, func(b models.Business) string { return b.DisabilityStatus }).insertionOrder()
}

// ByBusinessTypeRaw counts records per distinct raw business type value,
// descending by count.
func ByBusinessTypeRaw(records []models.Business) []Bucket {
	return countBy(records, func(b models.Business) string { return b.BusinessType }).byValueDesc()
}

// ByBusinessType counts records per normalized sector label, descending.
func ByBusinessType(records []models.Business) []Bucket {
	return countBy(records, func(b models.Business) string {
		return NormalizeBusinessType(b.BusinessType)
	}).byValueDesc()
}

// ByBusinessSize counts records per canonical size label, descending.
func ByBusinessSize(records []models.Business) []Bucket {
	return countBy(records, func(b models.Business) string {
		return NormalizeBusinessSize(b.BusinessSize)
	}).byValueDesc()
}

// ByEducation counts records per canonical education label in first-seen
// order.
func ByEducation(records []models.Business) []Bucket {
	return countBy(records, func(b models.Business) string {
		return NormalizeEducation(b.EducationLevel)
	}).insertionOrder()
}

// ByRevenueBracket counts records per canonical revenue bracket, descending.
func ByRevenueBracket(records []models.Business) []Bucket {
	return countBy(records, func(b models.Business) string {
		return NormalizeRevenueBracket(b.RevenueBracket)
	}).byValueDesc()
}

// BySupportType splits the comma-delimited support field, normalizes each
// token independently, and counts per label descending. One record can
// increment several buckets; this is the only multi-valued aggregate, so its
// counts may exceed the record count.
func BySupportType(records []models.Business) []Bucket {
	c := newCounter()
	for _, b := range records {
		tokens := pstrings.DedupeAndTrim(splitComma(b.SupportReceived))
		for _, token := range tokens {
			c.add(NormalizeSupportType(token), 1)
		}
	}
	return c.byValueDesc()
}

// ByValueChainTop counts production item names across all records,
// descending, truncated to the top ten.
func ByValueChainTop(records []models.Business) []Bucket {
	c := newCounter()
	for _, b := range records {
		for _, item := range b.Production {
			if item.Name == "" {
				continue
			}
			c.add(item.Name, 1)
		}
	}
	return TopN(c.byValueDesc(), topListLimit)
}

// ageBrackets are the five fixed, non-overlapping, inclusive owner-age
// groups, emitted in this order regardless of count.
var ageBrackets = []struct {
	name     string
	min, max int
}{
	{"18-25", 18, 25},
	{"26-35", 26, 35},
	{"36-45", 36, 45},
	{"46-55", 46, 55},
	{"55+", 56, 1 << 30},
}

// ByAgeBracket assigns each record's owner age to exactly one bracket. Every
// bracket appears in the output, zero counts included, in fixed bracket
// order. Records with an unset age land in no bracket.
func ByAgeBracket(records []models.Business) []Bucket {
	out := make([]Bucket, len(ageBrackets))
	for i, br := range ageBrackets {
		out[i] = Bucket{Name: br.name}
	}
	for _, b := range records {
		if b.Age == 0 {
			continue
		}
		for i, br := range ageBrackets {
			if b.Age >= br.min && b.Age <= br.max {
				out[i].Value++
				break
			}
		}
	}
	return out
}

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthlyTrend counts registrations per calendar month of the given year,
// keyed on each record's creation timestamp. All twelve buckets are emitted
// in calendar order, zero counts included; records created outside the year
// contribute to none.
func MonthlyTrend(records []models.Business, year int) []Bucket {
	out := make([]Bucket, 12)
	for i, name := range monthNames {
		out[i] = Bucket{Name: name}
	}
	for _, b := range records {
		if b.CreatedAt.IsZero() || b.CreatedAt.Year() != year {
			continue
		}
		out[b.CreatedAt.Month()-time.January].Value++
	}
	return out
}

// EmployeesByProvince sums employee counts per province, descending by the
// summed value. The bucket value is a sum, not a record count.
func EmployeesByProvince(records []models.Business) []Bucket {
	c := newCounter()
	for _, b := range records {
		name := b.Province
		if name == "" {
			name = NotSpecified
		}
		c.add(name, b.EmployeeCount)
	}
	return c.byValueDesc()
}

func splitComma(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
