package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"murima/internal/registry/models"
)

func TestByAgeBracket(t *testing.T) {
	records := []models.Business{
		{Age: 20}, {Age: 40}, {Age: 60},
	}
	got := ByAgeBracket(records)
	assert.Equal(t, []Bucket{
		{Name: "18-25", Value: 1},
		{Name: "26-35", Value: 0},
		{Name: "36-45", Value: 1},
		{Name: "46-55", Value: 0},
		{Name: "55+", Value: 1},
	}, got)
}

func TestByAgeBracketPartitions(t *testing.T) {
	records := []models.Business{
		{Age: 18}, {Age: 25}, {Age: 26}, {Age: 35}, {Age: 36},
		{Age: 45}, {Age: 46}, {Age: 55}, {Age: 56}, {Age: 90},
	}
	got := ByAgeBracket(records)
	total := 0
	for _, b := range got {
		total += b.Value
	}
	assert.Equal(t, len(records), total, "each record lands in exactly one bracket")
	assert.Equal(t, 2, got[0].Value) // 18 and 25
	assert.Equal(t, 2, got[4].Value) // 56 and 90
}

func TestOwnershipCountsSumToRecordCount(t *testing.T) {
	records := []models.Business{
		{Ownership: models.OwnershipYouth},
		{Ownership: models.OwnershipNonYouth},
		{Ownership: models.OwnershipYouth},
		{}, // missing ownership falls into the placeholder bucket
	}
	got := ByOwnership(records)
	total := 0
	for _, b := range got {
		total += b.Value
	}
	assert.Equal(t, len(records), total)
}

func TestByProvinceOrdersDescending(t *testing.T) {
	records := []models.Business{
		{Province: "Eastern"}, {Province: "Western"},
		{Province: "Eastern"}, {Province: "Eastern"},
		{Province: "Western"}, {Province: "Northern"},
	}
	got := ByProvince(records)
	require.Len(t, got, 3)
	assert.Equal(t, Bucket{Name: "Eastern", Value: 3}, got[0])
	assert.Equal(t, Bucket{Name: "Western", Value: 2}, got[1])
	assert.Equal(t, Bucket{Name: "Northern", Value: 1}, got[2])
}

func TestByGenderPreservesInsertionOrder(t *testing.T) {
	records := []models.Business{
		{Gender: "Female"}, {Gender: "Male"}, {Gender: "Female"},
	}
	got := ByGender(records)
	require.Len(t, got, 2)
	// Female seen first, so it stays first even though counts differ.
	assert.Equal(t, "Female", got[0].Name)
	assert.Equal(t, 2, got[0].Value)
}

func TestBySupportTypeCountsMultiValuedTokens(t *testing.T) {
	records := []models.Business{
		{SupportReceived: "business training, access to credit"},
		{SupportReceived: "training"},
		{SupportReceived: " , "},
		{SupportReceived: ""},
	}
	got := BySupportType(records)
	values := map[string]int{}
	for _, b := range got {
		values[b.Name] = b.Value
	}
	assert.Equal(t, 2, values["Training"])
	assert.Equal(t, 1, values["Financing"])
	// One record incremented two buckets; totals exceed the record count by design.
}

func TestByDistrictTopTruncatesAfterAggregation(t *testing.T) {
	var records []models.Business
	districts := []string{"Gasabo", "Kicukiro", "Nyarugenge", "Musanze", "Huye",
		"Kayonza", "Rubavu", "Rusizi", "Ngoma", "Burera", "Nyanza", "Karongi"}
	for i, d := range districts {
		for j := 0; j <= i; j++ {
			records = append(records, models.Business{District: d})
		}
	}
	got := ByDistrictTop(records)
	require.Len(t, got, 10)
	// Most frequent district first; the two least frequent fell off.
	assert.Equal(t, "Karongi", got[0].Name)
	assert.Equal(t, 12, got[0].Value)
	for _, b := range got {
		assert.NotEqual(t, "Gasabo", b.Name)
		assert.NotEqual(t, "Kicukiro", b.Name)
	}
}

func TestMonthlyTrend(t *testing.T) {
	mk := func(y int, m time.Month) models.Business {
		return models.Business{CreatedAt: time.Date(y, m, 10, 12, 0, 0, 0, time.UTC)}
	}
	records := []models.Business{
		mk(2026, time.January),
		mk(2026, time.January),
		mk(2026, time.November),
		mk(2025, time.March), // outside the year, contributes to no bucket
		{},                   // zero timestamp, contributes to no bucket
	}
	got := MonthlyTrend(records, 2026)
	require.Len(t, got, 12)
	assert.Equal(t, Bucket{Name: "Jan", Value: 2}, got[0])
	assert.Equal(t, Bucket{Name: "Mar", Value: 0}, got[2])
	assert.Equal(t, Bucket{Name: "Nov", Value: 1}, got[10])
}

func TestEmployeesByProvinceSumsNotCounts(t *testing.T) {
	records := []models.Business{
		{Province: "Eastern", EmployeeCount: 5},
		{Province: "Eastern", EmployeeCount: 7},
		{Province: "Western", EmployeeCount: 20},
	}
	got := EmployeesByProvince(records)
	require.Len(t, got, 2)
	assert.Equal(t, Bucket{Name: "Western", Value: 20}, got[0])
	assert.Equal(t, Bucket{Name: "Eastern", Value: 12}, got[1])
}

func TestByValueChainTop(t *testing.T) {
	records := []models.Business{
		{Production: []models.ProductionItem{{Name: "Maize"}, {Name: "Beans"}}},
		{Production: []models.ProductionItem{{Name: "Maize"}}},
		{Production: []models.ProductionItem{{Name: ""}}},
	}
	got := ByValueChainTop(records)
	require.Len(t, got, 2)
	assert.Equal(t, Bucket{Name: "Maize", Value: 2}, got[0])
}

func TestAggregatesAreSubsetSafe(t *testing.T) {
	records := []models.Business{
		{Province: "Eastern", Age: 20},
		{Province: "Western", Age: 40},
	}
	// Re-running on a filtered subset keeps the same bucket semantics.
	subset := records[:1]
	got := ByAgeBracket(subset)
	assert.Equal(t, 1, got[0].Value)
	assert.Equal(t, 0, got[2].Value)
}
