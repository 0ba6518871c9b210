package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"murima/internal/registry/models"
)

func pipelineFixture() []models.Business {
	return []models.Business{
		{
			ID: 1, Name: "Kaze Agro Supplies", OwnerName: "Claudine Uwase",
			Ownership: models.OwnershipYouth, Province: "Eastern",
			Commencement: "2024-03-01", Age: 27,
		},
		{
			ID: 2, Name: "Huye Coffee Works", OwnerName: "Jean Bosco",
			Ownership: models.OwnershipNonYouth, Province: "Southern",
			Commencement: "2023-07-10", Age: 45,
		},
		{
			ID: 3, Name: "Agro Tech Rwanda", OwnerName: "Diane Ingabire",
			Ownership: models.OwnershipYouth, Province: "Kigali City",
			Commencement: "2024-01-01", Age: 22,
		},
		{
			ID: 4, Name: "Rubavu Fisheries", OwnerName: "Eric Habimana",
			Ownership: models.OwnershipNonYouth, Province: "Western",
			Commencement: "2022-11-20", Age: 39,
		},
	}
}

func TestRunStageOrder(t *testing.T) {
	records := pipelineFixture()

	// Youth-owned AND containing "agro": records 1 and 3, sorted by default
	// commencement desc.
	res, err := Run(records, Request{
		Filter:   FilterSpec{Ownership: "Youth-owned"},
		Query:    "agro",
		Sort:     DefaultSort(),
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.TotalMatched)
	assert.Equal(t, 1, res.TotalPages)
	require.Len(t, res.Items, 2)
	assert.Equal(t, int64(1), res.Items[0].ID)
	assert.Equal(t, int64(3), res.Items[1].ID)
}

func TestRunOutputIsSubsetSatisfyingEveryFacet(t *testing.T) {
	records := pipelineFixture()
	spec := FilterSpec{Ownership: "Youth-owned"}

	res, err := Run(records, Request{Filter: spec, Sort: DefaultSort(), Page: 1, PageSize: PageSizeAll})
	require.NoError(t, err)

	assert.Less(t, len(res.Items), len(records)+1)
	for _, b := range res.Items {
		assert.True(t, spec.Matches(b))
	}
}

func TestRunEmptyQueryReturnsAllSubjectToFilters(t *testing.T) {
	records := pipelineFixture()
	res, err := Run(records, Request{Sort: DefaultSort(), Page: 1, PageSize: PageSizeAll})
	require.NoError(t, err)
	assert.Equal(t, len(records), res.TotalMatched)
}

func TestRunRejectsStructurallyInvalidCalls(t *testing.T) {
	records := pipelineFixture()

	_, err := Run(records, Request{Sort: DefaultSort(), Page: 0, PageSize: 10})
	require.Error(t, err, "page 0 must be rejected")

	_, err = Run(records, Request{Sort: DefaultSort(), Page: -2, PageSize: 10})
	require.Error(t, err, "negative page must be rejected")

	_, err = Run(records, Request{Sort: SortSpec{}, Page: 1, PageSize: 10})
	require.Error(t, err, "empty sort spec must be rejected")
}

func TestRunPageBeyondLastIsEmptyNotError(t *testing.T) {
	records := pipelineFixture()
	res, err := Run(records, Request{Sort: DefaultSort(), Page: 99, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, len(records), res.TotalMatched)
	assert.Equal(t, 2, res.TotalPages)
}

func TestRunDoesNotMutateSnapshot(t *testing.T) {
	records := pipelineFixture()
	originalOrder := make([]int64, len(records))
	for i, b := range records {
		originalOrder[i] = b.ID
	}

	_, err := Run(records, Request{Sort: SortSpec{{Key: KeyName}}, Page: 1, PageSize: 2})
	require.NoError(t, err)

	for i, b := range records {
		assert.Equal(t, originalOrder[i], b.ID, "input snapshot must keep its order")
	}
}
