package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"murima/internal/registry/models"
	dErrors "murima/pkg/domain-errors"
)

func sampleRecord() models.Business {
	return models.Business{
		ID: 7, Name: "Kaze Agro", TIN: "102345678", Status: models.StatusActive,
		Phone: "+250788100001", OwnerName: "Claudine Uwase",
		NationalID: "1199080012345678", Ownership: models.OwnershipYouth,
		Gender: "Female", Age: 27, Province: "Eastern", District: "Kayonza",
		BusinessType: "Agro-processing", RevenueBracket: "Below 500K",
		EmployeeCount: 3, FemaleEmployees: 2, YouthEmployees: 2,
		Production: []models.ProductionItem{
			{ID: 1, Name: "Maize flour", Quantity: 120, Unit: "kg"},
		},
		Commencement: "2024-03-01",
		CreatedAt:    time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
	}
}

func TestParseColumnSet(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ColumnSet
		wantErr bool
	}{
		{name: "summary", input: "summary", want: ColumnsSummary},
		{name: "detailed", input: "detailed", want: ColumnsDetailed},
		{name: "empty defaults to summary", input: "", want: ColumnsSummary},
		{name: "unknown rejected", input: "everything", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColumnSet(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSummaryRow(t *testing.T) {
	opts := Options{Columns: ColumnsSummary}
	row := Row(sampleRecord(), opts)

	require.Len(t, row, len(Header(opts)))
	assert.Equal(t, "Kaze Agro", row[0])
	assert.Equal(t, "Kayonza", row[4])
	assert.Equal(t, "3", row[7])
	assert.Equal(t, "2024-03-01", row[8])
	assert.NotContains(t, row, "1199080012345678")
}

func TestDetailedRowMasksByDefault(t *testing.T) {
	opts := Options{Columns: ColumnsDetailed}
	header := Header(opts)
	row := Row(sampleRecord(), opts)
	require.Len(t, row, len(header))

	idx := -1
	for i, col := range header {
		if col == "National ID" {
			idx = i
		}
	}
	require.NotEqual(t, -1, idx)
	assert.Equal(t, "*************678", row[idx])

	revealed := Row(sampleRecord(), Options{Columns: ColumnsDetailed, Reveal: true})
	assert.Equal(t, "1199080012345678", revealed[idx])
}

func TestDetailedRowFormatsProduction(t *testing.T) {
	row := Row(sampleRecord(), Options{Columns: ColumnsDetailed})
	assert.Contains(t, row, "Maize flour: 120 kg")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	records := []models.Business{sampleRecord()}
	require.NoError(t, WriteCSV(&buf, records, Options{Columns: ColumnsSummary}))

	parsed, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Equal(t, summaryHeader, parsed[0])
	assert.Equal(t, "Kaze Agro", parsed[1][0])
}
