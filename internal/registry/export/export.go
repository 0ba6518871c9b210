package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"murima/internal/registry/models"
	dErrors "murima/pkg/domain-errors"
)

// ColumnSet selects which columns an export carries.
type ColumnSet string

const (
	// ColumnsSummary is the short directory view: name, tax id, type,
	// ownership, district, province, revenue, employees, start date.
	ColumnsSummary ColumnSet = "summary"
	// ColumnsDetailed carries every record attribute.
	ColumnsDetailed ColumnSet = "detailed"
)

// ParseColumnSet validates a column set name from the request boundary.
// An empty value defaults to the summary set.
func ParseColumnSet(s string) (ColumnSet, error) {
	switch ColumnSet(s) {
	case ColumnsSummary, ColumnsDetailed:
		return ColumnSet(s), nil
	case "":
		return ColumnsSummary, nil
	}
	return "", dErrors.Newf(dErrors.CodeBadRequest, "unknown column set %q", s)
}

// Options control one export pass.
type Options struct {
	Columns ColumnSet
	// Reveal leaves the national id unmasked. Masking is a presentation
	// transform; the stored record is never altered.
	Reveal bool
}

var summaryHeader = []string{
	"Business Name", "TIN", "Business Type", "Ownership",
	"District", "Province", "Revenue Bracket", "Employees", "Start Date",
}

var detailedHeader = []string{
	"ID", "Business Name", "TIN", "Status", "Phone",
	"Owner Name", "National ID", "Ownership", "Gender", "Age",
	"Education Level", "Disability Status", "Nationality",
	"Province", "District", "Sector", "Cell", "Village",
	"Business Type", "Business Size", "Revenue Bracket", "Annual Income",
	"Employees", "Female Employees", "Youth Employees", "Permanent Employment",
	"Support Received", "Production", "Start Date", "Registered At",
}

// Header returns the column names for the chosen set.
func Header(opts Options) []string {
	if opts.Columns == ColumnsDetailed {
		return detailedHeader
	}
	return summaryHeader
}

// Row flattens one record into the chosen column set.
func Row(b models.Business, opts Options) []string {
	if opts.Columns == ColumnsDetailed {
		return detailedRow(b, opts.Reveal)
	}
	return summaryRow(b)
}

func summaryRow(b models.Business) []string {
	return []string{
		b.Name, b.TIN, b.BusinessType, string(b.Ownership),
		b.District, b.Province, b.RevenueBracket,
		strconv.Itoa(b.EmployeeCount), b.Commencement,
	}
}

func detailedRow(b models.Business, reveal bool) []string {
	nationalID := b.NationalID
	if !reveal {
		nationalID = models.MaskNationalID(nationalID)
	}
	return []string{
		strconv.FormatInt(b.ID, 10), b.Name, b.TIN, string(b.Status), b.Phone,
		b.OwnerName, nationalID, string(b.Ownership), b.Gender, strconv.Itoa(b.Age),
		b.EducationLevel, b.DisabilityStatus, b.Nationality,
		b.Province, b.District, b.Sector, b.Cell, b.Village,
		b.BusinessType, b.BusinessSize, b.RevenueBracket, b.AnnualIncome,
		strconv.Itoa(b.EmployeeCount), strconv.Itoa(b.FemaleEmployees),
		strconv.Itoa(b.YouthEmployees), strconv.FormatBool(b.PermanentEmployment),
		b.SupportReceived, formatProduction(b.Production),
		b.Commencement, b.CreatedAt.Format("2006-01-02"),
	}
}

func formatProduction(items []models.ProductionItem) string {
	if len(items) == 0 {
		return ""
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s: %g %s", item.Name, item.Quantity, item.Unit))
	}
	return strings.Join(parts, "; ")
}

// WriteCSV streams header plus one row per record to w.
func WriteCSV(w io.Writer, records []models.Business, opts Options) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header(opts)); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}
	for _, b := range records {
		if err := cw.Write(Row(b, opts)); err != nil {
			return fmt.Errorf("write export row %d: %w", b.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}
	return nil
}
