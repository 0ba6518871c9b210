package handler

import (
	"net/url"
	"strconv"
	"strings"

	"murima/internal/registry/export"
	"murima/internal/registry/models"
	"murima/internal/registry/query"
	dErrors "murima/pkg/domain-errors"
)

// parseListRequest assembles a pipeline request from URL query parameters.
//
// Facet and range parameters are lenient: an unparseable bound is treated as
// absent rather than failing the call. Sort and pagination parameters are
// structural, so a bad sort field or page is an error.
func parseListRequest(params url.Values) (query.Request, error) {
	req := query.Request{
		Filter: query.FilterSpec{
			Ownership:        params.Get("ownership"),
			Gender:           params.Get("gender"),
			Province:         params.Get("province"),
			District:         params.Get("district"),
			BusinessType:     params.Get("business_type"),
			BusinessSize:     params.Get("business_size"),
			EducationLevel:   params.Get("education_level"),
			DisabilityStatus: params.Get("disability_status"),
			AnnualIncome: query.Range{
				Min: parseBound(params.Get("income_min")),
				Max: parseBound(params.Get("income_max")),
			},
			Age: query.Range{
				Min: parseBound(params.Get("age_min")),
				Max: parseBound(params.Get("age_max")),
			},
		},
		Query: params.Get("q"),
	}

	sortSpec, err := parseSort(params.Get("sort"))
	if err != nil {
		return query.Request{}, err
	}
	req.Sort = sortSpec

	req.Page, err = parsePage(params.Get("page"))
	if err != nil {
		return query.Request{}, err
	}
	req.PageSize, err = parsePageSize(params.Get("page_size"))
	if err != nil {
		return query.Request{}, err
	}
	return req, nil
}

// parseBound reads a numeric range bound leniently: empty or non-numeric
// values mean "no bound".
func parseBound(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseSort reads "field:dir,field:dir" pairs. An empty parameter falls back
// to the default ordering; an unknown field or direction is an error.
func parseSort(s string) (query.SortSpec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return query.DefaultSort(), nil
	}

	var spec query.SortSpec
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		field, dir, _ := strings.Cut(part, ":")
		key, err := query.ParseKey(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		desc := false
		switch strings.TrimSpace(dir) {
		case "", "asc":
		case "desc":
			desc = true
		default:
			return nil, dErrors.Newf(dErrors.CodeBadRequest, "unknown sort direction %q", dir)
		}
		spec = append(spec, query.Entry{Key: key, Desc: desc})
	}
	if len(spec) == 0 {
		return query.DefaultSort(), nil
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

func parsePage(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(s)
	if err != nil || page < 1 {
		return 0, dErrors.Newf(dErrors.CodeBadRequest, "invalid page %q", s)
	}
	return page, nil
}

func parsePageSize(s string) (int, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "all":
		return query.PageSizeAll, nil
	}
	size, err := strconv.Atoi(s)
	if err != nil {
		return 0, dErrors.Newf(dErrors.CodeBadRequest, "invalid page size %q", s)
	}
	return size, nil
}

// parseExportOptions reads the export column set and reveal flag.
func parseExportOptions(params url.Values) (export.Options, error) {
	columns, err := export.ParseColumnSet(params.Get("columns"))
	if err != nil {
		return export.Options{}, err
	}
	return export.Options{
		Columns: columns,
		Reveal:  params.Get("reveal") == "true",
	}, nil
}

// ImportRequest is the HTTP request body for POST /records/import.
type ImportRequest struct {
	Rows []ImportRow `json:"rows"`
}

// ImportRow mirrors the record shape for bulk upload. Field-level rules are
// the importer's job; only the envelope is validated here.
type ImportRow struct {
	Name                string                  `json:"name"`
	TIN                 string                  `json:"tin"`
	Status              string                  `json:"status"`
	Phone               string                  `json:"phone"`
	OwnerName           string                  `json:"owner_name"`
	NationalID          string                  `json:"national_id"`
	Ownership           string                  `json:"ownership"`
	Gender              string                  `json:"gender"`
	Age                 int                     `json:"age"`
	EducationLevel      string                  `json:"education_level"`
	DisabilityStatus    string                  `json:"disability_status"`
	Nationality         string                  `json:"nationality"`
	Province            string                  `json:"province"`
	District            string                  `json:"district"`
	Sector              string                  `json:"sector"`
	Cell                string                  `json:"cell"`
	Village             string                  `json:"village"`
	BusinessType        string                  `json:"business_type"`
	BusinessSize        string                  `json:"business_size"`
	RevenueBracket      string                  `json:"revenue_bracket"`
	AnnualIncome        string                  `json:"annual_income"`
	EmployeeCount       int                     `json:"employee_count"`
	FemaleEmployees     int                     `json:"female_employees"`
	YouthEmployees      int                     `json:"youth_employees"`
	PermanentEmployment bool                    `json:"permanent_employment"`
	SupportReceived     string                  `json:"support_received"`
	Production          []models.ProductionItem `json:"production"`
	Commencement        string                  `json:"commencement"`
}

// Validate implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *ImportRequest) Validate() error {
	if r == nil || len(r.Rows) == 0 {
		return dErrors.New(dErrors.CodeValidation, "at least one row is required")
	}
	return nil
}

// Records converts the upload envelope to domain records. Per-row validation
// happens in the importer so violations are reported with row numbers.
func (r *ImportRequest) Records() []models.Business {
	out := make([]models.Business, 0, len(r.Rows))
	for _, row := range r.Rows {
		out = append(out, models.Business{
			Name:                row.Name,
			TIN:                 row.TIN,
			Status:              models.Status(row.Status),
			Phone:               row.Phone,
			OwnerName:           row.OwnerName,
			NationalID:          row.NationalID,
			Ownership:           models.Ownership(row.Ownership),
			Gender:              row.Gender,
			Age:                 row.Age,
			EducationLevel:      row.EducationLevel,
			DisabilityStatus:    row.DisabilityStatus,
			Nationality:         row.Nationality,
			Province:            row.Province,
			District:            row.District,
			Sector:              row.Sector,
			Cell:                row.Cell,
			Village:             row.Village,
			BusinessType:        row.BusinessType,
			BusinessSize:        row.BusinessSize,
			RevenueBracket:      row.RevenueBracket,
			AnnualIncome:        row.AnnualIncome,
			EmployeeCount:       row.EmployeeCount,
			FemaleEmployees:     row.FemaleEmployees,
			YouthEmployees:      row.YouthEmployees,
			PermanentEmployment: row.PermanentEmployment,
			SupportReceived:     row.SupportReceived,
			Production:          row.Production,
			Commencement:        row.Commencement,
		})
	}
	return out
}
