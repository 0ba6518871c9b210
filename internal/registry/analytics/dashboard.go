package analytics

import (
	"context"

	"golang.org/x/sync/errgroup"

	"murima/internal/registry/models"
	"murima/pkg/requestcontext"
)

// Summary carries the headline numbers shown above the charts.
type Summary struct {
	TotalRecords      int     `json:"total_records"`
	YouthOwnedPercent float64 `json:"youth_owned_percent"`
	TotalEmployees    int     `json:"total_employees"`
	FemaleEmployees   int     `json:"female_employees"`
	YouthEmployees    int     `json:"youth_employees"`
	DistinctDistricts int     `json:"distinct_districts"`
}

// Dashboard is the full analytics payload for the dashboard and report views.
// Running it twice on an unchanged snapshot yields identical buckets.
type Dashboard struct {
	Summary Summary `json:"summary"`

	Ownership       []Bucket `json:"ownership"`
	Gender          []Bucket `json:"gender"`
	Disability      []Bucket `json:"disability"`
	Province        []Bucket `json:"province"`
	DistrictTop     []Bucket `json:"district_top"`
	BusinessType    []Bucket `json:"business_type"`
	BusinessTypeRaw []Bucket `json:"business_type_raw"`
	BusinessSize    []Bucket `json:"business_size"`
	Education       []Bucket `json:"education"`
	RevenueBracket  []Bucket `json:"revenue_bracket"`
	SupportType     []Bucket `json:"support_type"`
	ValueChainTop   []Bucket `json:"value_chain_top"`
	AgeBracket      []Bucket `json:"age_bracket"`
	MonthlyTrend    []Bucket `json:"monthly_trend"`

	EmployeesByProvince []Bucket `json:"employees_by_province"`
}

// ComputeDashboard runs every aggregate over the snapshot. The passes are
// independent and each writes a disjoint field, so they run in parallel under
// one errgroup. The trend year comes from the request-scoped clock.
func ComputeDashboard(ctx context.Context, records []models.Business) (*Dashboard, error) {
	year := requestcontext.Now(ctx).Year()

	d := &Dashboard{}
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		d.Summary = computeSummary(records)
		return nil
	})
	g.Go(func() error {
		d.Ownership = ByOwnership(records)
		d.Gender = ByGender(records)
		d.Disability = ByDisability(records)
		return nil
	})
	g.Go(func() error {
		d.Province = ByProvince(records)
		d.DistrictTop = ByDistrictTop(records)
		d.EmployeesByProvince = EmployeesByProvince(records)
		return nil
	})
	g.Go(func() error {
		d.BusinessType = ByBusinessType(records)
		d.BusinessTypeRaw = ByBusinessTypeRaw(records)
		d.BusinessSize = ByBusinessSize(records)
		d.RevenueBracket = ByRevenueBracket(records)
		return nil
	})
	g.Go(func() error {
		d.Education = ByEducation(records)
		d.SupportType = BySupportType(records)
		d.ValueChainTop = ByValueChainTop(records)
		return nil
	})
	g.Go(func() error {
		d.AgeBracket = ByAgeBracket(records)
		d.MonthlyTrend = MonthlyTrend(records, year)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return d, nil
}

func computeSummary(records []models.Business) Summary {
	s := Summary{TotalRecords: len(records)}
	districts := make(map[string]struct{})
	youth := 0
	for _, b := range records {
		if b.Ownership == models.OwnershipYouth {
			youth++
		}
		s.TotalEmployees += b.EmployeeCount
		s.FemaleEmployees += b.FemaleEmployees
		s.YouthEmployees += b.YouthEmployees
		if b.District != "" {
			districts[b.District] = struct{}{}
		}
	}
	s.DistinctDistricts = len(districts)
	if len(records) > 0 {
		s.YouthOwnedPercent = float64(youth) * 100 / float64(len(records))
	}
	return s
}
