package query

import (
	"murima/internal/registry/models"
	dErrors "murima/pkg/domain-errors"
)

// Request carries every parameter of one pipeline run.
type Request struct {
	Filter   FilterSpec
	Query    string
	Sort     SortSpec
	Page     int
	PageSize int
}

// Result is one computed page plus the totals a pager needs. TotalMatched
// counts records after filter and search, before pagination, so an
// out-of-range page is detectable by the caller.
type Result struct {
	Items        []models.Business
	TotalMatched int
	TotalPages   int
}

// Run executes the fixed stage order filter -> search -> sort -> paginate
// over the supplied snapshot. The input slice is never reordered or mutated;
// the pipeline holds no state between calls, so changing any parameter simply
// recomputes from the snapshot.
func Run(records []models.Business, req Request) (*Result, error) {
	if req.Page < 1 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "page must be 1 or greater")
	}
	if err := req.Sort.Validate(); err != nil {
		return nil, err
	}

	matched := make([]models.Business, 0, len(records))
	for _, b := range records {
		if !req.Filter.Matches(b) {
			continue
		}
		if !MatchesQuery(b, req.Query) {
			continue
		}
		matched = append(matched, b)
	}

	Apply(matched, req.Sort)

	return &Result{
		Items:        Paginate(matched, req.Page, req.PageSize),
		TotalMatched: len(matched),
		TotalPages:   PageCount(len(matched), req.PageSize),
	}, nil
}
