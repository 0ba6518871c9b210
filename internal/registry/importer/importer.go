// Package importer implements bulk record upload: per-row validation,
// duplicate detection against the store and within the batch, and structured
// row-level reporting. A bad row never aborts the rest of the batch.
package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"murima/internal/registry/models"
)

// Store is the slice of the record store the importer needs.
type Store interface {
	Create(ctx context.Context, b *models.Business) error
	All(ctx context.Context) ([]models.Business, error)
}

// RowError reports one rejected row with every rule it violated.
type RowError struct {
	Row        int      `json:"row"`
	Violations []string `json:"violations"`
}

// RowDuplicate reports one skipped row and which dedup key matched.
type RowDuplicate struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// Result summarizes one batch. Duplicates are reported separately from hard
// errors; both leave the rest of the batch untouched.
type Result struct {
	BatchID    string         `json:"batch_id"`
	Imported   int            `json:"imported"`
	Duplicates int            `json:"duplicates"`
	Errors     int            `json:"errors"`
	RowErrors  []RowError     `json:"row_errors,omitempty"`
	RowDupes   []RowDuplicate `json:"row_duplicates,omitempty"`
}

// Importer validates and inserts uploaded rows.
type Importer struct {
	store Store
}

func New(store Store) *Importer {
	return &Importer{store: store}
}

// dedupKeys tracks the two duplicate-detection keys: exact phone, and the
// case-insensitive (business name, owner name) pair.
type dedupKeys struct {
	phones map[string]struct{}
	pairs  map[string]struct{}
}

func newDedupKeys(existing []models.Business) *dedupKeys {
	k := &dedupKeys{
		phones: make(map[string]struct{}, len(existing)),
		pairs:  make(map[string]struct{}, len(existing)),
	}
	for _, b := range existing {
		k.observe(b)
	}
	return k
}

func (k *dedupKeys) observe(b models.Business) {
	if p := strings.TrimSpace(b.Phone); p != "" {
		k.phones[p] = struct{}{}
	}
	k.pairs[pairKey(b.Name, b.OwnerName)] = struct{}{}
}

// match returns the reason a row duplicates an observed record, or "".
func (k *dedupKeys) match(b models.Business) string {
	if p := strings.TrimSpace(b.Phone); p != "" {
		if _, ok := k.phones[p]; ok {
			return fmt.Sprintf("phone %s already registered", p)
		}
	}
	if _, ok := k.pairs[pairKey(b.Name, b.OwnerName)]; ok {
		return fmt.Sprintf("business %q with owner %q already registered", b.Name, b.OwnerName)
	}
	return ""
}

func pairKey(name, owner string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "\x00" + strings.ToLower(strings.TrimSpace(owner))
}

// ImportBatch processes rows in order. Row numbers in the report are 1-based.
// Earlier accepted rows count as existing records for later dedup checks, so
// a batch duplicating itself is caught without touching the store twice.
func (imp *Importer) ImportBatch(ctx context.Context, rows []models.Business) (*Result, error) {
	existing, err := imp.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load existing records: %w", err)
	}
	keys := newDedupKeys(existing)

	res := &Result{BatchID: uuid.New().String()}
	for i := range rows {
		row := rows[i]
		rowNum := i + 1

		if violations := validateRow(row); len(violations) > 0 {
			res.Errors++
			res.RowErrors = append(res.RowErrors, RowError{Row: rowNum, Violations: violations})
			continue
		}
		if reason := keys.match(row); reason != "" {
			res.Duplicates++
			res.RowDupes = append(res.RowDupes, RowDuplicate{Row: rowNum, Reason: reason})
			continue
		}

		if err := imp.store.Create(ctx, &row); err != nil {
			res.Errors++
			res.RowErrors = append(res.RowErrors, RowError{Row: rowNum, Violations: []string{err.Error()}})
			continue
		}
		keys.observe(row)
		res.Imported++
	}
	return res, nil
}

// validateRow collects every violated rule so the uploader can fix a row in
// one round trip instead of resubmitting per violation.
func validateRow(b models.Business) []string {
	var violations []string
	if strings.TrimSpace(b.Name) == "" {
		violations = append(violations, "business name is required")
	}
	if strings.TrimSpace(b.OwnerName) == "" {
		violations = append(violations, "owner name is required")
	}
	if strings.TrimSpace(b.Phone) == "" {
		violations = append(violations, "phone is required")
	}
	if strings.TrimSpace(b.Province) == "" {
		violations = append(violations, "province is required")
	}
	if strings.TrimSpace(b.District) == "" {
		violations = append(violations, "district is required")
	} else if b.Province != "" && !models.DistrictInProvince(b.Province, b.District) {
		violations = append(violations, fmt.Sprintf("district %q is not in province %q", b.District, b.Province))
	}
	if _, err := models.ParseStatus(string(b.Status)); err != nil {
		violations = append(violations, fmt.Sprintf("status must be one of %s, %s, %s",
			models.StatusActive, models.StatusPending, models.StatusInactive))
	}
	if _, err := models.ParseOwnership(string(b.Ownership)); err != nil {
		violations = append(violations, fmt.Sprintf("ownership must be %q or %q",
			models.OwnershipYouth, models.OwnershipNonYouth))
	}
	if b.Age != 0 && b.Age < 18 {
		violations = append(violations, "owner age must be at least 18")
	}
	for _, item := range b.Production {
		if item.Quantity < 0 {
			violations = append(violations, fmt.Sprintf("production item %q has negative quantity", item.Name))
		}
	}
	return violations
}
