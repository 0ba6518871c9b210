package models

import (
	"strings"
	"time"

	dErrors "murima/pkg/domain-errors"
)

// Status is the lifecycle state of a registered business.
type Status string

const (
	StatusActive   Status = "Active"
	StatusPending  Status = "Pending"
	StatusInactive Status = "Inactive"
)

// ParseStatus validates a status string at a trust boundary.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusPending, StatusInactive:
		return Status(s), nil
	}
	return "", dErrors.Newf(dErrors.CodeValidation, "unknown status %q", s)
}

// Ownership classifies a business by its owner's age group.
type Ownership string

const (
	OwnershipYouth    Ownership = "Youth-owned"
	OwnershipNonYouth Ownership = "Non youth-owned"
)

// ParseOwnership validates an ownership string at a trust boundary.
func ParseOwnership(s string) (Ownership, error) {
	switch Ownership(s) {
	case OwnershipYouth, OwnershipNonYouth:
		return Ownership(s), nil
	}
	return "", dErrors.Newf(dErrors.CodeValidation, "unknown ownership %q", s)
}

// ProductionItem is one production line of a business (crop, product).
// IDs are unique within their record only, not globally.
type ProductionItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Business is the unit of data in the registry.
//
// Invariants:
//   - ID is unique, stable, assigned monotonically by the store, never reused
//   - Age, when set, is >= 18
//   - CreatedAt is assigned by the store on insert and is immutable
//   - UpdatedAt is reassigned by the store on every mutation
//   - Production item quantities are non-negative
//
// Employee sub-counts (female, youth) are NOT validated against the total;
// the source system records them independently.
//
// The query and analytics engines treat a Business as a read-only value
// snapshot for the duration of one pass and never mutate it.
type Business struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	TIN    string `json:"tin"`
	Status Status `json:"status"`
	Phone  string `json:"phone"`

	OwnerName        string    `json:"owner_name"`
	NationalID       string    `json:"national_id"` // sensitive, masked by default at the boundary
	Ownership        Ownership `json:"ownership"`
	Gender           string    `json:"gender"`
	Age              int       `json:"age"`
	EducationLevel   string    `json:"education_level"` // free text, normalized for analytics
	DisabilityStatus string    `json:"disability_status"`
	Nationality      string    `json:"nationality"`

	Province string `json:"province"`
	District string `json:"district"`
	Sector   string `json:"sector"`
	Cell     string `json:"cell"`
	Village  string `json:"village"`

	BusinessType        string `json:"business_type"`   // free text
	BusinessSize        string `json:"business_size"`   // free text, bucketed Micro/Small/Medium/Large
	RevenueBracket      string `json:"revenue_bracket"` // free text
	AnnualIncome        string `json:"annual_income"`   // free text or numeric-like ("1,200,000 RWF")
	EmployeeCount       int    `json:"employee_count"`
	FemaleEmployees     int    `json:"female_employees"`
	YouthEmployees      int    `json:"youth_employees"`
	PermanentEmployment bool   `json:"permanent_employment"`

	SupportReceived string `json:"support_received"` // comma-delimited free text

	Production []ProductionItem `json:"production"`

	Commencement string    `json:"commencement"` // calendar date, YYYY-MM-DD
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validate checks the record-level invariants. Stores call it on writes and
// the importer calls it per row.
func (b *Business) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return dErrors.New(dErrors.CodeValidation, "business name is required")
	}
	if strings.TrimSpace(b.OwnerName) == "" {
		return dErrors.New(dErrors.CodeValidation, "owner name is required")
	}
	if _, err := ParseStatus(string(b.Status)); err != nil {
		return err
	}
	if _, err := ParseOwnership(string(b.Ownership)); err != nil {
		return err
	}
	if b.Age != 0 && b.Age < 18 {
		return dErrors.New(dErrors.CodeInvariantViolation, "owner age must be at least 18")
	}
	for _, item := range b.Production {
		if item.Quantity < 0 {
			return dErrors.Newf(dErrors.CodeInvariantViolation, "production item %q has negative quantity", item.Name)
		}
	}
	return nil
}

// Clone returns a deep copy so snapshots handed to the engine share nothing
// mutable with the store.
func (b Business) Clone() Business {
	out := b
	if b.Production != nil {
		out.Production = make([]ProductionItem, len(b.Production))
		copy(out.Production, b.Production)
	}
	return out
}
