package query

import (
	"sort"
	"strings"
	"time"

	"murima/internal/registry/models"
	dErrors "murima/pkg/domain-errors"
)

// Key is a closed enumeration of supported sort fields. Keeping this a tagged
// variant with one extractor per case gives compile-time exhaustiveness
// instead of runtime string-keyed dispatch.
type Key int

const (
	KeyName Key = iota
	KeyOwnerName
	KeyAge
	KeyCommencement
	KeyEmployees
	KeyFemaleEmployees
	KeyYouthEmployees
	KeyPermanentEmployment
)

var keyNames = map[string]Key{
	"name":                 KeyName,
	"owner_name":           KeyOwnerName,
	"age":                  KeyAge,
	"commencement":         KeyCommencement,
	"employee_count":       KeyEmployees,
	"female_employees":     KeyFemaleEmployees,
	"youth_employees":      KeyYouthEmployees,
	"permanent_employment": KeyPermanentEmployment,
}

// ParseKey resolves a sort field name. Unknown fields are a structural error,
// not a soft miss: callers must not silently sort by something else.
func ParseKey(s string) (Key, error) {
	if k, ok := keyNames[strings.TrimSpace(s)]; ok {
		return k, nil
	}
	return 0, dErrors.Newf(dErrors.CodeBadRequest, "unknown sort field %q", s)
}

// Entry pairs a sort key with a direction.
type Entry struct {
	Key  Key
	Desc bool
}

// SortSpec is an ordered list of sort entries. It is built per request and
// never persisted.
type SortSpec []Entry

// MaxSortKeys bounds a sort spec; the UI never offers more than eight keys.
const MaxSortKeys = 8

// DefaultSort is applied when a request carries no sort parameter:
// most recently commenced businesses first.
func DefaultSort() SortSpec {
	return SortSpec{{Key: KeyCommencement, Desc: true}}
}

// Validate rejects structurally invalid specs: empty, too long, or with a
// repeated key.
func (s SortSpec) Validate() error {
	if len(s) == 0 {
		return dErrors.New(dErrors.CodeBadRequest, "sort spec must have at least one entry")
	}
	if len(s) > MaxSortKeys {
		return dErrors.Newf(dErrors.CodeBadRequest, "sort spec must have at most %d entries", MaxSortKeys)
	}
	seen := make(map[Key]struct{}, len(s))
	for _, e := range s {
		if _, dup := seen[e.Key]; dup {
			return dErrors.New(dErrors.CodeBadRequest, "sort spec must not repeat a field")
		}
		seen[e.Key] = struct{}{}
	}
	return nil
}

// Compare orders two records under the spec: the first entry whose keys
// differ decides, adjusted for that entry's direction. 0 means the records
// tie on every entry; the caller's stable sort then preserves input order.
func Compare(a, b models.Business, spec SortSpec) int {
	for _, e := range spec {
		c := compareKey(a, b, e.Key)
		if c == 0 {
			continue
		}
		if e.Desc {
			return -c
		}
		return c
	}
	return 0
}

// Apply sorts a copy-free slice in place, stably, under the spec.
func Apply(records []models.Business, spec SortSpec) {
	sort.SliceStable(records, func(i, j int) bool {
		return Compare(records[i], records[j], spec) < 0
	})
}

func compareKey(a, b models.Business, k Key) int {
	switch k {
	case KeyName:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	case KeyOwnerName:
		return strings.Compare(strings.ToLower(a.OwnerName), strings.ToLower(b.OwnerName))
	case KeyAge:
		return compareInt(a.Age, b.Age)
	case KeyCommencement:
		return commencementTime(a).Compare(commencementTime(b))
	case KeyEmployees:
		return compareInt(a.EmployeeCount, b.EmployeeCount)
	case KeyFemaleEmployees:
		return compareInt(a.FemaleEmployees, b.FemaleEmployees)
	case KeyYouthEmployees:
		return compareInt(a.YouthEmployees, b.YouthEmployees)
	case KeyPermanentEmployment:
		return compareInt(boolKey(a.PermanentEmployment), boolKey(b.PermanentEmployment))
	}
	return 0
}

// commencementTime parses the record's commencement date; a missing or
// malformed date sorts as the earliest representable instant.
func commencementTime(b models.Business) time.Time {
	t, err := time.Parse("2006-01-02", b.Commencement)
	if err != nil {
		return time.Time{}
	}
	return t
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func boolKey(v bool) int {
	if v {
		return 1
	}
	return 0
}
