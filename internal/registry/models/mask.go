package models

import "strings"

// MaskNationalID hides all but the last three characters of a national id.
// It is a pure presentation transform: exports and list responses apply it at
// the boundary, the stored record is never altered.
func MaskNationalID(nid string) string {
	if nid == "" {
		return ""
	}
	const visible = 3
	if len(nid) <= visible {
		return strings.Repeat("*", len(nid))
	}
	return strings.Repeat("*", len(nid)-visible) + nid[len(nid)-visible:]
}

// Masked returns a copy of the record with the national id masked. The
// receiver is untouched.
func (b Business) Masked() Business {
	out := b.Clone()
	out.NationalID = MaskNationalID(b.NationalID)
	return out
}
