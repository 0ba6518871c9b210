package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEducation(t *testing.T) {
	tests := []struct {
		raw, want string
	}{
		{"University of Rwanda, Bachelor", "University"},
		{"completed bachelor's degree", "University"},
		{"Secondary school (A-Level)", "Secondary"},
		{"TVET certificate", "Vocational"},
		{"Primary", "Primary"},
		{"no formal education", "None"},
		{"", "None"},
		{"something else entirely", "None"},
		// First-match-wins: the university rule precedes the primary rule.
		{"primary then university", "University"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEducation(tt.raw))
		})
	}
}

func TestNormalizeBusinessSize(t *testing.T) {
	tests := []struct {
		raw, want string
	}{
		{"Micro enterprise", "Micro"},
		{"small", "Small"},
		{"Medium-sized", "Medium"},
		{"LARGE", "Large"},
		{"family business", "Unknown"},
		{"", "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeBusinessSize(tt.raw), "raw %q", tt.raw)
	}
}

func TestNormalizeBusinessType(t *testing.T) {
	tests := []struct {
		raw, want string
	}{
		{"Agro-processing", "Agriculture"},
		{"maize farming", "Agriculture"},
		{"poultry", "Livestock & Fisheries"},
		{"metal workshop", "Manufacturing"},
		{"retail shop", "Retail & Trade"},
		{"transport services", "Services"},
		{"mining", "Other"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeBusinessType(tt.raw), "raw %q", tt.raw)
	}
}

func TestNormalizeSupportTypeKeepsUnmatchedToken(t *testing.T) {
	assert.Equal(t, "Training", NormalizeSupportType(" business training "))
	assert.Equal(t, "Financing", NormalizeSupportType("access to credit"))
	assert.Equal(t, "land titling", NormalizeSupportType(" land titling "))
}
