package analytics

import "strings"

// Rule maps any raw value containing one of its substrings to a canonical
// label. Rule lists are ordered and first-match-wins; the rules are not
// mutually exclusive by construction, so the order is part of the contract
// and anything replicating a distribution must apply the same order.
type Rule struct {
	AnyOf []string
	Label string
}

// normalize runs a raw free-text value through an ordered rule list.
// Matching is case-insensitive containment; an unmatched value maps to the
// fallback label.
func normalize(raw string, rules []Rule, fallback string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if lowered == "" {
		return fallback
	}
	for _, rule := range rules {
		for _, needle := range rule.AnyOf {
			if strings.Contains(lowered, needle) {
				return rule.Label
			}
		}
	}
	return fallback
}

// educationRules bucket the free-text education level field. "university"
// must precede "primary": values like "primary then university" belong to the
// higher attainment.
var educationRules = []Rule{
	{AnyOf: []string{"university", "bachelor", "degree", "tertiary", "master", "phd"}, Label: "University"},
	{AnyOf: []string{"vocational", "tvet", "technical"}, Label: "Vocational"},
	{AnyOf: []string{"secondary", "high school", "a-level", "o-level"}, Label: "Secondary"},
	{AnyOf: []string{"primary"}, Label: "Primary"},
	{AnyOf: []string{"none", "no formal"}, Label: "None"},
}

const educationFallback = "None"

// sizeRules bucket the free-text business size field into the canonical
// Micro/Small/Medium/Large set.
var sizeRules = []Rule{
	{AnyOf: []string{"micro"}, Label: "Micro"},
	{AnyOf: []string{"small"}, Label: "Small"},
	{AnyOf: []string{"medium"}, Label: "Medium"},
	{AnyOf: []string{"large"}, Label: "Large"},
}

const sizeFallback = "Unknown"

// typeRules collapse the free-text business type into sector labels.
var typeRules = []Rule{
	{AnyOf: []string{"agro", "agri", "farm", "horticult", "crop"}, Label: "Agriculture"},
	{AnyOf: []string{"livestock", "dairy", "poultry", "fish"}, Label: "Livestock & Fisheries"},
	{AnyOf: []string{"manufact", "process", "workshop"}, Label: "Manufacturing"},
	{AnyOf: []string{"retail", "trade", "shop", "commerce"}, Label: "Retail & Trade"},
	{AnyOf: []string{"service", "transport", "consult", "salon"}, Label: "Services"},
}

const typeFallback = "Other"

// revenueRules bucket the free-text revenue bracket field.
var revenueRules = []Rule{
	{AnyOf: []string{"below 500", "under 500", "less than 500"}, Label: "Below 500K"},
	{AnyOf: []string{"500"}, Label: "500K - 1M"},
	{AnyOf: []string{"1m", "1 m", "million"}, Label: "1M - 5M"},
	{AnyOf: []string{"5m", "5 m", "above"}, Label: "Above 5M"},
}

const revenueFallback = "Not specified"

// supportRules normalize each comma-separated token of the support received
// field. Tokens that match no rule keep their trimmed raw text so rare
// support types still chart.
var supportRules = []Rule{
	{AnyOf: []string{"train", "coach", "mentor"}, Label: "Training"},
	{AnyOf: []string{"loan", "credit", "financ", "grant"}, Label: "Financing"},
	{AnyOf: []string{"equip", "input", "seed", "fertil"}, Label: "Inputs & Equipment"},
	{AnyOf: []string{"market"}, Label: "Market Access"},
	{AnyOf: []string{"advis", "extension"}, Label: "Advisory"},
}

// NormalizeEducation maps a raw education level to its canonical label.
// Exported so import previews and the dashboard agree on the same rule order.
func NormalizeEducation(raw string) string {
	return normalize(raw, educationRules, educationFallback)
}

// NormalizeBusinessSize maps a raw business size to Micro/Small/Medium/Large.
func NormalizeBusinessSize(raw string) string {
	return normalize(raw, sizeRules, sizeFallback)
}

// NormalizeBusinessType maps a raw business type to its sector label.
func NormalizeBusinessType(raw string) string {
	return normalize(raw, typeRules, typeFallback)
}

// NormalizeRevenueBracket maps a raw revenue bracket to a canonical bracket.
func NormalizeRevenueBracket(raw string) string {
	return normalize(raw, revenueRules, revenueFallback)
}

// NormalizeSupportType maps one support token to its canonical label, keeping
// the trimmed raw token when no rule matches.
func NormalizeSupportType(token string) string {
	trimmed := strings.TrimSpace(token)
	return normalize(trimmed, supportRules, trimmed)
}
