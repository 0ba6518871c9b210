package models

// districtsByProvince is the administrative hierarchy the district facet is
// validated against. Province names are the facet values the UI sends.
var districtsByProvince = map[string][]string{
	"Kigali City": {"Gasabo", "Kicukiro", "Nyarugenge"},
	"Northern":    {"Burera", "Gakenke", "Gicumbi", "Musanze", "Rulindo"},
	"Southern":    {"Gisagara", "Huye", "Kamonyi", "Muhanga", "Nyamagabe", "Nyanza", "Nyaruguru", "Ruhango"},
	"Eastern":     {"Bugesera", "Gatsibo", "Kayonza", "Kirehe", "Ngoma", "Nyagatare", "Rwamagana"},
	"Western":     {"Karongi", "Ngororero", "Nyabihu", "Nyamasheke", "Rubavu", "Rusizi", "Rutsiro"},
}

// DistrictsOf returns the districts of a province, nil for an unknown one.
func DistrictsOf(province string) []string {
	return districtsByProvince[province]
}

// DistrictInProvince reports whether the district belongs to the province.
// Filter composition uses this: a district facet inconsistent with the
// province facet matches nothing rather than erroring.
func DistrictInProvince(province, district string) bool {
	for _, d := range districtsByProvince[province] {
		if d == district {
			return true
		}
	}
	return false
}
