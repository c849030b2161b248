package dorm

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BuildingName is the enum-style building token used on the wire, e.g. GRAD_CENTER_D.
type BuildingName string

const (
	BuxtonHouse   BuildingName = "BUXTON_HOUSE"
	ChapinHouse   BuildingName = "CHAPIN_HOUSE"
	DimanHouse    BuildingName = "DIMAN_HOUSE"
	GoddardHouse  BuildingName = "GODDARD_HOUSE"
	HarknessHouse BuildingName = "HARKNESS_HOUSE"
	MarcyHouse    BuildingName = "MARCY_HOUSE"
	OlneyHouse    BuildingName = "OLNEY_HOUSE"
	SearsHouse    BuildingName = "SEARS_HOUSE"

	HopeCollege BuildingName = "HOPE_COLLEGE"
	SlaterHall  BuildingName = "SLATER_HALL"

	GradCenterA BuildingName = "GRAD_CENTER_A"
	GradCenterB BuildingName = "GRAD_CENTER_B"
	GradCenterC BuildingName = "GRAD_CENTER_C"
	GradCenterD BuildingName = "GRAD_CENTER_D"

	VartanGregorianQuadA BuildingName = "VARTAN_GREGORIAN_QUAD_A"
	VartanGregorianQuadB BuildingName = "VARTAN_GREGORIAN_QUAD_B"

	NewPembroke1 BuildingName = "NEW_PEMBROKE_1"
	NewPembroke2 BuildingName = "NEW_PEMBROKE_2"
	NewPembroke3 BuildingName = "NEW_PEMBROKE_3"
	WestHouse    BuildingName = "WEST_HOUSE"

	HegemanHall     BuildingName = "HEGEMAN_HALL"
	LittlefieldHall BuildingName = "LITTLEFIELD_HALL"

	CaswellHall BuildingName = "CASWELL_HALL"

	BarbourHall    BuildingName = "BARBOUR_HALL"
	KingHouse      BuildingName = "KING_HOUSE"
	MindenHall     BuildingName = "MINDEN_HALL"
	PerkinsHall    BuildingName = "PERKINS_HALL"
	YoungOrchard2  BuildingName = "YOUNG_ORCHARD_2"
	YoungOrchard4  BuildingName = "YOUNG_ORCHARD_4"
	YoungOrchard10 BuildingName = "YOUNG_ORCHARD_10"

	MachadoHouse BuildingName = "MACHADO_HOUSE"
)

// displayNames maps wire tokens to the names used by the campus map dataset.
// Older exports spell some tokens differently, so those spellings are kept here too.
var displayNames = map[string]string{
	"GRAD_CENTER_A":           "Graduate Center A",
	"GRAD_CENTER_B":           "Graduate Center B",
	"GRAD_CENTER_C":           "Graduate Center C",
	"GRAD_CENTER_D":           "Graduate Center D",
	"BUXTON_HOUSE":            "Buxton House",
	"CHAPIN_HOUSE":            "Chapin House",
	"NORTH_HOUSE":             "North House",
	"PERKINS_HALL":            "Perkins Hall",
	"MORRISS_HALL":            "Morriss Hall",
	"YOUNG_ORCHARD_2":         "Young Orchard 2",
	"YOUNG_ORCHARD_#2":        "Young Orchard 2",
	"YOUNG_ORCHARD_4":         "Young Orchard 4",
	"YOUNG_ORCHARD_#4":        "Young Orchard 4",
	"YOUNG_ORCHARD_10":        "Young Orchard 10",
	"YOUNG_ORCHARD_#10":       "Young Orchard 10",
	"GODDARD_HOUSE":           "Goddard House",
	"MARCY_HOUSE":             "Marcy House",
	"WAYLAND_HOUSE":           "Wayland House",
	"SEARS_HOUSE":             "Sears House",
	"EVERETT_POLAND":          "Everett-Poland",
	"JAMESON-MEAD":            "Jameson-Mead",
	"ARCHIBALD-BRONSON":       "Archibald-Bronson",
	"OLNEY_HOUSE":             "Olney House",
	"DIMAN_HOUSE":             "Diman House",
	"HARKNESS_HOUSE":          "Harkness House",
	"VARTAN_GREGORIAN_QUAD_A": "Vartan Gregorian Quad A",
	"VARTAN_GREGORIAN_QUAD_B": "Vartan Gregorian Quad B",
	"DANOFF_HALL":             "Danoff Hall",
	"BARBOUR_HALL":            "Barbour Hall",
	"KING_HOUSE":              "King House",
	"SLATER_HALL":             "Slater Hall",
	"HOPE_COLLEGE":            "Hope College",
	"CASWELL_HALL":            "Caswell Hall",
	"HEGEMAN_HALL":            "Hegeman Hall",
	"HEGEMEN_HALL":            "Hegeman Hall",
	"LITTLEFIELD_HALL":        "Littlefield Hall",
	"MINDEN_HALL":             "Minden Hall",
	"METCALF_HALL":            "Metcalf Hall",
	"MILLER_HALL":             "Miller Hall",
	"ANDREWS_HALL":            "Andrews Hall",
	"DONOVAN_HOUSE":           "Donovan House",
	"CHAMPLIN_HALL":           "Champlin Hall",
	"NEW_PEMBROKE_1":          "New Pembroke 1",
	"NEW_PEMBROKE_#1":         "New Pembroke 1",
	"NEW_PEMBROKE_2":          "New Pembroke 2",
	"NEW_PEMBROKE_#2":         "New Pembroke 2",
	"NEW_PEMBROKE_3":          "New Pembroke 3",
	"NEW_PEMBROKE_#3":         "New Pembroke 3",
	"NEW_PEMBROKE_4":          "New Pembroke 4",
	"NEW_PEMBROKE_#4":         "New Pembroke 4",
	"HARAMBEE_HOUSE":          "Harambee House",
	"WOOLLEY_HALL":            "Woolley Hall",
	"EMERY_HALL":              "Emery Hall",
	"WEST_HOUSE":              "West House",
	"MACHADO_HOUSE":           "Machado House",
}

// DisplayName translates the token into the name the map and info table use.
// Tokens missing from the table are title cased.
func (n BuildingName) DisplayName() string {
	if name, ok := displayNames[string(n)]; ok {
		return name
	}
	return cases.Title(language.English).String(strings.ToLower(strings.ReplaceAll(string(n), "_", " ")))
}

// BuildingNames lists every known building in campus order.
func BuildingNames() []BuildingName {
	var out []BuildingName
	for _, l := range CampusLocations {
		out = append(out, l.Buildings()...)
	}
	return out
}

// ParseBuildingName accepts either a token ("DIMAN_HOUSE") or a display name ("Diman House").
func ParseBuildingName(s string) (BuildingName, error) {
	normalized := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), " ", "_")
	normalized = strings.ReplaceAll(normalized, "#", "")
	if strings.HasPrefix(normalized, "GRADUATE_") {
		normalized = "GRAD_" + strings.TrimPrefix(normalized, "GRADUATE_")
	}
	for _, b := range BuildingNames() {
		if string(b) == normalized {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown building name %q", s)
}

// NormalizeBuildingName folds a token or display name into a comparable form:
// lower case, underscores as spaces, no '#', "grad" spelled "graduate".
// "GRAD_CENTER_D" and "Graduate Center D" both give "graduate center d".
func NormalizeBuildingName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "#", "")
	words := strings.Fields(s)
	for i, w := range words {
		if w == "grad" {
			words[i] = "graduate"
		}
	}
	return strings.Join(words, " ")
}
