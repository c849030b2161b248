package detail

import (
	"fmt"
	"sort"
	"strings"

	"dorm-finder/models"
	"dorm-finder/models/dorm"
)

const (
	NOTHING_SEARCHED = "Nothing Searched Yet"
	NO_MATCHES       = "No rooms match your search"
)

// SortKey selects the order listings are shown in.
type SortKey string

const (
	SortByCapacity SortKey = "capacity"
	SortByFloor    SortKey = "floor"
	SortBySize     SortKey = "size"
)

var SortKeys = []SortKey{SortByCapacity, SortByFloor, SortBySize}

// ParseSortKey accepts a sort key in any case. An empty string means capacity.
func ParseSortKey(s string) (SortKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SortByCapacity, nil
	}
	for _, k := range SortKeys {
		if strings.EqualFold(string(k), s) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// FilterByBuilding keeps the listings in building. models.ALL keeps every
// listing and "" keeps none.
func FilterByBuilding(listings []dorm.Listing, building string) []dorm.Listing {
	if building == "" {
		return nil
	}
	if building == models.ALL {
		return append([]dorm.Listing(nil), listings...)
	}
	want := dorm.NormalizeBuildingName(building)
	var out []dorm.Listing
	for _, l := range listings {
		if dorm.NormalizeBuildingName(string(l.Building())) == want {
			out = append(out, l)
		}
	}
	return out
}

// Sort returns listings in ascending key order. Ties keep their input order.
func Sort(listings []dorm.Listing, key SortKey) []dorm.Listing {
	sorted := append([]dorm.Listing(nil), listings...)
	var rank func(dorm.Listing) int
	switch key {
	case SortByFloor:
		rank = dorm.Listing.FirstNumber
	case SortBySize:
		rank = dorm.Listing.Size
	default:
		rank = func(l dorm.Listing) int { return int(l.RoomCapacity) }
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return rank(sorted[i]) < rank(sorted[j])
	})
	return sorted
}

// Panel is the rendered state of the detail view.
type Panel struct {
	Building    string
	SortKey     SortKey
	Cards       []Card
	Placeholder string
}

// Build filters, sorts and renders listings for the selected building. searched
// tells a cache that was never filled apart from one that came back empty.
func Build(listings []dorm.Listing, searched bool, building string, key SortKey) Panel {
	panel := Panel{Building: building, SortKey: key}
	if !searched {
		panel.Placeholder = NOTHING_SEARCHED
		return panel
	}
	for _, l := range Sort(FilterByBuilding(listings, building), key) {
		panel.Cards = append(panel.Cards, NewCard(l))
	}
	if len(panel.Cards) == 0 {
		panel.Placeholder = NO_MATCHES
	}
	return panel
}
