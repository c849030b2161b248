package search

import (
	"fmt"
	"strconv"
	"strings"

	"dorm-finder/config"
	"dorm-finder/models"
	"dorm-finder/models/dorm"
)

// Facet is one multi-select search dimension. The room size range is held
// separately as a SizeRange.
type Facet int

const (
	FacetCampusLocation Facet = iota
	FacetFloor
	FacetSuite
	FacetCapacity
	FacetBathroom
	FacetKitchen
	facetCount
)

var Facets = []Facet{FacetCampusLocation, FacetFloor, FacetSuite, FacetCapacity, FacetBathroom, FacetKitchen}

var facetNames = [facetCount]string{"campusLocation", "floorNumber", "isSuite", "roomCapacity", "bathroomType", "hasKitchen"}

var facetLabels = [facetCount]string{"Campus Location", "Floor", "Suite", "Room Capacity", "Bathroom", "Kitchen"}

// Name is the facet's query parameter name.
func (f Facet) Name() string {
	if f < 0 || f >= facetCount {
		return "facet(" + strconv.Itoa(int(f)) + ")"
	}
	return facetNames[f]
}

// Label is the heading shown above the facet's options.
func (f Facet) Label() string {
	if f < 0 || f >= facetCount {
		return f.Name()
	}
	return facetLabels[f]
}

func ParseFacet(s string) (Facet, error) {
	for _, f := range Facets {
		if strings.EqualFold(f.Name(), strings.TrimSpace(s)) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown facet %q", s)
}

// Option is one selectable value of a facet.
type Option struct {
	Value string
	Label string
}

// Options lists the values a facet offers, in display order.
func (f Facet) Options() []Option {
	var out []Option
	switch f {
	case FacetCampusLocation:
		for _, l := range dorm.CampusLocations {
			out = append(out, Option{string(l), l.Label()})
		}
	case FacetFloor:
		for n := 1; n <= dorm.MaxFloor; n++ {
			out = append(out, Option{strconv.Itoa(n), strconv.Itoa(n)})
		}
	case FacetSuite, FacetKitchen:
		out = []Option{{"true", "Yes"}, {"false", "No"}}
	case FacetCapacity:
		for _, c := range dorm.RoomCapacities {
			out = append(out, Option{c.Token(), c.Label()})
		}
	case FacetBathroom:
		out = []Option{{string(dorm.Private), "Private"}, {string(dorm.Communal), "Communal"}, {string(dorm.SemiPrivate), "Semi-Private"}}
	}
	return out
}

func (f Facet) valid(value string) bool {
	for _, o := range f.Options() {
		if o.Value == value {
			return true
		}
	}
	return false
}

// SizeRange is the inclusive room size bound in square feet.
type SizeRange struct {
	Min int
	Max int
}

func DefaultSizeRange() SizeRange {
	return SizeRange{Min: config.MIN_ROOM_SIZE, Max: config.MAX_ROOM_SIZE}
}

// FilterCriteria is the filter panel state. It is a value: reducers return a
// new FilterCriteria and never modify the receiver. A facet with no explicit
// values is All; an explicit selection is never empty.
type FilterCriteria struct {
	facets [facetCount][]string
	size   SizeRange
}

// NewFilterCriteria has every facet at All and the default size range.
func NewFilterCriteria() FilterCriteria {
	return FilterCriteria{size: DefaultSizeRange()}
}

// IsAll reports whether f has no explicit selection.
func (c FilterCriteria) IsAll(f Facet) bool {
	return len(c.facets[f]) == 0
}

// Selected returns the explicit values of f, or [All].
func (c FilterCriteria) Selected(f Facet) []string {
	if c.IsAll(f) {
		return []string{models.ALL}
	}
	return append([]string(nil), c.facets[f]...)
}

// IsSelected reports whether value (which may be All) is currently shown as selected.
func (c FilterCriteria) IsSelected(f Facet, value string) bool {
	for _, v := range c.Selected(f) {
		if v == value {
			return true
		}
	}
	return false
}

func (c FilterCriteria) SizeRange() SizeRange {
	return c.size
}

func (c FilterCriteria) with(f Facet, values []string) FilterCriteria {
	if len(values) == 0 {
		values = nil
	}
	c.facets[f] = values
	return c
}

// SelectAll resets f to All.
func (c FilterCriteria) SelectAll(f Facet) FilterCriteria {
	return c.with(f, nil)
}

// Toggle flips one value of f. Toggling All resets the facet; toggling off the
// last explicit value also leaves the facet at All.
func (c FilterCriteria) Toggle(f Facet, value string) (FilterCriteria, error) {
	if value == models.ALL {
		return c.SelectAll(f), nil
	}
	if !f.valid(value) {
		return c, fmt.Errorf("invalid value %q for %s", value, f.Name())
	}
	next := make([]string, 0, len(c.facets[f])+1)
	removed := false
	for _, v := range c.facets[f] {
		if v == value {
			removed = true
			continue
		}
		next = append(next, v)
	}
	if !removed {
		next = append(next, value)
	}
	return c.with(f, next), nil
}

// Select replaces the selection of f with the values of a multi-select change,
// in the order the control reports them:
//   - empty, or All picked last: the facet becomes All
//   - All listed first followed by other values: All is dropped
//   - otherwise the values as given
func (c FilterCriteria) Select(f Facet, values ...string) (FilterCriteria, error) {
	if len(values) == 0 || values[len(values)-1] == models.ALL {
		return c.SelectAll(f), nil
	}
	next := make([]string, 0, len(values))
	seen := map[string]bool{}
	for _, v := range values {
		if v == models.ALL || seen[v] {
			continue
		}
		if !f.valid(v) {
			return c, fmt.Errorf("invalid value %q for %s", v, f.Name())
		}
		seen[v] = true
		next = append(next, v)
	}
	return c.with(f, next), nil
}

// SetSizeRange clamps both bounds to the slider range, snaps them to the slider
// step and orders them.
func (c FilterCriteria) SetSizeRange(lo, hi int) FilterCriteria {
	lo, hi = snapSize(lo), snapSize(hi)
	if lo > hi {
		lo, hi = hi, lo
	}
	c.size = SizeRange{Min: lo, Max: hi}
	return c
}

func snapSize(n int) int {
	if n <= config.MIN_ROOM_SIZE {
		return config.MIN_ROOM_SIZE
	}
	if n >= config.MAX_ROOM_SIZE {
		return config.MAX_ROOM_SIZE
	}
	step := config.ROOM_SIZE_STEP
	return config.MIN_ROOM_SIZE + (n-config.MIN_ROOM_SIZE+step/2)/step*step
}

// Values serializes the criteria into /filter query params. Multi-valued facets
// are joined with ", "; unset facets are sent as All.
func (c FilterCriteria) Values() models.DormFilterParams {
	join := func(f Facet) string {
		return strings.Join(c.Selected(f), ", ")
	}
	return models.DormFilterParams{
		CampusLocation: join(FacetCampusLocation),
		IsSuite:        join(FacetSuite),
		HasKitchen:     join(FacetKitchen),
		BathroomType:   join(FacetBathroom),
		MinRoomSize:    strconv.Itoa(c.size.Min),
		MaxRoomSize:    strconv.Itoa(c.size.Max),
		RoomCapacity:   join(FacetCapacity),
		FloorNumber:    join(FacetFloor),
	}
}
