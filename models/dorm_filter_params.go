package models

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"dorm-finder/models/dorm"
)

// ALL is the sentinel a facet carries when nothing explicit is selected.
const ALL = "All"

// ErrBadRequest marks filter parameters that are missing or malformed.
var ErrBadRequest = errors.New("bad request")

// DormFilterParams mirrors the /filter query args. Multi-valued facets are
// comma-joined tokens or the literal All.
type DormFilterParams struct {
	CampusLocation string `schema:"campusLocation" json:"campusLocation"`
	IsSuite        string `schema:"isSuite" json:"isSuite"`
	HasKitchen     string `schema:"hasKitchen" json:"hasKitchen"`
	BathroomType   string `schema:"bathroomType" json:"bathroomType"`
	MinRoomSize    string `schema:"minRoomSize" json:"minRoomSize"`
	MaxRoomSize    string `schema:"maxRoomSize" json:"maxRoomSize"`
	RoomCapacity   string `schema:"roomCapacity" json:"roomCapacity"`
	FloorNumber    string `schema:"floorNumber" json:"floorNumber"`
}

func (p DormFilterParams) ToValues() url.Values {
	q := url.Values{}
	q.Set("campusLocation", p.CampusLocation)
	q.Set("isSuite", p.IsSuite)
	q.Set("hasKitchen", p.HasKitchen)
	q.Set("bathroomType", p.BathroomType)
	q.Set("minRoomSize", p.MinRoomSize)
	q.Set("maxRoomSize", p.MaxRoomSize)
	q.Set("roomCapacity", p.RoomCapacity)
	q.Set("floorNumber", p.FloorNumber)
	return q
}

// DormFilterCriteria is the parsed, validated form of DormFilterParams.
// A nil set means the facet accepts every value.
type DormFilterCriteria struct {
	Buildings     map[dorm.BuildingName]bool
	IsSuite       map[bool]bool
	HasKitchen    map[bool]bool
	BathroomTypes map[dorm.BathroomType]bool
	MinRoomSize   int
	MaxRoomSize   int
	Capacities    map[dorm.RoomCapacity]bool
	Floors        map[int]bool
}

// AllCriteria accepts every listing.
func AllCriteria(maxSize int) DormFilterCriteria {
	return DormFilterCriteria{MinRoomSize: 0, MaxRoomSize: maxSize}
}

// Criteria validates the params. Every facet must be present; errors wrap ErrBadRequest.
func (p DormFilterParams) Criteria(allMinSize, allMaxSize int) (DormFilterCriteria, error) {
	var c DormFilterCriteria
	var err error

	locations, err := parseFacet("campusLocation", p.CampusLocation, dorm.ParseCampusLocation)
	if err != nil {
		return c, err
	}
	if locations != nil {
		c.Buildings = map[dorm.BuildingName]bool{}
		for l := range locations {
			for _, b := range l.Buildings() {
				c.Buildings[b] = true
			}
		}
	}
	if c.IsSuite, err = parseFacet("isSuite", p.IsSuite, parseBool); err != nil {
		return c, err
	}
	if c.HasKitchen, err = parseFacet("hasKitchen", p.HasKitchen, parseBool); err != nil {
		return c, err
	}
	if c.BathroomTypes, err = parseFacet("bathroomType", p.BathroomType, dorm.ParseBathroomType); err != nil {
		return c, err
	}
	if c.MinRoomSize, err = parseSize("minRoomSize", p.MinRoomSize, allMinSize); err != nil {
		return c, err
	}
	if c.MaxRoomSize, err = parseSize("maxRoomSize", p.MaxRoomSize, allMaxSize); err != nil {
		return c, err
	}
	if c.Capacities, err = parseFacet("roomCapacity", p.RoomCapacity, dorm.ParseRoomCapacity); err != nil {
		return c, err
	}
	if c.Floors, err = parseFacet("floorNumber", p.FloorNumber, dorm.ParseFloorNumber); err != nil {
		return c, err
	}
	return c, nil
}

// Matches reports whether l satisfies every facet.
func (c DormFilterCriteria) Matches(l dorm.Listing) bool {
	if c.Buildings != nil && !c.Buildings[l.Building()] {
		return false
	}
	if c.IsSuite != nil && !c.IsSuite[l.IsSuite] {
		return false
	}
	if c.HasKitchen != nil && !c.HasKitchen[l.HasKitchen] {
		return false
	}
	if c.BathroomTypes != nil && !c.BathroomTypes[l.BathroomType] {
		return false
	}
	if size := l.Size(); size < c.MinRoomSize || size > c.MaxRoomSize {
		return false
	}
	if c.Capacities != nil && !c.Capacities[l.RoomCapacity] {
		return false
	}
	if c.Floors != nil && !c.Floors[l.Floor()] {
		return false
	}
	return true
}

// CacheKey is a canonical string for c: equal criteria give equal keys
// regardless of the order values were supplied in.
func (c DormFilterCriteria) CacheKey() string {
	parts := []string{
		"b=" + setKey(c.Buildings, func(b dorm.BuildingName) string { return string(b) }),
		"s=" + setKey(c.IsSuite, strconv.FormatBool),
		"k=" + setKey(c.HasKitchen, strconv.FormatBool),
		"t=" + setKey(c.BathroomTypes, func(b dorm.BathroomType) string { return string(b) }),
		"min=" + strconv.Itoa(c.MinRoomSize),
		"max=" + strconv.Itoa(c.MaxRoomSize),
		"c=" + setKey(c.Capacities, func(r dorm.RoomCapacity) string { return r.Token() }),
		"f=" + setKey(c.Floors, strconv.Itoa),
	}
	return strings.Join(parts, ";")
}

func setKey[T comparable](set map[T]bool, str func(T) string) string {
	if set == nil {
		return "*"
	}
	keys := make([]string, 0, len(set))
	for v := range set {
		keys = append(keys, str(v))
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}

func parseFacet[T comparable](name, raw string, parse func(string) (T, error)) (map[T]bool, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: %s parameter is missing or empty", ErrBadRequest, name)
	}
	if strings.EqualFold(strings.TrimSpace(raw), ALL) {
		return nil, nil
	}
	set := map[T]bool{}
	for _, token := range strings.Split(raw, ",") {
		v, err := parse(token)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid value for %s: %v", ErrBadRequest, name, err)
		}
		set[v] = true
	}
	return set, nil
}

func parseSize(name, raw string, allValue int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s parameter is missing or empty", ErrBadRequest, name)
	}
	if strings.EqualFold(raw, ALL) {
		return allValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: invalid value for %s: %q is not a non-negative integer", ErrBadRequest, name, raw)
	}
	return n, nil
}

func parseBool(s string) (bool, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, "true"):
		return true, nil
	case strings.EqualFold(s, "false"):
		return false, nil
	}
	return false, fmt.Errorf("%q is not true or false", s)
}
