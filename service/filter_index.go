package services

import (
	"sort"

	"dorm-finder/models"
	"dorm-finder/models/dorm"
)

// DormFilter answers filter criteria over a fixed listing set.
type DormFilter interface {
	Filter(c models.DormFilterCriteria) []dorm.Listing
	Len() int
}

// bucket holds listings that agree on building, suite, kitchen and bathroom,
// sorted by size so a size range is a contiguous slice.
type bucket []dorm.Listing

type bucketKey struct {
	building   dorm.BuildingName
	isSuite    bool
	hasKitchen bool
	bathroom   dorm.BathroomType
}

// HierarchyIndex buckets listings by building, then isSuite, then hasKitchen,
// then bathroom type. Capacity and floor are checked per listing.
type HierarchyIndex struct {
	buckets   map[bucketKey]bucket
	buildings []dorm.BuildingName
	total     int
}

// NewHierarchyIndex indexes listings. The slice is copied.
func NewHierarchyIndex(listings []dorm.Listing) *HierarchyIndex {
	idx := &HierarchyIndex{buckets: map[bucketKey]bucket{}, total: len(listings)}
	seen := map[dorm.BuildingName]bool{}
	for _, l := range listings {
		k := bucketKey{l.Building(), l.IsSuite, l.HasKitchen, l.BathroomType}
		idx.buckets[k] = append(idx.buckets[k], l)
		if !seen[l.Building()] {
			seen[l.Building()] = true
			idx.buildings = append(idx.buildings, l.Building())
		}
	}
	for k, b := range idx.buckets {
		sort.SliceStable(b, func(i, j int) bool { return b[i].Size() < b[j].Size() })
		idx.buckets[k] = b
	}
	sort.Slice(idx.buildings, func(i, j int) bool { return idx.buildings[i] < idx.buildings[j] })
	return idx
}

func (idx *HierarchyIndex) Len() int {
	return idx.total
}

// Filter returns the matching listings ordered by building token, then room number.
func (idx *HierarchyIndex) Filter(c models.DormFilterCriteria) []dorm.Listing {
	out := []dorm.Listing{}
	for _, building := range idx.buildings {
		if c.Buildings != nil && !c.Buildings[building] {
			continue
		}
		for _, isSuite := range []bool{false, true} {
			if c.IsSuite != nil && !c.IsSuite[isSuite] {
				continue
			}
			for _, hasKitchen := range []bool{false, true} {
				if c.HasKitchen != nil && !c.HasKitchen[hasKitchen] {
					continue
				}
				for _, bathroom := range dorm.BathroomTypes {
					if c.BathroomTypes != nil && !c.BathroomTypes[bathroom] {
						continue
					}
					out = idx.collect(out, idx.buckets[bucketKey{building, isSuite, hasKitchen, bathroom}], c)
				}
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Building() != out[j].Building() {
			return out[i].Building() < out[j].Building()
		}
		return out[i].RoomNumber < out[j].RoomNumber
	})
	return out
}

func (idx *HierarchyIndex) collect(out []dorm.Listing, b bucket, c models.DormFilterCriteria) []dorm.Listing {
	lo := sort.Search(len(b), func(i int) bool { return b[i].Size() >= c.MinRoomSize })
	hi := sort.Search(len(b), func(i int) bool { return b[i].Size() > c.MaxRoomSize })
	for _, l := range b[lo:max(lo, hi)] {
		if c.Capacities != nil && !c.Capacities[l.RoomCapacity] {
			continue
		}
		if c.Floors != nil && !c.Floors[l.Floor()] {
			continue
		}
		out = append(out, l)
	}
	return out
}
