package mapview

import "dorm-finder/models"

// PointInPolygon reports whether p lies inside the polygon's outline and
// outside every hole. Points exactly on an edge may fall either way.
func PointInPolygon(p models.Point, g models.Geometry) bool {
	if len(g.Coordinates) == 0 || !pointInRing(p, g.Coordinates[0]) {
		return false
	}
	for _, hole := range g.Coordinates[1:] {
		if pointInRing(p, hole) {
			return false
		}
	}
	return true
}

// pointInRing casts a ray towards +lng and counts edge crossings.
func pointInRing(p models.Point, ring models.Ring) bool {
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if (a.Lat() > p.Lat()) != (b.Lat() > p.Lat()) {
			crossLng := (b.Lng()-a.Lng())*(p.Lat()-a.Lat())/(b.Lat()-a.Lat()) + a.Lng()
			if p.Lng() < crossLng {
				inside = !inside
			}
		}
	}
	return inside
}
