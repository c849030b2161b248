package models

// Point is a [longitude, latitude] pair, GeoJSON order.
type Point [2]float64

func (p Point) Lng() float64 { return p[0] }
func (p Point) Lat() float64 { return p[1] }

// Ring is a closed sequence of points.
type Ring []Point

// Geometry is a GeoJSON Polygon: the first ring is the outline, the rest are holes.
type Geometry struct {
	Type        string `json:"type"`
	Coordinates []Ring `json:"coordinates"`
}

// BuildingFeature is a named building outline from the campus map dataset.
type BuildingFeature struct {
	Type       string            `json:"type"`
	Properties FeatureProperties `json:"properties"`
	Geometry   Geometry          `json:"geometry"`
}

type FeatureProperties struct {
	Name string `json:"Name"`
}

// Name is the building display name, e.g. "Diman House".
func (f BuildingFeature) Name() string {
	return f.Properties.Name
}

// Centroid is the mean of the outline's vertices, closing vertex excluded.
func (f BuildingFeature) Centroid() Point {
	if len(f.Geometry.Coordinates) == 0 || len(f.Geometry.Coordinates[0]) == 0 {
		return Point{}
	}
	ring := f.Geometry.Coordinates[0]
	n := len(ring)
	if n > 1 && ring[0] == ring[n-1] {
		n--
	}
	var lng, lat float64
	for _, p := range ring[:n] {
		lng += p.Lng()
		lat += p.Lat()
	}
	return Point{lng / float64(n), lat / float64(n)}
}

// FeatureCollection is the campus map dataset.
type FeatureCollection struct {
	Type     string            `json:"type"`
	Features []BuildingFeature `json:"features"`
}
