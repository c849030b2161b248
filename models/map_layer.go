package models

// MapLayer is one overlay drawn over the campus map.
type MapLayer struct {
	ID       string
	Label    string
	Color    string
	Opacity  float64
	Features []BuildingFeature
}
