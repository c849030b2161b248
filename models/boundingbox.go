package models

// BoundingBox limits where the campus map may be panned.
type BoundingBox struct {
	LatMax float64 `json:"lat_max"`
	LatMin float64 `json:"lat_min"`
	LngMax float64 `json:"lng_max"`
	LngMin float64 `json:"lng_min"`
}

// CampusBoundingBox is the area around the main campus the map stays inside.
var CampusBoundingBox = BoundingBox{
	LatMax: 41.837,
	LatMin: 41.817,
	LngMax: -71.39,
	LngMin: -71.41,
}
