package mapview

import "dorm-finder/config"

// Bounds the camera may pan within.
const (
	MAX_LAT      = 41.837
	MIN_LAT      = 41.821
	MIN_LAT_SNAP = 41.817
	MAX_LNG      = -71.39
	MIN_LNG      = -71.41
)

// Viewport is the camera over the campus map.
type Viewport struct {
	Lat  float64 `json:"lat" schema:"lat"`
	Lng  float64 `json:"lng" schema:"lng"`
	Zoom float64 `json:"zoom" schema:"zoom"`
}

func DefaultViewport() Viewport {
	return Viewport{Lat: config.MAP_CENTER_LAT, Lng: config.MAP_CENTER_LNG, Zoom: config.MAP_INITIAL_ZOOM}
}

// Clamp keeps v around campus. Zooming out past MAP_MIN_ZOOM recenters the
// camera at the minimum zoom; latitudes south of MIN_LAT snap to MIN_LAT_SNAP.
func (v Viewport) Clamp() Viewport {
	if v.Zoom < config.MAP_MIN_ZOOM {
		return Viewport{Lat: config.MAP_CENTER_LAT, Lng: config.MAP_CENTER_LNG, Zoom: config.MAP_MIN_ZOOM}
	}
	switch {
	case v.Lat > MAX_LAT:
		v.Lat = MAX_LAT
	case v.Lat < MIN_LAT:
		v.Lat = MIN_LAT_SNAP
	}
	switch {
	case v.Lng > MAX_LNG:
		v.Lng = MAX_LNG
	case v.Lng < MIN_LNG:
		v.Lng = MIN_LNG
	}
	return v
}
