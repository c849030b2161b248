package mapview

import (
	"fmt"
	"io"
	"io/fs"

	"dorm-finder/models"
	"dorm-finder/models/dorm"
	"dorm-finder/resources"
	"dorm-finder/util"
)

const (
	ALL_LAYER_ID          = "all_dorms"
	ALL_LAYER_COLOR       = "#964B00"
	ALL_LAYER_OPACITY     = 0.3
	MATCHED_LAYER_ID      = "selected_dorms"
	MATCHED_LAYER_COLOR   = "#FDFD96"
	MATCHED_LAYER_OPACITY = 1.0
)

// NO_MAP_TOKEN is rendered in place of the map when no access token is configured.
const NO_MAP_TOKEN = "No MAPBOX_KEY provided. Cannot load map."

// Map holds the static building outlines. It is read-only after construction.
type Map struct {
	features []models.BuildingFeature
}

func NewMap(fc *models.FeatureCollection) *Map {
	return &Map{features: fc.Features}
}

// Load reads and validates the bundled building outlines.
func Load(fsys fs.FS) (*Map, error) {
	fc, err := util.ReadBuildingFeaturesFromJSON(fsys, resources.BUILDINGS_GEOJSON, resources.BUILDING_FEATURES_SCHEMA)
	if err != nil {
		return nil, fmt.Errorf("failed to load campus map: %w", err)
	}
	return NewMap(fc), nil
}

func (m *Map) Features() []models.BuildingFeature {
	return m.features
}

// Feature finds a building outline by name.
func (m *Map) Feature(name string) (models.BuildingFeature, bool) {
	key := dorm.NormalizeBuildingName(name)
	for _, f := range m.features {
		if dorm.NormalizeBuildingName(f.Name()) == key {
			return f, true
		}
	}
	return models.BuildingFeature{}, false
}

// Overlays returns the layer of every building and the layer of the buildings
// named in matched, in dataset order.
func (m *Map) Overlays(matched []string) (all, selected models.MapLayer) {
	want := make(map[string]bool, len(matched))
	for _, name := range matched {
		want[dorm.NormalizeBuildingName(name)] = true
	}

	var hits []models.BuildingFeature
	for _, f := range m.features {
		if want[dorm.NormalizeBuildingName(f.Name())] {
			hits = append(hits, f)
		}
	}

	all = models.MapLayer{
		ID: ALL_LAYER_ID, Label: "All dorms",
		Color: ALL_LAYER_COLOR, Opacity: ALL_LAYER_OPACITY,
		Features: m.features,
	}
	selected = models.MapLayer{
		ID: MATCHED_LAYER_ID, Label: "Matching dorms",
		Color: MATCHED_LAYER_COLOR, Opacity: MATCHED_LAYER_OPACITY,
		Features: hits,
	}
	return all, selected
}

// HitTest returns the name of the first building containing p, or "".
func (m *Map) HitTest(p models.Point) string {
	for _, f := range m.features {
		if PointInPolygon(p, f.Geometry) {
			return f.Name()
		}
	}
	return ""
}

// Hover names the building under the pointer for the tooltip.
func (m *Map) Hover(p models.Point) string {
	return m.HitTest(p)
}

// Render writes the chart page of both overlays.
func (m *Map) Render(w io.Writer, matched []string) error {
	all, selected := m.Overlays(matched)
	return util.PlotCampusMap(w, models.CampusBoundingBox, all, selected)
}
