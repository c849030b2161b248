package mapview

import (
	"bytes"
	"testing"

	"dorm-finder/models"
	"dorm-finder/resources"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rect(lngMin, latMin, lngMax, latMax float64) models.Ring {
	return models.Ring{{lngMin, latMin}, {lngMax, latMin}, {lngMax, latMax}, {lngMin, latMax}, {lngMin, latMin}}
}

func feature(name string, rings ...models.Ring) models.BuildingFeature {
	return models.BuildingFeature{
		Type:       "Feature",
		Properties: models.FeatureProperties{Name: name},
		Geometry:   models.Geometry{Type: "Polygon", Coordinates: rings},
	}
}

func testMap() *Map {
	return NewMap(&models.FeatureCollection{
		Type: "FeatureCollection",
		Features: []models.BuildingFeature{
			feature("Diman House", rect(-71.4018, 41.8239, -71.4014, 41.8241)),
			feature("Chapin House", rect(-71.4005, 41.8245, -71.4001, 41.8247)),
			feature("Courtyard", rect(0, 0, 10, 10), rect(4, 4, 6, 6)),
		},
	})
}

func TestPointInPolygon(t *testing.T) {
	courtyard := feature("Courtyard", rect(0, 0, 10, 10), rect(4, 4, 6, 6)).Geometry

	assert.True(t, PointInPolygon(models.Point{1, 1}, courtyard))
	assert.False(t, PointInPolygon(models.Point{5, 5}, courtyard), "inside the hole")
	assert.False(t, PointInPolygon(models.Point{11, 5}, courtyard))
	assert.False(t, PointInPolygon(models.Point{1, 1}, models.Geometry{}))
}

func TestPointInPolygon_Concave(t *testing.T) {
	// U shape opening north.
	u := models.Geometry{Type: "Polygon", Coordinates: []models.Ring{{
		{0, 0}, {3, 0}, {3, 3}, {2, 3}, {2, 1}, {1, 1}, {1, 3}, {0, 3}, {0, 0},
	}}}
	assert.True(t, PointInPolygon(models.Point{0.5, 2}, u))
	assert.False(t, PointInPolygon(models.Point{1.5, 2}, u))
	assert.True(t, PointInPolygon(models.Point{1.5, 0.5}, u))
}

func TestMap_HitTest(t *testing.T) {
	m := testMap()

	assert.Equal(t, "Diman House", m.HitTest(models.Point{-71.4016, 41.8240}))
	assert.Equal(t, "Chapin House", m.Hover(models.Point{-71.4003, 41.8246}))
	assert.Equal(t, "", m.HitTest(models.Point{-71.4100, 41.8300}))
}

func TestMap_Overlays(t *testing.T) {
	m := testMap()

	all, selected := m.Overlays([]string{"DIMAN_HOUSE", "Unknown Hall"})
	assert.Len(t, all.Features, 3)
	assert.Equal(t, ALL_LAYER_COLOR, all.Color)
	assert.Equal(t, 0.3, all.Opacity)

	require.Len(t, selected.Features, 1)
	assert.Equal(t, "Diman House", selected.Features[0].Name())
	assert.Equal(t, "#FDFD96", selected.Color)
	assert.Equal(t, 1.0, selected.Opacity)

	_, selected = m.Overlays(nil)
	assert.Empty(t, selected.Features)
}

func TestMap_Feature(t *testing.T) {
	m := testMap()

	f, ok := m.Feature("diman_house")
	require.True(t, ok)
	assert.Equal(t, "Diman House", f.Name())

	_, ok = m.Feature("Nowhere")
	assert.False(t, ok)
}

func TestMap_Render(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testMap().Render(&buf, []string{"Chapin House"}))
	assert.Contains(t, buf.String(), "Chapin House")
	assert.Contains(t, buf.String(), "Matching dorms")
}

func TestLoad_Bundled(t *testing.T) {
	m, err := Load(resources.FS)
	require.NoError(t, err)
	assert.Len(t, m.Features(), 34)

	assert.Equal(t, "Diman House", m.HitTest(models.Point{-71.4016, 41.8240}))

	_, selected := m.Overlays([]string{"Graduate Center D", "Diman House"})
	assert.Len(t, selected.Features, 2)
}

func TestViewport_Clamp(t *testing.T) {
	tests := []struct {
		name string
		in   Viewport
		want Viewport
	}{
		{"inside", Viewport{41.827, -71.4, 15}, Viewport{41.827, -71.4, 15}},
		{"north", Viewport{41.9, -71.4, 15}, Viewport{41.837, -71.4, 15}},
		{"south snaps", Viewport{41.819, -71.4, 15}, Viewport{41.817, -71.4, 15}},
		{"east", Viewport{41.827, -71.3, 15}, Viewport{41.827, -71.39, 15}},
		{"west", Viewport{41.827, -71.5, 15}, Viewport{41.827, -71.41, 15}},
		{"corner", Viewport{42, -72, 14}, Viewport{41.837, -71.41, 14}},
		{"zoomed out", Viewport{41.9, -71.5, 12.9}, Viewport{41.827, -71.4, 13}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Clamp())
		})
	}
}

func TestDefaultViewport(t *testing.T) {
	assert.Equal(t, Viewport{41.827, -71.4, 15.1}, DefaultViewport())
	assert.Equal(t, DefaultViewport(), DefaultViewport().Clamp())
}
