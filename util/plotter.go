package util

import (
	"fmt"
	"io"

	"dorm-finder/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// PlotCampusMap renders the overlay layers as a chart page, one scatter series
// per layer with a point at each building's centroid.
func PlotCampusMap(w io.Writer, bounds models.BoundingBox, layers ...models.MapLayer) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Campus Dorm Map",
			Width:     "900px",
			Height:    "700px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Brown University dorms",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "lng",
			Type: "value",
			Min:  bounds.LngMin,
			Max:  bounds.LngMax,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "lat",
			Type: "value",
			Min:  bounds.LatMin,
			Max:  bounds.LatMax,
		}),
	)

	for _, layer := range layers {
		points := make([]opts.ScatterData, 0, len(layer.Features))
		for _, f := range layer.Features {
			c := f.Centroid()
			points = append(points, opts.ScatterData{
				Name:       f.Name(),
				Value:      []float64{c.Lng(), c.Lat()},
				SymbolSize: 14,
			})
		}
		scatter.AddSeries(layer.Label, points,
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: rgba(layer.Color, layer.Opacity),
			}),
		)
	}

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("failed to render campus map: %w", err)
	}
	return nil
}

// rgba turns "#964B00" and 0.3 into "rgba(150,75,0,0.3)".
func rgba(hex string, opacity float64) string {
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return hex
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%g)", r, g, b, opacity)
}
