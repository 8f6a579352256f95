package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	chartWidth  = 640
	chartHeight = 360
)

// ErrNotEnoughData is returned when a chart needs more points than it was given
var ErrNotEnoughData = errors.New("not enough data")

// WritePopulationChart plots living cells per step as a PNG line chart
func WritePopulationChart(w io.Writer, populations []int, line color.RGBA) error {
	if len(populations) < 2 {
		return errors.Wrapf(ErrNotEnoughData, "[WritePopulationChart] need at least 2 steps, got: %d", len(populations))
	}

	var (
		xs   = make([]float64, len(populations))
		ys   = make([]float64, len(populations))
		maxY = 1.0
	)
	for i, p := range populations {
		xs[i] = float64(i)
		ys[i] = float64(p)
		maxY = max(maxY, ys[i])
	}

	graph := chart.Chart{
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			Name:  "Step",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "Living cells",
			Style: chart.Style{FontSize: 10.0},
			// fixed range keeps flat series (extinct or still) drawable
			Range: &chart.ContinuousRange{Min: 0, Max: maxY},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Population",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: drawing.Color{R: line.R, G: line.G, B: line.B, A: line.A},
					StrokeWidth: 2.0,
				},
			},
		},
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return errors.Wrapf(err, "[WritePopulationChart] failed to render %d steps", len(populations))
	}
	return nil
}
