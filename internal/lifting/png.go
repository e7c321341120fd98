package lifting

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/2beens/fitdash/internal/config"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	pngWidth  = 640
	pngHeight = 280
)

var errTooFewPoints = errors.New("trend needs at least two points")

// RenderTrendPNG draws the running percent change of a trend as a PNG line chart.
func RenderTrendPNG(w io.Writer, trend ExerciseTrend, palette config.Palette) error {
	if len(trend.Points) < 2 {
		return errTooFewPoints
	}

	xs := make([]time.Time, len(trend.Points))
	ys := make([]float64, len(trend.Points))
	minY, maxY := trend.Points[0].PctChange, trend.Points[0].PctChange
	for i, p := range trend.Points {
		xs[i] = p.Date
		ys[i] = p.PctChange
		minY = min(minY, p.PctChange)
		maxY = max(maxY, p.PctChange)
	}

	lineColor := parseColor(palette.Teal, chart.ColorBlue)
	yAxis := chart.YAxis{
		ValueFormatter: func(v interface{}) string {
			if f, ok := v.(float64); ok {
				return fmt.Sprintf("%.0f%%", f)
			}
			return ""
		},
	}
	if minY == maxY {
		// flat series, go-chart cannot scale a zero height range
		yAxis.Range = &chart.ContinuousRange{Min: minY - 1, Max: maxY + 1}
	}

	latest := trend.Latest()
	graph := chart.Chart{
		Title:  fmt.Sprintf("%s - %s", trend.Exercise, trend.Label),
		Width:  pngWidth,
		Height: pngHeight,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: yAxis,
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    trend.Exercise,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 2,
					DotColor:    lineColor,
					DotWidth:    3,
				},
			},
			chart.AnnotationSeries{
				Annotations: []chart.Value2{
					{
						XValue: chart.TimeToFloat64(latest.Date),
						YValue: latest.PctChange,
						Label:  fmt.Sprintf("%.1f%%", latest.PctChange),
					},
				},
			},
		},
	}

	return graph.Render(chart.PNG, w)
}

// parseColor understands "#rrggbb", "rrggbb" and "rgb(r, g, b)".
func parseColor(s string, fallback drawing.Color) drawing.Color {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "rgb(") {
		var r, g, b uint8
		if _, err := fmt.Sscanf(strings.ReplaceAll(s, " ", ""), "rgb(%d,%d,%d)", &r, &g, &b); err != nil {
			return fallback
		}
		return drawing.Color{R: r, G: g, B: b, A: 255}
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return fallback
	}
	return drawing.ColorFromHex(hex)
}
