package lifting

import (
	"fmt"

	"github.com/2beens/fitdash/internal/config"
	"github.com/2beens/fitdash/pkg"
)

const (
	WidgetsPerRow  = 6
	chartHeight    = 150
	chartFontColor = "rgb(220,220,220)"
)

// Figure is a plotly compatible chart description.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Trace struct {
	Type      string    `json:"type"`
	X         []string  `json:"x"`
	Y         []float64 `json:"y"`
	Mode      string    `json:"mode"`
	Text      []string  `json:"text"`
	HoverInfo string    `json:"hoverinfo"`
	Opacity   float64   `json:"opacity"`
	Line      Line      `json:"line"`
}

type Line struct {
	Color string `json:"color"`
}

type Font struct {
	Color string `json:"color,omitempty"`
	Size  int    `json:"size"`
}

type Axis struct {
	ShowLine       bool    `json:"showline"`
	Color          string  `json:"color,omitempty"`
	ShowGrid       bool    `json:"showgrid"`
	ShowTickLabels bool    `json:"showticklabels"`
	TickFormat     string  `json:"tickformat,omitempty"`
	GridColor      string  `json:"gridcolor,omitempty"`
	GridWidth      float64 `json:"gridwidth,omitempty"`
}

type Margin struct {
	L int `json:"l"`
	B int `json:"b"`
	T int `json:"t"`
	R int `json:"r"`
}

type Annotation struct {
	Font       Font    `json:"font"`
	X          string  `json:"x"`
	Y          float64 `json:"y"`
	XRef       string  `json:"xref"`
	YRef       string  `json:"yref"`
	Text       string  `json:"text"`
	ShowArrow  bool    `json:"showarrow"`
	ArrowHead  int     `json:"arrowhead"`
	ArrowColor string  `json:"arrowcolor"`
	AX         int     `json:"ax"`
	AY         int     `json:"ay"`
}

type Layout struct {
	Height      int          `json:"height"`
	Font        Font         `json:"font"`
	XAxis       Axis         `json:"xaxis"`
	YAxis       Axis         `json:"yaxis"`
	Margin      Margin       `json:"margin"`
	ShowLegend  bool         `json:"showlegend"`
	Annotations []Annotation `json:"annotations"`
	HoverMode   string       `json:"hovermode"`
	AutoSize    bool         `json:"autosize"`
}

// Widget is one exercise card on the lifting page.
type Widget struct {
	Exercise      string  `json:"exercise"`
	Label         string  `json:"label"`
	Border        string  `json:"border"`
	OverallChange float64 `json:"overallChange"`
	NoBaseline    bool    `json:"noBaseline"`
	Figure        Figure  `json:"figure"`
}

func NewWidget(trend ExerciseTrend, palette config.Palette) Widget {
	return Widget{
		Exercise:      trend.Exercise,
		Label:         trend.Label,
		Border:        trend.Border(),
		OverallChange: trend.OverallChange,
		NoBaseline:    trend.NoBaseline,
		Figure:        BuildFigure(trend, palette),
	}
}

// BuildFigure maps a trend to a small line chart of running percent change,
// annotated with the latest value.
func BuildFigure(trend ExerciseTrend, palette config.Palette) Figure {
	x := make([]string, len(trend.Points))
	y := make([]float64, len(trend.Points))
	text := make([]string, len(trend.Points))
	for i, p := range trend.Points {
		x[i] = p.Date.Format(pkg.DayLayout)
		y[i] = p.PctChange
		text[i] = Tooltip(trend.Label, p.Value, p.PctChange)
	}

	var annotations []Annotation
	if len(trend.Points) > 0 {
		latest := trend.Latest()
		annotations = append(annotations, Annotation{
			Font:       Font{Size: 14},
			X:          latest.Date.Format(pkg.DayLayout),
			Y:          latest.PctChange,
			XRef:       "x",
			YRef:       "y",
			Text:       fmt.Sprintf("%.1f%%", latest.PctChange),
			ShowArrow:  true,
			ArrowHead:  0,
			ArrowColor: palette.White,
			AX:         5,
			AY:         -20,
		})
	}

	return Figure{
		Data: []Trace{
			{
				Type:      "scatter",
				X:         x,
				Y:         y,
				Mode:      "lines+markers",
				Text:      text,
				HoverInfo: "x+text",
				Opacity:   0.7,
				Line:      Line{Color: palette.Teal},
			},
		},
		Layout: Layout{
			Height: chartHeight,
			Font:   Font{Color: chartFontColor, Size: 10},
			XAxis: Axis{
				ShowLine:       true,
				Color:          chartFontColor,
				ShowGrid:       false,
				ShowTickLabels: true,
				TickFormat:     "%b %d",
			},
			YAxis: Axis{
				ShowGrid:       false,
				ShowTickLabels: false,
				GridColor:      "rgb(73, 73, 73)",
				GridWidth:      .5,
			},
			Margin:      Margin{L: 0, B: 25, T: 20, R: 0},
			ShowLegend:  false,
			Annotations: annotations,
			HoverMode:   "x",
			AutoSize:    true,
		},
	}
}

// Tooltip renders e.g. "1RM (lbs):<b>135 </b>(+20.0%)".
func Tooltip(label string, value, pctChange float64) string {
	sign := ""
	if pctChange >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s:<b>%.0f </b>(%s%.1f%%)", label, value, sign, pctChange)
}

// Rows groups widgets into rows of at most perRow.
func Rows(widgets []Widget, perRow int) [][]Widget {
	if perRow <= 0 {
		perRow = WidgetsPerRow
	}
	rows := make([][]Widget, 0, (len(widgets)+perRow-1)/perRow)
	for start := 0; start < len(widgets); start += perRow {
		end := min(start+perRow, len(widgets))
		rows = append(rows, widgets[start:end])
	}
	return rows
}
