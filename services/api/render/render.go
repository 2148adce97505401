package render

import (
	"errors"
	"io"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/02loveslollipop/floatchat-dashboard/services/api/dashboard"
)

var (
	// ErrNoData is returned when a view has nothing to draw.
	ErrNoData = errors.New("no data to render")
	// ErrHidden is returned for the comparative view when fewer than two floats are active.
	ErrHidden = errors.New("view is hidden")
)

// lineColor is the main analysis line, hsl(210, 85%, 25%).
var lineColor = drawing.ColorFromHex("0A4076")

// Size is the output size in pixels.
type Size struct {
	Width  int
	Height int
}

// DefaultSize matches the dashboard chart cards.
var DefaultSize = Size{Width: 800, Height: 400}

func (s Size) orDefault() Size {
	if s.Width <= 0 || s.Height <= 0 {
		return DefaultSize
	}
	return s
}

func parseColor(token string) drawing.Color {
	hex := strings.TrimPrefix(token, "#")
	if hex == "" {
		return chart.ColorBlack
	}
	return drawing.ColorFromHex(hex)
}

// paddedRange widens [min, max] so single values and flat series still get a usable axis.
func paddedRange(min, max float64) *chart.ContinuousRange {
	pad := (max - min) * 0.1
	if pad == 0 {
		pad = math.Max(math.Abs(min)*0.05, 0.5)
	}
	return &chart.ContinuousRange{Min: min - pad, Max: max + pad}
}

// TimeSeries draws the selected parameter in subset order, one category tick per date label.
func TimeSeries(w io.Writer, ts dashboard.TimeSeries, size Size) error {
	if len(ts.Points) == 0 {
		return ErrNoData
	}
	size = size.orDefault()

	xs := make([]float64, len(ts.Points))
	ys := make([]float64, len(ts.Points))
	ticks := make([]chart.Tick, len(ts.Points))
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	for i, p := range ts.Points {
		xs[i] = float64(i)
		ys[i] = p.Value
		ticks[i] = chart.Tick{Value: float64(i), Label: p.Label}
		minY = math.Min(minY, p.Value)
		maxY = math.Max(maxY, p.Value)
	}
	// go-chart needs two distinct X values; ticks define the x range
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
		ticks = append(ticks, chart.Tick{Value: xs[1]})
	}

	ch := chart.Chart{
		Width:      size.Width,
		Height:     size.Height,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 16, Right: 16, Bottom: 48}},
		XAxis:      chart.XAxis{Ticks: ticks},
		YAxis:      chart.YAxis{Name: ts.AxisTitle, Range: paddedRange(minY, maxY)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: ts.Label,
				Style: chart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 2,
					FillColor:   lineColor.WithAlpha(25),
					DotColor:    lineColor,
					DotWidth:    3,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}
	return ch.Render(chart.PNG, w)
}

// Trajectories draws one scatter series per float in its session color, with a legend.
func Trajectories(w io.Writer, tr dashboard.Trajectories, size Size) error {
	size = size.orDefault()

	series := make([]chart.Series, 0, len(tr.Series))
	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	for _, s := range tr.Series {
		if len(s.Points) == 0 {
			continue
		}
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for i, p := range s.Points {
			xs[i], ys[i] = p.Lon, p.Lat
			minX, maxX = math.Min(minX, p.Lon), math.Max(maxX, p.Lon)
			minY, maxY = math.Min(minY, p.Lat), math.Max(maxY, p.Lat)
		}
		col := parseColor(s.Color)
		series = append(series, chart.ContinuousSeries{
			Name: s.Label,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    5,
				DotColor:    col,
				StrokeColor: col,
			},
			XValues: xs,
			YValues: ys,
		})
	}
	if len(series) == 0 {
		return ErrNoData
	}

	ch := chart.Chart{
		Title:      tr.Title,
		Width:      size.Width,
		Height:     size.Height,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: "Longitude", Range: paddedRange(minX, maxX)},
		YAxis:      chart.YAxis{Name: "Latitude", Range: paddedRange(minY, maxY)},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(chart.PNG, w)
}

// Comparative draws the per-float means as colored bars.
func Comparative(w io.Writer, visible bool, c *dashboard.Comparative, size Size) error {
	if !visible || c == nil {
		return ErrHidden
	}
	if len(c.Bars) == 0 {
		return ErrNoData
	}
	size = size.orDefault()

	bars := make([]chart.Value, 0, len(c.Bars))
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	for _, b := range c.Bars {
		col := parseColor(b.Color)
		bars = append(bars, chart.Value{
			Label: b.Label,
			Value: b.Value,
			Style: chart.Style{FillColor: col, StrokeColor: col},
		})
		minY, maxY = math.Min(minY, b.Value), math.Max(maxY, b.Value)
	}

	bc := chart.BarChart{
		Title:      c.Title,
		Width:      size.Width,
		Height:     size.Height,
		Background: chart.Style{Padding: chart.Box{Top: 48}},
		BarWidth:   size.Width / (2 * len(bars)),
		YAxis:      chart.YAxis{Name: c.AxisTitle, Range: paddedRange(minY, maxY)},
		Bars:       bars,
	}
	return bc.Render(chart.PNG, w)
}
