package easychart

import (
	"image/color"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const defaultStrokeWidth = 1.0

var defaultSeriesColor = drawing.ColorRed

type series struct {
	name        string
	values      []Point
	color       drawing.Color
	strokeWidth float64
	continuous  bool
	markers     bool
	markerSize  float64
	xSlot       int
	ySlot       int
}

type seriesStyle struct {
	color       drawing.Color
	strokeWidth float64
	continuous  bool
}

type SeriesOption func(*seriesStyle)

func WithColor(col color.Color) SeriesOption {
	return func(s *seriesStyle) {
		s.color = toDrawingColor(col)
	}
}

func WithStrokeWidth(width float64) SeriesOption {
	return func(s *seriesStyle) {
		s.strokeWidth = width
	}
}

// WithContinuous(false) draws every point as an isolated sample instead of
// joining it to its neighbours.
func WithContinuous(continuous bool) SeriesOption {
	return func(s *seriesStyle) {
		s.continuous = continuous
	}
}

func newSeries(points []Point, name string, opts ...SeriesOption) *series {
	st := seriesStyle{
		color:       defaultSeriesColor,
		strokeWidth: defaultStrokeWidth,
		continuous:  true,
	}
	for _, opt := range opts {
		opt(&st)
	}
	return &series{
		name:        name,
		values:      toValues(points, st.continuous),
		color:       st.color,
		strokeWidth: st.strokeWidth,
		continuous:  st.continuous,
	}
}

// SeriesInfo is a snapshot of one series.
type SeriesInfo struct {
	Name string
	// Values is the stored representation, discrete series carry a NaN break after every point.
	Values         []Point
	Color          color.Color
	StrokeWidth    float64
	Continuous     bool
	MarkersVisible bool
	MarkerSize     float64
	XAxis, YAxis   int
}

// Points returns the data points without break markers.
func (si SeriesInfo) Points() []Point {
	return dataPoints(si.Values)
}

func (s *series) info() SeriesInfo {
	v := make([]Point, len(s.values))
	copy(v, s.values)
	return SeriesInfo{
		Name:           s.name,
		Values:         v,
		Color:          color.NRGBA(s.color),
		StrokeWidth:    s.strokeWidth,
		Continuous:     s.continuous,
		MarkersVisible: s.markers,
		MarkerSize:     s.markerSize,
		XAxis:          s.xSlot,
		YAxis:          s.ySlot,
	}
}

// plotSeries adapts a series to go-chart. It carries its own pinned ranges
// so series on a secondary X axis land where that axis says.
type plotSeries struct {
	*series
	xMin, xMax float64
	yMin, yMax float64
}

var _ chart.Series = plotSeries{}

func (ps plotSeries) GetName() string {
	return ps.name
}

func (ps plotSeries) GetYAxis() chart.YAxisType {
	if ps.ySlot == 1 {
		return chart.YAxisSecondary
	}
	return chart.YAxisPrimary
}

func (ps plotSeries) GetStyle() chart.Style {
	style := chart.Style{
		StrokeColor: ps.color,
		StrokeWidth: ps.strokeWidth,
	}
	if ps.markers {
		style.DotColor = ps.color
		style.DotWidth = ps.markerSize
	}
	return style
}

func (ps plotSeries) Validate() error {
	return nil
}

func (ps plotSeries) Render(r chart.Renderer, canvasBox chart.Box, _, _ chart.Range, _ chart.Style) {
	xr := &chart.ContinuousRange{Min: ps.xMin, Max: ps.xMax, Domain: canvasBox.Width()}
	yr := &chart.ContinuousRange{Min: ps.yMin, Max: ps.yMax, Domain: canvasBox.Height()}
	cb := canvasBox.Bottom
	cl := canvasBox.Left

	win := newWindow(ps.xMin, ps.xMax, ps.yMin, ps.yMax)
	toCanvas := func(p Point) (int, int) {
		return cl + xr.Translate(p.X), cb - yr.Translate(p.Y)
	}

	style := ps.GetStyle()
	if ps.strokeWidth > 0 {
		style.GetStrokeOptions().WriteDrawingOptionsToRenderer(r)
		var prev, last Point
		havePrev, pen := false, false
		for _, p := range ps.values {
			if p.IsBreak() {
				havePrev, pen = false, false
				continue
			}
			if !havePrev {
				prev, havePrev = p, true
				continue
			}
			a, b, ok := win.clipSegment(prev, p)
			prev = p
			if !ok {
				pen = false
				continue
			}
			if !pen || a != last {
				r.MoveTo(toCanvas(a))
			}
			r.LineTo(toCanvas(b))
			last, pen = b, true
		}
		r.Stroke()
	}

	if ps.markers && ps.markerSize > 0 {
		r.SetFillColor(ps.color)
		r.SetStrokeColor(ps.color)
		r.SetStrokeWidth(defaultStrokeWidth)
		for _, p := range ps.values {
			if p.IsBreak() || !win.contains(p) {
				continue
			}
			x, y := toCanvas(p)
			r.Circle(ps.markerSize, x, y)
			r.FillStroke()
		}
	}
}
