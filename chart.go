package easychart

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Chart is an XY line chart holding an ordered set of series. A Chart is not
// safe for concurrent use: mutation and Draw must be serialised by the caller.
type Chart struct {
	title   string
	legend  bool
	font    *truetype.Font
	initial []SeriesOption

	textColor       drawing.Color
	chartBackground drawing.Color

	series []*series

	// domain holds the X axes, rangeAxes the Y axes; slot 1 stays nil until SetAxis.
	domain    [maxAxisSlots]*Axis
	rangeAxes [maxAxisSlots]*Axis

	defaultBackground drawing.Color
	background        drawing.Color
	bgImage           image.Image
	bgAlpha           float64

	annotations []annotation
}

type Option func(*Chart)

func WithLegend(show bool) Option {
	return func(c *Chart) {
		c.legend = show
	}
}

// WithStyle styles the series created by New.
func WithStyle(opts ...SeriesOption) Option {
	return func(c *Chart) {
		c.initial = append(c.initial, opts...)
	}
}

func WithFont(f *truetype.Font) Option {
	return func(c *Chart) {
		c.font = f
	}
}

func WithTextColor(col color.Color) Option {
	return func(c *Chart) {
		c.textColor = toDrawingColor(col)
	}
}

// WithChartBackground sets the paint behind the whole chart, outside the plot area.
func WithChartBackground(col color.Color) Option {
	return func(c *Chart) {
		c.chartBackground = toDrawingColor(col)
	}
}

// New builds a chart holding a single series made of points.
func New(points []Point, title, seriesName, xLabel, yLabel string, opts ...Option) *Chart {
	c := &Chart{
		title:           title,
		textColor:       chart.DefaultTextColor,
		chartBackground: chart.DefaultBackgroundColor,
	}
	c.domain[0] = NewAxis(xLabel)
	c.rangeAxes[0] = NewAxis(yLabel)
	for _, opt := range opts {
		opt(c)
	}
	c.series = append(c.series, newSeries(points, seriesName, c.initial...))

	c.defaultBackground = chart.DefaultCanvasColor
	c.background = c.defaultBackground
	return c
}

func (c *Chart) Title() string {
	return c.title
}

func (c *Chart) SeriesCount() int {
	return len(c.series)
}

func (c *Chart) mustSeries(i int) *series {
	if i < 0 || i >= len(c.series) {
		indexPanic(i, len(c.series))
	}
	return c.series[i]
}

// AppendSeries adds a series bound to the primary axes and returns its index.
func (c *Chart) AppendSeries(points []Point, name string, opts ...SeriesOption) int {
	c.series = append(c.series, newSeries(points, name, opts...))
	return len(c.series) - 1
}

// ReplaceSeries overwrites series i in place. The replacement is bound to the
// primary axes with markers hidden.
func (c *Chart) ReplaceSeries(i int, points []Point, name string, opts ...SeriesOption) {
	c.mustSeries(i)
	c.series[i] = newSeries(points, name, opts...)
}

func (c *Chart) SetColor(i int, col color.Color) {
	c.mustSeries(i).color = toDrawingColor(col)
}

func (c *Chart) SetStrokeWidth(i int, width float64) {
	c.mustSeries(i).strokeWidth = width
}

// SetMarkersVisible toggles filled circle markers of radius size on every
// point of series i. size is ignored when hiding.
func (c *Chart) SetMarkersVisible(i int, visible bool, size float64) {
	s := c.mustSeries(i)
	s.markers = visible
	if visible {
		s.markerSize = size
	}
}

// SetAxis installs axis as the secondary axis of the given kind and binds
// series i to it. Any previous secondary axis of that kind is replaced;
// series still bound to slot 1 follow the new axis.
func (c *Chart) SetAxis(axis *Axis, i int, kind AxisKind) {
	if axis == nil {
		panic("easychart: nil axis")
	}
	s := c.mustSeries(i)
	switch kind {
	case AxisX:
		c.domain[1] = axis
		s.xSlot = 1
	case AxisY:
		c.rangeAxes[1] = axis
		s.ySlot = 1
	default:
		panic(fmt.Sprintf("easychart: unknown axis kind %v", kind))
	}
}

func (c *Chart) axes(kind AxisKind) *[maxAxisSlots]*Axis {
	switch kind {
	case AxisX:
		return &c.domain
	case AxisY:
		return &c.rangeAxes
	default:
		panic(fmt.Sprintf("easychart: unknown axis kind %v", kind))
	}
}

func (c *Chart) slotFor(i int, kind AxisKind) int {
	s := c.mustSeries(i)
	if kind == AxisX {
		return s.xSlot
	}
	return s.ySlot
}

func (c *Chart) axisFor(i int, kind AxisKind) *Axis {
	slot := c.slotFor(i, kind)
	return c.axes(kind)[slot]
}

// Axis returns the axis series i is measured against for kind.
func (c *Chart) Axis(i int, kind AxisKind) *Axis {
	return c.axisFor(i, kind)
}

// AxisCount returns the number of installed axes of kind, 1 or 2.
func (c *Chart) AxisCount(kind AxisKind) int {
	n := 0
	for _, a := range c.axes(kind) {
		if a != nil {
			n++
		}
	}
	return n
}

// SetRange disables auto-ranging on the axis series i uses for kind.
func (c *Chart) SetRange(lower, upper float64, i int, kind AxisKind) {
	c.axisFor(i, kind).setRange(lower, upper)
}

// ClearRange re-enables auto-ranging on the axis series i uses for kind.
func (c *Chart) ClearRange(i int, kind AxisKind) {
	c.axisFor(i, kind).clearRange()
}

// SetXRangeAll fixes every installed X axis to [lower, upper].
func (c *Chart) SetXRangeAll(lower, upper float64) {
	c.setRangeAll(AxisX, lower, upper)
}

// SetYRangeAll fixes every installed Y axis to [lower, upper].
func (c *Chart) SetYRangeAll(lower, upper float64) {
	c.setRangeAll(AxisY, lower, upper)
}

func (c *Chart) SetRangeAll(xLower, xUpper, yLower, yUpper float64) {
	c.SetXRangeAll(xLower, xUpper)
	c.SetYRangeAll(yLower, yUpper)
}

func (c *Chart) setRangeAll(kind AxisKind, lower, upper float64) {
	for _, a := range c.axes(kind) {
		if a != nil {
			a.setRange(lower, upper)
		}
	}
}

// AutoRange reports whether the axis series i uses for kind follows the data.
func (c *Chart) AutoRange(i int, kind AxisKind) bool {
	return !c.axisFor(i, kind).fixed
}

// Range returns the bounds displayed on the axis series i uses for kind. An
// auto-ranged axis spans the finite values of every series bound to it.
func (c *Chart) Range(i int, kind AxisKind) (lower, upper float64) {
	return c.slotRange(kind, c.slotFor(i, kind))
}

func (c *Chart) slotRange(kind AxisKind, slot int) (float64, float64) {
	a := c.axes(kind)[slot]
	if a == nil {
		return 0, 0
	}
	if a.fixed {
		return a.lower, a.upper
	}
	var e extent
	for _, s := range c.series {
		bound := s.xSlot
		if kind == AxisY {
			bound = s.ySlot
		}
		if bound != slot {
			continue
		}
		for _, p := range s.values {
			if p.IsBreak() {
				continue
			}
			if kind == AxisX {
				e.add(p.X)
			} else {
				e.add(p.Y)
			}
		}
	}
	return e.min, e.max
}

func (c *Chart) SetBackgroundColor(col color.Color) {
	c.background = toDrawingColor(col)
}

// RestoreDefaultBackground brings back the plot paint captured by New.
func (c *Chart) RestoreDefaultBackground() {
	c.background = c.defaultBackground
}

func (c *Chart) Background() color.Color {
	return color.NRGBA(c.background)
}

// SetBackgroundImage draws img behind the series, blended with alpha. A nil
// image removes the background image.
func (c *Chart) SetBackgroundImage(img image.Image, alpha float64) error {
	if !(alpha >= 0 && alpha <= 1) {
		return fmt.Errorf("%w: %v", ErrAlphaRange, alpha)
	}
	c.bgImage = img
	c.bgAlpha = alpha
	return nil
}

// SetBackgroundImageFile loads the image at path and installs it as the
// background. On failure the current background image is kept.
func (c *Chart) SetBackgroundImageFile(path string, alpha float64) error {
	img, err := LoadImage(path)
	if err != nil {
		return err
	}
	return c.SetBackgroundImage(img, alpha)
}

func (c *Chart) BackgroundImage() (image.Image, float64) {
	return c.bgImage, c.bgAlpha
}

// PlaceImageAnnotation rotates img about its centre by degrees (clockwise on
// screen) and overlays it centred on the data coordinate (x, y). A NaN or
// infinite angle places the image unrotated. Annotations accumulate.
func (c *Chart) PlaceImageAnnotation(img image.Image, x, y, degrees float64) {
	c.annotations = append(c.annotations, annotation{
		img: rotate(img, degrees),
		x:   x,
		y:   y,
	})
}

func (c *Chart) AnnotationCount() int {
	return len(c.annotations)
}

func (c *Chart) Series(i int) SeriesInfo {
	return c.mustSeries(i).info()
}

func toDrawingColor(col color.Color) drawing.Color {
	if col == nil {
		return drawing.ColorTransparent
	}
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return drawing.Color{R: n.R, G: n.G, B: n.B, A: n.A}
}
