package easychart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const tickLength = 5

// Draw renders the chart into area of dst. The chart itself is not modified.
func (c *Chart) Draw(dst draw.Image, area image.Rectangle) error {
	if area.Dx() <= 0 || area.Dy() <= 0 {
		return nil
	}
	layer, err := c.render(area.Dx(), area.Dy())
	if err != nil {
		return err
	}
	draw.Draw(dst, area, layer, image.Point{}, draw.Over)
	return nil
}

// WritePNG renders the chart at width x height pixels and encodes it to w.
func (c *Chart) WritePNG(w io.Writer, width, height int) error {
	layer, err := c.render(width, height)
	if err != nil {
		return err
	}
	return png.Encode(w, layer)
}

// render composes, bottom to top: chart paint, plot paint, background image,
// the go-chart raster (axes, series, title, legend) and the annotations.
func (c *Chart) render(w, h int) (*image.RGBA, error) {
	var plotBox chart.Box
	graph, xr, yr := c.build(w, h, &plotBox)

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	fg, err := png.Decode(buffer)
	if err != nil {
		return nil, fmt.Errorf("render: decode: %w", err)
	}

	layer := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(layer, layer.Bounds(), image.NewUniform(color.NRGBA(c.chartBackground)), image.Point{}, draw.Src)
	plot := image.Rect(plotBox.Left, plotBox.Top, plotBox.Right, plotBox.Bottom).Intersect(layer.Bounds())
	draw.Draw(layer, plot, image.NewUniform(color.NRGBA(c.background)), image.Point{}, draw.Over)
	c.drawBackgroundImage(layer, plot)
	draw.Draw(layer, layer.Bounds(), fg, fg.Bounds().Min, draw.Over)

	xr.Domain = plotBox.Width()
	yr.Domain = plotBox.Height()
	c.drawAnnotations(layer, plot, xr, yr)
	return layer, nil
}

func (c *Chart) build(w, h int, plotBox *chart.Box) (chart.Chart, *chart.ContinuousRange, *chart.ContinuousRange) {
	var xRanges, yRanges [maxAxisSlots][2]float64
	for slot := 0; slot < maxAxisSlots; slot++ {
		xRanges[slot][0], xRanges[slot][1] = padded(c.slotRange(AxisX, slot))
		yRanges[slot][0], yRanges[slot][1] = padded(c.slotRange(AxisY, slot))
	}

	series := make([]chart.Series, len(c.series))
	for i, s := range c.series {
		series[i] = plotSeries{
			series: s,
			xMin:   xRanges[s.xSlot][0],
			xMax:   xRanges[s.xSlot][1],
			yMin:   yRanges[s.ySlot][0],
			yMax:   yRanges[s.ySlot][1],
		}
	}

	p := message.NewPrinter(language.AmericanEnglish)
	formatter := tickFormatter(p)
	fc := c.textColor

	top := 10
	if c.title != "" {
		top += 30
	}
	if c.domain[1] != nil {
		top += 40
	}

	xr := &chart.ContinuousRange{Min: xRanges[0][0], Max: xRanges[0][1]}
	yr := &chart.ContinuousRange{Min: yRanges[0][0], Max: yRanges[0][1]}

	graph := chart.Chart{
		Title: c.title,
		TitleStyle: chart.Style{
			FontColor: fc,
		},
		XAxis: chart.XAxis{
			Name: c.domain[0].Label(),
			Style: chart.Style{
				FontColor: fc,
			},
			ValueFormatter: formatter,
			Range:          &chart.ContinuousRange{Min: xr.Min, Max: xr.Max},
		},
		YAxis: chart.YAxis{
			Name: c.rangeAxes[0].Label(),
			Style: chart.Style{
				FontColor: fc,
			},
			ValueFormatter: formatter,
			Range:          &chart.ContinuousRange{Min: yr.Min, Max: yr.Max},
		},
		ColorPalette: layerPalette{text: fc},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    top,
				Bottom: 10,
				Left:   10,
				Right:  10,
			},
		},
		Height: h,
		Width:  w,
		Font:   c.font,
		Series: series,
	}
	if a := c.rangeAxes[1]; a != nil {
		graph.YAxisSecondary = chart.YAxis{
			Name: a.Label(),
			Style: chart.Style{
				FontColor: fc,
			},
			ValueFormatter: formatter,
			Range:          &chart.ContinuousRange{Min: yRanges[1][0], Max: yRanges[1][1]},
		}
	}

	graph.Elements = []chart.Renderable{
		func(_ chart.Renderer, canvasBox chart.Box, _ chart.Style) {
			*plotBox = canvasBox
		},
	}
	if a := c.domain[1]; a != nil {
		graph.Elements = append(graph.Elements, topAxis(a, xRanges[1][0], xRanges[1][1], formatter, fc))
	}
	if c.legend {
		graph.Elements = append(graph.Elements, chart.Legend(&graph))
	}
	return graph, xr, yr
}

func tickFormatter(p *message.Printer) chart.ValueFormatter {
	return func(v interface{}) string {
		f, ok := v.(float64)
		if !ok {
			return ""
		}
		return p.Sprint(number.Decimal(f, number.MaxFractionDigits(3)))
	}
}

// topAxis draws a secondary X axis along the top edge of the plot area;
// go-chart only knows a secondary Y axis.
func topAxis(a *Axis, lo, hi float64, vf chart.ValueFormatter, fc drawing.Color) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		xr := &chart.ContinuousRange{Min: lo, Max: hi, Domain: cb.Width()}
		style := chart.Style{
			StrokeColor: chart.DefaultAxisColor,
			StrokeWidth: 1,
			Font:        defaults.Font,
			FontSize:    chart.DefaultFontSize,
			FontColor:   fc,
		}

		style.GetStrokeOptions().WriteDrawingOptionsToRenderer(r)
		r.MoveTo(cb.Left, cb.Top)
		r.LineTo(cb.Right, cb.Top)
		r.Stroke()

		style.GetTextOptions().WriteTextOptionsToRenderer(r)
		ticks := chart.GenerateContinuousTicks(r, xr, false, style, vf)
		for _, t := range ticks {
			x := cb.Left + xr.Translate(t.Value)
			style.GetStrokeOptions().WriteDrawingOptionsToRenderer(r)
			r.MoveTo(x, cb.Top)
			r.LineTo(x, cb.Top-tickLength)
			r.Stroke()

			style.GetTextOptions().WriteTextOptionsToRenderer(r)
			tb := r.MeasureText(t.Label)
			r.Text(t.Label, x-tb.Width()/2, cb.Top-tickLength-4)
		}

		if name := a.Label(); name != "" {
			tb := r.MeasureText(name)
			r.Text(name, cb.Left+(cb.Width()-tb.Width())/2, cb.Top-tickLength-tb.Height()-12)
		}
	}
}
