package easychart

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// layerPalette leaves the chart and plot backgrounds transparent, Draw paints
// them itself so a background image can sit between the paint and the series.
type layerPalette struct {
	text drawing.Color
}

func (lp layerPalette) BackgroundColor() drawing.Color {
	return drawing.ColorTransparent
}

func (lp layerPalette) BackgroundStrokeColor() drawing.Color {
	return drawing.ColorTransparent
}

func (lp layerPalette) CanvasColor() drawing.Color {
	return drawing.ColorTransparent
}

func (lp layerPalette) CanvasStrokeColor() drawing.Color {
	return drawing.ColorTransparent
}

func (lp layerPalette) AxisStrokeColor() drawing.Color {
	return chart.DefaultAxisColor
}

func (lp layerPalette) TextColor() drawing.Color {
	return lp.text
}

func (lp layerPalette) GetSeriesColor(index int) drawing.Color {
	return chart.GetAlternateColor(index)
}
