package easychart

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"reflect"
	"testing"
	"time"

	"github.com/wcharczuk/go-chart/v2"
)

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -3 && d <= 3
}

// sparse builds a chart whose only series draws nothing, leaving the plot area bare.
func sparse() *Chart {
	return New([]Point{Pt(0, 0), Pt(10, 10)}, "", "f", "x", "y", WithStyle(WithContinuous(false)))
}

func TestDrawPlotBackground(t *testing.T) {
	c := sparse()
	c.SetBackgroundColor(color.NRGBA{B: 255, A: 255})
	img := image.NewRGBA(image.Rect(0, 0, 400, 300))
	if err := c.Draw(img, img.Bounds()); err != nil {
		t.Fatal(err)
	}
	if got := nrgbaAt(img, 200, 150); got != (color.NRGBA{B: 255, A: 255}) {
		t.Errorf("plot centre = %v, want blue", got)
	}
	if got := nrgbaAt(img, 1, 1); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("chart corner = %v, want white", got)
	}
}

func TestDrawIntoSubArea(t *testing.T) {
	c := sparse()
	c.SetBackgroundColor(color.NRGBA{G: 255, A: 255})
	img := image.NewRGBA(image.Rect(0, 0, 600, 400))
	area := image.Rect(300, 0, 600, 400)
	if err := c.Draw(img, area); err != nil {
		t.Fatal(err)
	}
	if got := nrgbaAt(img, 100, 200); got.A != 0 {
		t.Errorf("pixel outside area painted: %v", got)
	}
	if got := nrgbaAt(img, 450, 200); got != (color.NRGBA{G: 255, A: 255}) {
		t.Errorf("area centre = %v, want green", got)
	}
}

func TestDrawEmptyArea(t *testing.T) {
	c := sparse()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if err := c.Draw(img, image.Rectangle{}); err != nil {
		t.Fatal(err)
	}
}

func TestDrawBackgroundImage(t *testing.T) {
	red := image.NewUniform(color.NRGBA{R: 255, A: 255})
	bg := image.NewRGBA(image.Rect(0, 0, 16, 16))
	draw.Draw(bg, bg.Bounds(), red, image.Point{}, draw.Src)

	tests := []struct {
		alpha float64
		want  color.NRGBA
	}{
		{1, color.NRGBA{R: 255, A: 255}},
		{0.5, color.NRGBA{R: 255, G: 127, B: 127, A: 255}},
		{0, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
	}
	for _, tt := range tests {
		c := sparse()
		if err := c.SetBackgroundImage(bg, tt.alpha); err != nil {
			t.Fatal(err)
		}
		img := image.NewRGBA(image.Rect(0, 0, 400, 300))
		if err := c.Draw(img, img.Bounds()); err != nil {
			t.Fatal(err)
		}
		got := nrgbaAt(img, 200, 150)
		if !near(got.R, tt.want.R) || !near(got.G, tt.want.G) || !near(got.B, tt.want.B) {
			t.Errorf("alpha %v: centre = %v, want %v", tt.alpha, got, tt.want)
		}
	}
}

func TestDrawDoesNotMutate(t *testing.T) {
	c := New(parabola(), "T", "f", "x", "y", WithLegend(true))
	c.AppendSeries([]Point{Pt(-1, 3), Pt(5, -2)}, "g")
	c.SetMarkersVisible(1, true, 3)
	before := []SeriesInfo{c.Series(0), c.Series(1)}
	xlo, xhi := c.Range(0, AxisX)

	img := image.NewRGBA(image.Rect(0, 0, 320, 240))
	if err := c.Draw(img, img.Bounds()); err != nil {
		t.Fatal(err)
	}
	if after := []SeriesInfo{c.Series(0), c.Series(1)}; !reflect.DeepEqual(before, after) {
		t.Fatal("Draw changed series state")
	}
	if lo, hi := c.Range(0, AxisX); lo != xlo || hi != xhi || !c.AutoRange(0, AxisX) {
		t.Fatal("Draw changed the x axis")
	}
}

func TestDrawSecondaryAxes(t *testing.T) {
	c := New(parabola(), "T", "f", "x", "y", WithLegend(true))
	c.AppendSeries([]Point{Pt(100, 1000), Pt(200, 3000)}, "g", WithColor(color.NRGBA{B: 255, A: 255}), WithStrokeWidth(2))
	c.SetAxis(NewAxis("x2"), 1, AxisX)
	c.SetAxis(NewAxis("y2"), 1, AxisY)
	c.SetRange(0, 5, 0, AxisX)
	c.PlaceImageAnnotation(image.NewRGBA(image.Rect(0, 0, 6, 6)), 1, 1, 30)

	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
	if err := c.Draw(img, img.Bounds()); err != nil {
		t.Fatal(err)
	}
}

func TestDrawSingleValueSeries(t *testing.T) {
	c := New([]Point{Pt(3, 3)}, "", "f", "x", "y")
	img := image.NewRGBA(image.Rect(0, 0, 200, 150))
	if err := c.Draw(img, img.Bounds()); err != nil {
		t.Fatalf("degenerate range not widened: %v", err)
	}
}

func isSeriesRed(c color.NRGBA) bool {
	return c.R > 200 && c.G < 80 && c.B < 80
}

func TestDrawClipsToFixedRange(t *testing.T) {
	c := New([]Point{Pt(0, 0.5), Pt(3, 0.5)}, "", "f", "x", "y", WithStyle(WithStrokeWidth(6)))
	c.SetRange(0, 1, 0, AxisX)
	c.SetRange(0, 1, 0, AxisY)

	const w, h = 400, 300
	var box chart.Box
	graph, _, _ := c.build(w, h, &box)
	if err := graph.Render(chart.PNG, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if err := c.Draw(img, img.Bounds()); err != nil {
		t.Fatal(err)
	}
	midY := (box.Top + box.Bottom) / 2
	if got := nrgbaAt(img, (box.Left+box.Right)/2, midY); !isSeriesRed(got) {
		t.Fatalf("series missing inside the plot: %v", got)
	}
	for x := box.Right + 5; x < w; x++ {
		for y := midY - 6; y <= midY+6; y++ {
			if got := nrgbaAt(img, x, y); isSeriesRed(got) {
				t.Fatalf("series drawn outside the plot at (%d,%d): %v", x, y, got)
			}
		}
	}
}

func TestDrawFarOutlierReturns(t *testing.T) {
	c := New([]Point{Pt(0, 0), Pt(0.5, 0.5), Pt(1e9, 1e9)}, "", "f", "x", "y")
	c.SetMarkersVisible(0, true, 3)
	c.SetRange(0, 1, 0, AxisX)
	c.SetRange(0, 1, 0, AxisY)

	done := make(chan error, 1)
	go func() {
		img := image.NewRGBA(image.Rect(0, 0, 400, 300))
		done <- c.Draw(img, img.Bounds())
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Draw did not return with a point far outside the fixed range")
	}
}

func TestDrawAnnotations(t *testing.T) {
	c := sparse()
	green := image.NewRGBA(image.Rect(0, 0, 10, 10))
	draw.Draw(green, green.Bounds(), image.NewUniform(color.NRGBA{G: 255, A: 255}), image.Point{}, draw.Src)
	c.PlaceImageAnnotation(green, 5, 5, 0)
	c.PlaceImageAnnotation(green, 0, 0, 0)

	dst := image.NewRGBA(image.Rect(0, 0, 120, 120))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	plot := image.Rect(10, 10, 110, 110)
	xr := &chart.ContinuousRange{Min: 0, Max: 10, Domain: 100}
	yr := &chart.ContinuousRange{Min: 0, Max: 10, Domain: 100}
	c.drawAnnotations(dst, plot, xr, yr)

	if got := nrgbaAt(dst, 60, 60); got != (color.NRGBA{G: 255, A: 255}) {
		t.Errorf("annotation centre = %v, want green", got)
	}
	if got := nrgbaAt(dst, 12, 108); got != (color.NRGBA{G: 255, A: 255}) {
		t.Errorf("origin annotation = %v, want green", got)
	}
	if got := nrgbaAt(dst, 8, 112); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("annotation escaped the plot area: %v", got)
	}
}

func TestWritePNG(t *testing.T) {
	c := New(parabola(), "T", "f", "x", "y")
	var buf bytes.Buffer
	if err := c.WritePNG(&buf, 320, 240); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Fatalf("bounds = %v", b)
	}
}
