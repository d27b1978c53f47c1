package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"
	"os"
	"path/filepath"

	"fyne.io/fyne"
	"fyne.io/fyne/app"
	"fyne.io/fyne/dialog"
	"fyne.io/fyne/layout"
	"fyne.io/fyne/theme"
	"fyne.io/fyne/widget"
	"github.com/frameloss/easychart"
	"github.com/frameloss/prettyfyne"
)

var seriesColors = []color.Color{
	color.NRGBA{R: 0xd3, G: 0x2f, B: 0x2f, A: 255},
	color.NRGBA{R: 0x19, G: 0x76, B: 0xd2, A: 255},
	color.NRGBA{R: 0x38, G: 0x8e, B: 0x3c, A: 255},
	color.NRGBA{R: 0xf5, G: 0x7c, B: 0x00, A: 255},
}

func main() {
	prefs := loadPrefs()

	var (
		fullscreen bool
		out        string
		width      int
		height     int
	)
	flag.BoolVar(&prefs.Light, "light", prefs.Light, "use the light theme")
	flag.BoolVar(&fullscreen, "full", false, "start in full-screen mode")
	flag.StringVar(&prefs.Data, "data", prefs.Data, "csv or xlsx file, first column is x")
	flag.StringVar(&prefs.Sheet, "sheet", prefs.Sheet, "xlsx sheet name, defaults to the active sheet")
	flag.StringVar(&prefs.Background, "bg", prefs.Background, "background image for the plot area")
	flag.Float64Var(&prefs.Alpha, "alpha", prefs.Alpha, "background image alpha, 0 to 1")
	flag.StringVar(&out, "out", "", "write the chart to this png file and exit")
	flag.IntVar(&width, "w", 1024, "png width for -out")
	flag.IntVar(&height, "h", 640, "png height for -out")
	flag.Parse()

	if out != "" {
		c, err := buildChart(prefs, nil)
		if err != nil {
			log.Fatal(err)
		}
		if err = exportPNG(c, out, width, height); err != nil {
			log.Fatal(err)
		}
		return
	}

	me := app.NewWithID(settingsDir)
	if prefs.Light {
		me.Settings().SetTheme(theme.LightTheme())
	} else {
		th := prettyfyne.ExampleDracula
		th.TextSize = 13
		th.PlaceHolderColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}
		th.IconColor = th.PlaceHolderColor
		me.Settings().SetTheme(th.ToFyneTheme())
	}
	win := me.NewWindow("easychart")

	c, err := buildChart(prefs, []easychart.Option{
		easychart.WithFont(easychart.ThemeFont()),
		easychart.WithTextColor(theme.TextColor()),
		easychart.WithChartBackground(theme.BackgroundColor()),
	})
	if err != nil {
		log.Println(err)
		c = easychart.New(nil, "easychart", "empty", "x", "y")
	}
	panel := easychart.NewPanel(c)

	// callbacks run on fyne's event goroutine, so every chart access goes through panel.Update
	markers := widget.NewCheck("Markers", func(on bool) {
		panel.Update(func(c *easychart.Chart) {
			for i := 0; i < c.SeriesCount(); i++ {
				c.SetMarkersVisible(i, on, 3)
			}
		})
	})
	fixed := widget.NewCheck("Fix X to [0, 2π]", func(on bool) {
		panel.Update(func(c *easychart.Chart) {
			if on {
				c.SetXRangeAll(0, 2*math.Pi)
				return
			}
			for i := 0; i < c.SeriesCount(); i++ {
				c.ClearRange(i, easychart.AxisX)
			}
		})
	})
	tint := widget.NewCheck("Tinted plot", func(on bool) {
		panel.Update(func(c *easychart.Chart) {
			if on {
				c.SetBackgroundColor(color.NRGBA{R: 0xe8, G: 0xea, B: 0xf6, A: 255})
			} else {
				c.RestoreDefaultBackground()
			}
		})
	})
	alpha := widget.NewSlider(0, 1)
	alpha.Step = 0.05
	alpha.Value = prefs.Alpha
	alpha.OnChanged = func(v float64) {
		panel.Update(func(c *easychart.Chart) {
			img, _ := c.BackgroundImage()
			if img == nil {
				return
			}
			if err := c.SetBackgroundImage(img, v); err != nil {
				log.Println(err)
				return
			}
			prefs.Alpha = v
		})
	}
	export := widget.NewButton("Export PNG", func() {
		size := win.Canvas().Size()
		name := "easychart.png"
		var err error
		panel.Update(func(c *easychart.Chart) {
			err = exportPNG(c, name, size.Width, size.Height)
		})
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		dialog.ShowInformation("Exported", "wrote "+name, win)
	})

	controls := widget.NewHBox(markers, fixed, tint, widget.NewLabel("Image alpha"),
		fyne.NewContainerWithLayout(layout.NewFixedGridLayout(fyne.NewSize(160, 30)), alpha),
		layout.NewSpacer(), export)
	win.SetContent(fyne.NewContainerWithLayout(layout.NewBorderLayout(controls, nil, nil, nil), controls, panel))

	win.SetOnClosed(func() {
		savePrefs(prefs)
	})

	rect := displayBounds()
	if fullscreen || rect.Dy() == 0 {
		win.SetFullScreen(true)
	} else {
		win.Resize(fyne.NewSize(rect.Dx()*2/3, rect.Dy()*2/3))
	}
	win.SetMaster()
	win.ShowAndRun()
}

// buildChart plots the data file if one is set, otherwise a set of sample functions.
func buildChart(prefs savedPrefs, opts []easychart.Option) (*easychart.Chart, error) {
	var c *easychart.Chart
	if prefs.Data != "" {
		cols, err := readColumns(prefs.Data, prefs.Sheet)
		if err != nil {
			return nil, err
		}
		opts = append(opts, easychart.WithLegend(len(cols) > 1), easychart.WithStyle(easychart.WithColor(seriesColors[0]), easychart.WithStrokeWidth(1.5)))
		c = easychart.New(cols[0].points, filepath.Base(prefs.Data), cols[0].name, "x", "y", opts...)
		for i, col := range cols[1:] {
			c.AppendSeries(col.points, col.name, easychart.WithColor(seriesColors[(i+1)%len(seriesColors)]), easychart.WithStrokeWidth(1.5))
		}
	} else {
		c = sampleChart(opts)
	}

	if prefs.Background != "" {
		if err := c.SetBackgroundImageFile(prefs.Background, prefs.Alpha); err != nil {
			log.Println(err)
		}
	}
	return c, nil
}

func sampleChart(opts []easychart.Option) *easychart.Chart {
	sample := func(n int, f func(float64) float64) []easychart.Point {
		pts := make([]easychart.Point, n)
		for i := range pts {
			x := 2 * math.Pi * float64(i) / float64(n-1)
			pts[i] = easychart.Pt(x, f(x))
		}
		return pts
	}

	opts = append(opts, easychart.WithLegend(true), easychart.WithStyle(easychart.WithColor(seriesColors[0]), easychart.WithStrokeWidth(2)))
	c := easychart.New(sample(200, math.Sin), "Sample functions", "sin(x)", "x", "y", opts...)

	cos := c.AppendSeries(sample(24, math.Cos), "cos(x) samples", easychart.WithColor(seriesColors[1]), easychart.WithContinuous(false))
	c.SetMarkersVisible(cos, true, 3)

	growth := c.AppendSeries(sample(100, math.Exp), "exp(x)", easychart.WithColor(seriesColors[2]), easychart.WithStrokeWidth(1.5))
	c.SetAxis(easychart.NewAxis("exp(x)"), growth, easychart.AxisY)

	c.PlaceImageAnnotation(arrow(16, seriesColors[3]), math.Pi/2, 1, 90)
	return c
}

// arrow draws a small right pointing triangle.
func arrow(size int, col color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	fill := image.NewUniform(col)
	for x := 0; x < size; x++ {
		half := (size - x) / 2
		draw.Draw(img, image.Rect(x, size/2-half, x+1, size/2+half), fill, image.Point{}, draw.Src)
	}
	return img
}

func exportPNG(c *easychart.Chart, name string, width, height int) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = c.WritePNG(f, width, height); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", name, err)
	}
	if err = f.Close(); err != nil {
		return err
	}
	log.Println("wrote", name)
	return nil
}
