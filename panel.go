package easychart

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"sync"

	"fyne.io/fyne"
	"fyne.io/fyne/canvas"
	"fyne.io/fyne/theme"
	"fyne.io/fyne/widget"
	"github.com/golang/freetype/truetype"
)

// ThemeFont parses the current fyne theme's text font for use with WithFont.
func ThemeFont() *truetype.Font {
	font, err := truetype.Parse(theme.TextFont().Content())
	if err != nil {
		log.Println(err)
		return nil
	}
	return font
}

var _ fyne.Widget = (*Panel)(nil)

// Panel is a widget that paints a Chart into its whole area on every refresh.
type Panel struct {
	widget.BaseWidget

	mux   sync.RWMutex
	chart *Chart
}

func NewPanel(c *Chart) *Panel {
	p := &Panel{chart: c}
	p.ExtendBaseWidget(p)
	return p
}

// SetChart swaps the displayed chart, nil clears the panel.
func (p *Panel) SetChart(c *Chart) {
	p.mux.Lock()
	p.chart = c
	p.mux.Unlock()
	p.Refresh()
}

func (p *Panel) Chart() *Chart {
	p.mux.RLock()
	defer p.mux.RUnlock()
	return p.chart
}

// Update runs fn on the displayed chart while painting is held off, then
// refreshes. Mutate a shown chart through Update, fyne paints from its own
// goroutine.
func (p *Panel) Update(fn func(c *Chart)) {
	p.mux.Lock()
	c := p.chart
	if c != nil {
		fn(c)
	}
	p.mux.Unlock()
	p.Refresh()
}

func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	p.ExtendBaseWidget(p)
	return &panelRenderer{
		panel:  p,
		raster: canvas.NewRaster(p.paint),
	}
}

func (p *Panel) paint(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(theme.BackgroundColor()), image.Point{}, draw.Src)
	p.mux.RLock()
	defer p.mux.RUnlock()
	if p.chart == nil {
		return img
	}
	if err := p.chart.Draw(img, img.Bounds()); err != nil {
		log.Println("easychart: draw:", err)
	}
	return img
}

type panelRenderer struct {
	panel  *Panel
	raster *canvas.Raster
}

func (r *panelRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
}

func (r *panelRenderer) MinSize() fyne.Size {
	return fyne.NewSize(200, 150)
}

func (r *panelRenderer) Refresh() {
	canvas.Refresh(r.raster)
}

func (r *panelRenderer) BackgroundColor() color.Color {
	return theme.BackgroundColor()
}

func (r *panelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *panelRenderer) Destroy() {
}
