package easychart

import (
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"math"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	_ "golang.org/x/image/webp"
)

type annotation struct {
	img  image.Image
	x, y float64
}

// LoadImage decodes the image file at path.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ImageError{Path: path, Err: err}
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &ImageError{Path: path, Err: err}
	}
	return img, nil
}

// LoadImageFS decodes an image bundled in fsys, typically an embed.FS.
func LoadImageFS(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, &ImageError{Path: name, Err: err}
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &ImageError{Path: name, Err: err}
	}
	return img, nil
}

// rotate turns img about its centre with bilinear sampling. The result is
// grown to hold the rotated corners. NaN and infinite angles leave the image upright.
func rotate(img image.Image, degrees float64) *image.RGBA {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		degrees = 0
	}
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	sin, cos := math.Sincos(degrees * math.Pi / 180)

	nw := int(math.Ceil(math.Abs(w*cos) + math.Abs(h*sin) - 1e-9))
	nh := int(math.Ceil(math.Abs(w*sin) + math.Abs(h*cos) - 1e-9))
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))

	sx, sy := float64(b.Min.X)+w/2, float64(b.Min.Y)+h/2
	dx, dy := float64(nw)/2, float64(nh)/2
	s2d := f64.Aff3{
		cos, -sin, dx - cos*sx + sin*sy,
		sin, cos, dy - sin*sx - cos*sy,
	}
	xdraw.BiLinear.Transform(dst, s2d, img, b, xdraw.Over, nil)
	return dst
}

func (c *Chart) drawBackgroundImage(dst *image.RGBA, plot image.Rectangle) {
	if c.bgImage == nil || plot.Empty() || c.bgAlpha <= 0 {
		return
	}
	scaled := image.NewRGBA(image.Rect(0, 0, plot.Dx(), plot.Dy()))
	xdraw.BiLinear.Scale(scaled, scaled.Bounds(), c.bgImage, c.bgImage.Bounds(), xdraw.Src, nil)
	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(c.bgAlpha * 255))})
	draw.DrawMask(dst, plot, scaled, image.Point{}, mask, image.Point{}, draw.Over)
}

// drawAnnotations centres every annotation on its data coordinate, measured
// against the primary axes and clipped to the plot area.
func (c *Chart) drawAnnotations(dst *image.RGBA, plot image.Rectangle, xr, yr *chart.ContinuousRange) {
	if len(c.annotations) == 0 || plot.Empty() {
		return
	}
	clip := dst.SubImage(plot).(*image.RGBA)
	for _, a := range c.annotations {
		px := plot.Min.X + xr.Translate(a.x)
		py := plot.Max.Y - yr.Translate(a.y)
		r := a.img.Bounds()
		at := image.Pt(px-r.Dx()/2, py-r.Dy()/2)
		draw.Draw(clip, image.Rectangle{Min: at, Max: at.Add(r.Size())}, a.img, r.Min, draw.Over)
	}
}
