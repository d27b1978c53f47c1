package easychart

import "math"

// window is a rectangle in data coordinates that series are clipped to.
type window struct {
	xMin, xMax float64
	yMin, yMax float64
}

func newWindow(x0, x1, y0, y1 float64) window {
	return window{
		xMin: math.Min(x0, x1), xMax: math.Max(x0, x1),
		yMin: math.Min(y0, y1), yMax: math.Max(y0, y1),
	}
}

// Outcode bits for Cohen-Sutherland.
const (
	outLeft = 1 << iota
	outRight
	outBelow
	outAbove
)

func (w window) outcode(p Point) int {
	code := 0
	if p.X < w.xMin {
		code |= outLeft
	} else if p.X > w.xMax {
		code |= outRight
	}
	if p.Y < w.yMin {
		code |= outBelow
	} else if p.Y > w.yMax {
		code |= outAbove
	}
	return code
}

func (w window) contains(p Point) bool {
	return w.outcode(p) == 0
}

// clipSegment cuts the segment a-b down to the part inside w. ok is false
// when nothing of it is visible.
func (w window) clipSegment(a, b Point) (Point, Point, bool) {
	ca, cb := w.outcode(a), w.outcode(b)
	// one pass per boundary and end; rounding must not loop forever
	for i := 0; i < 8; i++ {
		if ca|cb == 0 {
			return a, b, true
		}
		if ca&cb != 0 {
			return a, b, false
		}

		out := ca
		if out == 0 {
			out = cb
		}
		var p Point
		switch {
		case out&outAbove != 0:
			p = Point{X: a.X + (b.X-a.X)*(w.yMax-a.Y)/(b.Y-a.Y), Y: w.yMax}
		case out&outBelow != 0:
			p = Point{X: a.X + (b.X-a.X)*(w.yMin-a.Y)/(b.Y-a.Y), Y: w.yMin}
		case out&outRight != 0:
			p = Point{X: w.xMax, Y: a.Y + (b.Y-a.Y)*(w.xMax-a.X)/(b.X-a.X)}
		default:
			p = Point{X: w.xMin, Y: a.Y + (b.Y-a.Y)*(w.xMin-a.X)/(b.X-a.X)}
		}

		if out == ca {
			a, ca = p, w.outcode(p)
		} else {
			b, cb = p, w.outcode(p)
		}
	}
	return a, b, false
}
