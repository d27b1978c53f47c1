package easychart

import "math"

type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// breakPoint separates isolated samples of a discrete series.
var breakPoint = Point{X: math.NaN(), Y: math.NaN()}

// IsBreak reports whether p is a segment separator rather than data.
func (p Point) IsBreak() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0)
}

func toValues(points []Point, continuous bool) []Point {
	if continuous {
		v := make([]Point, len(points))
		copy(v, points)
		return v
	}
	v := make([]Point, 0, len(points)*2)
	for _, p := range points {
		v = append(v, p, breakPoint)
	}
	return v
}

func dataPoints(values []Point) []Point {
	out := make([]Point, 0, len(values))
	for _, p := range values {
		if p.IsBreak() {
			continue
		}
		out = append(out, p)
	}
	return out
}
