package easychart

import (
	"fmt"
	"math"
)

type AxisKind int

const (
	AxisX AxisKind = iota
	AxisY
)

func (k AxisKind) String() string {
	switch k {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return fmt.Sprintf("AxisKind(%d)", int(k))
	}
}

// maxAxisSlots is the number of axes per kind: slot 0 is primary, slot 1 secondary.
const maxAxisSlots = 2

// Axis is a numeric axis that series can be measured against. An axis is
// auto-ranged until SetRange fixes it.
type Axis struct {
	label        string
	fixed        bool
	lower, upper float64
}

func NewAxis(label string) *Axis {
	return &Axis{label: label}
}

func (a *Axis) Label() string {
	return a.label
}

// Fixed reports whether the axis range was pinned by the caller.
func (a *Axis) Fixed() bool {
	return a.fixed
}

func (a *Axis) setRange(lower, upper float64) {
	a.fixed = true
	a.lower, a.upper = lower, upper
}

func (a *Axis) clearRange() {
	a.fixed = false
}

type extent struct {
	min, max float64
	set      bool
}

func (e *extent) add(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	if !e.set {
		e.min, e.max, e.set = v, v, true
		return
	}
	e.min = math.Min(e.min, v)
	e.max = math.Max(e.max, v)
}

// padded widens empty and zero width extents, go-chart refuses a zero delta.
func padded(lo, hi float64) (float64, float64) {
	if lo != hi {
		return lo, hi
	}
	if lo == 0 {
		return -1, 1
	}
	d := math.Abs(lo) * 0.05
	return lo - d, hi + d
}
