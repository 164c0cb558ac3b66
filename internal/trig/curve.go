package trig

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Plot-space constants. Rows run 0 to 100 with 50 as the axis; larger rows
// are lower on screen.
const (
	PlotWidth  = 360
	PlotHeight = 100
	Midline    = 50.0

	// BoundedScale maps sin and cos from [-1, 1] onto rows [90, 10].
	BoundedScale = 40.0
	// ClampScale maps clamped values from [-2, 2] onto rows [90, 10].
	ClampScale = 20.0
	ClampLimit = 2.0

	// SampleCount is one sample per whole degree from 0 to 360 inclusive.
	SampleCount = MaxAngle - MinAngle + 1
)

// Sample is one plotted point. OK is false where the function is undefined;
// renderers must break the line there and not interpolate across it.
type Sample struct {
	X  int
	Y  float64
	OK bool
}

// Curve is the ordered sample sequence for one function over 0..360°.
type Curve []Sample

// SampleCurve computes the plot of fn at every whole degree. It has no
// hidden state: two calls with the same function return identical curves.
func SampleCurve(fn Function) Curve {
	c := make(Curve, SampleCount)
	for d := MinAngle; d <= MaxAngle; d++ {
		y, ok := sampleY(fn, Radians(float64(d)))
		c[d-MinAngle] = Sample{X: d, Y: y, OK: ok}
	}
	return c
}

func sampleY(fn Function, r float64) (float64, bool) {
	s, c := math.Sin(r), math.Cos(r)
	switch fn {
	case Sin:
		return BoundedY(s), true
	case Cos:
		return BoundedY(c), true
	case Tan:
		if nearZero(c) {
			return 0, false
		}
		return ClampedY(math.Tan(r)), true
	case Sec:
		if nearZero(c) {
			return 0, false
		}
		return ClampedY(1 / c), true
	case Csc:
		if nearZero(s) {
			return 0, false
		}
		return ClampedY(1 / s), true
	case Cot:
		if nearZero(s) {
			return 0, false
		}
		return ClampedY(c / s), true
	}
	return 0, false
}

// BoundedY maps a sin or cos value to a plot row.
func BoundedY(v float64) float64 {
	return Midline - v*BoundedScale
}

// ClampedY clamps v to [-2, 2] and maps it to a plot row.
func ClampedY(v float64) float64 {
	return Midline - mgl64.Clamp(v, -ClampLimit, ClampLimit)*ClampScale
}

// Breaks returns the degrees at which the curve has no value.
func (c Curve) Breaks() []int {
	var out []int
	for _, s := range c {
		if !s.OK {
			out = append(out, s.X)
		}
	}
	return out
}

// Segments splits the curve into runs of consecutive defined samples. Each
// run is a continuous piece of the plot.
func (c Curve) Segments() []Curve {
	var segs []Curve
	start := -1
	for i, s := range c {
		switch {
		case s.OK && start < 0:
			start = i
		case !s.OK && start >= 0:
			segs = append(segs, c[start:i])
			start = -1
		}
	}
	if start >= 0 {
		segs = append(segs, c[start:])
	}
	return segs
}

// Values returns the Y coordinates with NaN at breaks, the gap encoding
// understood by asciigraph.
func (c Curve) Values() []float64 {
	out := make([]float64, len(c))
	for i, s := range c {
		if s.OK {
			out[i] = s.Y
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

var (
	curveOnce [Csc + 1]sync.Once
	curveMemo [Csc + 1]Curve
)

// Curves returns the curve for fn, computing it once. Curves do not depend
// on the current angle so the memo never goes stale. The result is a copy
// and may be modified freely.
func Curves(fn Function) Curve {
	if fn < Sin || fn > Csc {
		return nil
	}
	curveOnce[fn].Do(func() {
		curveMemo[fn] = SampleCurve(fn)
	})
	out := make(Curve, len(curveMemo[fn]))
	copy(out, curveMemo[fn])
	return out
}
