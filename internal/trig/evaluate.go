package trig

import "math"

// Reading holds all six function values for one angle.
type Reading struct {
	Angle int
	Sin   Value
	Cos   Value
	Tan   Value
	Cot   Value
	Sec   Value
	Csc   Value
}

// Evaluate computes every function at the given angle in degrees. Any
// denominator smaller than Epsilon in magnitude yields the undefined
// sentinel, not only exact poles.
func Evaluate(deg int) Reading {
	deg = ClampAngle(deg)
	r := Radians(float64(deg))
	s, c := math.Sin(r), math.Cos(r)

	rd := Reading{
		Angle: deg,
		Sin:   Finite(s),
		Cos:   Finite(c),
		Tan:   Undefined(),
		Cot:   Undefined(),
		Sec:   Undefined(),
		Csc:   Undefined(),
	}
	if !nearZero(c) {
		rd.Tan = Finite(math.Tan(r))
		rd.Sec = Finite(1 / c)
	}
	if !nearZero(s) {
		rd.Cot = Finite(c / s)
		rd.Csc = Finite(1 / s)
	}
	return rd
}

// Value returns the reading for one function.
func (r Reading) Value(fn Function) Value {
	switch fn {
	case Sin:
		return r.Sin
	case Cos:
		return r.Cos
	case Tan:
		return r.Tan
	case Cot:
		return r.Cot
	case Sec:
		return r.Sec
	case Csc:
		return r.Csc
	}
	return Undefined()
}

// Quadrant returns the quadrant of the reading's angle.
func (r Reading) Quadrant() Quadrant {
	return QuadrantOf(r.Angle)
}
