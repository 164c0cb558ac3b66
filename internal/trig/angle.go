package trig

import "math"

const (
	// Epsilon is the denominator magnitude below which a value is treated
	// as undefined. It is shared by the evaluator, the sampler and the
	// marker so all three agree on where the poles are.
	Epsilon = 1e-4

	MinAngle = 0
	MaxAngle = 360
)

// Radians converts degrees to radians as degrees*π/180.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ClampAngle restricts an angle to [0, 360].
func ClampAngle(deg int) int {
	if deg < MinAngle {
		return MinAngle
	}
	if deg > MaxAngle {
		return MaxAngle
	}
	return deg
}

func nearZero(d float64) bool {
	return math.Abs(d) < Epsilon
}
