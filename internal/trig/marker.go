package trig

import "github.com/go-gl/mathgl/mgl64"

// MarkerY places the live marker for fn using the same transform as the
// sampler, so the marker sits on the drawn curve. ok is false when the
// reading is undefined; y is still the clamped row in that case.
func MarkerY(fn Function, r Reading) (y float64, ok bool) {
	v := r.Value(fn)
	if fn.Bounded() {
		return BoundedY(v.Float()), true
	}
	// the sentinel is +Inf, which clamps to the top edge
	return ClampedY(v.Float()), !v.IsInf()
}

// Marker returns the marker position in plot space for fn at deg.
func Marker(fn Function, deg int) mgl64.Vec2 {
	r := Evaluate(deg)
	y, _ := MarkerY(fn, r)
	return mgl64.Vec2{float64(r.Angle), y}
}
