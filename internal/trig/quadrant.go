package trig

import "strconv"

// Quadrant is one of the four 90° ranges, numbered 1 to 4.
type Quadrant int

// QuadrantOf classifies an angle. Each boundary (0, 90, 180, 270) belongs to
// the quadrant that starts there, and 360 belongs to quadrant 4.
func QuadrantOf(deg int) Quadrant {
	switch {
	case deg < 90:
		return 1
	case deg < 180:
		return 2
	case deg < 270:
		return 3
	default:
		return 4
	}
}

func (q Quadrant) String() string {
	return "Q" + strconv.Itoa(int(q))
}
