package quiz

import (
	"fmt"

	"github.com/san-kum/trigviz/internal/trig"
)

// Judgment is the verdict on one answer: the player claimed Function is
// positive at Angle.
type Judgment struct {
	Function trig.Function
	Angle    int
	Quadrant trig.Quadrant
	Correct  bool
}

// Judge checks whether fn is positive in the quadrant containing angle.
func Judge(fn trig.Function, angle int) Judgment {
	angle = trig.ClampAngle(angle)
	q := trig.QuadrantOf(angle)
	return Judgment{
		Function: fn,
		Angle:    angle,
		Quadrant: q,
		Correct:  trig.IsPositiveExpected(fn, q),
	}
}

// Message is the feedback line shown to the player.
func (j Judgment) Message() string {
	if j.Correct {
		return fmt.Sprintf("✅ Yes! %s is positive in Quadrant %d.", j.Function.Label(), int(j.Quadrant))
	}
	return fmt.Sprintf("❌ Nope! %s is not positive in Quadrant %d.", j.Function.Label(), int(j.Quadrant))
}

// Session keeps a running tally of answers. It is not safe for concurrent
// use.
type Session struct {
	answers []Judgment
	correct int
}

func NewSession() *Session {
	return &Session{}
}

// Answer judges fn at angle and records the result.
func (s *Session) Answer(fn trig.Function, angle int) Judgment {
	j := Judge(fn, angle)
	s.answers = append(s.answers, j)
	if j.Correct {
		s.correct++
	}
	return j
}

// Score returns the number of correct answers and the total answered.
func (s *Session) Score() (correct, total int) {
	return s.correct, len(s.answers)
}

// Last returns the most recent judgment, if any.
func (s *Session) Last() (Judgment, bool) {
	if len(s.answers) == 0 {
		return Judgment{}, false
	}
	return s.answers[len(s.answers)-1], true
}

// History returns a copy of every judgment in answer order.
func (s *Session) History() []Judgment {
	out := make([]Judgment, len(s.answers))
	copy(out, s.answers)
	return out
}

func (s *Session) Reset() {
	s.answers = s.answers[:0]
	s.correct = 0
}
