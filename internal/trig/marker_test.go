package trig_test

import (
	"github.com/go-gl/mathgl/mgl64"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trigviz/internal/trig"
)

var _ = Describe("Marker", func() {
	It("lands on the sampled curve at every angle", func() {
		for _, fn := range trig.Functions() {
			c := trig.SampleCurve(fn)
			for a := 0; a <= 360; a++ {
				y, ok := trig.MarkerY(fn, trig.Evaluate(a))
				Expect(ok).To(Equal(c[a].OK), "%s at %d", fn, a)
				if ok {
					Expect(y).To(Equal(c[a].Y), "%s at %d", fn, a)
				}
			}
		}
	})

	It("pins an undefined reading to the top edge", func() {
		y, ok := trig.MarkerY(trig.Tan, trig.Evaluate(90))
		Expect(ok).To(BeFalse())
		Expect(y).To(Equal(10.0))
	})

	It("returns plot-space coordinates", func() {
		p := trig.Marker(trig.Sin, 90)
		Expect(mgl64.FloatEqualThreshold(p.X(), 90, 1e-9)).To(BeTrue())
		Expect(mgl64.FloatEqualThreshold(p.Y(), 10, 1e-9)).To(BeTrue())
	})
})

var _ = Describe("IsPositiveExpected", func() {
	DescribeTable("sign table",
		func(fn trig.Function, q trig.Quadrant, want bool) {
			Expect(trig.IsPositiveExpected(fn, q)).To(Equal(want))
		},
		Entry("sin in Q2", trig.Sin, trig.Quadrant(2), true),
		Entry("tan in Q2", trig.Tan, trig.Quadrant(2), false),
		Entry("cos in Q4", trig.Cos, trig.Quadrant(4), true),
		Entry("csc in Q2", trig.Csc, trig.Quadrant(2), true),
		Entry("cot in Q3", trig.Cot, trig.Quadrant(3), true),
		Entry("sec in Q3", trig.Sec, trig.Quadrant(3), false),
		Entry("unknown quadrant", trig.Sin, trig.Quadrant(5), false),
	)

	It("marks all six positive in Q1", func() {
		Expect(trig.PositiveIn(1)).To(Equal(trig.Functions()))
	})

	It("agrees with the evaluated signs in the open interior", func() {
		for a := 1; a < 360; a++ {
			if a%90 == 0 {
				continue
			}
			r := trig.Evaluate(a)
			for _, fn := range trig.Functions() {
				v := r.Value(fn)
				if v.IsInf() {
					continue
				}
				Expect(v.Float() > 0).To(Equal(trig.IsPositiveExpected(fn, r.Quadrant())), "%s at %d", fn, a)
			}
		}
	})
})
