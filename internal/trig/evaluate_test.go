package trig_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trigviz/internal/trig"
)

var _ = Describe("Evaluate", func() {
	It("matches math.Sin at every whole degree", func() {
		for a := 0; a <= 360; a++ {
			want := math.Sin(float64(a) * math.Pi / 180)
			Expect(trig.Evaluate(a).Sin.Float()).To(BeNumerically("~", want, 1e-12))
		}
	})

	It("satisfies sin(360-a) = -sin(a)", func() {
		for a := 0; a <= 360; a++ {
			s := trig.Evaluate(a).Sin.Float()
			r := trig.Evaluate(360 - a).Sin.Float()
			Expect(r).To(BeNumerically("~", -s, 1e-12))
		}
	})

	DescribeTable("standard angles",
		func(angle int, sin, cos string) {
			r := trig.Evaluate(angle)
			Expect(r.Sin.String()).To(Equal(sin))
			Expect(r.Cos.String()).To(Equal(cos))
		},
		Entry("0°", 0, "0.00", "1.00"),
		Entry("30°", 30, "0.50", "0.87"),
		Entry("45°", 45, "0.71", "0.71"),
		Entry("60°", 60, "0.87", "0.50"),
		Entry("90°", 90, "1.00", "0.00"),
		Entry("180°", 180, "0.00", "-1.00"),
		Entry("270°", 270, "-1.00", "0.00"),
	)

	It("rounds tan at 45° to 1", func() {
		Expect(trig.Evaluate(45).Tan.Rounded()).To(Equal(1.0))
	})

	Context("at 90°", func() {
		r := trig.Evaluate(90)

		It("leaves tan and sec undefined", func() {
			Expect(r.Tan.IsInf()).To(BeTrue())
			Expect(r.Sec.IsInf()).To(BeTrue())
			Expect(r.Tan.String()).To(Equal(trig.InfSymbol))
		})

		It("keeps cot and csc finite", func() {
			Expect(r.Cot.IsInf()).To(BeFalse())
			Expect(r.Csc.IsInf()).To(BeFalse())
			Expect(r.Cot.Float()).To(BeNumerically("~", 0, 1e-9))
			Expect(r.Csc.Float()).To(BeNumerically("~", 1, 1e-9))
		})
	})

	Context("at 0°", func() {
		r := trig.Evaluate(0)

		It("leaves cot and csc undefined", func() {
			Expect(r.Cot.IsInf()).To(BeTrue())
			Expect(r.Csc.IsInf()).To(BeTrue())
		})

		It("keeps tan and sec finite", func() {
			Expect(r.Tan.Float()).To(BeNumerically("~", 0, 1e-9))
			Expect(r.Sec.Float()).To(BeNumerically("~", 1, 1e-9))
		})
	})

	It("treats 180° and 360° as poles of cot and csc", func() {
		for _, a := range []int{180, 360} {
			r := trig.Evaluate(a)
			Expect(r.Cot.IsInf()).To(BeTrue(), "cot at %d", a)
			Expect(r.Csc.IsInf()).To(BeTrue(), "csc at %d", a)
		}
	})

	It("clamps angles outside 0..360", func() {
		Expect(trig.Evaluate(-15).Angle).To(Equal(0))
		Expect(trig.Evaluate(400).Angle).To(Equal(360))
	})
})

var _ = Describe("QuadrantOf", func() {
	DescribeTable("boundaries",
		func(angle int, want trig.Quadrant) {
			Expect(trig.QuadrantOf(angle)).To(Equal(want))
		},
		Entry("0°", 0, trig.Quadrant(1)),
		Entry("89°", 89, trig.Quadrant(1)),
		Entry("90°", 90, trig.Quadrant(2)),
		Entry("179°", 179, trig.Quadrant(2)),
		Entry("180°", 180, trig.Quadrant(3)),
		Entry("269°", 269, trig.Quadrant(3)),
		Entry("270°", 270, trig.Quadrant(4)),
		Entry("360°", 360, trig.Quadrant(4)),
	)
})
