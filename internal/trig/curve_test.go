package trig_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trigviz/internal/trig"
)

var _ = Describe("SampleCurve", func() {
	It("has one sample per degree", func() {
		for _, fn := range trig.Functions() {
			c := trig.SampleCurve(fn)
			Expect(c).To(HaveLen(361))
			for i, s := range c {
				Expect(s.X).To(Equal(i))
			}
		}
	})

	It("breaks tan exactly at 90° and 270°", func() {
		Expect(trig.SampleCurve(trig.Tan).Breaks()).To(Equal([]int{90, 270}))
		Expect(trig.SampleCurve(trig.Sec).Breaks()).To(Equal([]int{90, 270}))
	})

	It("breaks cot and csc at 0°, 180° and 360°", func() {
		Expect(trig.SampleCurve(trig.Cot).Breaks()).To(Equal([]int{0, 180, 360}))
		Expect(trig.SampleCurve(trig.Csc).Breaks()).To(Equal([]int{0, 180, 360}))
	})

	It("never breaks sin or cos", func() {
		Expect(trig.SampleCurve(trig.Sin).Breaks()).To(BeEmpty())
		Expect(trig.SampleCurve(trig.Cos).Breaks()).To(BeEmpty())
	})

	It("keeps every defined row inside [10, 90]", func() {
		for _, fn := range trig.Functions() {
			for _, s := range trig.SampleCurve(fn) {
				if !s.OK {
					continue
				}
				Expect(s.Y).To(BeNumerically(">=", 10), "%s at %d", fn, s.X)
				Expect(s.Y).To(BeNumerically("<=", 90), "%s at %d", fn, s.X)
			}
		}
	})

	It("clamps tan next to its asymptote", func() {
		c := trig.SampleCurve(trig.Tan)
		Expect(c[89].Y).To(Equal(10.0))
		Expect(c[91].Y).To(Equal(90.0))
	})

	It("maps sin onto rows 10 to 90", func() {
		c := trig.SampleCurve(trig.Sin)
		Expect(c[0].Y).To(BeNumerically("~", 50, 1e-9))
		Expect(c[90].Y).To(BeNumerically("~", 10, 1e-9))
		Expect(c[270].Y).To(BeNumerically("~", 90, 1e-9))
	})

	It("is idempotent", func() {
		for _, fn := range trig.Functions() {
			Expect(trig.SampleCurve(fn)).To(Equal(trig.SampleCurve(fn)))
		}
	})

	It("memoizes without sharing storage", func() {
		a := trig.Curves(trig.Tan)
		Expect(a).To(Equal(trig.SampleCurve(trig.Tan)))
		a[0].Y = -1
		Expect(trig.Curves(trig.Tan)[0].Y).NotTo(Equal(-1.0))
	})
})

var _ = Describe("Curve", func() {
	It("splits tan into three segments", func() {
		segs := trig.SampleCurve(trig.Tan).Segments()
		Expect(segs).To(HaveLen(3))
		Expect(segs[0][0].X).To(Equal(0))
		Expect(segs[0][len(segs[0])-1].X).To(Equal(89))
		Expect(segs[1][0].X).To(Equal(91))
		Expect(segs[2][len(segs[2])-1].X).To(Equal(360))
	})

	It("encodes breaks as NaN", func() {
		v := trig.SampleCurve(trig.Cot).Values()
		Expect(v[0]).To(Satisfy(math.IsNaN))
		Expect(v[180]).To(Satisfy(math.IsNaN))
		Expect(v[45]).To(BeNumerically("~", 30, 1e-9))
	})
})
