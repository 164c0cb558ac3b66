package viz

import (
	"math"

	"github.com/san-kum/trigviz/internal/trig"
)

// Plot draws curves onto a braille canvas, scaling the 360x100 plot space
// to the canvas' dot grid.
type Plot struct {
	canvas *Canvas
}

func NewPlot(w, h int) *Plot {
	return &Plot{canvas: NewCanvas(w, h)}
}

func (p *Plot) Canvas() *Canvas { return p.canvas }

// project maps plot-space (degree, row) to dot coordinates.
func (p *Plot) project(x, y float64) (int, int) {
	w, h := p.canvas.Dots()
	px := int(math.Round(x * float64(w-1) / trig.PlotWidth))
	py := int(math.Round(y * float64(h-1) / trig.PlotHeight))
	return px, py
}

// Axis draws a dotted line along row 50.
func (p *Plot) Axis() {
	w, _ := p.canvas.Dots()
	_, py := p.project(0, trig.Midline)
	for x := 0; x < w; x += 3 {
		p.canvas.Set(x, py)
	}
}

// Curve draws c, joining consecutive defined samples. Nothing is drawn
// across a break.
func (p *Plot) Curve(c trig.Curve) {
	for _, seg := range c.Segments() {
		x0, y0 := p.project(float64(seg[0].X), seg[0].Y)
		p.canvas.Set(x0, y0)
		for _, s := range seg[1:] {
			x1, y1 := p.project(float64(s.X), s.Y)
			p.canvas.DrawLine(x0, y0, x1, y1)
			x0, y0 = x1, y1
		}
	}
}

// Marker draws the live marker for fn at angle.
func (p *Plot) Marker(fn trig.Function, angle int) {
	m := trig.Marker(fn, angle)
	x, y := p.project(m.X(), m.Y())
	p.canvas.Blot(x, y)
}

// Render draws the full plot for fn with its marker and returns the
// braille text.
func Render(fn trig.Function, angle, w, h int) string {
	p := NewPlot(w, h)
	p.Axis()
	p.Curve(trig.Curves(fn))
	p.Marker(fn, angle)
	return p.canvas.String()
}
