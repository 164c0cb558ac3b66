package export

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/HugoSmits86/nativewebp"
	"github.com/san-kum/trigviz/internal/trig"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// supersample is the oversampling factor used before downscaling, which
// smooths the strokes.
const supersample = 2

// painter draws plot-space primitives onto any draw.Image.
type painter struct {
	img   draw.Image
	scale float64
	offY  int
}

func (p painter) point(x, y float64) (int, int) {
	return int(math.Round(x * p.scale)), p.offY + int(math.Round(y*p.scale))
}

func (p painter) disc(cx, cy, r int, c color.Color) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				p.img.Set(cx+dx, cy+dy, c)
			}
		}
	}
}

func (p painter) line(x0, y0, x1, y1, r int, c color.Color) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		p.disc(x0, y0, r, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// panel draws the axis, curve and marker of fn.
func (p painter) panel(fn trig.Function, angle int) {
	w := int(math.Round(trig.PlotWidth * p.scale))
	_, ay := p.point(0, trig.Midline)
	for x := 0; x < w; x++ {
		p.img.Set(x, ay, axisColor)
	}

	stroke := strokeRGB[fn]
	r := int(math.Max(1, math.Round(p.scale)))
	for _, seg := range trig.Curves(fn).Segments() {
		x0, y0 := p.point(float64(seg[0].X), seg[0].Y)
		for _, s := range seg[1:] {
			x1, y1 := p.point(float64(s.X), s.Y)
			p.line(x0, y0, x1, y1, r, stroke)
			x0, y0 = x1, y1
		}
	}

	m := trig.Marker(fn, angle)
	mx, my := p.point(m.X(), m.Y())
	p.disc(mx, my, int(math.Round(3*p.scale)), stroke)
}

// Raster renders the stacked plots at the given integer scale, where scale
// 1 gives one pixel per plot unit.
func Raster(angle int, fns []trig.Function, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	angle = trig.ClampAngle(angle)
	ss := scale * supersample
	panelH := trig.PlotHeight * ss

	big := image.NewNRGBA(image.Rect(0, 0, trig.PlotWidth*ss, panelH*len(fns)))
	draw.Draw(big, big.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	for i, fn := range fns {
		painter{img: big, scale: float64(ss), offY: i * panelH}.panel(fn, angle)
	}

	dst := image.NewRGBA(image.Rect(0, 0, trig.PlotWidth*scale, trig.PlotHeight*scale*len(fns)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), big, big.Bounds(), draw.Src, nil)

	for i, fn := range fns {
		d := font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(strokeRGB[fn]),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(5*scale, i*trig.PlotHeight*scale+15*scale),
		}
		d.DrawString(fn.Label())
	}
	return dst
}

// WebP encodes img losslessly.
func WebP(w io.Writer, img image.Image) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("webp encode: %w", err)
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
