package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/trigviz/internal/trig"
)

// PathData builds SVG path data for a curve. Each run of defined samples
// starts with a move so the path never crosses an asymptote.
func PathData(c trig.Curve) string {
	var sb strings.Builder
	for _, seg := range c.Segments() {
		for i, s := range seg {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			cmd := "L"
			if i == 0 {
				cmd = "M"
			}
			fmt.Fprintf(&sb, "%s %d %s", cmd, s.X, num(s.Y))
		}
	}
	return sb.String()
}

// PanelSVG renders one function's plot with its marker at angle. offsetY
// positions the panel inside a larger document.
func PanelSVG(fn trig.Function, angle int, offsetY int) string {
	m := trig.Marker(fn, angle)
	stroke := strokeNames[fn]

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg y="%d" width="%d" height="%d">`+"\n", offsetY, trig.PlotWidth, trig.PlotHeight)
	fmt.Fprintf(&sb, `<path d="%s" stroke="%s" stroke-width="2" fill="none"/>`+"\n", PathData(trig.Curves(fn)), stroke)
	fmt.Fprintf(&sb, `<circle cx="%s" cy="%s" r="3" fill="%s"/>`+"\n", num(m.X()), num(m.Y()), stroke)
	fmt.Fprintf(&sb, `<text x="5" y="15" font-size="12" fill="%s">%s</text>`+"\n", stroke, fn.Label())
	sb.WriteString("</svg>\n")
	return sb.String()
}

// SVG writes a document with one stacked panel per function.
func SVG(w io.Writer, angle int, fns []trig.Function) error {
	angle = trig.ClampAngle(angle)
	height := trig.PlotHeight * len(fns)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, trig.PlotWidth, height, trig.PlotWidth, height)
	for i, fn := range fns {
		sb.WriteString(PanelSVG(fn, angle, i*trig.PlotHeight))
	}
	sb.WriteString("</svg>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// num formats a coordinate with at most two decimals and no trailing zeros.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
