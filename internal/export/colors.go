package export

import (
	"image/color"

	"github.com/san-kum/trigviz/internal/trig"
)

// Stroke colors per function, as CSS names and as RGB.
var (
	strokeNames = map[trig.Function]string{
		trig.Sin: "blue",
		trig.Cos: "green",
		trig.Tan: "orange",
		trig.Sec: "purple",
		trig.Csc: "teal",
		trig.Cot: "red",
	}

	strokeRGB = map[trig.Function]color.NRGBA{
		trig.Sin: {0x00, 0x00, 0xff, 0xff},
		trig.Cos: {0x00, 0x80, 0x00, 0xff},
		trig.Tan: {0xff, 0xa5, 0x00, 0xff},
		trig.Sec: {0x80, 0x00, 0x80, 0xff},
		trig.Csc: {0x00, 0x80, 0x80, 0xff},
		trig.Cot: {0xff, 0x00, 0x00, 0xff},
	}

	background = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	axisColor  = color.NRGBA{0xcc, 0xcc, 0xcc, 0xff}
)
