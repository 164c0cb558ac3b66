package export

import (
	"image"
	"image/color"
	"image/gif"
	"io"

	"github.com/san-kum/trigviz/internal/trig"
)

// SweepFrames renders one frame per step from 0° to 360°, with the marker
// moving along fn's curve.
func SweepFrames(fn trig.Function, step int) []*image.Paletted {
	if step < 1 {
		step = 1
	}
	palette := color.Palette{background, axisColor, strokeRGB[fn], color.Black}
	bounds := image.Rect(0, 0, trig.PlotWidth, trig.PlotHeight)

	var frames []*image.Paletted
	for a := trig.MinAngle; a <= trig.MaxAngle; a += step {
		img := image.NewPaletted(bounds, palette)
		painter{img: img, scale: 1}.panel(fn, a)
		frames = append(frames, img)
	}
	return frames
}

// SweepGIF writes a looping animation of the marker sweeping over fn.
func SweepGIF(w io.Writer, fn trig.Function, step int) error {
	frames := SweepFrames(fn, step)
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 4)
	}
	return gif.EncodeAll(w, &anim)
}
