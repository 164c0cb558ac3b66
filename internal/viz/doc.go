// Package viz provides the terminal explorer for the trigonometric
// functions.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: the explorer, an angle slider driving readouts, plots and the
//     sign quiz
//   - [Canvas]: Braille-based dot canvas the plots are drawn on
//   - [Plot]: maps the 360x100 plot space onto a canvas, breaking curves at
//     asymptotes
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	h/l, ←/→       - Move the angle by one step
//	H/L, j/k, ↓/↑  - Move the angle by a big step
//	0/$            - Jump to 0° or 360°
//	p              - Cycle preset angles
//	1-6            - Answer the quiz for sin, cos, tan, sec, cosec, cot
//	r              - Reset the quiz score
//	t              - Cycle color themes
//	?              - Toggle help overlay
//	q, esc         - Quit
package viz
