// Package export writes the plots to files: SVG documents, WebP images, GIF
// sweeps of the marker and JSON snapshots.
//
// All exporters share the 360x100 plot space and one stroke color per
// function: blue, green, orange, purple, teal and red in display order.
package export
