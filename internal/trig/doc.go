// Package trig evaluates and samples the six trigonometric functions for
// display.
//
// Every function is total. Near a pole, where a denominator falls below
// Epsilon in magnitude, the evaluator returns the Undefined sentinel and the
// sampler emits a Sample with OK unset, which marks a break in the plotted
// line. Plot coordinates live in a 360x100 space with row 50 as the axis.
package trig
