package trig

import "errors"

// ErrUnknownFunction is returned when a name does not match any of the six
// trigonometric functions.
var ErrUnknownFunction = errors.New("trig: unknown function")
