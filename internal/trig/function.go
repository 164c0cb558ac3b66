package trig

import (
	"fmt"
	"strings"
)

// Function identifies one of the six trigonometric functions.
type Function int

const (
	Sin Function = iota
	Cos
	Tan
	Cot
	Sec
	Csc
)

var order = [...]Function{Sin, Cos, Tan, Sec, Csc, Cot}

// Functions lists every function in the order the plots and quiz buttons
// are laid out. Each call returns a new slice.
func Functions() []Function {
	out := make([]Function, len(order))
	copy(out, order[:])
	return out
}

var names = [...]string{
	Sin: "sin",
	Cos: "cos",
	Tan: "tan",
	Cot: "cot",
	Sec: "sec",
	Csc: "csc",
}

func (f Function) String() string {
	if f < Sin || f > Csc {
		return fmt.Sprintf("Function(%d)", int(f))
	}
	return names[f]
}

// Label is the name shown next to plots and in quiz feedback. Cosecant is
// spelled out as "cosec" there.
func (f Function) Label() string {
	if f == Csc {
		return "cosec"
	}
	return f.String()
}

// Bounded reports whether the function's range is [-1, 1] and so needs no
// clamping or singularity handling.
func (f Function) Bounded() bool {
	return f == Sin || f == Cos
}

// ParseFunction resolves a function name. Matching is case-insensitive and
// accepts "cosec" for csc.
func ParseFunction(name string) (Function, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "cosec" {
		return Csc, nil
	}
	for f, s := range names {
		if s == n {
			return Function(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
}

// ParseFunctions resolves a list of names, preserving order.
func ParseFunctions(list []string) ([]Function, error) {
	fns := make([]Function, 0, len(list))
	for _, name := range list {
		fn, err := ParseFunction(name)
		if err != nil {
			return nil, err
		}
		fns = append(fns, fn)
	}
	return fns, nil
}
