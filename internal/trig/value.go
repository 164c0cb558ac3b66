package trig

import (
	"math"
	"strconv"
)

// InfSymbol is how an undefined value is displayed.
const InfSymbol = "∞"

// Value is a function value that is either finite or the undefined
// sentinel.
type Value struct {
	v   float64
	inf bool
}

// Finite wraps a finite value.
func Finite(v float64) Value { return Value{v: v} }

// Undefined is the sentinel used near a pole.
func Undefined() Value { return Value{inf: true} }

// IsInf reports whether v is the undefined sentinel.
func (v Value) IsInf() bool { return v.inf }

// Float returns the raw value, or +Inf for the sentinel.
func (v Value) Float() float64 {
	if v.inf {
		return math.Inf(1)
	}
	return v.v
}

// Rounded returns the value rounded to two decimals. The sentinel is
// returned as +Inf, never rounded.
func (v Value) Rounded() float64 {
	if v.inf {
		return math.Inf(1)
	}
	return round2(v.v)
}

func (v Value) String() string {
	if v.inf {
		return InfSymbol
	}
	return strconv.FormatFloat(v.Rounded(), 'f', 2, 64)
}

// MarshalText renders the value as it is displayed, which keeps the
// sentinel representable in JSON.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		// drop negative zero so -0.001 prints as 0.00
		return 0
	}
	return r
}
