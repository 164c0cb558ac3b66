package trig

import "github.com/scylladb/go-set/strset"

var positive = map[Quadrant]*strset.Set{
	1: strset.New(Sin.String(), Cos.String(), Tan.String(), Cot.String(), Sec.String(), Csc.String()),
	2: strset.New(Sin.String(), Csc.String()),
	3: strset.New(Tan.String(), Cot.String()),
	4: strset.New(Cos.String(), Sec.String()),
}

// IsPositiveExpected reports whether fn is positive throughout quadrant q.
func IsPositiveExpected(fn Function, q Quadrant) bool {
	set, ok := positive[q]
	if !ok {
		return false
	}
	return set.Has(fn.String())
}

// PositiveIn lists the functions positive in q, in display order.
func PositiveIn(q Quadrant) []Function {
	var out []Function
	for _, fn := range order {
		if IsPositiveExpected(fn, q) {
			out = append(out, fn)
		}
	}
	return out
}
