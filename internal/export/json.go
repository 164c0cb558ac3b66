package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/trigviz/internal/trig"
)

type Point struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Defined bool    `json:"defined"`
}

// Document is the full state for one angle.
//
// Values holds the readouts as displayed: strings with two decimals, or "∞"
// where the function is undefined. Raw holds the same values as unrounded
// numbers, null where undefined. Curve entries are null at breaks.
type Document struct {
	Angle    int                   `json:"angle"`
	Quadrant int                   `json:"quadrant"`
	Values   map[string]trig.Value `json:"values"`
	Raw      map[string]*float64   `json:"raw"`
	Positive []string              `json:"positive"`
	Markers  map[string]Point      `json:"markers"`
	Curves   map[string][]*float64 `json:"curves,omitempty"`
}

// NewDocument builds the export for angle. Curves are included only when
// withCurves is set.
func NewDocument(angle int, fns []trig.Function, withCurves bool) Document {
	r := trig.Evaluate(angle)
	doc := Document{
		Angle:    r.Angle,
		Quadrant: int(r.Quadrant()),
		Values:   make(map[string]trig.Value, len(fns)),
		Raw:      make(map[string]*float64, len(fns)),
		Markers:  make(map[string]Point, len(fns)),
	}
	for _, fn := range trig.PositiveIn(r.Quadrant()) {
		doc.Positive = append(doc.Positive, fn.String())
	}
	if withCurves {
		doc.Curves = make(map[string][]*float64, len(fns))
	}

	for _, fn := range fns {
		name := fn.String()
		v := r.Value(fn)
		doc.Values[name] = v
		doc.Raw[name] = nil
		if !v.IsInf() {
			f := v.Float()
			doc.Raw[name] = &f
		}
		y, ok := trig.MarkerY(fn, r)
		doc.Markers[name] = Point{X: float64(r.Angle), Y: y, Defined: ok}
		if withCurves {
			doc.Curves[name] = curvePoints(trig.Curves(fn))
		}
	}
	return doc
}

func curvePoints(c trig.Curve) []*float64 {
	out := make([]*float64, len(c))
	for i := range c {
		if c[i].OK {
			y := c[i].Y
			out[i] = &y
		}
	}
	return out
}

// JSON writes the document for angle with indentation.
func JSON(w io.Writer, angle int, fns []trig.Function, withCurves bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(angle, fns, withCurves))
}
