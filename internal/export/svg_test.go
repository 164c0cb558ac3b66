package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/trigviz/internal/trig"
)

func TestPathData_BreaksAtAsymptotes(t *testing.T) {
	d := PathData(trig.Curves(trig.Tan))

	if got := strings.Count(d, "M "); got != 3 {
		t.Errorf("expected 3 subpaths for tan, got %d", got)
	}
	if !strings.HasPrefix(d, "M 0 50 L 1 ") {
		t.Errorf("unexpected path start: %.20s", d)
	}
	if !strings.Contains(d, "L 89 10 M 91 90") {
		t.Error("expected a move across the 90° asymptote")
	}
	if strings.Contains(d, "L 90 ") || strings.Contains(d, "M 90 ") {
		t.Error("path should not contain a point at 90°")
	}
}

func TestPathData_Sin(t *testing.T) {
	d := PathData(trig.Curves(trig.Sin))
	if got := strings.Count(d, "M "); got != 1 {
		t.Errorf("expected a single subpath for sin, got %d", got)
	}
	if got := strings.Count(d, "L "); got != 360 {
		t.Errorf("expected 360 line commands, got %d", got)
	}
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := SVG(&buf, 90, trig.Functions()); err != nil {
		t.Fatalf("svg failed: %v", err)
	}
	out := buf.String()

	if got := strings.Count(out, "<path "); got != 6 {
		t.Errorf("expected 6 paths, got %d", got)
	}
	if !strings.Contains(out, `height="600"`) {
		t.Error("expected stacked document height 600")
	}
	if !strings.Contains(out, `<circle cx="90" cy="10" r="3" fill="blue"/>`) {
		t.Error("expected sin marker at the top of its plot")
	}
	if !strings.Contains(out, ">cosec</text>") {
		t.Error("expected cosec label")
	}
}

func TestNum(t *testing.T) {
	tests := map[float64]string{
		50:        "50",
		29.999999: "30",
		12.346:    "12.35",
		-0.001:    "0",
		10.5:      "10.5",
	}
	for in, want := range tests {
		if got := num(in); got != want {
			t.Errorf("num(%v): expected %s, got %s", in, want, got)
		}
	}
}
