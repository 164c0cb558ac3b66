package export

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/san-kum/trigviz/internal/trig"
)

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, 90, trig.Functions(), true); err != nil {
		t.Fatalf("json failed: %v", err)
	}

	var doc struct {
		Angle    int                   `json:"angle"`
		Quadrant int                   `json:"quadrant"`
		Values   map[string]string     `json:"values"`
		Raw      map[string]*float64   `json:"raw"`
		Positive []string              `json:"positive"`
		Markers  map[string]Point      `json:"markers"`
		Curves   map[string][]*float64 `json:"curves"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if doc.Quadrant != 2 {
		t.Errorf("expected quadrant 2, got %d", doc.Quadrant)
	}
	if doc.Values["tan"] != trig.InfSymbol {
		t.Errorf("expected tan %s, got %s", trig.InfSymbol, doc.Values["tan"])
	}
	if doc.Values["csc"] != "1.00" {
		t.Errorf("expected csc 1.00, got %s", doc.Values["csc"])
	}
	if raw, ok := doc.Raw["tan"]; !ok || raw != nil {
		t.Error("expected null raw tan at 90°")
	}
	if doc.Raw["sin"] == nil || *doc.Raw["sin"] != 1 {
		t.Error("expected raw sin 1 at 90°")
	}
	if doc.Markers["tan"].Defined {
		t.Error("expected tan marker undefined at 90°")
	}
	if len(doc.Positive) != 2 {
		t.Errorf("expected sin and csc positive, got %v", doc.Positive)
	}
	if doc.Curves["tan"][90] != nil {
		t.Error("expected null tan sample at 90°")
	}
	if doc.Curves["sin"][90] == nil || *doc.Curves["sin"][90] != 10 {
		t.Error("expected sin sample 10 at 90°")
	}
}

func TestNewDocument_WithoutCurves(t *testing.T) {
	doc := NewDocument(45, []trig.Function{trig.Sin}, false)
	if doc.Curves != nil {
		t.Error("expected no curves")
	}
	if len(doc.Values) != 1 {
		t.Errorf("expected 1 value, got %d", len(doc.Values))
	}
}

func TestJSON_RawIsNumeric(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, 30, []trig.Function{trig.Cos}, false); err != nil {
		t.Fatalf("json failed: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, ok := doc["values"].(map[string]any)["cos"].(string); !ok {
		t.Error("expected formatted cos value as a string")
	}
	raw, ok := doc["raw"].(map[string]any)["cos"].(float64)
	if !ok {
		t.Fatalf("expected raw cos as a number, got %T", doc["raw"].(map[string]any)["cos"])
	}
	if math.Abs(raw-math.Sqrt(3)/2) > 1e-12 {
		t.Errorf("expected raw cos(30°) = %v, got %v", math.Sqrt(3)/2, raw)
	}
}
