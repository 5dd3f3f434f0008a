package output

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"mechsolver/pkg/api"

	"mechsolver-core/calc"
	"mechsolver-core/materials"
)

func TestToAPIPassThrough(t *testing.T) {
	res := calc.Result{
		calc.V("normal-stress", 1.0e7, "Pa"),
		calc.L("regime", "laminar"),
	}
	r, err := ToAPI("stress", "normal", res, UnitsSI)
	if err != nil {
		t.Fatalf("ToAPI: %v", err)
	}
	if r.Module != "stress" || r.Op != "normal" {
		t.Errorf("header = %s/%s", r.Module, r.Op)
	}
	if r.Values[0].Value != 1.0e7 || r.Values[0].Unit != "Pa" {
		t.Errorf("value = %+v", r.Values[0])
	}
	if r.Values[1].Label != "laminar" {
		t.Errorf("label = %+v", r.Values[1])
	}
}

func TestToAPIImperial(t *testing.T) {
	res := calc.Result{
		calc.V("pressure", 6894.757, "Pa"),
		calc.V("ratio", 2.5, ""),
		calc.V("speed", 1200, "rpm"),
	}
	r, err := ToAPI("fluids", "x", res, UnitsImperial)
	if err != nil {
		t.Fatalf("ToAPI: %v", err)
	}
	if r.Values[0].Unit != "psi" || math.Abs(r.Values[0].Value-1) > 1e-4 {
		t.Errorf("pressure = %+v, want ~1 psi", r.Values[0])
	}
	// Dimensionless and unit-less-counterpart values pass through.
	if r.Values[1].Value != 2.5 || r.Values[1].Unit != "" {
		t.Errorf("ratio = %+v", r.Values[1])
	}
	if r.Values[2].Unit != "rpm" || r.Values[2].Value != 1200 {
		t.Errorf("rpm = %+v", r.Values[2])
	}
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, FormatText, true)
	err := w.WriteResult(api.ResultV1{
		Module: "fluids", Op: "reynolds",
		Values: []api.ValueV1{
			{Name: "reynolds-number", Value: 200000},
			{Name: "regime", Label: "turbulent"},
		},
	})
	if err != nil {
		t.Fatalf("WriteResult: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "# fluids/reynolds") {
		t.Errorf("missing header in %q", out)
	}
	if !strings.Contains(out, "200000") || !strings.Contains(out, "turbulent") {
		t.Errorf("missing values in %q", out)
	}
}

func TestTextWriterNoHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, FormatText, false)
	if err := w.WriteResult(api.ResultV1{Module: "m", Op: "o"}); err != nil {
		t.Fatalf("WriteResult: %v", err)
	}
	if strings.Contains(buf.String(), "#") {
		t.Errorf("unexpected header in %q", buf.String())
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, FormatJSON, true)
	err := w.WriteResult(api.ResultV1{
		Module: "stress", Op: "normal",
		Values: []api.ValueV1{{Name: "normal-stress", Value: 1e7, Unit: "Pa"}},
	})
	if err != nil {
		t.Fatalf("WriteResult: %v", err)
	}
	var r api.ResultV1
	if err := json.Unmarshal(buf.Bytes(), &r); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if r.Values[0].Unit != "Pa" {
		t.Errorf("unit = %q", r.Values[0].Unit)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("expected indented JSON")
	}
}

func TestWriteMaterialsText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMaterials(&buf, materials.Builtin(), FormatText); err != nil {
		t.Fatalf("WriteMaterials: %v", err)
	}
	if !strings.Contains(buf.String(), "STEEL_1045") {
		t.Errorf("missing builtin code in %q", buf.String())
	}
}

func TestWriteMaterialsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMaterials(&buf, materials.Builtin(), FormatJSON); err != nil {
		t.Fatalf("WriteMaterials: %v", err)
	}
	var list []api.MaterialV1
	if err := json.Unmarshal(buf.Bytes(), &list); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if len(list) < 5 {
		t.Errorf("got %d records, want the builtin five", len(list))
	}
}
