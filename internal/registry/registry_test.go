package registry

import (
	"errors"
	"math"
	"testing"

	"mechsolver-core/calc"
	"mechsolver-core/materials"
)

func findOp(t *testing.T, module, op string) *Op {
	t.Helper()
	_, o, err := Find(Catalog(materials.Builtin()), module, op)
	if err != nil {
		t.Fatalf("Find(%s, %s): %v", module, op, err)
	}
	return o
}

func TestExecuteReynolds(t *testing.T) {
	op := findOp(t, "fluids", "reynolds")
	res, err := Execute(op, Inputs{Numbers: map[string]float64{
		"density":   1000,
		"velocity":  2,
		"length":    0.1,
		"viscosity": 0.001,
	}})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := res[0].Quantity.Value; got != 200000 {
		t.Errorf("Re = %g, want 200000", got)
	}
	if res[1].Label != "turbulent" {
		t.Errorf("regime = %q, want turbulent", res[1].Label)
	}
}

func TestExecuteMissingParam(t *testing.T) {
	op := findOp(t, "stress", "normal")
	_, err := Execute(op, Inputs{Numbers: map[string]float64{"force": 100}})
	if !errors.Is(err, calc.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestExecuteUnknownParam(t *testing.T) {
	op := findOp(t, "stress", "normal")
	_, err := Execute(op, Inputs{Numbers: map[string]float64{
		"force": 100, "area": 0.01, "bogus": 1,
	}})
	if !errors.Is(err, calc.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestExecuteDefaults(t *testing.T) {
	op := findOp(t, "kinematics", "projectile")
	res, err := Execute(op, Inputs{Numbers: map[string]float64{
		"velocity": 20, "angle": 45,
	}})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	// R = v² sin(2θ)/g for launch at ground level.
	wantRange := 20 * 20 / 9.81
	var gotRange float64
	for _, v := range res {
		if v.Name == "range" {
			gotRange = v.Quantity.Value
		}
	}
	if math.Abs(gotRange-wantRange) > 1e-6 {
		t.Errorf("range = %g, want %g", gotRange, wantRange)
	}
}

func TestExecuteChoiceValidation(t *testing.T) {
	op := findOp(t, "kinematics", "cam-lift")
	_, err := Execute(op, Inputs{
		Numbers: map[string]float64{"base-radius": 0.05, "lift": 0.01, "angle": 90},
		Strings: map[string]string{"profile": "triangular"},
	})
	if !errors.Is(err, calc.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestExecuteStringDefault(t *testing.T) {
	op := findOp(t, "machine", "belt-drive")
	res, err := Execute(op, Inputs{Numbers: map[string]float64{
		"power": 5, "driver-speed": 1440, "driven-speed": 480, "center-distance": 0.8,
	}})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(res) == 0 {
		t.Fatal("empty result")
	}
}

func TestExecuteGearTrainTeethList(t *testing.T) {
	op := findOp(t, "kinematics", "gear-train")
	res, err := Execute(op, Inputs{
		Numbers: map[string]float64{"input-speed": 1200},
		Strings: map[string]string{"teeth": "20, 40, 10, 30"},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := res[0].Quantity.Value; got != 6 {
		t.Errorf("ratio = %g, want 6", got)
	}

	if _, err := Execute(op, Inputs{
		Numbers: map[string]float64{"input-speed": 1200},
		Strings: map[string]string{"teeth": "20,x"},
	}); !errors.Is(err, calc.ErrInvalidInput) {
		t.Errorf("bad teeth err = %v, want ErrInvalidInput", err)
	}
}

func TestExecuteMaterialNotFound(t *testing.T) {
	op := findOp(t, "materials", "lookup")
	_, err := Execute(op, Inputs{Strings: map[string]string{"material": "UNOBTAINIUM"}})
	if !errors.Is(err, materials.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestExecuteMaterialCodeNormalized(t *testing.T) {
	op := findOp(t, "materials", "lookup")
	res, err := Execute(op, Inputs{Strings: map[string]string{"material": "steel-1045"}})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res[0].Label == "" {
		t.Error("expected material name label")
	}
}

func TestFindErrors(t *testing.T) {
	mods := Catalog(materials.Builtin())
	if _, _, err := Find(mods, "optics", "snell"); !errors.Is(err, calc.ErrInvalidInput) {
		t.Errorf("unknown module err = %v", err)
	}
	if _, _, err := Find(mods, "fluids", "snell"); !errors.Is(err, calc.ErrInvalidInput) {
		t.Errorf("unknown op err = %v", err)
	}
}

func TestFilterTermux(t *testing.T) {
	mods := Filter(Catalog(materials.Builtin()), ModeTermux)
	for _, m := range mods {
		for _, op := range m.Ops {
			if !op.Lite {
				t.Errorf("%s/%s leaked into termux profile", m.Name, op.Name)
			}
		}
	}
	if _, _, err := Find(mods, "stress", "lamina"); err == nil {
		t.Error("lamina should not be in the termux profile")
	}
	if _, _, err := Find(mods, "machine", "gear-design"); err != nil {
		t.Errorf("gear-design missing from termux profile: %v", err)
	}
}

func TestCatalogParamSpecsAreComplete(t *testing.T) {
	for _, m := range Catalog(materials.Builtin()) {
		seen := map[string]bool{}
		if len(m.Ops) == 0 {
			t.Errorf("module %s has no operations", m.Name)
		}
		for _, op := range m.Ops {
			if seen[op.Name] {
				t.Errorf("%s/%s declared twice", m.Name, op.Name)
			}
			seen[op.Name] = true
			if op.Run == nil {
				t.Errorf("%s/%s has no runner", m.Name, op.Name)
			}
			names := map[string]bool{}
			for _, p := range op.Params {
				if names[p.Name] {
					t.Errorf("%s/%s repeats param %q", m.Name, op.Name, p.Name)
				}
				names[p.Name] = true
			}
		}
	}
}
