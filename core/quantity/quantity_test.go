package quantity

import (
	"errors"
	"math"
	"testing"
)

func close(a, b float64) bool {
	if a == b {
		return true
	}
	den := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b)/den < 1e-9
}

func TestConvertKnownValues(t *testing.T) {
	cases := []struct {
		v        float64
		from, to string
		want     float64
	}{
		{1, "m", "ft", 3.280839895013123},
		{100, "degC", "degF", 212},
		{32, "degF", "degC", 0},
		{1, "Pa", "psi", 1.4503773773e-4},
		{10, "N", "lbf", 2.2480894309971046},
	}
	for _, c := range cases {
		got, err := Convert(c.v, c.from, c.to)
		if err != nil {
			t.Fatalf("Convert(%v,%s,%s): %v", c.v, c.from, c.to, err)
		}
		if !close(got, c.want) {
			t.Errorf("Convert(%v,%s,%s) = %v, want %v", c.v, c.from, c.to, got, c.want)
		}
	}
}

// Round trip SI -> Imperial -> SI for every tabulated pair.
func TestConvertRoundTrip(t *testing.T) {
	for _, si := range SIPairs() {
		imp, ok := Imperial(si)
		if !ok {
			t.Fatalf("no imperial counterpart for %s", si)
		}
		const x = 123.456
		there, err := Convert(x, si, imp)
		if err != nil {
			t.Fatalf("%s -> %s: %v", si, imp, err)
		}
		back, err := Convert(there, imp, si)
		if err != nil {
			t.Fatalf("%s -> %s: %v", imp, si, err)
		}
		if !close(back, x) {
			t.Errorf("%s round trip: got %v want %v", si, back, x)
		}
	}
}

func TestConvertIdentity(t *testing.T) {
	got, err := Convert(42, "Pa", "Pa")
	if err != nil || got != 42 {
		t.Fatalf("identity conversion: got %v, %v", got, err)
	}
}

func TestConvertUnsupported(t *testing.T) {
	_, err := Convert(1, "m", "psi")
	if !errors.Is(err, ErrUnsupportedUnit) {
		t.Fatalf("want ErrUnsupportedUnit, got %v", err)
	}
}

func TestQuantityString(t *testing.T) {
	q := Quantity{Value: 2.5, Unit: "m/s"}
	if q.String() != "2.5 m/s" {
		t.Errorf("String() = %q", q.String())
	}
	if (Quantity{Value: 3}).String() != "3" {
		t.Errorf("unitless String() = %q", Quantity{Value: 3}.String())
	}
}
