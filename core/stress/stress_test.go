package stress

import (
	"errors"
	"math"
	"testing"

	"mechsolver-core/calc"
)

func approx(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestNormalStress(t *testing.T) {
	s, err := Normal(1000, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	if s != 100000 {
		t.Errorf("stress = %v, want 1e5", s)
	}
}

func TestNormalStressZeroArea(t *testing.T) {
	_, err := Normal(1000, 0)
	if !errors.Is(err, calc.ErrDivisionByZero) {
		t.Fatalf("want ErrDivisionByZero, got %v", err)
	}
}

func TestStrainHooke(t *testing.T) {
	eps, err := StrainFromStress(200e6, 200e9)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(eps, 1e-3, 1e-15) {
		t.Errorf("strain = %v, want 1e-3", eps)
	}
}

// Trace invariance: sigma1 + sigma2 == sigmaX + sigmaY for any input.
func TestPrincipalTraceInvariance(t *testing.T) {
	cases := [][3]float64{
		{80e6, -40e6, 30e6},
		{0, 0, 50e6},
		{120e6, 120e6, 0},
		{-10e6, 25e6, -60e6},
	}
	for _, c := range cases {
		p, err := Principal(c[0], c[1], c[2])
		if err != nil {
			t.Fatal(err)
		}
		sum := p.Sigma1 + p.Sigma2
		trace := c[0] + c[1]
		if math.Abs(sum-trace) > 1e-3*math.Max(1, math.Abs(trace)) {
			t.Errorf("trace %v: sigma1+sigma2 = %v, want %v", c, sum, trace)
		}
		if p.Sigma1 < p.Sigma2 {
			t.Errorf("sigma1 < sigma2 for %v", c)
		}
	}
}

func TestPrincipalPureShear(t *testing.T) {
	p, err := Principal(0, 0, 40e6)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(p.Sigma1, 40e6, 1) || !approx(p.Sigma2, -40e6, 1) || !approx(p.TauMax, 40e6, 1) {
		t.Errorf("pure shear: %+v", p)
	}
}

func TestPrincipalNonFinite(t *testing.T) {
	_, err := Principal(math.Inf(1), 0, 0)
	if !errors.Is(err, calc.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestVonMisesUniaxial(t *testing.T) {
	// Uniaxial tension: von Mises equals the applied stress.
	v, err := VonMises(100e6, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(v, 100e6, 1) {
		t.Errorf("von mises = %v, want 1e8", v)
	}
}

func TestBeamDeflection(t *testing.T) {
	// Center point load: delta = PL^3/48EI, M = PL/4.
	r, err := BeamDeflection(1000, 2, 200e9, 1e-6, LoadPointCenter)
	if err != nil {
		t.Fatal(err)
	}
	wantD := 1000.0 * 8 / (48 * 200e9 * 1e-6)
	if !approx(r.MaxDeflection, wantD, 1e-12) {
		t.Errorf("deflection = %v, want %v", r.MaxDeflection, wantD)
	}
	if !approx(r.MaxMoment, 500, 1e-9) {
		t.Errorf("moment = %v, want 500", r.MaxMoment)
	}
	if _, err := BeamDeflection(1, 1, 1, 1, "triangular"); !errors.Is(err, calc.ErrInvalidInput) {
		t.Errorf("unknown load case: %v", err)
	}
}

func TestPressureVesselThinCylinder(t *testing.T) {
	v, err := PressureVessel(2e6, 0.5, 0.01, VesselThinCylinder)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(v.HoopStress, 100e6, 1) {
		t.Errorf("hoop = %v, want 1e8", v.HoopStress)
	}
	if !approx(v.LongitudinalStress, 50e6, 1) {
		t.Errorf("longitudinal = %v, want 5e7", v.LongitudinalStress)
	}
}

func TestPressureVesselSphere(t *testing.T) {
	v, err := PressureVessel(2e6, 0.5, 0.01, VesselSphere)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(v.HoopStress, 50e6, 1) || !approx(v.VonMisesStress, 50e6, 1) {
		t.Errorf("sphere: %+v", v)
	}
}

func TestFatigueInfiniteLife(t *testing.T) {
	r, err := Fatigue(FatigueInput{
		StressMax:        100e6,
		StressMin:        -100e6,
		UltimateStrength: 600e6,
		EnduranceLimit:   300e6,
	})
	if err != nil {
		t.Fatal(err)
	}
	if r.SafetyFactor <= 1 {
		t.Fatalf("safety factor = %v, want > 1", r.SafetyFactor)
	}
	if r.CyclesToFailure != 1e6 {
		t.Errorf("cycles = %v, want 1e6 (infinite life)", r.CyclesToFailure)
	}
	if !approx(r.MeanStress, 0, 1) || !approx(r.StressAmplitude, 100e6, 1) {
		t.Errorf("amplitude/mean: %+v", r)
	}
}

func TestThermalFullConstraint(t *testing.T) {
	r, err := Thermal(50, 12e-6, 200e9, ConstraintFull)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(r.Stress, -120e6, 1) {
		t.Errorf("thermal stress = %v, want -1.2e8", r.Stress)
	}
	if r.Strain != 0 {
		t.Errorf("full constraint strain = %v, want 0", r.Strain)
	}
}

func TestLaminaZeroAngle(t *testing.T) {
	// At 0° the transformed moduli reduce to the on-axis constants.
	p, err := Lamina(140e9, 10e9, 0.3, 5e9, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(p.Ex, 140e9, 1e3) || !approx(p.Ey, 10e9, 1e3) || !approx(p.NuXY, 0.3, 1e-9) {
		t.Errorf("on-axis lamina: %+v", p)
	}
}
