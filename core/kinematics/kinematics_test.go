package kinematics

import (
	"errors"
	"math"
	"testing"

	"mechsolver-core/calc"
)

func approx(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestLinearMotion(t *testing.T) {
	m, err := LinearMotion(10, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(m.Displacement, 39, 1e-12) {
		t.Errorf("displacement = %v, want 39", m.Displacement)
	}
	if !approx(m.FinalVelocity, 16, 1e-12) {
		t.Errorf("final velocity = %v, want 16", m.FinalVelocity)
	}
}

func TestLinearMotionNonFinite(t *testing.T) {
	_, err := LinearMotion(math.NaN(), 1, 1)
	if !errors.Is(err, calc.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestLinearMotionFromDisplacement(t *testing.T) {
	m, err := LinearMotionFromDisplacement(0, 2, 16)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(m.FinalVelocity, 8, 1e-12) || !approx(m.Time, 4, 1e-12) {
		t.Errorf("got %+v, want vf=8 t=4", m)
	}
	if _, err := LinearMotionFromDisplacement(1, 0, 5); !errors.Is(err, calc.ErrDivisionByZero) {
		t.Errorf("zero acceleration: want ErrDivisionByZero, got %v", err)
	}
}

func TestProjectileLevelGround(t *testing.T) {
	// 45° from ground: range = v²/g, tf = 2 v sinθ / g.
	p, err := Projectile(20, 45, 0, StandardGravity)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(p.Range, 400/StandardGravity, 1e-9) {
		t.Errorf("range = %v, want %v", p.Range, 400/StandardGravity)
	}
	vy := 20 * math.Sin(math.Pi/4)
	if !approx(p.TimeOfFlight, 2*vy/StandardGravity, 1e-9) {
		t.Errorf("time of flight = %v", p.TimeOfFlight)
	}
	if !approx(p.MaxHeight, vy*vy/(2*StandardGravity), 1e-9) {
		t.Errorf("max height = %v", p.MaxHeight)
	}
}

func TestHarmonicMotion(t *testing.T) {
	// At t=0 with zero phase: x=0, v=Aω, a=0.
	s, err := HarmonicMotion(0.1, 2, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	omega := 4 * math.Pi
	if !approx(s.Displacement, 0, 1e-12) || !approx(s.Velocity, 0.1*omega, 1e-9) {
		t.Errorf("state %+v", s)
	}
	if !approx(s.Period, 0.5, 1e-12) {
		t.Errorf("period = %v", s.Period)
	}
	if _, err := HarmonicMotion(0.1, 0, 0, 0); !errors.Is(err, calc.ErrInvalidInput) {
		t.Errorf("zero frequency: want ErrInvalidInput, got %v", err)
	}
}

func TestFourBarPosition(t *testing.T) {
	// A closable linkage over a range of crank angles.
	for _, deg := range []float64{0, 60, 90, 120} {
		if _, err := FourBarPosition(0.2, 0.54, 0.3, 0.4, deg); err != nil {
			t.Fatalf("crank %v°: %v", deg, err)
		}
	}
	if _, err := FourBarPosition(0.1, 0.1, 0.1, 10, 90); !errors.Is(err, calc.ErrInvalidInput) {
		t.Errorf("impossible linkage: want ErrInvalidInput, got %v", err)
	}
}

func TestGearTrain(t *testing.T) {
	r, err := GearTrain([]int{20, 40}, 1200, 0.98)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(r.Ratio, 2, 1e-12) {
		t.Errorf("ratio = %v, want 2", r.Ratio)
	}
	if !approx(r.OutputSpeed, 600, 1e-9) {
		t.Errorf("output speed = %v, want 600", r.OutputSpeed)
	}
	if !approx(r.OverallEfficiency, 0.98, 1e-12) {
		t.Errorf("efficiency = %v", r.OverallEfficiency)
	}
}

func TestGearTrainErrors(t *testing.T) {
	if _, err := GearTrain([]int{20}, 100, 1); !errors.Is(err, calc.ErrInvalidInput) {
		t.Errorf("single gear: %v", err)
	}
	if _, err := GearTrain([]int{20, 0}, 100, 1); !errors.Is(err, calc.ErrInvalidInput) {
		t.Errorf("zero teeth: %v", err)
	}
}

func TestCamLift(t *testing.T) {
	// Simple harmonic at 180°: full lift.
	r, err := CamLift(CamSimpleHarmonic, 0.05, 0.02, 180)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(r.Displacement, 0.02, 1e-12) {
		t.Errorf("displacement = %v, want 0.02", r.Displacement)
	}
	if !approx(r.TotalRadius, 0.07, 1e-12) {
		t.Errorf("total radius = %v", r.TotalRadius)
	}
	if _, err := CamLift("spiral", 0.05, 0.02, 90); !errors.Is(err, calc.ErrInvalidInput) {
		t.Errorf("unknown profile: %v", err)
	}
}
