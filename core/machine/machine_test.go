package machine

import (
	"errors"
	"math"
	"testing"

	"mechsolver-core/calc"
)

func approx(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestGearDesign(t *testing.T) {
	r, err := GearDesign(10, 1450, 3, 300)
	if err != nil {
		t.Fatal(err)
	}
	if r.PinionTeeth != 20 || r.GearTeeth != 60 {
		t.Errorf("teeth: %d/%d, want 20/60", r.PinionTeeth, r.GearTeeth)
	}
	found := false
	for _, m := range standardModules {
		if r.Module == m {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("module %v not in standard series", r.Module)
	}
	if !approx(r.CenterDistance, (r.PinionDiameter+r.GearDiameter)/2, 1e-9) {
		t.Errorf("center distance: %+v", r)
	}
	if r.PitchLineVelocity <= 0 || r.TangentialForce <= 0 {
		t.Errorf("kinematics: %+v", r)
	}
}

func TestGearDesignInvalid(t *testing.T) {
	if _, err := GearDesign(0, 1450, 3, 300); !errors.Is(err, calc.ErrInvalidInput) {
		t.Errorf("zero power: %v", err)
	}
}

func TestShaftDesign(t *testing.T) {
	r, err := ShaftDesign(500, 300, 350, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if r.ActualDiameter < r.RequiredDiameter {
		t.Errorf("standard size %v below required %v", r.ActualDiameter, r.RequiredDiameter)
	}
	wantMe := math.Sqrt(math.Pow(1.5*300, 2) + 0.75*math.Pow(1.5*500, 2))
	if !approx(r.EquivalentMoment, wantMe, 1e-9) {
		t.Errorf("Me = %v, want %v", r.EquivalentMoment, wantMe)
	}
	if r.SafetyFactor <= 1 {
		t.Errorf("realized safety factor %v, want > 1", r.SafetyFactor)
	}
}

func TestShaftDesignNoLoad(t *testing.T) {
	if _, err := ShaftDesign(0, 0, 350, 0, 0, 0); !errors.Is(err, calc.ErrInvalidInput) {
		t.Errorf("no load: %v", err)
	}
}

func TestBeltDrive(t *testing.T) {
	r, err := BeltDrive(5, 1450, 725, 1, BeltV)
	if err != nil {
		t.Fatal(err)
	}
	if r.DriverDiameter <= 0 || r.DrivenDiameter < r.DriverDiameter {
		t.Errorf("pulleys: %+v", r)
	}
	if r.TightTension <= r.SlackTension {
		t.Errorf("tensions: T1=%v T2=%v", r.TightTension, r.SlackTension)
	}
	if !approx(r.WrapAngleDriver+r.WrapAngleDriven, 360, 1e-9) {
		t.Errorf("wrap angles sum %v", r.WrapAngleDriver+r.WrapAngleDriven)
	}
	if _, err := BeltDrive(5, 1450, 725, 1, "chain"); !errors.Is(err, calc.ErrInvalidInput) {
		t.Errorf("unknown kind: %v", err)
	}
}

func TestBearingLife(t *testing.T) {
	r, err := BearingLife(5000, 1500, 30000, 0.90, BearingBall)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(r.BasicRatingLife, 216, 1e-9) {
		t.Errorf("L10 = %v, want 216", r.BasicRatingLife)
	}
	if !approx(r.AdjustedLife, 216, 1e-9) {
		t.Errorf("adjusted = %v (a1=1 at 90%%)", r.AdjustedLife)
	}
	wantHours := 1e6 / (60 * 1500) * 216
	if !approx(r.LifeHours, wantHours, 1e-6) {
		t.Errorf("hours = %v, want %v", r.LifeHours, wantHours)
	}
}

func TestBearingLifeErrors(t *testing.T) {
	if _, err := BearingLife(5000, 1500, 30000, 0.93, BearingBall); !errors.Is(err, calc.ErrInvalidInput) {
		t.Errorf("untabulated reliability: %v", err)
	}
	if _, err := BearingLife(5000, 1500, 30000, 0.90, "magnetic"); !errors.Is(err, calc.ErrInvalidInput) {
		t.Errorf("unknown kind: %v", err)
	}
}

func TestSpringDesign(t *testing.T) {
	r, err := SpringDesign(200, 0.05, 0.004, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(r.SpringRate, 4000, 1e-9) {
		t.Errorf("rate = %v, want 4000", r.SpringRate)
	}
	if !approx(r.CoilDiameter, 0.024, 1e-12) {
		t.Errorf("coil diameter = %v, want 0.024", r.CoilDiameter)
	}
	if r.TotalCoils != r.ActiveCoils+2 {
		t.Errorf("coils: %+v", r)
	}
	if r.MaxShearStress <= 0 {
		t.Errorf("shear stress = %v", r.MaxShearStress)
	}
}

func TestPowerScrewSelfLocking(t *testing.T) {
	r, err := PowerScrew(10000, 0.02, 0.004, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	// Default friction on a fine pitch is self-locking.
	if !r.SelfLocking {
		t.Fatalf("expected self-locking screw: %+v", r)
	}
	if r.LoweringTorque != 0 {
		t.Errorf("lowering torque = %v, want 0 when self-locking", r.LoweringTorque)
	}
	if !approx(r.RaisingTorque, r.ScrewTorque+r.CollarTorque, 1e-12) {
		t.Errorf("torque split: %+v", r)
	}
	if r.Efficiency <= 0 || r.Efficiency >= 100 {
		t.Errorf("efficiency = %v%%", r.Efficiency)
	}
}
