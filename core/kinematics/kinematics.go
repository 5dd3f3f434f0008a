// core/kinematics/kinematics.go
// Motion and mechanism formulas. Everything here is a direct evaluation
// of a closed-form textbook equation; no integration, no iteration.
package kinematics

import (
	"fmt"
	"math"

	"mechsolver-core/calc"
)

// StandardGravity is g in m/s².
const StandardGravity = 9.81

// Motion reports displacement and final velocity after constant acceleration.
type Motion struct {
	Displacement  float64 // m
	FinalVelocity float64 // m/s
}

// LinearMotion evaluates s = v0·t + ½·a·t² and v = v0 + a·t.
func LinearMotion(v0, a, t float64) (Motion, error) {
	if err := calc.Finite("linear-motion", v0, a, t); err != nil {
		return Motion{}, err
	}
	return Motion{
		Displacement:  v0*t + 0.5*a*t*t,
		FinalVelocity: v0 + a*t,
	}, nil
}

// DisplacementMotion reports final velocity and elapsed time given
// initial velocity, acceleration, and displacement (v² = v0² + 2as).
type DisplacementMotion struct {
	FinalVelocity float64 // m/s
	Time          float64 // s
}

func LinearMotionFromDisplacement(v0, a, s float64) (DisplacementMotion, error) {
	if err := calc.Finite("linear-motion", v0, a, s); err != nil {
		return DisplacementMotion{}, err
	}
	if err := calc.NonZero("linear-motion", "acceleration", a); err != nil {
		return DisplacementMotion{}, err
	}
	rad := v0*v0 + 2*a*s
	if rad < 0 {
		return DisplacementMotion{}, fmt.Errorf("linear-motion: displacement unreachable from given state: %w", calc.ErrInvalidInput)
	}
	vf := math.Sqrt(rad)
	return DisplacementMotion{
		FinalVelocity: vf,
		Time:          (-v0 + vf) / a,
	}, nil
}

// AngularMotion mirrors LinearMotion for rotation: θ = ω0·t + ½·α·t².
type Angular struct {
	Angle         float64 // rad
	FinalVelocity float64 // rad/s
}

func AngularMotion(omega0, alpha, t float64) (Angular, error) {
	if err := calc.Finite("angular-motion", omega0, alpha, t); err != nil {
		return Angular{}, err
	}
	return Angular{
		Angle:         omega0*t + 0.5*alpha*t*t,
		FinalVelocity: omega0 + alpha*t,
	}, nil
}

// ProjectileResult holds the drag-free trajectory summary.
type ProjectileResult struct {
	MaxHeight    float64 // m
	Range        float64 // m
	TimeOfFlight float64 // s
}

// Projectile solves drag-free projectile motion launched from height h0.
// g must be > 0; angle is in degrees.
func Projectile(v0, angleDeg, h0, g float64) (ProjectileResult, error) {
	if err := calc.Finite("projectile", v0, angleDeg, h0, g); err != nil {
		return ProjectileResult{}, err
	}
	if err := calc.Positive("projectile", "g", g); err != nil {
		return ProjectileResult{}, err
	}
	theta := angleDeg * math.Pi / 180
	v0x := v0 * math.Cos(theta)
	v0y := v0 * math.Sin(theta)
	rad := v0y*v0y + 2*g*h0
	if rad < 0 {
		return ProjectileResult{}, fmt.Errorf("projectile: projectile never reaches ground level: %w", calc.ErrInvalidInput)
	}
	tf := (v0y + math.Sqrt(rad)) / g
	return ProjectileResult{
		MaxHeight:    h0 + v0y*v0y/(2*g),
		Range:        v0x * tf,
		TimeOfFlight: tf,
	}, nil
}

// HarmonicState is the instantaneous state of simple harmonic motion.
type HarmonicState struct {
	Displacement     float64 // m
	Velocity         float64 // m/s
	Acceleration     float64 // m/s²
	Period           float64 // s
	AngularFrequency float64 // rad/s
}

// HarmonicMotion evaluates x = A·sin(ωt+φ) and its derivatives.
func HarmonicMotion(amplitude, frequency, t, phaseRad float64) (HarmonicState, error) {
	if err := calc.Finite("harmonic-motion", amplitude, frequency, t, phaseRad); err != nil {
		return HarmonicState{}, err
	}
	if err := calc.Positive("harmonic-motion", "frequency", frequency); err != nil {
		return HarmonicState{}, err
	}
	omega := 2 * math.Pi * frequency
	ph := omega*t + phaseRad
	return HarmonicState{
		Displacement:     amplitude * math.Sin(ph),
		Velocity:         amplitude * omega * math.Cos(ph),
		Acceleration:     -amplitude * omega * omega * math.Sin(ph),
		Period:           1 / frequency,
		AngularFrequency: omega,
	}, nil
}

// FourBarAngles is the position solution of a planar four-bar linkage.
type FourBarAngles struct {
	RockerAngleDeg  float64
	CouplerAngleDeg float64
}

// FourBarPosition solves linkage position for one crank angle using the
// closed-form tangent-half-angle method. Link lengths must be positive.
func FourBarPosition(crank, coupler, rocker, ground, crankAngleDeg float64) (FourBarAngles, error) {
	if err := calc.Finite("four-bar", crank, coupler, rocker, ground, crankAngleDeg); err != nil {
		return FourBarAngles{}, err
	}
	for _, l := range []struct {
		name string
		v    float64
	}{{"crank", crank}, {"coupler", coupler}, {"rocker", rocker}, {"ground", ground}} {
		if err := calc.Positive("four-bar", l.name, l.v); err != nil {
			return FourBarAngles{}, err
		}
	}
	theta := crankAngleDeg * math.Pi / 180
	a, b, c, d := crank, coupler, rocker, ground

	A := 2 * a * d * math.Cos(theta)
	B := 2 * a * d * math.Sin(theta)
	C := a*a + d*d - b*b + c*c + 2*a*d*math.Cos(theta)

	disc := A*A + B*B - C*C
	if disc < 0 {
		return FourBarAngles{}, fmt.Errorf("four-bar: linkage cannot close at this crank angle: %w", calc.ErrInvalidInput)
	}
	beta := 2 * math.Atan((-B+math.Sqrt(disc))/(C-A))
	gamma := math.Atan2(
		c*math.Sin(beta)-a*math.Sin(theta),
		c*math.Cos(beta)-a*math.Cos(theta),
	)
	return FourBarAngles{
		RockerAngleDeg:  beta * 180 / math.Pi,
		CouplerAngleDeg: gamma * 180 / math.Pi,
	}, nil
}

// GearTrainResult summarizes a simple gear train.
type GearTrainResult struct {
	Ratio             float64
	OutputSpeed       float64   // rpm
	OverallEfficiency float64   // 0..1
	PitchVelocities   []float64 // m/s, module = 1 assumed
}

// GearTrain computes the overall ratio of alternating driver/driven pairs.
func GearTrain(teeth []int, inputSpeed, efficiency float64) (GearTrainResult, error) {
	if len(teeth) < 2 {
		return GearTrainResult{}, fmt.Errorf("gear-train: need at least 2 gears: %w", calc.ErrInvalidInput)
	}
	for i, z := range teeth {
		if z <= 0 {
			return GearTrainResult{}, fmt.Errorf("gear-train: gear %d has non-positive tooth count: %w", i+1, calc.ErrInvalidInput)
		}
	}
	if err := calc.Finite("gear-train", inputSpeed, efficiency); err != nil {
		return GearTrainResult{}, err
	}
	if efficiency <= 0 || efficiency > 1 {
		return GearTrainResult{}, fmt.Errorf("gear-train: efficiency must be in (0,1]: %w", calc.ErrInvalidInput)
	}

	ratio := 1.0
	for i := 0; i+1 < len(teeth); i += 2 {
		ratio *= float64(teeth[i+1]) / float64(teeth[i])
	}
	overall := math.Pow(efficiency, float64(len(teeth)-1))

	pv := make([]float64, len(teeth))
	for i, z := range teeth {
		pv[i] = float64(z) * inputSpeed * math.Pi / 60
	}
	return GearTrainResult{
		Ratio:             ratio,
		OutputSpeed:       inputSpeed / ratio,
		OverallEfficiency: overall,
		PitchVelocities:   pv,
	}, nil
}

// Cam profiles.
const (
	CamSimpleHarmonic = "simple-harmonic"
	CamCycloidal      = "cycloidal"
	CamParabolic      = "parabolic"
)

// CamLiftResult is follower displacement at one cam angle.
type CamLiftResult struct {
	Displacement float64 // m
	TotalRadius  float64 // m
}

// CamLift evaluates the follower displacement for a named lift profile.
func CamLift(profile string, baseRadius, lift, angleDeg float64) (CamLiftResult, error) {
	if err := calc.Finite("cam-lift", baseRadius, lift, angleDeg); err != nil {
		return CamLiftResult{}, err
	}
	if err := calc.Positive("cam-lift", "base-radius", baseRadius); err != nil {
		return CamLiftResult{}, err
	}
	theta := angleDeg * math.Pi / 180

	var d float64
	switch profile {
	case CamSimpleHarmonic:
		d = lift * (1 - math.Cos(theta)) / 2
	case CamCycloidal:
		d = lift * (theta/(2*math.Pi) - math.Sin(theta)/(2*math.Pi))
	case CamParabolic:
		if theta < math.Pi {
			d = 2 * lift * (theta / math.Pi) * (theta / math.Pi)
		} else {
			d = 2 * lift * (2 - theta/math.Pi) * (2 - theta/math.Pi)
		}
	default:
		return CamLiftResult{}, fmt.Errorf("cam-lift: unknown profile %q: %w", profile, calc.ErrInvalidInput)
	}
	return CamLiftResult{Displacement: d, TotalRadius: baseRadius + d}, nil
}
