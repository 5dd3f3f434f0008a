// core/stress/stress.go
// Structural mechanics formulas: axial, bending, torsion, principal
// stress transformation, pressure vessels, fatigue, thermal stress.
package stress

import (
	"fmt"
	"math"

	"mechsolver-core/calc"
)

// Normal computes axial stress σ = F/A in Pa.
func Normal(force, area float64) (float64, error) {
	if err := calc.Finite("normal-stress", force, area); err != nil {
		return 0, err
	}
	if err := calc.NonZero("normal-stress", "area", area); err != nil {
		return 0, err
	}
	return force / area, nil
}

// Shear computes average shear stress τ = F/A in Pa.
func Shear(force, area float64) (float64, error) {
	if err := calc.Finite("shear-stress", force, area); err != nil {
		return 0, err
	}
	if err := calc.NonZero("shear-stress", "area", area); err != nil {
		return 0, err
	}
	return force / area, nil
}

// Strain is engineering strain ΔL/L0.
func Strain(deltaL, l0 float64) (float64, error) {
	if err := calc.Finite("strain", deltaL, l0); err != nil {
		return 0, err
	}
	if err := calc.NonZero("strain", "original length", l0); err != nil {
		return 0, err
	}
	return deltaL / l0, nil
}

// StrainFromStress applies Hooke's law ε = σ/E.
func StrainFromStress(sigma, e float64) (float64, error) {
	if err := calc.Finite("strain", sigma, e); err != nil {
		return 0, err
	}
	if err := calc.NonZero("strain", "elastic modulus", e); err != nil {
		return 0, err
	}
	return sigma / e, nil
}

// Bending computes flexural stress σ = Mc/I.
func Bending(moment, distance, inertia float64) (float64, error) {
	if err := calc.Finite("bending-stress", moment, distance, inertia); err != nil {
		return 0, err
	}
	if err := calc.NonZero("bending-stress", "moment of inertia", inertia); err != nil {
		return 0, err
	}
	return moment * distance / inertia, nil
}

// Torsion computes shear stress τ = Tr/J.
func Torsion(torque, radius, polarMoment float64) (float64, error) {
	if err := calc.Finite("torsional-stress", torque, radius, polarMoment); err != nil {
		return 0, err
	}
	if err := calc.NonZero("torsional-stress", "polar moment", polarMoment); err != nil {
		return 0, err
	}
	return torque * radius / polarMoment, nil
}

// PrincipalStress is the plane-stress transformation result.
type PrincipalStress struct {
	Sigma1       float64 // Pa
	Sigma2       float64 // Pa
	TauMax       float64 // Pa
	AngleDeg     float64 // orientation of σ1
}

// Principal solves σ₁,₂ = (σx+σy)/2 ± √[((σx−σy)/2)² + τxy²].
// The trace is invariant: σ1 + σ2 == σx + σy.
func Principal(sigmaX, sigmaY, tauXY float64) (PrincipalStress, error) {
	if err := calc.Finite("principal-stress", sigmaX, sigmaY, tauXY); err != nil {
		return PrincipalStress{}, err
	}
	avg := (sigmaX + sigmaY) / 2
	half := (sigmaX - sigmaY) / 2
	r := math.Sqrt(half*half + tauXY*tauXY)
	return PrincipalStress{
		Sigma1:   avg + r,
		Sigma2:   avg - r,
		TauMax:   r,
		AngleDeg: math.Atan2(2*tauXY, sigmaX-sigmaY) * 180 / math.Pi / 2,
	}, nil
}

// VonMises computes the plane-stress equivalent stress.
func VonMises(sigmaX, sigmaY, tauXY float64) (float64, error) {
	if err := calc.Finite("von-mises", sigmaX, sigmaY, tauXY); err != nil {
		return 0, err
	}
	return math.Sqrt(sigmaX*sigmaX - sigmaX*sigmaY + sigmaY*sigmaY + 3*tauXY*tauXY), nil
}

// Beam load cases.
const (
	LoadPointCenter = "point-center"
	LoadPointEnd    = "point-end"
	LoadUniform     = "uniform"
)

// deflectionFactor is the coefficient in δmax = factor · PL³/(EI).
var deflectionFactor = map[string]float64{
	LoadPointCenter: 1.0 / 48,
	LoadPointEnd:    1.0 / 3,
	LoadUniform:     5.0 / 384,
}

// BeamResult is the governing deflection and moment for one load case.
type BeamResult struct {
	MaxDeflection float64 // m
	MaxMoment     float64 // N·m
}

// BeamDeflection evaluates the standard simply-supported / cantilever
// deflection coefficients for a single load case.
func BeamDeflection(load, length, e, inertia float64, loadCase string) (BeamResult, error) {
	if err := calc.Finite("beam-deflection", load, length, e, inertia); err != nil {
		return BeamResult{}, err
	}
	if err := calc.NonZero("beam-deflection", "E·I", e*inertia); err != nil {
		return BeamResult{}, err
	}
	factor, ok := deflectionFactor[loadCase]
	if !ok {
		return BeamResult{}, fmt.Errorf("beam-deflection: unknown load case %q: %w", loadCase, calc.ErrInvalidInput)
	}
	res := BeamResult{
		MaxDeflection: factor * load * length * length * length / (e * inertia),
	}
	switch loadCase {
	case LoadPointCenter:
		res.MaxMoment = load * length / 4
	case LoadPointEnd:
		res.MaxMoment = load * length
	case LoadUniform:
		res.MaxMoment = load * length * length / 8
	}
	return res, nil
}

// Pressure vessel kinds.
const (
	VesselThinCylinder  = "thin-cylinder"
	VesselThickCylinder = "thick-cylinder"
	VesselSphere        = "sphere"
)

// VesselStress reports the stress components present for the vessel kind;
// unused components are zero and Kind says which apply.
type VesselStress struct {
	Kind               string
	HoopStress         float64 // Pa (inner surface for thick cylinders)
	LongitudinalStress float64 // Pa, thin cylinder only
	VonMisesStress     float64 // Pa, thin cylinder and sphere
	HoopStressOuter    float64 // Pa, thick cylinder only
	RadialStressInner  float64 // Pa, thick cylinder only
}

// PressureVessel computes membrane stresses for thin/thick cylinders and spheres.
func PressureVessel(pressure, radius, thickness float64, kind string) (VesselStress, error) {
	if err := calc.Finite("pressure-vessel", pressure, radius, thickness); err != nil {
		return VesselStress{}, err
	}
	if err := calc.Positive("pressure-vessel", "radius", radius); err != nil {
		return VesselStress{}, err
	}
	if err := calc.Positive("pressure-vessel", "thickness", thickness); err != nil {
		return VesselStress{}, err
	}
	switch kind {
	case VesselThinCylinder:
		hoop := pressure * radius / thickness
		long := hoop / 2
		return VesselStress{
			Kind:               kind,
			HoopStress:         hoop,
			LongitudinalStress: long,
			VonMisesStress:     math.Sqrt(hoop*hoop - hoop*long + long*long),
		}, nil
	case VesselThickCylinder:
		ro := radius + thickness
		c := ro * ro / (radius * radius)
		return VesselStress{
			Kind:              kind,
			HoopStress:        pressure * (c + 1) / (c - 1),
			HoopStressOuter:   2 * pressure / (c - 1),
			RadialStressInner: -pressure,
		}, nil
	case VesselSphere:
		hoop := pressure * radius / (2 * thickness)
		return VesselStress{Kind: kind, HoopStress: hoop, VonMisesStress: hoop}, nil
	default:
		return VesselStress{}, fmt.Errorf("pressure-vessel: unknown kind %q: %w", kind, calc.ErrInvalidInput)
	}
}

// FatigueInput bundles the modified-Goodman parameters. The three
// modification factors default to the usual textbook values when zero.
type FatigueInput struct {
	StressMax         float64 // Pa
	StressMin         float64 // Pa
	UltimateStrength  float64 // Pa
	EnduranceLimit    float64 // Pa (unmodified)
	SurfaceFactor     float64 // default 0.9
	SizeFactor        float64 // default 0.95
	ReliabilityFactor float64 // default 0.897 (90%)
}

// FatigueResult summarizes the Goodman assessment.
type FatigueResult struct {
	SafetyFactor      float64
	ModifiedEndurance float64 // Pa
	StressAmplitude   float64 // Pa
	MeanStress        float64 // Pa
	CyclesToFailure   float64
}

// basquinExponent is the typical fatigue strength exponent.
const basquinExponent = -0.085

// Fatigue applies the modified Goodman criterion and a simplified
// Basquin life estimate (1e6 cycles reported as infinite life).
func Fatigue(in FatigueInput) (FatigueResult, error) {
	if err := calc.Finite("fatigue", in.StressMax, in.StressMin, in.UltimateStrength, in.EnduranceLimit); err != nil {
		return FatigueResult{}, err
	}
	if err := calc.Positive("fatigue", "ultimate strength", in.UltimateStrength); err != nil {
		return FatigueResult{}, err
	}
	if err := calc.Positive("fatigue", "endurance limit", in.EnduranceLimit); err != nil {
		return FatigueResult{}, err
	}
	surface, size, rel := in.SurfaceFactor, in.SizeFactor, in.ReliabilityFactor
	if surface == 0 {
		surface = 0.9
	}
	if size == 0 {
		size = 0.95
	}
	if rel == 0 {
		rel = 0.897
	}

	amp := (in.StressMax - in.StressMin) / 2
	mean := (in.StressMax + in.StressMin) / 2
	se := in.EnduranceLimit * surface * size * rel

	denom := amp/se + mean/in.UltimateStrength
	if denom == 0 {
		return FatigueResult{}, fmt.Errorf("fatigue: zero stress cycle: %w", calc.ErrDivisionByZero)
	}
	sf := 1 / denom

	cycles := 1e6
	if sf <= 1 {
		cycles = math.Pow(amp/se, 1/basquinExponent)
	}
	return FatigueResult{
		SafetyFactor:      sf,
		ModifiedEndurance: se,
		StressAmplitude:   amp,
		MeanStress:        mean,
		CyclesToFailure:   cycles,
	}, nil
}

// Thermal constraint kinds.
const (
	ConstraintFull    = "full"
	ConstraintPartial = "partial"
)

// ThermalResult is constrained thermal stress and residual strain.
type ThermalResult struct {
	Stress float64 // Pa
	Strain float64
}

// Thermal computes σ = −αEΔT for a fully constrained bar, halved for
// partial constraint (the unconstrained half shows up as strain).
func Thermal(deltaT, alpha, e float64, constraint string) (ThermalResult, error) {
	if err := calc.Finite("thermal-stress", deltaT, alpha, e); err != nil {
		return ThermalResult{}, err
	}
	switch constraint {
	case ConstraintFull:
		return ThermalResult{Stress: -alpha * e * deltaT}, nil
	case ConstraintPartial:
		return ThermalResult{
			Stress: -0.5 * alpha * e * deltaT,
			Strain: 0.5 * alpha * deltaT,
		}, nil
	default:
		return ThermalResult{}, fmt.Errorf("thermal-stress: unknown constraint %q: %w", constraint, calc.ErrInvalidInput)
	}
}

// LaminaProperties are the transformed elastic constants of an
// off-axis unidirectional composite ply.
type LaminaProperties struct {
	Ex   float64
	Ey   float64
	Gxy  float64
	NuXY float64
}

// Lamina transforms E1/E2/ν12/G12 through the ply angle θ (degrees).
func Lamina(e1, e2, nu12, g12, thetaDeg float64) (LaminaProperties, error) {
	if err := calc.Finite("lamina", e1, e2, nu12, g12, thetaDeg); err != nil {
		return LaminaProperties{}, err
	}
	for _, p := range []struct {
		name string
		v    float64
	}{{"E1", e1}, {"E2", e2}, {"G12", g12}} {
		if err := calc.Positive("lamina", p.name, p.v); err != nil {
			return LaminaProperties{}, err
		}
	}
	th := thetaDeg * math.Pi / 180
	c, s := math.Cos(th), math.Sin(th)
	c2, s2 := c*c, s*s
	c4, s4 := c2*c2, s2*s2
	cross := 1/g12 - 2*nu12/e1

	ex := 1 / (c4/e1 + s4/e2 + cross*s2*c2)
	ey := 1 / (s4/e1 + c4/e2 + cross*s2*c2)
	gxy := 1 / (4 * (s2*c2/e1 + s2*c2/e2 + cross*(s2-c2)*(s2-c2)/4))
	nuxy := ex * (nu12/e1*(c4+s4) - (1/e1-1/e2-2*nu12/e1)*s2*c2)

	return LaminaProperties{Ex: ex, Ey: ey, Gxy: gxy, NuXY: nuxy}, nil
}
