// core/fluids/fluids.go
// Fluid flow and hydraulics formulas: pipe flow, pumps, open channels,
// weirs, waves. All closed-form; g is the standard 9.81 m/s².
package fluids

import (
	"fmt"
	"math"

	"mechsolver-core/calc"
)

const g = 9.81

// Flow regime thresholds for Reynolds number in a pipe.
const (
	laminarLimit   = 2300
	turbulentLimit = 4000
)

// Reynolds computes Re = ρvD/μ with dynamic viscosity μ.
func Reynolds(density, velocity, length, viscosity float64) (float64, error) {
	if err := calc.Finite("reynolds", density, velocity, length, viscosity); err != nil {
		return 0, err
	}
	if err := calc.NonZero("reynolds", "viscosity", viscosity); err != nil {
		return 0, err
	}
	return density * velocity * length / viscosity, nil
}

// Regime classifies a pipe-flow Reynolds number.
func Regime(re float64) string {
	switch {
	case re < laminarLimit:
		return "laminar"
	case re > turbulentLimit:
		return "turbulent"
	default:
		return "transitional"
	}
}

// HeadLossResult splits Darcy-Weisbach friction loss from fitting losses.
type HeadLossResult struct {
	MajorLoss float64 // m
	MinorLoss float64 // m
	TotalLoss float64 // m
}

// HeadLoss evaluates hf = f·L·v²/(2gD) plus ΣK·v²/(2g).
func HeadLoss(frictionFactor, length, diameter, velocity, sumK float64) (HeadLossResult, error) {
	if err := calc.Finite("head-loss", frictionFactor, length, diameter, velocity, sumK); err != nil {
		return HeadLossResult{}, err
	}
	if err := calc.NonZero("head-loss", "diameter", diameter); err != nil {
		return HeadLossResult{}, err
	}
	major := frictionFactor * length * velocity * velocity / (diameter * 2 * g)
	minor := sumK * velocity * velocity / (2 * g)
	return HeadLossResult{MajorLoss: major, MinorLoss: minor, TotalLoss: major + minor}, nil
}

// VelocityFromFlow converts volumetric flow in a circular pipe to velocity.
func VelocityFromFlow(flowRate, diameter float64) (float64, error) {
	if err := calc.Finite("flow-velocity", flowRate, diameter); err != nil {
		return 0, err
	}
	if err := calc.NonZero("flow-velocity", "diameter", diameter); err != nil {
		return 0, err
	}
	area := math.Pi * diameter * diameter / 4
	return flowRate / area, nil
}

// FlowRate is Q = v·A.
func FlowRate(velocity, area float64) (float64, error) {
	if err := calc.Finite("flow-rate", velocity, area); err != nil {
		return 0, err
	}
	return velocity * area, nil
}

// PumpPowerResult reports hydraulic and shaft power.
type PumpPowerResult struct {
	HydraulicPower float64 // W
	ShaftPower     float64 // W
}

// PumpPower computes P = ρgQH and divides by pump efficiency.
func PumpPower(flowRate, head, efficiency, density float64) (PumpPowerResult, error) {
	if err := calc.Finite("pump-power", flowRate, head, efficiency, density); err != nil {
		return PumpPowerResult{}, err
	}
	if err := calc.NonZero("pump-power", "efficiency", efficiency); err != nil {
		return PumpPowerResult{}, err
	}
	hp := density * g * flowRate * head
	return PumpPowerResult{HydraulicPower: hp, ShaftPower: hp / efficiency}, nil
}

// OrificeResult is discharge velocity and volumetric flow.
type OrificeResult struct {
	Velocity float64 // m/s
	FlowRate float64 // m³/s
}

// Orifice computes discharge through a sharp-edged orifice.
func Orifice(pressureDiff, diameter, dischargeCoeff, density float64) (OrificeResult, error) {
	if err := calc.Finite("orifice", pressureDiff, diameter, dischargeCoeff, density); err != nil {
		return OrificeResult{}, err
	}
	if err := calc.Positive("orifice", "density", density); err != nil {
		return OrificeResult{}, err
	}
	if pressureDiff < 0 {
		return OrificeResult{}, fmt.Errorf("orifice: pressure difference must be >= 0: %w", calc.ErrInvalidInput)
	}
	area := math.Pi * diameter * diameter / 4
	v := dischargeCoeff * math.Sqrt(2*pressureDiff/density)
	return OrificeResult{Velocity: v, FlowRate: v * area}, nil
}

// DragResult is drag force and dynamic pressure.
type DragResult struct {
	Force           float64 // N
	DynamicPressure float64 // Pa
}

// Drag evaluates F = ½·Cd·ρ·v²·A.
func Drag(velocity, density, area, dragCoeff float64) (DragResult, error) {
	if err := calc.Finite("drag", velocity, density, area, dragCoeff); err != nil {
		return DragResult{}, err
	}
	q := 0.5 * density * velocity * velocity
	return DragResult{Force: dragCoeff * q * area, DynamicPressure: q}, nil
}

// ThrustResult splits nozzle thrust into momentum and pressure terms.
type ThrustResult struct {
	MomentumThrust float64 // N
	PressureThrust float64 // N
	TotalThrust    float64 // N
}

// NozzleThrust is F = ṁ·ve + (pe − pa)·Ae.
func NozzleThrust(massFlow, exitVelocity, exitPressure, ambientPressure, exitArea float64) (ThrustResult, error) {
	if err := calc.Finite("nozzle-thrust", massFlow, exitVelocity, exitPressure, ambientPressure, exitArea); err != nil {
		return ThrustResult{}, err
	}
	mom := massFlow * exitVelocity
	pr := (exitPressure - ambientPressure) * exitArea
	return ThrustResult{MomentumThrust: mom, PressureThrust: pr, TotalThrust: mom + pr}, nil
}

// Bernoulli unknowns.
const (
	SolveVelocity = "velocity"
	SolvePressure = "pressure"
)

// BernoulliResult is the state at point 2.
type BernoulliResult struct {
	Velocity float64 // m/s
	Pressure float64 // Pa
}

// Bernoulli solves the steady incompressible energy balance between two
// points for either v2 (given p2) or p2 (given v2). `known` carries the
// supplied member of the pair.
func Bernoulli(h1, v1, p1, h2, known, density float64, solveFor string) (BernoulliResult, error) {
	if err := calc.Finite("bernoulli", h1, v1, p1, h2, known, density); err != nil {
		return BernoulliResult{}, err
	}
	if err := calc.Positive("bernoulli", "density", density); err != nil {
		return BernoulliResult{}, err
	}
	head1 := p1/(density*g) + h1 + v1*v1/(2*g)
	switch solveFor {
	case SolveVelocity:
		p2 := known
		rad := 2 * g * (head1 - p2/(density*g) - h2)
		if rad < 0 {
			return BernoulliResult{}, fmt.Errorf("bernoulli: no real velocity satisfies the energy balance: %w", calc.ErrInvalidInput)
		}
		return BernoulliResult{Velocity: math.Sqrt(rad), Pressure: p2}, nil
	case SolvePressure:
		v2 := known
		p2 := density * g * (head1 - h2 - v2*v2/(2*g))
		return BernoulliResult{Velocity: v2, Pressure: p2}, nil
	default:
		return BernoulliResult{}, fmt.Errorf("bernoulli: unknown solve-for %q: %w", solveFor, calc.ErrInvalidInput)
	}
}

// ChannelResult summarizes uniform flow in a rectangular open channel.
type ChannelResult struct {
	FlowRate     float64 // m³/s
	Velocity     float64 // m/s
	FroudeNumber float64
	FlowType     string // subcritical | supercritical
}

// OpenChannel applies Manning's equation to a rectangular section.
func OpenChannel(width, depth, slope, manningN float64) (ChannelResult, error) {
	if err := calc.Finite("open-channel", width, depth, slope, manningN); err != nil {
		return ChannelResult{}, err
	}
	if err := calc.Positive("open-channel", "width", width); err != nil {
		return ChannelResult{}, err
	}
	if err := calc.Positive("open-channel", "depth", depth); err != nil {
		return ChannelResult{}, err
	}
	if err := calc.NonZero("open-channel", "manning n", manningN); err != nil {
		return ChannelResult{}, err
	}
	if slope < 0 {
		return ChannelResult{}, fmt.Errorf("open-channel: slope must be >= 0: %w", calc.ErrInvalidInput)
	}
	area := width * depth
	perimeter := width + 2*depth
	rh := area / perimeter

	v := (1 / manningN) * math.Pow(rh, 2.0/3.0) * math.Sqrt(slope)
	fr := v / math.Sqrt(g*depth)
	ft := "subcritical"
	if fr >= 1 {
		ft = "supercritical"
	}
	return ChannelResult{FlowRate: v * area, Velocity: v, FroudeNumber: fr, FlowType: ft}, nil
}

// Weir kinds.
const (
	WeirRectangular = "rectangular"
	WeirVNotch      = "v-notch"
)

// WeirResult is the discharge over a weir crest.
type WeirResult struct {
	FlowRate        float64 // m³/s
	DischargeCoeff  float64
}

// Weir computes discharge with the Francis (rectangular) or Thomson
// (90° v-notch) formula.
func Weir(kind string, width, head float64) (WeirResult, error) {
	if err := calc.Finite("weir", width, head); err != nil {
		return WeirResult{}, err
	}
	if head < 0 {
		return WeirResult{}, fmt.Errorf("weir: head must be >= 0: %w", calc.ErrInvalidInput)
	}
	switch kind {
	case WeirRectangular:
		const cd = 0.61
		q := (2.0 / 3.0) * cd * width * math.Sqrt(2*g) * math.Pow(head, 1.5)
		return WeirResult{FlowRate: q, DischargeCoeff: cd}, nil
	case WeirVNotch:
		const cd = 0.59
		theta := math.Pi / 2 // 90° notch
		q := (8.0 / 15.0) * cd * math.Tan(theta/2) * math.Sqrt(2*g) * math.Pow(head, 2.5)
		return WeirResult{FlowRate: q, DischargeCoeff: cd}, nil
	default:
		return WeirResult{}, fmt.Errorf("weir: unknown kind %q: %w", kind, calc.ErrInvalidInput)
	}
}

// WaveResult holds linear (Airy) wave kinematics.
type WaveResult struct {
	WaveSpeed     float64 // m/s
	GroupVelocity float64 // m/s
	Period        float64 // s
	Frequency     float64 // Hz
}

// Wave solves the linear dispersion relation ω² = gk·tanh(kd).
func Wave(wavelength, depth float64) (WaveResult, error) {
	if err := calc.Finite("wave", wavelength, depth); err != nil {
		return WaveResult{}, err
	}
	if err := calc.Positive("wave", "wavelength", wavelength); err != nil {
		return WaveResult{}, err
	}
	if err := calc.Positive("wave", "depth", depth); err != nil {
		return WaveResult{}, err
	}
	k := 2 * math.Pi / wavelength
	omega := math.Sqrt(g * k * math.Tanh(k*depth))
	period := 2 * math.Pi / omega
	speed := wavelength / period
	n := 0.5 * (1 + 2*k*depth/math.Sinh(2*k*depth))
	return WaveResult{
		WaveSpeed:     speed,
		GroupVelocity: n * speed,
		Period:        period,
		Frequency:     1 / period,
	}, nil
}
