// core/machine/machine.go
// Machine-element sizing formulas: spur gears (Lewis/Buckingham), shafts
// (ASME), belt drives, bearings (L10), helical springs, power screws.
// Standard-size series are snapped with the nearest/next-larger rule of
// the reference tables.
package machine

import (
	"fmt"
	"math"

	"mechsolver-core/calc"
)

// Standard module series (mm) for spur gears.
var standardModules = []float64{1, 1.25, 1.5, 2, 2.5, 3, 4, 5, 6, 8, 10, 12, 16, 20, 25, 32, 40, 50}

// Standard shaft diameters (mm).
var standardShaftSizes = []float64{10, 12, 15, 17, 20, 25, 30, 35, 40, 45, 50, 55, 60, 70, 80, 90, 100}

// Standard pulley diameters (mm).
var standardPulleySizes = []float64{63, 71, 80, 90, 100, 112, 125, 140, 160, 180, 200, 224, 250, 280, 315}

// nearestStandard returns the series entry closest to v.
func nearestStandard(series []float64, v float64) float64 {
	best := series[0]
	for _, s := range series[1:] {
		if math.Abs(s-v) < math.Abs(best-v) {
			best = s
		}
	}
	return best
}

// nextStandard returns the first series entry >= v, or an error when v
// exceeds the series.
func nextStandard(series []float64, v float64) (float64, error) {
	for _, s := range series {
		if s >= v {
			return s, nil
		}
	}
	return 0, fmt.Errorf("no standard size >= %g", v)
}

// GearDesignResult sizes a spur gear pair.
type GearDesignResult struct {
	Module            float64 // mm, snapped to the standard series
	PinionTeeth       int
	GearTeeth         int
	PinionDiameter    float64 // mm
	GearDiameter      float64 // mm
	CenterDistance    float64 // mm
	FaceWidth         float64 // mm
	PitchLineVelocity float64 // m/s
	TangentialForce   float64 // N
	BeamStrength      float64 // N (Lewis)
	WearStrength      float64 // N (Buckingham)
	PowerRating       float64 // kW
}

const minPinionTeeth = 20

// GearDesign sizes a spur gear pair for power (kW) at pinion speed (rpm)
// with the given ratio and allowable material strength (MPa).
func GearDesign(powerKW, speedRPM, ratio, materialStrength float64) (GearDesignResult, error) {
	if err := calc.Finite("gear-design", powerKW, speedRPM, ratio, materialStrength); err != nil {
		return GearDesignResult{}, err
	}
	for _, p := range []struct {
		name string
		v    float64
	}{{"power", powerKW}, {"speed", speedRPM}, {"ratio", ratio}, {"material strength", materialStrength}} {
		if err := calc.Positive("gear-design", p.name, p.v); err != nil {
			return GearDesignResult{}, err
		}
	}
	torque := powerKW * 1000 * 60 / (2 * math.Pi * speedRPM)

	// Lewis form factor for the minimum pinion tooth count.
	y := 0.484 - 2.87/float64(minPinionTeeth)

	const qualityGrade = 7
	m := math.Cbrt(2 * torque * qualityGrade / (materialStrength * y * math.Pi))
	m = nearestStandard(standardModules, m)

	z1 := minPinionTeeth
	z2 := int(float64(z1) * ratio)
	d1 := m * float64(z1)
	d2 := m * float64(z2)

	v := math.Pi * d1 * speedRPM / 60000
	ft := 2000 * powerKW / v

	b := 10 * m
	sb := materialStrength * m * 10 * y
	q := 2 * ratio / (ratio + 1)
	sw := b * q * materialStrength * d1 / 2000

	return GearDesignResult{
		Module:            m,
		PinionTeeth:       z1,
		GearTeeth:         z2,
		PinionDiameter:    d1,
		GearDiameter:      d2,
		CenterDistance:    (d1 + d2) / 2,
		FaceWidth:         b,
		PitchLineVelocity: v,
		TangentialForce:   ft,
		BeamStrength:      sb,
		WearStrength:      sw,
		PowerRating:       math.Min(sb, sw) * v / 1000,
	}, nil
}

// ShaftDesignResult sizes a shaft under combined bending and torsion.
type ShaftDesignResult struct {
	RequiredDiameter float64 // m
	ActualDiameter   float64 // m, next standard size
	EquivalentMoment float64 // N·m
	MaxStressMPa     float64
	SafetyFactor     float64
}

// ShaftDesign applies the ASME equivalent-moment method. Strengths are
// in MPa; fatigueStrength of 0 defaults to 0.5·Sy.
func ShaftDesign(torque, bendingMoment, yieldStrengthMPa, fatigueStrengthMPa, safetyFactor, kf float64) (ShaftDesignResult, error) {
	if err := calc.Finite("shaft-design", torque, bendingMoment, yieldStrengthMPa, fatigueStrengthMPa, safetyFactor, kf); err != nil {
		return ShaftDesignResult{}, err
	}
	if err := calc.Positive("shaft-design", "yield strength", yieldStrengthMPa); err != nil {
		return ShaftDesignResult{}, err
	}
	if safetyFactor == 0 {
		safetyFactor = 2.0
	}
	if kf == 0 {
		kf = 1.5
	}
	if fatigueStrengthMPa == 0 {
		fatigueStrengthMPa = 0.5 * yieldStrengthMPa
	}
	sy := yieldStrengthMPa * 1e6
	sf := fatigueStrengthMPa * 1e6

	me := math.Sqrt(math.Pow(kf*bendingMoment, 2) + 0.75*math.Pow(kf*torque, 2))
	if me == 0 {
		return ShaftDesignResult{}, fmt.Errorf("shaft-design: no applied load: %w", calc.ErrInvalidInput)
	}
	dStatic := math.Cbrt(16 * safetyFactor * me / (math.Pi * sy))
	dFatigue := math.Cbrt(16 * safetyFactor * me / (math.Pi * sf))
	d := math.Max(dStatic, dFatigue)

	std, err := nextStandard(standardShaftSizes, d*1000)
	if err != nil {
		return ShaftDesignResult{}, fmt.Errorf("shaft-design: %v: %w", err, calc.ErrInvalidInput)
	}
	actual := std / 1000

	stress := 32 * me / (math.Pi * actual * actual * actual)
	return ShaftDesignResult{
		RequiredDiameter: d,
		ActualDiameter:   actual,
		EquivalentMoment: me,
		MaxStressMPa:     stress / 1e6,
		SafetyFactor:     math.Min(sy, sf) / stress,
	}, nil
}

// Belt kinds.
const (
	BeltV    = "v"
	BeltFlat = "flat"
)

// BeltDriveResult sizes an open belt drive.
type BeltDriveResult struct {
	DriverDiameter   float64 // m
	DrivenDiameter   float64 // m
	BeltLength       float64 // m
	BeltSpeed        float64 // m/s
	WrapAngleDriver  float64 // deg
	WrapAngleDriven  float64 // deg
	TightTension     float64 // N
	SlackTension     float64 // N
	BeltsRequired    int
}

// BeltDrive sizes a V or flat belt drive for power (kW) between two
// shaft speeds (rpm) at a given center distance (m).
func BeltDrive(powerKW, speedDriver, speedDriven, centerDistance float64, kind string) (BeltDriveResult, error) {
	if err := calc.Finite("belt-drive", powerKW, speedDriver, speedDriven, centerDistance); err != nil {
		return BeltDriveResult{}, err
	}
	for _, p := range []struct {
		name string
		v    float64
	}{{"power", powerKW}, {"driver speed", speedDriver}, {"driven speed", speedDriven}, {"center distance", centerDistance}} {
		if err := calc.Positive("belt-drive", p.name, p.v); err != nil {
			return BeltDriveResult{}, err
		}
	}
	if kind != BeltV && kind != BeltFlat {
		return BeltDriveResult{}, fmt.Errorf("belt-drive: unknown belt kind %q: %w", kind, calc.ErrInvalidInput)
	}
	ratio := speedDriver / speedDriven

	d1 := math.Sqrt(powerKW*1000/speedDriver) * 0.03
	d2 := d1 * ratio
	d1 = nearestStandard(standardPulleySizes, d1*1000) / 1000
	d2 = nearestStandard(standardPulleySizes, d2*1000) / 1000

	length := 2*centerDistance + math.Pi*(d1+d2)/2 + (d2-d1)*(d2-d1)/(4*centerDistance)
	v := math.Pi * d1 * speedDriver / 60

	sin := (d2 - d1) / (2 * centerDistance)
	if sin < -1 || sin > 1 {
		return BeltDriveResult{}, fmt.Errorf("belt-drive: center distance too small for pulley sizes: %w", calc.ErrInvalidInput)
	}
	alpha1 := math.Pi - 2*math.Asin(sin)
	alpha2 := math.Pi + 2*math.Asin(sin)

	var tensionRatio float64
	if kind == BeltV {
		const mu = 0.35
		beta := 34 * math.Pi / 180
		tensionRatio = math.Exp(mu * alpha1 / math.Sin(beta/2))
	} else {
		const mu = 0.30
		tensionRatio = math.Exp(mu * alpha1)
	}

	powerW := powerKW * 1000
	t1 := powerW / v
	t2 := t1 / tensionRatio

	const serviceFactor = 1.2
	belts := int(math.Ceil(powerKW * serviceFactor / powerKW))

	return BeltDriveResult{
		DriverDiameter:  d1,
		DrivenDiameter:  d2,
		BeltLength:      length,
		BeltSpeed:       v,
		WrapAngleDriver: alpha1 * 180 / math.Pi,
		WrapAngleDriven: alpha2 * 180 / math.Pi,
		TightTension:    t1,
		SlackTension:    t2,
		BeltsRequired:   belts,
	}, nil
}

// Bearing kinds.
const (
	BearingBall   = "ball"
	BearingRoller = "roller"
)

// reliabilityFactor is the a1 life-adjustment table.
var reliabilityFactor = map[float64]float64{
	0.90: 1.00,
	0.95: 0.62,
	0.99: 0.21,
}

// BearingLifeResult is the rating-life assessment.
type BearingLifeResult struct {
	BasicRatingLife   float64 // million revolutions
	AdjustedLife      float64 // million revolutions
	LifeHours         float64
	ReliabilityFactor float64
}

// BearingLife evaluates L10 = (C/P)^p with the reliability adjustment.
func BearingLife(load, speedRPM, dynamicCapacity, reliability float64, kind string) (BearingLifeResult, error) {
	if err := calc.Finite("bearing-life", load, speedRPM, dynamicCapacity, reliability); err != nil {
		return BearingLifeResult{}, err
	}
	if err := calc.Positive("bearing-life", "load", load); err != nil {
		return BearingLifeResult{}, err
	}
	if err := calc.Positive("bearing-life", "speed", speedRPM); err != nil {
		return BearingLifeResult{}, err
	}
	if err := calc.Positive("bearing-life", "dynamic capacity", dynamicCapacity); err != nil {
		return BearingLifeResult{}, err
	}
	if reliability == 0 {
		reliability = 0.90
	}
	a1, ok := reliabilityFactor[reliability]
	if !ok {
		return BearingLifeResult{}, fmt.Errorf("bearing-life: reliability %g not tabulated (0.90, 0.95, 0.99): %w", reliability, calc.ErrInvalidInput)
	}
	var p float64
	switch kind {
	case BearingBall:
		p = 3
	case BearingRoller:
		p = 10.0 / 3
	default:
		return BearingLifeResult{}, fmt.Errorf("bearing-life: unknown bearing kind %q: %w", kind, calc.ErrInvalidInput)
	}
	l10 := math.Pow(dynamicCapacity/load, p)
	lna := a1 * l10
	return BearingLifeResult{
		BasicRatingLife:   l10,
		AdjustedLife:      lna,
		LifeHours:         1e6 / (60 * speedRPM) * lna,
		ReliabilityFactor: a1,
	}, nil
}

// SpringDesignResult sizes a helical compression spring.
type SpringDesignResult struct {
	CoilDiameter       float64 // m (mean)
	SpringIndex        float64
	ActiveCoils        float64
	TotalCoils         float64
	FreeLength         float64 // m
	SolidLength        float64 // m
	SpringRate         float64 // N/m
	MaxShearStress     float64 // Pa
	StressSafetyFactor float64
}

// springIndex is the chosen C = D/d; moderate stress, good stability.
const springIndex = 6.0

// SpringDesign sizes a helical compression spring for a load and
// deflection. G of 0 defaults to steel (79.3 GPa), Sut of 0 to 1200 MPa.
func SpringDesign(load, deflection, wireDiameter, shearModulus, ultimateStrength, safetyFactor float64) (SpringDesignResult, error) {
	if err := calc.Finite("spring-design", load, deflection, wireDiameter, shearModulus, ultimateStrength, safetyFactor); err != nil {
		return SpringDesignResult{}, err
	}
	if err := calc.Positive("spring-design", "load", load); err != nil {
		return SpringDesignResult{}, err
	}
	if err := calc.Positive("spring-design", "deflection", deflection); err != nil {
		return SpringDesignResult{}, err
	}
	if err := calc.Positive("spring-design", "wire diameter", wireDiameter); err != nil {
		return SpringDesignResult{}, err
	}
	if shearModulus == 0 {
		shearModulus = 79.3e9
	}
	if ultimateStrength == 0 {
		ultimateStrength = 1200e6
	}
	if safetyFactor == 0 {
		safetyFactor = 1.5
	}
	d := wireDiameter
	dm := springIndex * d
	k := load / deflection

	na := shearModulus * d * d * d * d / (8 * dm * dm * dm * k)
	nt := na + 2

	free := nt*d + 1.15*deflection
	solid := nt * d

	ks := (4*springIndex-1)/(4*springIndex-4) + 0.615/springIndex
	tau := ks * 8 * load * dm / (math.Pi * d * d * d)

	return SpringDesignResult{
		CoilDiameter:       dm,
		SpringIndex:        springIndex,
		ActiveCoils:        na,
		TotalCoils:         nt,
		FreeLength:         free,
		SolidLength:        solid,
		SpringRate:         k,
		MaxShearStress:     tau,
		StressSafetyFactor: ultimateStrength / (safetyFactor * tau),
	}, nil
}

// PowerScrewResult summarizes Acme power-screw torque and efficiency.
type PowerScrewResult struct {
	RaisingTorque  float64 // N·m
	LoweringTorque float64 // N·m, 0 when self-locking
	Efficiency     float64 // percent
	LeadAngleDeg   float64
	SelfLocking    bool
	ScrewTorque    float64 // N·m
	CollarTorque   float64 // N·m
}

// PowerScrew evaluates torque to raise an axial load on an Acme thread
// with collar friction. collarDiameter of 0 defaults to 1.5·dm.
func PowerScrew(axialLoad, meanDiameter, pitch, frictionCoeff, collarFriction, collarDiameter float64) (PowerScrewResult, error) {
	if err := calc.Finite("power-screw", axialLoad, meanDiameter, pitch, frictionCoeff, collarFriction, collarDiameter); err != nil {
		return PowerScrewResult{}, err
	}
	if err := calc.Positive("power-screw", "axial load", axialLoad); err != nil {
		return PowerScrewResult{}, err
	}
	if err := calc.Positive("power-screw", "mean diameter", meanDiameter); err != nil {
		return PowerScrewResult{}, err
	}
	if err := calc.Positive("power-screw", "pitch", pitch); err != nil {
		return PowerScrewResult{}, err
	}
	if frictionCoeff == 0 {
		frictionCoeff = 0.15
	}
	if collarFriction == 0 {
		collarFriction = 0.12
	}
	if collarDiameter == 0 {
		collarDiameter = 1.5 * meanDiameter
	}

	alpha := 29 * math.Pi / 180 // Acme thread angle
	lead := math.Atan(pitch / (math.Pi * meanDiameter))
	fp := frictionCoeff / math.Cos(alpha/2)

	screw := axialLoad * meanDiameter / 2 *
		(math.Tan(lead) + fp) / (1 - fp*math.Tan(lead))
	collar := axialLoad * collarFriction * collarDiameter / 2
	total := screw + collar

	eff := axialLoad * pitch / (2 * math.Pi * total)
	selfLocking := fp > math.Tan(lead)

	lowering := total
	if selfLocking {
		lowering = 0
	}
	return PowerScrewResult{
		RaisingTorque:  total,
		LoweringTorque: lowering,
		Efficiency:     eff * 100,
		LeadAngleDeg:   lead * 180 / math.Pi,
		SelfLocking:    selfLocking,
		ScrewTorque:    screw,
		CollarTorque:   collar,
	}, nil
}
