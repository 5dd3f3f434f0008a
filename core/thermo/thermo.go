// core/thermo/thermo.go
// Thermodynamics and heat-transfer formulas: ideal gas, Carnot,
// conduction/convection/radiation, steam and moist-air correlations,
// vapor-compression cycle, heat-exchanger sizing.
package thermo

import (
	"fmt"
	"math"

	"mechsolver-core/calc"
)

const (
	// UniversalGasConstant in J/(mol·K).
	UniversalGasConstant = 8.314
	// StefanBoltzmann in W/(m²·K⁴).
	StefanBoltzmann = 5.67e-8
)

// Ideal gas unknowns.
const (
	GasPressure    = "pressure"
	GasVolume      = "volume"
	GasMoles       = "moles"
	GasTemperature = "temperature"
)

// IdealGasInput carries the three known state variables; the field named
// by Unknown is ignored. R defaults to the universal gas constant.
type IdealGasInput struct {
	Unknown     string
	Pressure    float64 // Pa
	Volume      float64 // m³
	Moles       float64 // mol
	Temperature float64 // K
	R           float64 // J/(mol·K)
}

// IdealGasResult echoes the full solved state.
type IdealGasResult struct {
	Pressure    float64
	Volume      float64
	Moles       float64
	Temperature float64
}

// IdealGas solves PV = nRT for the one unknown named in the input.
func IdealGas(in IdealGasInput) (IdealGasResult, error) {
	r := in.R
	if r == 0 {
		r = UniversalGasConstant
	}
	if err := calc.Finite("ideal-gas", in.Pressure, in.Volume, in.Moles, in.Temperature, r); err != nil {
		return IdealGasResult{}, err
	}
	out := IdealGasResult{
		Pressure:    in.Pressure,
		Volume:      in.Volume,
		Moles:       in.Moles,
		Temperature: in.Temperature,
	}
	switch in.Unknown {
	case GasPressure:
		if err := calc.NonZero("ideal-gas", "volume", in.Volume); err != nil {
			return IdealGasResult{}, err
		}
		out.Pressure = in.Moles * r * in.Temperature / in.Volume
	case GasVolume:
		if err := calc.NonZero("ideal-gas", "pressure", in.Pressure); err != nil {
			return IdealGasResult{}, err
		}
		out.Volume = in.Moles * r * in.Temperature / in.Pressure
	case GasMoles:
		if err := calc.NonZero("ideal-gas", "R·T", r*in.Temperature); err != nil {
			return IdealGasResult{}, err
		}
		out.Moles = in.Pressure * in.Volume / (r * in.Temperature)
	case GasTemperature:
		if err := calc.NonZero("ideal-gas", "n·R", in.Moles*r); err != nil {
			return IdealGasResult{}, err
		}
		out.Temperature = in.Pressure * in.Volume / (in.Moles * r)
	default:
		return IdealGasResult{}, fmt.Errorf("ideal-gas: unknown variable %q: %w", in.Unknown, calc.ErrInvalidInput)
	}
	return out, nil
}

// CarnotResult is the ideal cycle efficiency.
type CarnotResult struct {
	Efficiency        float64 // 0..1
	EfficiencyPercent float64
}

// Carnot computes η = 1 − Tc/Th for absolute temperatures in K.
func Carnot(tHot, tCold float64) (CarnotResult, error) {
	if err := calc.Finite("carnot", tHot, tCold); err != nil {
		return CarnotResult{}, err
	}
	if err := calc.Positive("carnot", "cold temperature", tCold); err != nil {
		return CarnotResult{}, err
	}
	if tHot <= tCold {
		return CarnotResult{}, fmt.Errorf("carnot: hot temperature must exceed cold temperature: %w", calc.ErrInvalidInput)
	}
	eff := 1 - tCold/tHot
	return CarnotResult{Efficiency: eff, EfficiencyPercent: eff * 100}, nil
}

// HeatTransferResult is a steady one-dimensional heat rate.
type HeatTransferResult struct {
	Rate       float64 // W
	Resistance float64 // K/W (0 for radiation)
}

// Conduction is Fourier's law through a plane wall: q = kAΔT/t.
func Conduction(k, area, deltaT, thickness float64) (HeatTransferResult, error) {
	if err := calc.Finite("conduction", k, area, deltaT, thickness); err != nil {
		return HeatTransferResult{}, err
	}
	if err := calc.NonZero("conduction", "thickness", thickness); err != nil {
		return HeatTransferResult{}, err
	}
	if err := calc.NonZero("conduction", "k·A", k*area); err != nil {
		return HeatTransferResult{}, err
	}
	return HeatTransferResult{
		Rate:       k * area * deltaT / thickness,
		Resistance: thickness / (k * area),
	}, nil
}

// Convection is Newton's law of cooling: q = hAΔT.
func Convection(h, area, deltaT float64) (HeatTransferResult, error) {
	if err := calc.Finite("convection", h, area, deltaT); err != nil {
		return HeatTransferResult{}, err
	}
	if err := calc.NonZero("convection", "h·A", h*area); err != nil {
		return HeatTransferResult{}, err
	}
	return HeatTransferResult{Rate: h * area * deltaT, Resistance: 1 / (h * area)}, nil
}

// Radiation is the Stefan-Boltzmann surface exchange q = εσA·T⁴ with the
// fourth-power temperature term supplied directly (matching the
// surface-to-surroundings simplification of the correlation set).
func Radiation(emissivity, area, t4 float64) (HeatTransferResult, error) {
	if err := calc.Finite("radiation", emissivity, area, t4); err != nil {
		return HeatTransferResult{}, err
	}
	return HeatTransferResult{Rate: StefanBoltzmann * area * emissivity * t4}, nil
}

// SteamState is the correlation-based steam summary. The correlation is
// coarse (saturation from a quarter-power pressure law, constant latent
// heat) but is the documented behavior.
type SteamState struct {
	State          string // compressed-liquid | saturated | superheated-vapor
	Quality        float64
	Enthalpy       float64 // kJ/kg
	SpecificVolume float64 // m³/kg
	SaturationTemp float64 // °C
}

const (
	latentHeatVaporization = 2257  // kJ/kg at 1 atm
	cpWater                = 4.186 // kJ/(kg·K)
)

// SteamProperties estimates state and enthalpy for temperature in °C and
// pressure in bar.
func SteamProperties(temperature, pressure float64) (SteamState, error) {
	if err := calc.Finite("steam", temperature, pressure); err != nil {
		return SteamState{}, err
	}
	if err := calc.Positive("steam", "pressure", pressure); err != nil {
		return SteamState{}, err
	}
	tSat := 100 * math.Pow(pressure/1.013, 0.25)

	st := SteamState{SaturationTemp: tSat}
	switch {
	case temperature < tSat:
		st.State = "compressed-liquid"
		st.Quality = 0
		st.Enthalpy = cpWater * temperature
		st.SpecificVolume = 0.001
	case temperature > tSat:
		st.State = "superheated-vapor"
		st.Quality = 1
		st.Enthalpy = latentHeatVaporization + cpWater*temperature
		st.SpecificVolume = 0.018
	default:
		st.State = "saturated"
		st.Quality = 0.5
		st.Enthalpy = 0.5*latentHeatVaporization + cpWater*temperature
		st.SpecificVolume = 0.018
	}
	return st, nil
}

// MoistAir is the psychrometric state of humid air.
type MoistAir struct {
	HumidityRatio    float64 // kg water / kg dry air
	RelativeHumidity float64 // percent
	SpecificVolume   float64 // m³/kg dry air
	Enthalpy         float64 // kJ/kg dry air
	DewPoint         float64 // °C
}

// buckSaturationPressure is saturation vapor pressure in kPa for T in °C.
func buckSaturationPressure(tc float64) float64 {
	return 0.61121 * math.Exp((18.678-tc/234.5)*(tc/(257.14+tc)))
}

// Psychrometrics evaluates moist-air properties from dry-bulb and
// wet-bulb temperatures (°C) at total pressure p (kPa, default 101.325).
func Psychrometrics(dryBulb, wetBulb, pressure float64) (MoistAir, error) {
	if pressure == 0 {
		pressure = 101.325
	}
	if err := calc.Finite("psychrometrics", dryBulb, wetBulb, pressure); err != nil {
		return MoistAir{}, err
	}
	if wetBulb > dryBulb {
		return MoistAir{}, fmt.Errorf("psychrometrics: wet bulb exceeds dry bulb: %w", calc.ErrInvalidInput)
	}
	const ra = 287.058 // J/(kg·K), dry air

	pws := buckSaturationPressure(wetBulb)
	pvs := buckSaturationPressure(dryBulb)

	ws := 0.62198 * pws / (pressure - pws)
	w := ((2501-2.326*wetBulb)*ws - 1.006*(dryBulb-wetBulb)) /
		(2501 + 1.86*dryBulb - 4.186*wetBulb)
	phi := w * pressure / (0.62198 * pvs)

	tK := dryBulb + 273.15
	v := ra * tK * (1 + 1.6078*w) / (pressure * 1000)
	h := 1.006*dryBulb + w*(2501+1.86*dryBulb)

	alpha := math.Log(w * pressure / (0.62198 * 0.61121))
	dew := 243.5 * alpha / (17.67 - alpha)

	return MoistAir{
		HumidityRatio:    w,
		RelativeHumidity: phi * 100,
		SpecificVolume:   v,
		Enthalpy:         h,
		DewPoint:         dew,
	}, nil
}

// CycleResult summarizes a simplified vapor-compression cycle.
type CycleResult struct {
	CompressorWork float64 // kW
	CoolingEffect  float64 // kW
	HeatRejected   float64 // kW
	COP            float64
}

// R134a simplified properties.
const (
	r134aLatentHeat   = 200  // kJ/kg
	r134aSpecificHeat = 1.43 // kJ/(kg·K)
)

// Refrigeration evaluates the four-point cycle with constant-cp R134a
// approximations; temperatures in °C, mass flow in kg/s.
func Refrigeration(evapTemp, condTemp, massFlow float64) (CycleResult, error) {
	if err := calc.Finite("refrigeration", evapTemp, condTemp, massFlow); err != nil {
		return CycleResult{}, err
	}
	if condTemp <= evapTemp {
		return CycleResult{}, fmt.Errorf("refrigeration: condenser temperature must exceed evaporator temperature: %w", calc.ErrInvalidInput)
	}
	if err := calc.Positive("refrigeration", "mass flow", massFlow); err != nil {
		return CycleResult{}, err
	}
	h1 := r134aSpecificHeat*evapTemp + r134aLatentHeat
	h2 := h1 + r134aSpecificHeat*(condTemp-evapTemp)
	h3 := r134aSpecificHeat * condTemp
	h4 := h3 // isenthalpic expansion

	work := massFlow * (h2 - h1)
	cooling := massFlow * (h1 - h4)
	rejected := massFlow * (h2 - h3)
	return CycleResult{
		CompressorWork: work,
		CoolingEffect:  cooling,
		HeatRejected:   rejected,
		COP:            cooling / work,
	}, nil
}

// ExchangerInput sizes a two-stream heat exchanger.
type ExchangerInput struct {
	HotInlet   float64 // °C
	HotOutlet  float64 // °C
	ColdInlet  float64 // °C
	MassFlowH  float64 // kg/s
	MassFlowC  float64 // kg/s
	CpHot      float64 // kJ/(kg·K)
	CpCold     float64 // kJ/(kg·K)
	OverallHTC float64 // kW/(m²·K)
}

// ExchangerResult is the LMTD sizing outcome.
type ExchangerResult struct {
	Duty          float64 // kW
	ColdOutlet    float64 // °C
	LMTD          float64 // K
	RequiredArea  float64 // m²
	Effectiveness float64
	NTU           float64
}

// HeatExchanger computes duty, cold outlet, LMTD, area, effectiveness
// and NTU for a counterflow arrangement.
func HeatExchanger(in ExchangerInput) (ExchangerResult, error) {
	if err := calc.Finite("heat-exchanger", in.HotInlet, in.HotOutlet, in.ColdInlet,
		in.MassFlowH, in.MassFlowC, in.CpHot, in.CpCold, in.OverallHTC); err != nil {
		return ExchangerResult{}, err
	}
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"hot mass flow", in.MassFlowH}, {"cold mass flow", in.MassFlowC},
		{"hot cp", in.CpHot}, {"cold cp", in.CpCold}, {"overall HTC", in.OverallHTC},
	} {
		if err := calc.Positive("heat-exchanger", p.name, p.v); err != nil {
			return ExchangerResult{}, err
		}
	}
	if in.HotInlet <= in.HotOutlet {
		return ExchangerResult{}, fmt.Errorf("heat-exchanger: hot stream must cool down: %w", calc.ErrInvalidInput)
	}
	if in.HotInlet <= in.ColdInlet {
		return ExchangerResult{}, fmt.Errorf("heat-exchanger: hot inlet must exceed cold inlet: %w", calc.ErrInvalidInput)
	}

	q := in.MassFlowH * in.CpHot * (in.HotInlet - in.HotOutlet)
	coldOut := in.ColdInlet + q/(in.MassFlowC*in.CpCold)

	dt1 := in.HotInlet - coldOut
	dt2 := in.HotOutlet - in.ColdInlet
	if dt1 <= 0 || dt2 <= 0 {
		return ExchangerResult{}, fmt.Errorf("heat-exchanger: temperature cross: %w", calc.ErrInvalidInput)
	}
	var lmtd float64
	if dt1 == dt2 {
		lmtd = dt1
	} else {
		lmtd = (dt1 - dt2) / math.Log(dt1/dt2)
	}

	cMin := math.Min(in.MassFlowH*in.CpHot, in.MassFlowC*in.CpCold)
	qMax := cMin * (in.HotInlet - in.ColdInlet)
	area := q / (in.OverallHTC * lmtd)
	return ExchangerResult{
		Duty:          q,
		ColdOutlet:    coldOut,
		LMTD:          lmtd,
		RequiredArea:  area,
		Effectiveness: q / qMax,
		NTU:           in.OverallHTC * area / cMin,
	}, nil
}
