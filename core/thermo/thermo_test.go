package thermo

import (
	"errors"
	"math"
	"testing"

	"mechsolver-core/calc"
)

func approx(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestIdealGasSolveEach(t *testing.T) {
	// 1 mol at 300 K in 0.024 m³: P = nRT/V.
	base := IdealGasInput{Moles: 1, Temperature: 300, Volume: 0.024}
	base.Unknown = GasPressure
	r, err := IdealGas(base)
	if err != nil {
		t.Fatal(err)
	}
	wantP := 1 * UniversalGasConstant * 300 / 0.024
	if !approx(r.Pressure, wantP, 1e-6) {
		t.Errorf("P = %v, want %v", r.Pressure, wantP)
	}

	// Round trip: recompute V from the solved P and the original n, T.
	back, err := IdealGas(IdealGasInput{
		Unknown: GasVolume, Pressure: r.Pressure, Moles: 1, Temperature: 300,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !approx(back.Volume, 0.024, 1e-12) {
		t.Errorf("round trip V = %v, want 0.024", back.Volume)
	}
}

func TestIdealGasErrors(t *testing.T) {
	if _, err := IdealGas(IdealGasInput{Unknown: "entropy"}); !errors.Is(err, calc.ErrInvalidInput) {
		t.Errorf("unknown variable: %v", err)
	}
	_, err := IdealGas(IdealGasInput{Unknown: GasPressure, Moles: 1, Temperature: 300, Volume: 0})
	if !errors.Is(err, calc.ErrDivisionByZero) {
		t.Errorf("zero volume: %v", err)
	}
}

func TestCarnot(t *testing.T) {
	r, err := Carnot(600, 300)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(r.Efficiency, 0.5, 1e-12) || !approx(r.EfficiencyPercent, 50, 1e-9) {
		t.Errorf("carnot: %+v", r)
	}
	if _, err := Carnot(300, 600); !errors.Is(err, calc.ErrInvalidInput) {
		t.Errorf("inverted temperatures: %v", err)
	}
}

func TestConduction(t *testing.T) {
	r, err := Conduction(50, 2, 30, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(r.Rate, 30000, 1e-9) {
		t.Errorf("rate = %v, want 30000", r.Rate)
	}
	if !approx(r.Resistance, 0.001, 1e-12) {
		t.Errorf("resistance = %v, want 0.001", r.Resistance)
	}
	if _, err := Conduction(50, 2, 30, 0); !errors.Is(err, calc.ErrDivisionByZero) {
		t.Errorf("zero thickness: %v", err)
	}
}

func TestConvection(t *testing.T) {
	r, err := Convection(25, 2, 40)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(r.Rate, 2000, 1e-9) {
		t.Errorf("rate = %v, want 2000", r.Rate)
	}
}

func TestSteamStates(t *testing.T) {
	st, err := SteamProperties(20, 1.013)
	if err != nil {
		t.Fatal(err)
	}
	if st.State != "compressed-liquid" {
		t.Errorf("20°C at 1 atm: state %q", st.State)
	}
	if !approx(st.SaturationTemp, 100, 1e-9) {
		t.Errorf("tsat = %v, want 100", st.SaturationTemp)
	}

	st, err = SteamProperties(150, 1.013)
	if err != nil {
		t.Fatal(err)
	}
	if st.State != "superheated-vapor" || st.Quality != 1 {
		t.Errorf("150°C at 1 atm: %+v", st)
	}
}

func TestPsychrometricsSaturated(t *testing.T) {
	// Wet bulb == dry bulb: saturated air, RH near 100%.
	m, err := Psychrometrics(25, 25, 0)
	if err != nil {
		t.Fatal(err)
	}
	if m.RelativeHumidity < 95 || m.RelativeHumidity > 105 {
		t.Errorf("saturated RH = %v, want ~100", m.RelativeHumidity)
	}
	if m.HumidityRatio <= 0 {
		t.Errorf("humidity ratio = %v", m.HumidityRatio)
	}
	if _, err := Psychrometrics(20, 25, 0); !errors.Is(err, calc.ErrInvalidInput) {
		t.Errorf("wet>dry: %v", err)
	}
}

func TestRefrigeration(t *testing.T) {
	r, err := Refrigeration(-10, 40, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	wantWork := 0.1 * r134aSpecificHeat * 50
	if !approx(r.CompressorWork, wantWork, 1e-9) {
		t.Errorf("work = %v, want %v", r.CompressorWork, wantWork)
	}
	if r.COP <= 0 {
		t.Errorf("COP = %v", r.COP)
	}
	// Energy balance: Qcond == Qevap + Wcomp.
	if !approx(r.HeatRejected, r.CoolingEffect+r.CompressorWork, 1e-9) {
		t.Errorf("energy balance: %+v", r)
	}
}

func TestHeatExchanger(t *testing.T) {
	r, err := HeatExchanger(ExchangerInput{
		HotInlet: 120, HotOutlet: 60, ColdInlet: 20,
		MassFlowH: 2, MassFlowC: 3, CpHot: 4.2, CpCold: 4.2, OverallHTC: 1.5,
	})
	if err != nil {
		t.Fatal(err)
	}
	wantQ := 2 * 4.2 * 60.0
	if !approx(r.Duty, wantQ, 1e-9) {
		t.Errorf("duty = %v, want %v", r.Duty, wantQ)
	}
	wantCold := 20 + wantQ/(3*4.2)
	if !approx(r.ColdOutlet, wantCold, 1e-9) {
		t.Errorf("cold outlet = %v, want %v", r.ColdOutlet, wantCold)
	}
	if r.Effectiveness <= 0 || r.Effectiveness > 1 {
		t.Errorf("effectiveness = %v", r.Effectiveness)
	}
	if r.LMTD <= 0 || r.RequiredArea <= 0 || r.NTU <= 0 {
		t.Errorf("sizing: %+v", r)
	}
}
