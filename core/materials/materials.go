// core/materials/materials.go
// Static engineering-material reference table and the property-based
// helper calculations. The built-in table is immutable; LoadTSV merges
// user records into a copy for the running process only.
package materials

import (
	"errors"
	"fmt"
	"sort"

	"mechsolver-core/calc"
)

// ErrNotFound flags a material code absent from the table.
var ErrNotFound = errors.New("material not found")

// Record is one reference-table entry. Moduli and strengths keep the
// table's native units (GPa / MPa); helpers convert where needed.
type Record struct {
	Code                string
	Name                string
	Density             float64 // kg/m³
	ElasticModulusGPa   float64
	PoissonRatio        float64
	YieldStrengthMPa    float64
	UltimateStrengthMPa float64
	ThermalConductivity float64 // W/(m·K)
	ThermalExpansion    float64 // 1/K
	CostPerKg           float64 // USD
}

// builtin is the reference table, loaded once at process start.
var builtin = map[string]Record{
	"STEEL_1045": {
		Code: "STEEL_1045", Name: "Steel AISI 1045",
		Density: 7850, ElasticModulusGPa: 205, PoissonRatio: 0.29,
		YieldStrengthMPa: 505, UltimateStrengthMPa: 585,
		ThermalConductivity: 49.8, ThermalExpansion: 11.5e-6,
		CostPerKg: 2.5,
	},
	"AL_6061": {
		Code: "AL_6061", Name: "Aluminum 6061-T6",
		Density: 2700, ElasticModulusGPa: 68.9, PoissonRatio: 0.33,
		YieldStrengthMPa: 276, UltimateStrengthMPa: 310,
		ThermalConductivity: 167, ThermalExpansion: 23.6e-6,
		CostPerKg: 4.8,
	},
	"BRASS_360": {
		Code: "BRASS_360", Name: "Brass C360",
		Density: 8500, ElasticModulusGPa: 97, PoissonRatio: 0.34,
		YieldStrengthMPa: 310, UltimateStrengthMPa: 379,
		ThermalConductivity: 115, ThermalExpansion: 20.3e-6,
		CostPerKg: 7.2,
	},
	"SS_304": {
		Code: "SS_304", Name: "Stainless Steel 304",
		Density: 8000, ElasticModulusGPa: 193, PoissonRatio: 0.29,
		YieldStrengthMPa: 215, UltimateStrengthMPa: 505,
		ThermalConductivity: 16.2, ThermalExpansion: 17.3e-6,
		CostPerKg: 5.5,
	},
	"TI_6AL4V": {
		Code: "TI_6AL4V", Name: "Titanium Ti-6Al-4V",
		Density: 4430, ElasticModulusGPa: 113.8, PoissonRatio: 0.342,
		YieldStrengthMPa: 880, UltimateStrengthMPa: 950,
		ThermalConductivity: 6.7, ThermalExpansion: 8.6e-6,
		CostPerKg: 35,
	},
}

// Table is a material lookup table. The zero value is unusable; use
// Builtin() or Builtin().Merge(...).
type Table struct {
	records map[string]Record
}

// Builtin returns a table backed by the built-in reference records.
func Builtin() *Table {
	return &Table{records: builtin}
}

// Merge returns a new table with extra records layered over t.
// Duplicate codes override for the returned table only.
func (t *Table) Merge(extra []Record) *Table {
	m := make(map[string]Record, len(t.records)+len(extra))
	for k, v := range t.records {
		m[k] = v
	}
	for _, r := range extra {
		m[r.Code] = r
	}
	return &Table{records: m}
}

// Lookup fetches a record by code; unknown codes fail with ErrNotFound,
// never a zeroed record.
func (t *Table) Lookup(code string) (Record, error) {
	r, ok := t.records[code]
	if !ok {
		return Record{}, fmt.Errorf("material %q: %w", code, ErrNotFound)
	}
	return r, nil
}

// Codes lists the table's material codes, sorted for stable menus.
func (t *Table) Codes() []string {
	out := make([]string, 0, len(t.records))
	for c := range t.records {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// StressStrainResult is the axial loading summary against a material.
type StressStrainResult struct {
	Stress       float64 // Pa
	Strain       float64
	SafetyFactor float64 // vs yield
}

// StressStrain computes stress, Hookean strain, and yield safety factor
// for an axial load on the named material.
func (t *Table) StressStrain(code string, force, area float64) (StressStrainResult, error) {
	rec, err := t.Lookup(code)
	if err != nil {
		return StressStrainResult{}, err
	}
	if err := calc.Finite("stress-strain", force, area); err != nil {
		return StressStrainResult{}, err
	}
	if err := calc.NonZero("stress-strain", "area", area); err != nil {
		return StressStrainResult{}, err
	}
	sigma := force / area
	if err := calc.NonZero("stress-strain", "stress", sigma); err != nil {
		return StressStrainResult{}, err
	}
	return StressStrainResult{
		Stress:       sigma,
		Strain:       sigma / (rec.ElasticModulusGPa * 1e9),
		SafetyFactor: rec.YieldStrengthMPa * 1e6 / sigma,
	}, nil
}

// ExpansionResult is free thermal expansion of a bar.
type ExpansionResult struct {
	LengthChange float64 // m
	FinalLength  float64 // m
	Strain       float64
}

// ThermalExpansion computes ΔL = α·L0·ΔT for the named material.
func (t *Table) ThermalExpansion(code string, initialLength, deltaT float64) (ExpansionResult, error) {
	rec, err := t.Lookup(code)
	if err != nil {
		return ExpansionResult{}, err
	}
	if err := calc.Finite("thermal-expansion", initialLength, deltaT); err != nil {
		return ExpansionResult{}, err
	}
	if err := calc.Positive("thermal-expansion", "initial length", initialLength); err != nil {
		return ExpansionResult{}, err
	}
	dl := initialLength * rec.ThermalExpansion * deltaT
	return ExpansionResult{
		LengthChange: dl,
		FinalLength:  initialLength + dl,
		Strain:       dl / initialLength,
	}, nil
}

// ConductionResult is steady conduction through a slab of the material.
type ConductionResult struct {
	HeatFlux          float64 // W
	ThermalResistance float64 // K/W
}

// HeatConduction computes q = kAΔT/t using the material's conductivity.
func (t *Table) HeatConduction(code string, area, thickness, deltaT float64) (ConductionResult, error) {
	rec, err := t.Lookup(code)
	if err != nil {
		return ConductionResult{}, err
	}
	if err := calc.Finite("heat-conduction", area, thickness, deltaT); err != nil {
		return ConductionResult{}, err
	}
	if err := calc.Positive("heat-conduction", "area", area); err != nil {
		return ConductionResult{}, err
	}
	if err := calc.NonZero("heat-conduction", "thickness", thickness); err != nil {
		return ConductionResult{}, err
	}
	return ConductionResult{
		HeatFlux:          rec.ThermalConductivity * area * deltaT / thickness,
		ThermalResistance: thickness / (rec.ThermalConductivity * area),
	}, nil
}

// CostResult is a rough stock-cost estimate.
type CostResult struct {
	Mass         float64 // kg
	MaterialCost float64 // USD
	TotalCost    float64 // USD
}

// CostEstimate prices a solid volume of the material with a processing
// multiplier (1.0 = raw stock).
func (t *Table) CostEstimate(code string, volume, processingFactor float64) (CostResult, error) {
	rec, err := t.Lookup(code)
	if err != nil {
		return CostResult{}, err
	}
	if err := calc.Finite("cost-estimate", volume, processingFactor); err != nil {
		return CostResult{}, err
	}
	if err := calc.Positive("cost-estimate", "volume", volume); err != nil {
		return CostResult{}, err
	}
	if processingFactor == 0 {
		processingFactor = 1.0
	}
	mass := rec.Density * volume
	base := mass * rec.CostPerKg
	return CostResult{Mass: mass, MaterialCost: base, TotalCost: base * processingFactor}, nil
}
