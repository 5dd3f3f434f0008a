package registry

import (
	"strings"

	"mechsolver-core/calc"
	"mechsolver-core/materials"
)

func materialsModule(table *materials.Table) Module {
	code := Param{Name: "material", Free: true, Desc: "material code, e.g. STEEL_1045"}
	return Module{
		Name:  "materials",
		Title: "Material property lookups",
		Ops: []Op{
			{
				Name: "lookup", Title: "Full property record for one material", Lite: true,
				Params: []Param{code},
				Run: func(in Inputs) (calc.Result, error) {
					rec, err := table.Lookup(normalizeCode(str(in, "material")))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.L("name", rec.Name),
						calc.V("density", rec.Density, "kg/m3"),
						calc.V("elastic-modulus", rec.ElasticModulusGPa, "GPa"),
						calc.V("poisson-ratio", rec.PoissonRatio, ""),
						calc.V("yield-strength", rec.YieldStrengthMPa, "MPa"),
						calc.V("ultimate-strength", rec.UltimateStrengthMPa, "MPa"),
						calc.V("thermal-conductivity", rec.ThermalConductivity, "W/m.K"),
						calc.V("thermal-expansion", rec.ThermalExpansion, "1/K"),
						calc.V("cost-per-kg", rec.CostPerKg, "USD/kg"),
					}, nil
				},
			},
			{
				Name: "stress-strain", Title: "Axial stress, strain, and yield margin", Lite: true,
				Params: []Param{
					code,
					{Name: "force", Unit: "N"},
					{Name: "area", Unit: "m2"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					r, err := table.StressStrain(normalizeCode(str(in, "material")), num(in, "force"), num(in, "area"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("stress", r.Stress, "Pa"),
						calc.V("strain", r.Strain, ""),
						calc.V("safety-factor", r.SafetyFactor, ""),
					}, nil
				},
			},
			{
				Name: "thermal-expansion", Title: "Length change with temperature", Lite: true,
				Params: []Param{
					code,
					{Name: "initial-length", Unit: "m"},
					{Name: "delta-t", Unit: "K"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					r, err := table.ThermalExpansion(normalizeCode(str(in, "material")), num(in, "initial-length"), num(in, "delta-t"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("length-change", r.LengthChange, "m"),
						calc.V("final-length", r.FinalLength, "m"),
						calc.V("strain", r.Strain, ""),
					}, nil
				},
			},
			{
				Name: "heat-conduction", Title: "Conduction using tabulated conductivity", Lite: true,
				Params: []Param{
					code,
					{Name: "area", Unit: "m2"},
					{Name: "thickness", Unit: "m"},
					{Name: "delta-t", Unit: "K"},
				},
				Run: func(in Inputs) (calc.Result, error) {
					r, err := table.HeatConduction(normalizeCode(str(in, "material")), num(in, "area"), num(in, "thickness"), num(in, "delta-t"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("heat-flux", r.HeatFlux, "W"),
						calc.V("thermal-resistance", r.ThermalResistance, "K/W"),
					}, nil
				},
			},
			{
				Name: "cost", Title: "Stock mass and cost estimate", Lite: true,
				Params: []Param{
					code,
					{Name: "volume", Unit: "m3"},
					{Name: "processing-factor", Optional: true, Default: 1},
				},
				Run: func(in Inputs) (calc.Result, error) {
					r, err := table.CostEstimate(normalizeCode(str(in, "material")), num(in, "volume"), num(in, "processing-factor"))
					if err != nil {
						return nil, err
					}
					return calc.Result{
						calc.V("mass", r.Mass, "kg"),
						calc.V("material-cost", r.MaterialCost, "USD"),
						calc.V("total-cost", r.TotalCost, "USD"),
					}, nil
				},
			},
		},
	}
}

// normalizeCode accepts lower-case and hyphenated spellings of a code.
func normalizeCode(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
}
