// pkg/api/results_v1.go
package api

// ResultV1 is the stable JSON schema for one calculation.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	Module string    `json:"module"`
	Op     string    `json:"op"`
	Values []ValueV1 `json:"values"`
}

// ValueV1 is one named output quantity. Label replaces Value/Unit for
// categorical outputs such as a flow regime.
type ValueV1 struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
	Label string  `json:"label,omitempty"`
}

// MaterialV1 is the stable schema for material-table listings.
type MaterialV1 struct {
	Code                string  `json:"code"`
	Name                string  `json:"name"`
	Density             float64 `json:"density"`
	ElasticModulusGPa   float64 `json:"elastic_modulus_gpa"`
	PoissonRatio        float64 `json:"poisson_ratio"`
	YieldStrengthMPa    float64 `json:"yield_strength_mpa"`
	UltimateStrengthMPa float64 `json:"ultimate_strength_mpa"`
	ThermalConductivity float64 `json:"thermal_conductivity"`
	ThermalExpansion    float64 `json:"thermal_expansion"`
	CostPerKg           float64 `json:"cost_per_kg,omitempty"`
}
