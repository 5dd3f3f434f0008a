// core/materials/loader.go
package materials

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadTSV reads additional material records from a tab/space separated
// file. Columns: code name density E(GPa) poisson yield(MPa)
// ultimate(MPa) k(W/m·K) alpha(1/K) [cost/kg]. The name column uses '_'
// for spaces. Blank lines and '#' comments are skipped.
func LoadTSV(path string) ([]Record, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var list []Record
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		// Accept 9 fields, or 10 with cost.
		if len(f) < 9 || len(f) > 10 {
			return nil, fmt.Errorf("%s:%d bad field count", path, ln)
		}
		r := Record{
			Code: strings.ToUpper(f[0]),
			Name: strings.ReplaceAll(f[1], "_", " "),
		}
		nums := []struct {
			dst  *float64
			name string
			col  int
		}{
			{&r.Density, "density", 2},
			{&r.ElasticModulusGPa, "elastic modulus", 3},
			{&r.PoissonRatio, "poisson ratio", 4},
			{&r.YieldStrengthMPa, "yield strength", 5},
			{&r.UltimateStrengthMPa, "ultimate strength", 6},
			{&r.ThermalConductivity, "thermal conductivity", 7},
			{&r.ThermalExpansion, "thermal expansion", 8},
		}
		for _, n := range nums {
			if _, err := fmt.Sscan(f[n.col], n.dst); err != nil {
				return nil, fmt.Errorf("%s:%d bad %s: %v", path, ln, n.name, err)
			}
		}
		if len(f) == 10 {
			if _, err := fmt.Sscan(f[9], &r.CostPerKg); err != nil {
				return nil, fmt.Errorf("%s:%d bad cost: %v", path, ln, err)
			}
		}
		list = append(list, r)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
