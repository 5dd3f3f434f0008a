// internal/registry/registry.go
// The operation catalog: maps a --module/--op selector plus named
// parameters onto a core formula call. Both binaries share the catalog;
// the termux profile exposes the Lite subset.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"mechsolver-core/calc"
	"mechsolver-core/materials"
)

// Param describes one input a formula needs.
type Param struct {
	Name       string
	Unit       string // SI unit shown in prompts/help; empty = dimensionless
	Desc       string
	Choice     []string // non-nil = string-valued selector restricted to these
	Free       bool     // string-valued, unrestricted (material codes, tooth lists)
	Default    float64  // used when Optional and the parameter is absent
	StrDefault string
	Optional   bool
}

// IsString reports whether the parameter carries a string value.
func (p Param) IsString() bool { return p.Free || len(p.Choice) > 0 }

// Inputs is the parsed parameter set for one invocation.
type Inputs struct {
	Numbers map[string]float64
	Strings map[string]string
}

// Op is one catalog entry.
type Op struct {
	Name   string
	Title  string
	Lite   bool // available under the termux profile
	Params []Param
	Run    func(in Inputs) (calc.Result, error)
}

// Module groups operations by discipline.
type Module struct {
	Name  string
	Title string
	Ops   []Op
}

// Catalog builds the full operation table. The material table is bound
// here so --materials overrides reach the materials operations.
func Catalog(table *materials.Table) []Module {
	return []Module{
		kinematicsModule(),
		stressModule(),
		fluidsModule(),
		thermoModule(),
		machineModule(),
		materialsModule(table),
	}
}

// Profiles.
const (
	ModeDesktop = "desktop"
	ModeTermux  = "termux"
)

// Filter returns the catalog restricted to a profile.
func Filter(mods []Module, mode string) []Module {
	if mode != ModeTermux {
		return mods
	}
	out := make([]Module, 0, len(mods))
	for _, m := range mods {
		fm := Module{Name: m.Name, Title: m.Title}
		for _, op := range m.Ops {
			if op.Lite {
				fm.Ops = append(fm.Ops, op)
			}
		}
		if len(fm.Ops) > 0 {
			out = append(out, fm)
		}
	}
	return out
}

// Find resolves a module/op selector.
func Find(mods []Module, module, op string) (*Module, *Op, error) {
	for i := range mods {
		if mods[i].Name != module {
			continue
		}
		for j := range mods[i].Ops {
			if mods[i].Ops[j].Name == op {
				return &mods[i], &mods[i].Ops[j], nil
			}
		}
		return nil, nil, fmt.Errorf("unknown operation %q in module %q (try --list): %w", op, module, calc.ErrInvalidInput)
	}
	names := make([]string, 0, len(mods))
	for _, m := range mods {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return nil, nil, fmt.Errorf("unknown module %q (have: %s): %w", module, strings.Join(names, ", "), calc.ErrInvalidInput)
}

// Execute validates inputs against the op's parameter specs, fills
// defaults, and runs the formula.
func Execute(op *Op, in Inputs) (calc.Result, error) {
	if in.Numbers == nil {
		in.Numbers = map[string]float64{}
	}
	if in.Strings == nil {
		in.Strings = map[string]string{}
	}
	known := make(map[string]bool, len(op.Params))
	for _, p := range op.Params {
		known[p.Name] = true
		if p.IsString() {
			v, ok := in.Strings[p.Name]
			if !ok {
				if p.StrDefault != "" || p.Optional {
					in.Strings[p.Name] = p.StrDefault
					continue
				}
				return nil, fmt.Errorf("%s: missing parameter %q: %w", op.Name, p.Name, calc.ErrInvalidInput)
			}
			if len(p.Choice) > 0 && !contains(p.Choice, v) {
				return nil, fmt.Errorf("%s: parameter %q must be one of %s: %w",
					op.Name, p.Name, strings.Join(p.Choice, "|"), calc.ErrInvalidInput)
			}
			continue
		}
		if _, ok := in.Numbers[p.Name]; !ok {
			if !p.Optional {
				return nil, fmt.Errorf("%s: missing parameter %q: %w", op.Name, p.Name, calc.ErrInvalidInput)
			}
			in.Numbers[p.Name] = p.Default
		}
	}
	for name := range in.Numbers {
		if !known[name] {
			return nil, fmt.Errorf("%s: unknown parameter %q: %w", op.Name, name, calc.ErrInvalidInput)
		}
	}
	for name := range in.Strings {
		if !known[name] {
			return nil, fmt.Errorf("%s: unknown parameter %q: %w", op.Name, name, calc.ErrInvalidInput)
		}
	}
	return op.Run(in)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// num / str fetch resolved parameters inside adapters. Execute has
// already guaranteed presence, so these are plain map reads.
func num(in Inputs, name string) float64 { return in.Numbers[name] }
func str(in Inputs, name string) string  { return in.Strings[name] }
