// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"mechsolver/internal/output"
	"mechsolver/internal/registry"
	"mechsolver/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Calculation selection
	Module string
	Op     string
	Params []string // raw name=value pairs, split later against the op spec

	// Catalog
	Mode          string // desktop | termux
	List          bool
	MaterialsFile string
	ShowMaterials bool

	// Output
	Units  string
	Output string
	Header bool // true unless --no-header
	Quiet  bool

	Interactive bool
	About       bool
	Version     bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: mechanical engineering formula calculator

Version: %s

One-shot:    %s --module stress --op principal -P sigma-x=80e6 -P sigma-y=20e6 -P tau-xy=40e6
Interactive: %s -i
Catalog:     %s --list

Usage of %s:
`, name, version.Version, name, name, name, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// defaultMode distinguishes the desktop binary from the lite one.
func ParseArgs(fs *flag.FlagSet, argv []string, defaultMode string) (Options, error) {
	var opt Options
	var help bool

	// Calculation selection
	fs.StringVar(&opt.Module, "module", "", "discipline: kinematics | stress | fluids | thermo | machine | materials")
	fs.StringVar(&opt.Module, "M", "", "discipline (shorthand)")
	fs.StringVar(&opt.Op, "op", "", "operation within the module (see --list)")
	var params stringSlice
	fs.Var(&params, "param", "name=value input parameter (repeatable)")
	fs.Var(&params, "P", "name=value input parameter (shorthand)")

	// Catalog
	fs.StringVar(&opt.Mode, "mode", defaultMode, "operation catalog profile: desktop | termux ["+defaultMode+"]")
	fs.BoolVar(&opt.List, "list", false, "list modules and operations, then exit [false]")
	fs.StringVar(&opt.MaterialsFile, "materials", "", "TSV file of extra material records merged before dispatch")
	fs.BoolVar(&opt.ShowMaterials, "show-materials", false, "print the material table, then exit [false]")

	// Output
	fs.StringVar(&opt.Units, "units", output.UnitsSI, "output unit system: si | imperial ["+output.UnitsSI+"]")
	fs.StringVar(&opt.Output, "output", output.FormatText, "output format: text | json ["+output.FormatText+"]")
	fs.StringVar(&opt.Output, "o", output.FormatText, "output format (shorthand)")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "suppress warnings (shorthand) [false]")

	fs.BoolVar(&opt.Interactive, "interactive", false, "menu-driven shell on stdin/stdout [false]")
	fs.BoolVar(&opt.Interactive, "i", false, "menu-driven shell (shorthand) [false]")
	fs.BoolVar(&opt.About, "about", false, "print program description and exit [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version || opt.About {
		return opt, nil
	}
	opt.Params = params
	opt.Header = !noHeader

	// Validation
	switch {
	case opt.Mode != registry.ModeDesktop && opt.Mode != registry.ModeTermux:
		return opt, fmt.Errorf("invalid --mode %q", opt.Mode)
	case opt.Units != output.UnitsSI && opt.Units != output.UnitsImperial:
		return opt, fmt.Errorf("invalid --units %q", opt.Units)
	case opt.Output != output.FormatText && opt.Output != output.FormatJSON:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	case opt.List && opt.Op != "":
		return opt, errors.New("--list conflicts with --op")
	case opt.Interactive && opt.Op != "":
		return opt, errors.New("--interactive conflicts with --op")
	case opt.Op != "" && opt.Module == "":
		return opt, errors.New("--op requires --module")
	case len(opt.Params) > 0 && opt.Op == "":
		return opt, errors.New("--param requires --op")
	case opt.Module != "" && opt.Op == "" && !opt.List:
		return opt, errors.New("--module requires --op (or --list)")
	}
	for _, p := range opt.Params {
		if !strings.Contains(p, "=") {
			return opt, fmt.Errorf("bad --param %q, want name=value", p)
		}
	}
	if !opt.List && !opt.Interactive && !opt.ShowMaterials && opt.Op == "" {
		return opt, errors.New("nothing to do: provide --module/--op, --list, or --interactive")
	}
	return opt, nil
}

// SplitParams separates raw name=value pairs into numeric and string
// parameter maps using the operation's declared specs.
func SplitParams(op *registry.Op, raw []string) (registry.Inputs, error) {
	in := registry.Inputs{
		Numbers: map[string]float64{},
		Strings: map[string]string{},
	}
	stringParam := map[string]bool{}
	for _, p := range op.Params {
		if p.IsString() {
			stringParam[p.Name] = true
		}
	}
	for _, pair := range raw {
		name, val, _ := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if stringParam[name] {
			in.Strings[name] = strings.TrimSpace(val)
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return in, fmt.Errorf("parameter %q: %q is not a number", name, val)
		}
		in.Numbers[name] = f
	}
	return in, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
