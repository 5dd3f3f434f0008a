// internal/shell/shell.go
// Menu-driven front end: module menu, operation menu, one prompt per
// parameter, printed result. Calculation errors are reported and the
// loop continues so a typo never kills the session.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"mechsolver/internal/output"
	"mechsolver/internal/registry"
)

const (
	cmdBack = "b"
	cmdQuit = "q"
)

// Shell drives one interactive session.
type Shell struct {
	Modules []registry.Module
	Units   string
	Format  string

	in  *bufio.Scanner
	out io.Writer
}

// New builds a session over the given streams.
func New(in io.Reader, out io.Writer, mods []registry.Module, units, format string) *Shell {
	return &Shell{
		Modules: mods,
		Units:   units,
		Format:  format,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run loops until the user quits or input ends. Write errors surface;
// everything else is printed and retried.
func (s *Shell) Run() error {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "Modules:")
		for i, m := range s.Modules {
			fmt.Fprintf(s.out, "  %d) %-12s %s\n", i+1, m.Name, m.Title)
		}
		line, ok := s.prompt("Select module (number/name, Q quits): ")
		if !ok {
			return nil
		}
		switch strings.ToLower(line) {
		case cmdQuit:
			return nil
		case "", cmdBack:
			continue
		}
		mod := s.pickModule(line)
		if mod == nil {
			fmt.Fprintf(s.out, "no module %q\n", line)
			continue
		}
		if done := s.opLoop(mod); done {
			return nil
		}
	}
}

// opLoop returns true when the user asked to quit the whole session.
func (s *Shell) opLoop(mod *registry.Module) bool {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintf(s.out, "%s operations:\n", mod.Name)
		for i, op := range mod.Ops {
			fmt.Fprintf(s.out, "  %d) %-24s %s\n", i+1, op.Name, op.Title)
		}
		line, ok := s.prompt("Select operation (number/name, B back, Q quits): ")
		if !ok {
			return true
		}
		switch strings.ToLower(line) {
		case cmdQuit:
			return true
		case "", cmdBack:
			return false
		}
		op := pickOp(mod, line)
		if op == nil {
			fmt.Fprintf(s.out, "no operation %q\n", line)
			continue
		}
		if done := s.runOp(mod, op); done {
			return true
		}
	}
}

// runOp prompts for parameters and prints the result. Returns true on
// quit; calculation failures print and return false.
func (s *Shell) runOp(mod *registry.Module, op *registry.Op) bool {
	in := registry.Inputs{
		Numbers: map[string]float64{},
		Strings: map[string]string{},
	}
	for _, p := range op.Params {
		val, quit := s.promptParam(p)
		if quit {
			return true
		}
		if val == "" {
			continue // Execute fills the default
		}
		if p.IsString() {
			in.Strings[p.Name] = val
			continue
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			fmt.Fprintf(s.out, "%q is not a number, aborting operation\n", val)
			return false
		}
		in.Numbers[p.Name] = f
	}

	res, err := registry.Execute(op, in)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return false
	}
	r, err := output.ToAPI(mod.Name, op.Name, res, s.Units)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return false
	}
	if err := output.NewWriter(s.out, s.Format, true).WriteResult(r); err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
	return false
}

// promptParam keeps asking until it gets a usable answer, a blank for
// an optional parameter, or a quit.
func (s *Shell) promptParam(p registry.Param) (string, bool) {
	label := p.Name
	if p.Unit != "" {
		label += " [" + p.Unit + "]"
	}
	if len(p.Choice) > 0 {
		label += " (" + strings.Join(p.Choice, "|") + ")"
	}
	if p.Optional {
		if p.IsString() && p.StrDefault != "" {
			label += fmt.Sprintf(" (default %s)", p.StrDefault)
		} else if !p.IsString() {
			label += fmt.Sprintf(" (default %g)", p.Default)
		}
	}
	for {
		line, ok := s.prompt("  " + label + ": ")
		if !ok || strings.EqualFold(line, cmdQuit) {
			return "", true
		}
		if line == "" && !p.Optional {
			fmt.Fprintf(s.out, "  %s is required\n", p.Name)
			continue
		}
		return line, false
	}
}

func (s *Shell) prompt(msg string) (string, bool) {
	fmt.Fprint(s.out, msg)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) pickModule(sel string) *registry.Module {
	if n, err := strconv.Atoi(sel); err == nil {
		if n >= 1 && n <= len(s.Modules) {
			return &s.Modules[n-1]
		}
		return nil
	}
	for i := range s.Modules {
		if s.Modules[i].Name == sel {
			return &s.Modules[i]
		}
	}
	return nil
}

func pickOp(mod *registry.Module, sel string) *registry.Op {
	if n, err := strconv.Atoi(sel); err == nil {
		if n >= 1 && n <= len(mod.Ops) {
			return &mod.Ops[n-1]
		}
		return nil
	}
	for i := range mod.Ops {
		if mod.Ops[i].Name == sel {
			return &mod.Ops[i]
		}
	}
	return nil
}
