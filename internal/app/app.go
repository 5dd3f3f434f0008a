// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"mechsolver/internal/cli"
	"mechsolver/internal/cmdutil"
	"mechsolver/internal/output"
	"mechsolver/internal/registry"
	"mechsolver/internal/shell"
	"mechsolver/internal/version"
	"mechsolver/internal/writers"

	"mechsolver-core/materials"
)

const about = `MechSolver evaluates closed-form mechanical engineering formulas:
kinematics, stress analysis, fluid mechanics, thermodynamics, machine
element design, and material property lookups. All calculations are
single-shot SI evaluations; imperial output is converted on the way out.`

// RunContext drives one invocation of the desktop binary.
func RunContext(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunProfile(parent, "mechsolver", registry.ModeDesktop, argv, stdin, stdout, stderr)
}

// Run is the context-free form used by tests.
func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}

// RunProfile is the shared driver; the lite binary calls it with its
// own name and default catalog profile.
func RunProfile(parent context.Context, name, defaultMode string, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	flush := func() (int, bool) {
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0, true
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3, true
		}
		return 0, false
	}

	opts, err := cli.ParseArgs(fs, argv, defaultMode)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if code, stop := flush(); stop {
				return code
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if code, stop := flush(); stop {
			return code
		}
		return 2
	}

	switch {
	case opts.Version:
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		if code, stop := flush(); stop {
			return code
		}
		return 0
	case opts.About:
		_, _ = fmt.Fprintln(outw, about)
		if code, stop := flush(); stop {
			return code
		}
		return 0
	}

	table := materials.Builtin()
	if opts.MaterialsFile != "" {
		extra, err := materials.LoadTSV(opts.MaterialsFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		table = table.Merge(extra)
		cmdutil.Warnf(stderr, opts.Quiet, "merged %d material record(s) from %s", len(extra), opts.MaterialsFile)
	}

	mods := registry.Filter(registry.Catalog(table), opts.Mode)

	switch {
	case opts.List:
		if err := output.WriteCatalog(outw, mods); err != nil && !writers.IsBrokenPipe(err) {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		if code, stop := flush(); stop {
			return code
		}
		return 0
	case opts.ShowMaterials:
		if err := output.WriteMaterials(outw, table, opts.Output); err != nil && !writers.IsBrokenPipe(err) {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		if code, stop := flush(); stop {
			return code
		}
		return 0
	case opts.Interactive:
		// Prompts must not sit in the buffer, so the shell writes to
		// the raw stream.
		if err := shell.New(stdin, stdout, mods, opts.Units, opts.Output).Run(); err != nil && !writers.IsBrokenPipe(err) {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	if err := parent.Err(); err != nil {
		return 130
	}

	_, op, err := registry.Find(mods, opts.Module, opts.Op)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	in, err := cli.SplitParams(op, opts.Params)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	res, err := registry.Execute(op, in)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	r, err := output.ToAPI(opts.Module, opts.Op, res, opts.Units)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if err := output.NewWriter(outw, opts.Output, opts.Header).WriteResult(r); err != nil && !writers.IsBrokenPipe(err) {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if code, stop := flush(); stop {
		return code
	}
	return 0
}
