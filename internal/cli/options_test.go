// internal/cli/options_test.go
package cli

import (
	"flag"
	"io"
	"testing"

	"mechsolver/internal/registry"

	"mechsolver-core/materials"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args, registry.ModeDesktop)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestOneShotOK(t *testing.T) {
	o := mustParse(t,
		"--module", "stress", "--op", "normal",
		"-P", "force=100", "-P", "area=0.01",
	)
	if o.Module != "stress" || o.Op != "normal" || len(o.Params) != 2 {
		t.Errorf("bad parse %+v", o)
	}
	if o.Units != "si" || o.Output != "text" || !o.Header {
		t.Errorf("bad defaults %+v", o)
	}
}

func TestInteractiveOK(t *testing.T) {
	o := mustParse(t, "-i")
	if !o.Interactive {
		t.Errorf("want interactive, got %+v", o)
	}
}

func TestListOK(t *testing.T) {
	o := mustParse(t, "--list", "--mode", "termux")
	if !o.List || o.Mode != registry.ModeTermux {
		t.Errorf("bad parse %+v", o)
	}
}

func TestErrorOpWithoutModule(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--op", "normal"}, registry.ModeDesktop); err == nil {
		t.Fatal("expected error for --op without --module")
	}
}

func TestErrorParamWithoutOp(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-P", "force=1"}, registry.ModeDesktop); err == nil {
		t.Fatal("expected error for --param without --op")
	}
}

func TestErrorBadParamSyntax(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{
		"--module", "stress", "--op", "normal", "-P", "force100",
	}, registry.ModeDesktop); err == nil {
		t.Fatal("expected error for param without '='")
	}
}

func TestErrorListConflictsOp(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{
		"--list", "--module", "stress", "--op", "normal",
	}, registry.ModeDesktop); err == nil {
		t.Fatal("expected --list/--op conflict")
	}
}

func TestErrorBadEnums(t *testing.T) {
	for _, args := range [][]string{
		{"--list", "--mode", "tablet"},
		{"--list", "--units", "metric"},
		{"--list", "--output", "yaml"},
	} {
		if _, err := ParseArgs(newFS(), args, registry.ModeDesktop); err == nil {
			t.Errorf("expected enum error for %v", args)
		}
	}
}

func TestErrorNothingToDo(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--quiet"}, registry.ModeDesktop); err == nil {
		t.Fatal("expected nothing-to-do error")
	}
}

func TestDefaultModePerBinary(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--list"}, registry.ModeTermux)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if o.Mode != registry.ModeTermux {
		t.Errorf("mode = %q, want termux default", o.Mode)
	}
}

func TestSplitParams(t *testing.T) {
	_, op, err := registry.Find(registry.Catalog(materials.Builtin()), "kinematics", "cam-lift")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	in, err := SplitParams(op, []string{
		"profile=cycloidal", "base-radius=0.05", "lift=0.01", "angle=90",
	})
	if err != nil {
		t.Fatalf("SplitParams: %v", err)
	}
	if in.Strings["profile"] != "cycloidal" {
		t.Errorf("profile = %q", in.Strings["profile"])
	}
	if in.Numbers["base-radius"] != 0.05 {
		t.Errorf("base-radius = %g", in.Numbers["base-radius"])
	}

	if _, err := SplitParams(op, []string{"lift=tall"}); err == nil {
		t.Error("expected numeric parse error")
	}
}

func TestSplitParamsScientific(t *testing.T) {
	_, op, err := registry.Find(registry.Catalog(materials.Builtin()), "stress", "principal")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	in, err := SplitParams(op, []string{"sigma-x=80e6", "sigma-y=20e6", "tau-xy=40e6"})
	if err != nil {
		t.Fatalf("SplitParams: %v", err)
	}
	if in.Numbers["sigma-x"] != 80e6 {
		t.Errorf("sigma-x = %g", in.Numbers["sigma-x"])
	}
}
