// internal/liteapp/liteapp.go
// The lightweight binary: same engine, termux catalog profile by
// default. --mode desktop still unlocks the full catalog.
package liteapp

import (
	"context"
	"io"

	"mechsolver/internal/app"
	"mechsolver/internal/registry"
)

func RunContext(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return app.RunProfile(parent, "mechsolver-lite", registry.ModeTermux, argv, stdin, stdout, stderr)
}

func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}
