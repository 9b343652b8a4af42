// Package cli provides the vvresults command-line interface.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/config"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/errors"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/output"
)

// Version is set at build time.
var Version = "dev"

// app carries the state shared by every command of one invocation.
type app struct {
	out    *output.Writer
	cfg    *config.Config
	opts   config.Options
	logger *slog.Logger
	jq     string
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	return RunWithIO(args, os.Stdout, os.Stderr)
}

// RunWithIO executes the CLI writing to the given streams.
func RunWithIO(args []string, stdout, stderr io.Writer) int {
	a := &app{out: output.NewWithWriters(stdout, stderr, false)}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		a.out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	return errors.ExitSuccess
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errors.Configf("%s expects %d argument(s), got %d\n\nUsage: %s", cmd.Name(), n, len(args), cmd.UseLine())
		}
		return nil
	}
}

// usesColor reports whether color should be on for w under mode.
func usesColor(mode output.ColorMode, w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return mode.Enabled(f)
	}
	return mode == output.ColorAlways
}
