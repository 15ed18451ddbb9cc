package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-kit/kit/log/level"
	"github.com/kolide/kit/logutil"

	"github.com/mobile-agent/launcher/pkg/launcher"
)

func main() {
	os.Exit(runNoshrc(os.Args, nil))
}

// runNoshrc is the whole program. A nil execFn means the real exec system
// call; tests pass a recorder. A return means the process was not
// replaced: --help was handled, or exec itself failed.
func runNoshrc(args []string, execFn launcher.ExecFunc) int {
	// Exact match, first argument only. Everything else is opaque agent
	// input and passes through untouched.
	if len(args) > 1 && args[1] == "--help" {
		usage(os.Stdout)
		return 0
	}

	// Read before the allow-list environment is constructed. Once the
	// agent is exec'd, nothing of the inherited environment survives.
	debug := os.Getenv(launcher.DebugEnvVar) == launcher.DebugEnvOn
	logger := logutil.NewCLILogger(debug)

	for i, arg := range args[1:] {
		level.Debug(logger).Log(
			"msg", "passthrough argument",
			"index", i+1,
			"value", arg,
		)
	}

	opts := []launcher.Option{
		launcher.WithLogger(logger),
		launcher.WithEnvPassthrough(launcher.DebugEnvVar, launcher.DebugEnvOn),
	}
	if execFn != nil {
		opts = append(opts, launcher.WithExecFunc(execFn))
	}

	if err := launcher.New(launcher.NoshrcTarget, opts...).Exec(args[1:]); err != nil {
		level.Info(logger).Log(
			"msg", "executing agent interpreter",
			"err", err,
		)
		return 1
	}

	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Mobile Agent wrapper")
	fmt.Fprintln(w, "Prevents shell rc loading by replacing the process image directly")
	fmt.Fprintln(w, "Usage: agent-noshrc <agent-request>")
}
