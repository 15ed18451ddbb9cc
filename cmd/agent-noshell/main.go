package main

import (
	"fmt"
	"os"

	"github.com/go-kit/kit/log/level"
	"github.com/kolide/kit/logutil"

	"github.com/mobile-agent/launcher/pkg/launcher"
)

func main() {
	os.Exit(runNoshell(os.Args, nil))
}

// runNoshell is the whole program. A nil execFn means the real exec
// system call; tests pass a recorder. A return means the process was not
// replaced: either the usage check failed or exec itself did.
func runNoshell(args []string, execFn launcher.ExecFunc) int {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: agent-noshell <request>")
		return 1
	}

	logger := logutil.NewCLILogger(false)

	opts := []launcher.Option{
		launcher.WithLogger(logger),
	}
	if execFn != nil {
		opts = append(opts, launcher.WithExecFunc(execFn))
	}

	if err := launcher.New(launcher.NoshellTarget, opts...).Exec(args[1:]); err != nil {
		level.Info(logger).Log(
			"msg", "executing agent interpreter",
			"err", err,
		)
		return 1
	}

	return 0
}
