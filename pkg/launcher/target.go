package launcher

import (
	"github.com/pkg/errors"
)

// EnvVar is a single entry in a launch target's allow-list environment.
type EnvVar struct {
	Key   string
	Value string
}

// Target describes a fixed interpreter invocation compiled into a launcher
// binary: which interpreter to run, the flags that make it ignore ambient
// interpreter state, the script it runs, and the complete environment the
// replacement process is allowed to see.
type Target struct {
	// InterpreterPath is the absolute path to the interpreter binary. It
	// is both the executable handed to exec and argv[0] of the
	// replacement process.
	InterpreterPath string

	// InterpreterFlags are inserted between the interpreter path and the
	// script path. They are expected to disable environment-derived
	// interpreter behavior (python's -E and -s, for example).
	InterpreterFlags []string

	// ScriptPath is the absolute path to the script or module the
	// interpreter runs.
	ScriptPath string

	// Env is the ordered allow-list environment. The inherited process
	// environment is never forwarded; this list, plus any passthrough a
	// Launcher is configured with, is the entire environment of the
	// replacement process.
	Env []EnvVar
}

// maxUserArgs caps the number of caller-supplied arguments. The cap matches
// the fixed-size argv buffer in the original C wrappers, but exceeding it
// is a hard error here rather than a silent truncation.
const maxUserArgs = 1020

// Argv builds the replacement process's argument vector: the interpreter
// path, the interpreter flags, the script path, then the caller's arguments
// verbatim and in their original order. The caller's arguments are opaque
// to the launcher -- no expansion, no escaping, no interpretation.
func (t Target) Argv(userArgs []string) ([]string, error) {
	if len(userArgs) > maxUserArgs {
		return nil, errors.Errorf("too many arguments: got %d, limit is %d", len(userArgs), maxUserArgs)
	}

	argv := make([]string, 0, 2+len(t.InterpreterFlags)+len(userArgs))
	argv = append(argv, t.InterpreterPath)
	argv = append(argv, t.InterpreterFlags...)
	argv = append(argv, t.ScriptPath)
	argv = append(argv, userArgs...)

	return argv, nil
}
