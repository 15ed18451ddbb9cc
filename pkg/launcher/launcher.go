// Package launcher performs direct process replacement: it swaps the
// calling process for a fixed interpreter invocation via an exec system
// call, with an explicitly constructed argument vector and an allow-list
// environment. No shell is involved at any point in the call chain, so no
// shell initialization file (profile, rc script) can ever run. That
// property is the reason this package exists, not an optimization.
package launcher

import (
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"

	"github.com/mobile-agent/launcher/pkg/execwrapper"
)

// ExecFunc replaces the current process image. On success it never
// returns. The production implementation is execwrapper.Exec; tests
// inject a recorder to observe the call without performing it.
type ExecFunc func(argv0 string, argv []string, envv []string) error

type passthrough struct {
	key  string
	want string
}

// Launcher binds a Target to an exec dispatch. A Launcher is built once,
// used once, and holds no state beyond its configuration: the replacement
// call is atomic from the caller's perspective and cannot be rolled back.
type Launcher struct {
	target       Target
	logger       log.Logger
	passthroughs []passthrough
	execFn       ExecFunc
}

type Option func(*Launcher)

func WithLogger(logger log.Logger) Option {
	return func(l *Launcher) {
		l.logger = logger
	}
}

// WithEnvPassthrough allows a single named inherited variable into the
// constructed environment, and only when its inherited value matches want
// exactly. Anything else in the inherited environment stays invisible to
// the replacement process.
func WithEnvPassthrough(key, want string) Option {
	return func(l *Launcher) {
		l.passthroughs = append(l.passthroughs, passthrough{key: key, want: want})
	}
}

// WithExecFunc overrides the process replacement call. Tests use this to
// capture argv and envv instead of exec'ing.
func WithExecFunc(fn ExecFunc) Option {
	return func(l *Launcher) {
		l.execFn = fn
	}
}

func New(target Target, opts ...Option) *Launcher {
	l := &Launcher{
		target: target,
		logger: log.NewNopLogger(),
		execFn: execwrapper.Exec,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Environ constructs the complete environment table for the replacement
// process: the target's allow-list, then any configured passthrough whose
// inherited value matches. Nothing else from the inherited environment is
// read or forwarded, and the table never contains a duplicate key.
func (l *Launcher) Environ() []string {
	env := NewEnvironment()

	for _, v := range l.target.Env {
		env.Set(v.Key, v.Value)
	}

	for _, p := range l.passthroughs {
		if env.PassthroughExact(p.key, p.want) {
			level.Debug(l.logger).Log(
				"msg", "passing through inherited variable",
				"key", p.key,
			)
		}
	}

	return env.Environ()
}

// Exec replaces the current process with the target interpreter. On
// success it never returns: the process image is discarded and the
// interpreter takes over the pid, open descriptors, and standard streams.
// Any return is a failure to replace the process image -- interpreter
// missing, not executable, or permission denied -- and the error carries
// the reason the OS gave.
func (l *Launcher) Exec(userArgs []string) error {
	argv, err := l.target.Argv(userArgs)
	if err != nil {
		return err
	}

	envv := l.Environ()

	level.Debug(l.logger).Log(
		"msg", "replacing process image",
		"cmd", strings.Join(argv, " "),
		"env_entries", len(envv),
	)

	if err := l.execFn(l.target.InterpreterPath, argv, envv); err != nil {
		return errors.Wrapf(err, "executing %s", l.target.InterpreterPath)
	}

	// Reachable only with an injected ExecFunc.
	return nil
}
