package main

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobile-agent/launcher/pkg/launcher"
)

type execRecorder struct {
	called bool
	argv   []string
	envv   []string
	err    error
}

func (r *execRecorder) exec(argv0 string, argv []string, envv []string) error {
	r.called = true
	r.argv = argv
	r.envv = envv
	return r.err
}

func TestUsageErrorWithoutArguments(t *testing.T) {
	t.Parallel()

	recorder := &execRecorder{}
	exitCode := runNoshell([]string{"agent-noshell"}, recorder.exec)

	require.Equal(t, 1, exitCode)
	require.False(t, recorder.called, "nothing may be executed on a usage error")
}

func TestRequestIsPassedThrough(t *testing.T) {
	t.Parallel()

	recorder := &execRecorder{}
	exitCode := runNoshell([]string{"agent-noshell", "install nmap", "--force"}, recorder.exec)

	require.Equal(t, 0, exitCode)
	require.True(t, recorder.called)
	assert.Equal(t, []string{
		"/usr/bin/python3", "-E", "-s", "/root/Tools/Mobile-Agent/agent-direct",
		"install nmap", "--force",
	}, recorder.argv)
}

func TestExecFailureExitsNonzero(t *testing.T) {
	t.Parallel()

	recorder := &execRecorder{err: syscall.ENOENT}
	exitCode := runNoshell([]string{"agent-noshell", "request"}, recorder.exec)

	require.Equal(t, 1, exitCode)
}

func TestNoDebugPassthrough(t *testing.T) { //nolint:paralleltest // mutates the process environment
	t.Setenv(launcher.DebugEnvVar, "1")

	recorder := &execRecorder{}
	exitCode := runNoshell([]string{"agent-noshell", "request"}, recorder.exec)

	require.Equal(t, 0, exitCode)
	assert.NotContains(t, recorder.envv, launcher.DebugEnvVar+"=1",
		"the noshell variant has no debug passthrough")
}
