package launcher

// DebugEnvVar is the one inherited variable the noshrc wrapper may pass
// through to the agent. DebugEnvOn is the only value that passes; anything
// else, including "0", is dropped with the rest of the inherited
// environment.
const (
	DebugEnvVar = "AGENT_DEBUG_SUBPROCESS"
	DebugEnvOn  = "1"
)

// NoshellTarget runs the Mobile-Agent dispatcher under the system python3.
// -E makes the interpreter ignore PYTHON* environment variables; -s keeps
// the user site-packages directory off sys.path.
var NoshellTarget = Target{
	InterpreterPath:  "/usr/bin/python3",
	InterpreterFlags: []string{"-E", "-s"},
	ScriptPath:       "/root/Tools/Mobile-Agent/agent-direct",
	Env: []EnvVar{
		{Key: "PATH", Value: "/usr/bin:/bin:/usr/local/bin"},
		{Key: "PYTHONIOENCODING", Value: "utf-8"},
		{Key: "PYTHONPATH", Value: "/root/Tools/Mobile-Agent"},
		{Key: "PYTHONDONTWRITEBYTECODE", Value: "1"},
		{Key: "PYTHONNOUSERSITE", Value: "1"},
	},
}

// NoshrcTarget runs the installed agent under its own virtualenv python.
// The venv interpreter takes no flags; the allow-list environment carries
// the equivalent PYTHON* switches. Distinct deployment target from
// NoshellTarget, not a variant to be merged: the two wrappers ship to
// different installs with different filesystem layouts.
var NoshrcTarget = Target{
	InterpreterPath: "/root/.mobile-agent/.claude_venv/bin/python",
	ScriptPath:      "/root/.mobile-agent/agent",
	Env: []EnvVar{
		{Key: "PATH", Value: "/usr/bin:/bin:/usr/local/bin:/sbin:/usr/sbin"},
		{Key: "PYTHONPATH", Value: "/root/.mobile-agent"},
		{Key: "PYTHONIOENCODING", Value: "utf-8"},
		{Key: "PYTHONNOUSERSITE", Value: "1"},
		{Key: "PYTHONDONTWRITEBYTECODE", Value: "1"},
	},
}
