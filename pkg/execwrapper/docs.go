// Package execwrapper is a thin wrapper around the exec family of system
// calls. The agent wrappers are Unix-only: process-image replacement has
// no Windows equivalent, and faking it with a child process would
// reintroduce the parent-child relationship the wrappers exist to avoid.
package execwrapper
