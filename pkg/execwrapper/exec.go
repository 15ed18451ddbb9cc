//go:build !windows
// +build !windows

package execwrapper

import (
	"syscall"
)

// Exec replaces the current process image with argv0. By convention
// argv[0] repeats the program path; envv entries are KEY=VALUE strings and
// become the entire environment of the new image. On success Exec never
// returns -- the new program inherits the pid, open file descriptors, and
// standard streams, and nothing else.
func Exec(argv0 string, argv []string, envv []string) error {
	return syscall.Exec(argv0, argv, envv)
}
