//go:build !windows

package launcher

import "golang.org/x/sys/unix"

// replaceProcess execs path in place of the running ga process.
func replaceProcess(path string, argv, env []string) error {
	return unix.Exec(path, argv, env)
}
