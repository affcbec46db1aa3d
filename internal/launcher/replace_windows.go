//go:build windows

package launcher

import "errors"

func replaceProcess(string, []string, []string) error {
	return errors.New("replacing the current process is not supported on Windows")
}
