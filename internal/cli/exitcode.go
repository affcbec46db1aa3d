package cli

import (
	"errors"
	"fmt"
)

// ExitCode is the process exit status of ga.
type ExitCode int

const (
	// ExitSuccess covers successful runs and no-op invocations.
	ExitSuccess ExitCode = 0
	// ExitGeneral is used for every internal failure.
	ExitGeneral ExitCode = 1
)

// ExitStatusError carries the non-zero exit status of a launched shell. It
// is not a failure of ga itself and is not printed.
type ExitStatusError struct {
	Code int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// MapExitCode converts an error returned by Execute into an exit code.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	var status *ExitStatusError
	if errors.As(err, &status) {
		return ExitCode(status.Code)
	}
	return ExitGeneral
}
