package cli

import (
	"context"

	"github.com/ga-labs/ga/internal/alias"
	"github.com/ga-labs/ga/internal/launcher"
	"go.uber.org/zap"
)

// runCommand resolves key through the registry (falling back to key itself)
// and hands the command to the launcher. A non-zero shell status comes back
// as *ExitStatusError.
func runCommand(ctx context.Context, env Env, reg *alias.Registry, shell string, logger *zap.Logger, key string) error {
	command := reg.Resolve(key)

	var l Launcher
	if env.NewLauncher != nil {
		l = env.NewLauncher(shell, logger)
	} else {
		pl := launcher.New(shell)
		pl.Logger = logger
		if env.Stdin != nil {
			pl.Stdin = env.Stdin
		}
		if env.Stdout != nil {
			pl.Stdout = env.Stdout
		}
		if env.Stderr != nil {
			pl.Stderr = env.Stderr
		}
		l = pl
	}

	code, err := l.Run(ctx, command)
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitStatusError{Code: code}
	}
	return nil
}
