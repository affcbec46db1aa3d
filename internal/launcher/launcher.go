package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ga-labs/ga/internal/config"
	"go.uber.org/zap"
)

// DefaultShell is used when neither $SHELL nor the settings file name one.
const DefaultShell = "/bin/sh"

var (
	// ErrChdir means the target of a cd command could not be entered. It is
	// always reported together with config.ErrIO.
	ErrChdir = errors.New("changing directory")
	// ErrExec means the shell could not be started or exec'd.
	ErrExec = errors.New("starting shell")
)

// Mode says how an Invocation is carried out.
type Mode int

const (
	// ModeSpawnAndWait runs the command in a child shell and returns its
	// exit status.
	ModeSpawnAndWait Mode = iota
	// ModeReplace enters Dir and replaces the current process with a login
	// shell. It does not return on success.
	ModeReplace
)

func (m Mode) String() string {
	if m == ModeReplace {
		return "replace"
	}
	return "spawn"
}

// Invocation is a planned launch.
type Invocation struct {
	Mode    Mode
	Command string
	Dir     string // only set for ModeReplace
}

// Plan decides how command should be launched. Only "cd <dir>" with a
// non-empty directory takes the replace path; a bare "cd" is run like any
// other command.
func Plan(command string) Invocation {
	trimmed := strings.TrimSpace(command)
	if strings.HasPrefix(trimmed, "cd ") {
		dir := strings.TrimSpace(strings.SplitN(trimmed, " ", 2)[1])
		if dir != "" {
			return Invocation{Mode: ModeReplace, Command: trimmed, Dir: dir}
		}
	}
	return Invocation{Mode: ModeSpawnAndWait, Command: trimmed}
}

// ResolveShell picks the shell to launch: $SHELL, then the configured
// fallback, then DefaultShell.
func ResolveShell(env, configured string) string {
	if env != "" {
		return env
	}
	if configured != "" {
		return configured
	}
	return DefaultShell
}

// Launcher starts commands in Shell.
type Launcher struct {
	Shell string

	// Env is passed to the shell. Defaults to os.Environ().
	Env []string

	// Stdin, Stdout and Stderr are inherited by the child shell. They
	// default to the process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Logger *zap.Logger

	// Chdir and Replace perform the process-wide side effects of the cd
	// path. They default to os.Chdir and an execve(2) of the shell.
	Chdir   func(dir string) error
	Replace func(path string, argv, env []string) error
}

// New returns a Launcher for shell wired to the real process.
func New(shell string) *Launcher {
	return &Launcher{
		Shell:   shell,
		Env:     os.Environ(),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Logger:  zap.NewNop(),
		Chdir:   os.Chdir,
		Replace: replaceProcess,
	}
}

// Run launches command and returns the exit status ga should use. On the
// replace path a successful call never returns.
func (l *Launcher) Run(ctx context.Context, command string) (int, error) {
	inv := Plan(command)
	l.logger().Debug("launching",
		zap.Stringer("mode", inv.Mode),
		zap.String("shell", l.Shell),
		zap.String("command", inv.Command),
	)

	switch inv.Mode {
	case ModeReplace:
		return l.replace(inv)
	default:
		return l.spawn(ctx, inv)
	}
}

func (l *Launcher) replace(inv Invocation) (int, error) {
	chdir := l.Chdir
	if chdir == nil {
		chdir = os.Chdir
	}
	if err := chdir(inv.Dir); err != nil {
		return 1, fmt.Errorf("%w to %s: %w: %w", ErrChdir, inv.Dir, config.ErrIO, err)
	}

	path := l.Shell
	if !filepath.IsAbs(path) {
		found, err := exec.LookPath(path)
		if err != nil {
			return 1, fmt.Errorf("%w %s: %w", ErrExec, l.Shell, err)
		}
		path = found
	}

	replace := l.Replace
	if replace == nil {
		replace = replaceProcess
	}
	l.logger().Debug("replacing process with login shell", zap.String("path", path), zap.String("dir", inv.Dir))
	if err := replace(path, []string{l.Shell, "-l"}, l.env()); err != nil {
		return 1, fmt.Errorf("%w %s -l: %w", ErrExec, l.Shell, err)
	}
	return 0, nil
}

func (l *Launcher) spawn(ctx context.Context, inv Invocation) (int, error) {
	cmd := exec.CommandContext(ctx, l.Shell, "-i", "-c", inv.Command)
	cmd.Env = l.env()
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Killed by a signal; there is no status to pass on.
			code = 1
		}
		l.logger().Debug("shell exited", zap.Int("code", code))
		return code, nil
	}
	return 1, fmt.Errorf("%w %s: %w", ErrExec, l.Shell, err)
}

func (l *Launcher) env() []string {
	if l.Env == nil {
		return os.Environ()
	}
	return l.Env
}

func (l *Launcher) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}
