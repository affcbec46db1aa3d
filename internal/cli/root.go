package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ga-labs/ga/internal/alias"
	"github.com/ga-labs/ga/internal/branding"
	"github.com/ga-labs/ga/internal/config"
	"github.com/ga-labs/ga/internal/launcher"
	"github.com/ga-labs/ga/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Launcher runs a resolved command and reports the exit status to use.
type Launcher interface {
	Run(ctx context.Context, command string) (int, error)
}

// Env is everything the CLI takes from the running process. Execute fills it
// from the real environment; tests build their own.
type Env struct {
	Home      string // $HOME
	Shell     string // $SHELL
	ConfigDir string // $GA_CONFIG_DIR

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// NewLauncher builds the launcher for the resolved shell. Nil means the
	// real process launcher.
	NewLauncher func(shell string, logger *zap.Logger) Launcher
}

type rootOptions struct {
	name    string
	command string
	show    bool
	verbose bool
}

// NewRootCmd builds the ga command for env.
func NewRootCmd(env Env, version, commit, date string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " [cmd]",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` keeps short names for shell commands in ~/.config/ga/aliases.json.

  ga <name>                    run the command stored under <name>
  ga "<command>"               run <command> as is when no alias matches
  ga -n <name> -c <command>    add an alias, asking before replacing one
  ga -s                        list all aliases

An alias of the form "cd <dir>" switches to <dir> and starts a new login shell there.`,
		Version:       formatVersion(version, commit, date),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, env, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Short name of the alias to add or update")
	cmd.Flags().StringVarP(&opts.command, "command", "c", "", "Command the alias expands to")
	cmd.Flags().BoolVarP(&opts.show, "show", "s", false, "List all aliases")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Print debug logs to stderr")

	cmd.SetIn(env.Stdin)
	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)
	return cmd
}

// Execute runs ga against the real process environment.
func Execute(version, commit, date string) error {
	env := Env{
		Home:      os.Getenv("HOME"),
		Shell:     os.Getenv("SHELL"),
		ConfigDir: os.Getenv(branding.EnvVar("CONFIG_DIR")),
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}
	return run(context.Background(), NewRootCmd(env, version, commit, date), env.Stderr)
}

// run executes cmd and prints failures. A shell's own exit status is passed
// through without a message.
func run(ctx context.Context, cmd *cobra.Command, stderr io.Writer) error {
	err := cmd.ExecuteContext(ctx)
	var status *ExitStatusError
	if err != nil && !errors.As(err, &status) {
		fmt.Fprintf(stderr, "%s: %v\n", branding.CLIName(), err)
	}
	return err
}

func runRoot(cmd *cobra.Command, env Env, opts *rootOptions, args []string) error {
	path, err := store.ResolvePath(env.Home, env.ConfigDir)
	if err != nil {
		return err
	}

	settings, err := config.Load(filepath.Dir(path))
	if err != nil {
		return err
	}

	logger, err := newLogger(settings.LogLevel(), opts.verbose, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	file := store.New(path)
	aliases, err := file.Load()
	if err != nil {
		return err
	}
	logger.Debug("loaded aliases", zap.String("path", path), zap.Int("count", len(aliases)))

	reg := alias.New(aliases, file,
		alias.WithOutput(cmd.OutOrStdout()),
		alias.WithLogger(logger),
	)

	switch {
	case opts.show:
		return runShow(cmd, reg)
	case len(args) == 1:
		shell := launcher.ResolveShell(env.Shell, settings.Shell())
		return runCommand(cmd.Context(), env, reg, shell, logger, args[0])
	case cmd.Flags().Changed("name") && cmd.Flags().Changed("command"):
		return runAdd(cmd, reg, opts.name, opts.command)
	default:
		logger.Debug("nothing to do: --name and --command must be given together")
		return nil
	}
}
