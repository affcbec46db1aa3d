package cli

import (
	"github.com/ga-labs/ga/internal/config"
	"github.com/ga-labs/ga/internal/launcher"
	"github.com/ga-labs/ga/internal/store"
)

// Sentinel errors of the domain packages, re-exported for callers of the CLI.
var (
	// ErrConfig means HOME (or the settings file) could not be used.
	ErrConfig = config.ErrConfig
	// ErrIO covers config directory creation, alias file reads/writes and
	// entering the directory of a cd alias.
	ErrIO = store.ErrIO
	// ErrParse means aliases.json is malformed.
	ErrParse = store.ErrParse
	// ErrChdir means the directory of a cd alias could not be entered.
	ErrChdir = launcher.ErrChdir
	// ErrExec means the shell could not be started or exec'd.
	ErrExec = launcher.ErrExec
)
