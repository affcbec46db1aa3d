package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ga-labs/ga/internal/branding"
	"github.com/spf13/viper"
)

// ErrConfig marks configuration problems: no home directory, or a settings
// file that cannot be parsed.
var ErrConfig = errors.New("configuration error")

// ErrIO marks filesystem failures anywhere in ga: the config directory, the
// alias file, or the directory of a cd alias.
var ErrIO = errors.New("i/o error")

const (
	fileName = "config"
	fileType = "yaml"

	// DirPerm is the mode used when creating the config directory.
	DirPerm os.FileMode = 0755
)

// Settings keys.
const (
	KeyShell    = "shell"
	KeyLogLevel = "log_level"
)

// DefaultLogLevel is used when neither config.yaml nor GA_LOG_LEVEL set one.
const DefaultLogLevel = "warn"

// Dir returns the ga config directory. A non-empty override (GA_CONFIG_DIR)
// wins; otherwise the directory is <home>/.config/ga and home must be set.
func Dir(home, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if home == "" {
		return "", fmt.Errorf("resolving config directory: %w: HOME is not set", ErrConfig)
	}
	return filepath.Join(home, ".config", branding.ConfigDir()), nil
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// FilePath returns the settings file path inside dir.
func FilePath(dir string) string {
	return filepath.Join(dir, fileName+"."+fileType)
}

// Settings holds the values read from config.yaml and the environment.
type Settings struct {
	v *viper.Viper
}

// Load reads <dir>/config.yaml. A missing file is not an error: defaults and
// environment overrides still apply.
func Load(dir string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(FilePath(dir))
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w: %v", FilePath(dir), ErrConfig, err)
	}
	return &Settings{v: v}, nil
}

// Shell returns the configured fallback shell, or "" when unset.
func (s *Settings) Shell() string {
	return s.v.GetString(KeyShell)
}

// LogLevel returns the configured log level name.
func (s *Settings) LogLevel() string {
	return s.v.GetString(KeyLogLevel)
}
