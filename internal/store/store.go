package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ga-labs/ga/internal/config"
)

// FileName is the alias file inside the config directory.
const FileName = "aliases.json"

// FilePerm is the mode of a freshly written alias file.
const FilePerm os.FileMode = 0644

var (
	// ErrIO marks failures creating the config directory or reading and
	// writing the alias file.
	ErrIO = config.ErrIO
	// ErrParse marks an alias file that is not valid JSON or does not match
	// the expected shape. The file is never repaired automatically.
	ErrParse = errors.New("malformed alias file")
)

// document is the on-disk shape: {"aliases": {"name": "command"}}.
type document struct {
	Aliases map[string]string `json:"aliases"`
}

// ResolvePath returns the alias file path for the given home directory (or
// the GA_CONFIG_DIR override) and makes sure its directory exists.
func ResolvePath(home, override string) (string, error) {
	dir, err := config.Dir(home, override)
	if err != nil {
		return "", err
	}
	if err := config.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	return filepath.Join(dir, FileName), nil
}

// File is the alias file at Path.
type File struct {
	Path string
}

// New returns a File for path.
func New(path string) *File {
	return &File{Path: path}
}

// Load reads the alias mapping. A missing file yields an empty mapping.
func (f *File) Load() (map[string]string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w: %w", f.Path, ErrIO, err)
	}

	if err := validate(data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", f.Path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w: %v", f.Path, ErrParse, err)
	}
	if doc.Aliases == nil {
		doc.Aliases = map[string]string{}
	}
	return doc.Aliases, nil
}

// Save replaces the alias file with the given mapping. The JSON is written to
// a temporary file in the same directory and renamed into place.
func (f *File) Save(aliases map[string]string) error {
	if aliases == nil {
		aliases = map[string]string{}
	}
	// Commands keep &, < and > as typed so the file stays hand-editable.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Aliases: aliases}); err != nil {
		return fmt.Errorf("encoding aliases: %w", err)
	}
	data := buf.Bytes()

	dir := filepath.Dir(f.Path)
	tmp, err := os.CreateTemp(dir, ".aliases-*.json")
	if err != nil {
		return fmt.Errorf("writing %s: %w: %w", f.Path, ErrIO, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w: %w", f.Path, ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w: %w", f.Path, ErrIO, err)
	}
	if err := os.Chmod(tmpPath, FilePerm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w: %w", f.Path, ErrIO, err)
	}
	if err := os.Rename(tmpPath, f.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing %s: %w: %w", f.Path, ErrIO, err)
	}
	return nil
}
