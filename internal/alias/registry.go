package alias

import (
	"fmt"
	"io"
	"os"
	"sort"

	"go.uber.org/zap"
)

// UpdatePrompt is shown when an alias name is already taken.
const UpdatePrompt = "short already exists! update it (y/n)"

// Saver persists the full alias mapping.
type Saver interface {
	Save(aliases map[string]string) error
}

// Outcome reports what Upsert did to the mapping.
type Outcome int

const (
	Unchanged Outcome = iota
	Inserted
	Updated
)

func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case Updated:
		return "updated"
	default:
		return "unchanged"
	}
}

// Entry is one alias as returned by List.
type Entry struct {
	Name    string
	Command string
}

// PersistError is returned by Upsert when the mapping changed in memory but
// could not be written. Callers report it and carry on.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("saving aliases: %v", e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

// Registry is the alias mapping loaded for this invocation.
type Registry struct {
	aliases map[string]string
	store   Saver
	out     io.Writer
	logger  *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithOutput sets where status messages ("Not updating alias.") are printed.
// Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Registry) { r.out = w }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// New wraps a loaded mapping. store receives the whole mapping after every
// change; a nil mapping is treated as empty.
func New(aliases map[string]string, store Saver, opts ...Option) *Registry {
	if aliases == nil {
		aliases = map[string]string{}
	}
	r := &Registry{
		aliases: aliases,
		store:   store,
		out:     os.Stdout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lookup returns the command stored under key.
func (r *Registry) Lookup(key string) (string, bool) {
	cmd, ok := r.aliases[key]
	return cmd, ok
}

// Resolve returns the command for key, or key itself when no alias matches.
func (r *Registry) Resolve(key string) string {
	if cmd, ok := r.Lookup(key); ok {
		r.logger.Debug("resolved alias", zap.String("name", key), zap.String("command", cmd))
		return cmd
	}
	r.logger.Debug("no alias found, running literally", zap.String("command", key))
	return key
}

// Upsert adds name → command. When name already exists the user is asked via
// confirm; only an explicit yes overwrites. After a change the mapping is
// saved; a save failure comes back as *PersistError and the in-memory change
// is kept.
func (r *Registry) Upsert(name, command string, confirm Confirmer) (Outcome, error) {
	outcome := Inserted

	if _, exists := r.aliases[name]; exists {
		answer, err := confirm.Confirm(UpdatePrompt)
		if err != nil {
			return Unchanged, err
		}
		switch answer {
		case AnswerYes:
			outcome = Updated
		case AnswerInvalid:
			fmt.Fprintln(r.out, "Invalid input, assuming no")
			fallthrough
		default:
			fmt.Fprintln(r.out, "Not updating alias.")
			r.logger.Debug("alias left unchanged", zap.String("name", name))
			return Unchanged, nil
		}
	}

	r.aliases[name] = command
	r.logger.Debug("alias stored",
		zap.String("name", name),
		zap.String("command", command),
		zap.Stringer("outcome", outcome),
	)

	if err := r.store.Save(r.aliases); err != nil {
		return outcome, &PersistError{Err: err}
	}
	return outcome, nil
}

// List returns every alias sorted by name.
func (r *Registry) List() []Entry {
	entries := make([]Entry, 0, len(r.aliases))
	for name, cmd := range r.aliases {
		entries = append(entries, Entry{Name: name, Command: cmd})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}
