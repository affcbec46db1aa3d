package cli

import (
	"errors"
	"fmt"

	"github.com/ga-labs/ga/internal/alias"
	"github.com/spf13/cobra"
)

// runAdd stores name → command, asking on stdin before replacing an alias.
// A failed save is reported but does not fail the run.
func runAdd(cmd *cobra.Command, reg *alias.Registry, name, command string) error {
	confirm := alias.NewPromptConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())

	_, err := reg.Upsert(name, command, confirm)
	var perr *alias.PersistError
	if errors.As(err, &perr) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error saving: %v\n", perr.Err)
		return nil
	}
	return err
}
