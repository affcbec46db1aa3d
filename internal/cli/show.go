package cli

import (
	"fmt"

	"github.com/ga-labs/ga/internal/alias"
	"github.com/spf13/cobra"
)

// runShow prints every alias as "<name> ~> <command>".
func runShow(cmd *cobra.Command, reg *alias.Registry) error {
	for _, e := range reg.List() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s ~> %s\n", e.Name, e.Command)
	}
	return nil
}
