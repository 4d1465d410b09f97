package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the cataloger release.
const Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/cataloger"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the cataloger version",
		Args:  cobra.NoArgs,
		// version needs no config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "cataloger v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
