package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write every entry to a JSON Lines file",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	backend, err := attachCatalog(cmd.Context())
	if err != nil {
		return err
	}
	defer backend.Detach()

	n, err := backend.Export(cmd.Context(), args[0])
	if err != nil {
		return classify(err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d game(s) to %s\n", n, args[0])
	return nil
}
