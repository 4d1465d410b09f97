package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every game in the catalog, ordered by title",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	backend, err := attachCatalog(cmd.Context())
	if err != nil {
		return err
	}
	defer backend.Detach()

	entries, err := backend.ListAll(cmd.Context())
	if err != nil {
		return classify(err)
	}
	return printEntries(cmd.OutOrStdout(), entries)
}
