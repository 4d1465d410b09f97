package cli

import (
	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <title>",
		Short: "List the games whose title matches exactly",
		Args:  cobra.ExactArgs(1),
		RunE:  runSearch,
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	backend, err := attachCatalog(cmd.Context())
	if err != nil {
		return err
	}
	defer backend.Detach()

	entries, err := backend.SearchByTitle(cmd.Context(), args[0])
	if err != nil {
		return classify(err)
	}
	return printEntries(cmd.OutOrStdout(), entries)
}
