package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	var ef entryFlags
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove the games matching a full entry",
		Long: "Remove every game whose title, played and completed flags, platform, and genre\n" +
			"all match. Platforms and genres stay in the catalog.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := ef.entry()
			if err != nil {
				return err
			}

			backend, err := attachCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer backend.Detach()

			n, err := backend.RemoveGame(cmd.Context(), entry)
			if err != nil {
				return classify(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d game(s): %s\n", n, entry)
			return nil
		},
	}
	ef.bind(cmd)
	return cmd
}
