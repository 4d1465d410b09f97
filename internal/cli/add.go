package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var (
		ef  entryFlags
		yes bool
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a game to the catalog",
		Long: "Add a game with its platform and genre. An identical entry is refused. When a\n" +
			"game with the same title already exists the add is refused unless --yes is given.",
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

			added, err := backend.AddGame(cmd.Context(), entry, func(string) bool { return yes })
			if err != nil {
				return classify(err)
			}
			if flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), added)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Added:", added)
			return nil
		},
	}
	ef.bind(cmd)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "add even if a game with the same title exists")
	return cmd
}
