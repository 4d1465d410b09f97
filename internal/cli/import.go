package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Add the entries of a JSON Lines file",
		Long: "Add each entry of a JSON Lines file as AddGame would. Duplicates, malformed\n" +
			"lines, and repeated titles (unless --yes is given) are skipped.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := attachCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer backend.Detach()

			res, err := backend.Import(cmd.Context(), args[0], func(string) bool { return yes })
			if err != nil {
				return classify(err)
			}
			if flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), res)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d game(s), skipped %d\n", res.Added, res.Skipped)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "add entries whose title already exists")
	return cmd
}
