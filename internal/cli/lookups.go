package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlatformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List the platform names recorded in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := attachCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer backend.Detach()

			platforms, err := backend.Platforms(cmd.Context())
			if err != nil {
				return classify(err)
			}
			names := make([]string, 0, len(platforms))
			for _, p := range platforms {
				names = append(names, p.Name)
			}
			return printNames(cmd, names)
		},
	}
}

func newGenresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List the genre names recorded in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := attachCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer backend.Detach()

			genres, err := backend.Genres(cmd.Context())
			if err != nil {
				return classify(err)
			}
			names := make([]string, 0, len(genres))
			for _, g := range genres {
				names = append(names, g.Name)
			}
			return printNames(cmd, names)
		},
	}
}

// printNames writes one name per line, or a JSON array in --json mode.
// Lookup rows are never deleted, so names outlive the games that used them.
func printNames(cmd *cobra.Command, names []string) error {
	if flags.jsonMode {
		return printJSON(cmd.OutOrStdout(), names)
	}
	for _, n := range names {
		fmt.Fprintln(cmd.OutOrStdout(), n)
	}
	return nil
}
