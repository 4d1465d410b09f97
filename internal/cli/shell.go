package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cataloger/internal/shell"
	pkgsqlite "github.com/mesh-intelligence/cataloger/pkg/sqlite"
	"github.com/mesh-intelligence/cataloger/pkg/types"
)

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run the interactive catalog menus (default)",
		Args:  cobra.NoArgs,
		RunE:  runShell,
	}
}

// runShell drives the interactive menus over the command's input and output
// streams until Quit or end of input.
func runShell(cmd *cobra.Command, args []string) error {
	open := func() types.Catalog { return pkgsqlite.NewBackend(logger) }
	sh := shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), open, logger)
	if err := sh.Run(cmd.Context()); err != nil {
		return sysError(err)
	}
	return nil
}
