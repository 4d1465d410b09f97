package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cataloger/internal/paths"
	"github.com/mesh-intelligence/cataloger/internal/sqlite"
	"github.com/mesh-intelligence/cataloger/pkg/types"
)

func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new [path]",
		Short: "Create an empty catalog file",
		Long: "Create a catalog at path. The directory must exist, the file must not, and\n" +
			"the file name may not contain spaces or any of \\ / : * ? < > |.\n" +
			"Without a path the catalog is created as " + paths.DefaultCatalogFile + " in the data directory.",
		Args: cobra.MaximumNArgs(1),
		RunE: runNew,
	}
}

func runNew(cmd *cobra.Command, args []string) error {
	target, err := newCatalogTarget(args)
	if err != nil {
		return sysError(err)
	}
	dir, name := paths.SplitCatalogPath(target)
	path, err := paths.NewCatalogPath(dir, name)
	if err != nil {
		return userError(err)
	}

	backend := sqlite.NewBackend(sqlite.WithLogger(logger))
	if err := backend.Attach(cmd.Context(), types.Config{Backend: types.BackendSQLite, Path: path}); err != nil {
		return sysError(fmt.Errorf("create catalog: %w", err))
	}
	created := backend.Path()
	if err := backend.Detach(); err != nil {
		return sysError(fmt.Errorf("close catalog: %w", err))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Created catalog", created)
	return nil
}

// newCatalogTarget returns the path argument, or the default catalog file in
// the data directory, which is created if needed.
func newCatalogTarget(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	dataDir, err := paths.DefaultDataDir()
	if err != nil {
		return "", fmt.Errorf("resolve data dir: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return filepath.Join(dataDir, paths.DefaultCatalogFile), nil
}
