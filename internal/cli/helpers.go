// Shared helpers for cataloger subcommands.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cataloger/internal/paths"
	"github.com/mesh-intelligence/cataloger/internal/sqlite"
	"github.com/mesh-intelligence/cataloger/pkg/types"
)

// userErrors are the sentinels that report bad input rather than a storage
// fault.
var userErrors = []error{
	paths.ErrNoCatalog,
	paths.ErrPathNotFound,
	paths.ErrBadFileName,
	paths.ErrCatalogExists,
	paths.ErrCatalogMissing,
	types.ErrInvalidBool,
	types.ErrInvalidName,
	types.ErrDuplicateEntry,
	types.ErrSameTitleRejected,
	types.ErrNotFound,
	types.ErrNotCatalog,
}

func isUserError(err error) bool {
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// attachCatalog resolves the catalog path, checks that the file exists, and
// attaches a SQLite backend to it. The caller must defer backend.Detach().
func attachCatalog(ctx context.Context) (*sqlite.Backend, error) {
	path, err := resolveCatalog()
	if err != nil {
		return nil, userError(err)
	}
	dir, name := paths.SplitCatalogPath(path)
	if path, err = paths.LoadCatalogPath(dir, name); err != nil {
		return nil, userError(err)
	}

	backend := sqlite.NewBackend(sqlite.WithLogger(logger))
	if err := backend.Attach(ctx, types.Config{Backend: types.BackendSQLite, Path: path}); err != nil {
		return nil, classify(fmt.Errorf("attach catalog: %w", err))
	}
	return backend, nil
}

// entryFlags holds the five fields of a full entry as given on the command
// line. The flags stay strings so the True/False literals are checked by
// types.ParseBool rather than cobra's bool parsing.
type entryFlags struct {
	title     string
	played    string
	completed string
	platform  string
	genre     string
}

func (f *entryFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "game title (required)")
	cmd.Flags().StringVar(&f.played, "played", "", "whether the game was played: True or False (required)")
	cmd.Flags().StringVar(&f.completed, "completed", "", "whether the game was completed: True or False (required)")
	cmd.Flags().StringVar(&f.platform, "platform", "", "platform name (required)")
	cmd.Flags().StringVar(&f.genre, "genre", "", "genre name (required)")
	for _, name := range []string{"title", "played", "completed", "platform", "genre"} {
		_ = cmd.MarkFlagRequired(name)
	}
}

// entry parses the flags into a validated Entry.
func (f *entryFlags) entry() (types.Entry, error) {
	played, err := types.ParseBool(f.played)
	if err != nil {
		return types.Entry{}, userError(fmt.Errorf("--played: %w", err))
	}
	completed, err := types.ParseBool(f.completed)
	if err != nil {
		return types.Entry{}, userError(fmt.Errorf("--completed: %w", err))
	}
	e := types.Entry{
		Title:     f.title,
		Played:    played,
		Completed: completed,
		Platform:  f.platform,
		Genre:     f.genre,
	}
	if err := e.Validate(); err != nil {
		return types.Entry{}, userError(err)
	}
	return e, nil
}

// printEntries writes entries as display lines, or as a JSON array in
// --json mode.
func printEntries(w io.Writer, entries []types.Entry) error {
	if flags.jsonMode {
		if entries == nil {
			entries = []types.Entry{}
		}
		return printJSON(w, entries)
	}
	for _, e := range entries {
		fmt.Fprintln(w, e.String())
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError(fmt.Errorf("marshal output: %w", err))
	}
	fmt.Fprintln(w, string(out))
	return nil
}
