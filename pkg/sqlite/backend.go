// Package sqlite provides the public factory for the SQLite catalog backend
// while keeping the implementation internal.
package sqlite

import (
	"log/slog"

	"github.com/mesh-intelligence/cataloger/internal/sqlite"
	"github.com/mesh-intelligence/cataloger/pkg/types"
)

// NewBackend creates a new SQLite catalog. The catalog is not attached; call
// Attach with a Config to open a file.
//
// Example:
//
//	catalog := sqlite.NewBackend(nil)
//	err := catalog.Attach(ctx, types.Config{
//	    Backend: types.BackendSQLite,
//	    Path:    "games.db",
//	})
//	defer catalog.Detach()
func NewBackend(logger *slog.Logger) types.Catalog {
	return sqlite.NewBackend(sqlite.WithLogger(logger))
}
