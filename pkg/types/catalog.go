package types

import (
	"context"
	"errors"
)

// ConfirmFunc is asked whether a game may be added under a title that is
// already cataloged. Returning false aborts the add.
type ConfirmFunc func(title string) bool

// Catalog is the storage handle for one game catalog. Callers attach it to a
// catalog file, run operations, and detach when done.
type Catalog interface {
	// Attach opens or creates the catalog described by config and ensures
	// the schema exists. Existing data is never discarded.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(ctx context.Context, config Config) error

	// Detach releases the catalog. Idempotent: multiple calls succeed.
	// After Detach, operations return ErrCatalogDetached.
	Detach() error

	// ListAll returns every entry ordered by title.
	ListAll(ctx context.Context) ([]Entry, error)

	// SearchByTitle returns the entries whose title matches exactly.
	// An empty result is not an error.
	SearchByTitle(ctx context.Context, title string) ([]Entry, error)

	// AddGame stores a new game with its platform and genre, creating the
	// platform and genre rows when their names are new. Returns
	// ErrDuplicateEntry when the full entry already exists and
	// ErrSameTitleRejected when confirm declines a repeated title.
	AddGame(ctx context.Context, entry Entry, confirm ConfirmFunc) (Entry, error)

	// RemoveGame deletes the games matching every field of entry and
	// returns how many were removed. Returns ErrNotFound when none match.
	RemoveGame(ctx context.Context, entry Entry) (int, error)
}

// Catalog lifecycle errors.
var (
	ErrCatalogDetached = errors.New("catalog is detached")
	ErrAlreadyAttached = errors.New("catalog is already attached")
	ErrNotCatalog      = errors.New("file is not a catalog")
)

// Catalog operation errors.
var (
	ErrNotFound          = errors.New("game not found")
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidBool       = errors.New(`invalid boolean, expected "True" or "False"`)
	ErrDuplicateEntry    = errors.New("game is already in the catalog")
	ErrSameTitleRejected = errors.New("add of repeated title was not confirmed")
)
