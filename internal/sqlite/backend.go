package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mesh-intelligence/cataloger/pkg/types"
)

// dsnPragmas are applied by the driver on every new connection.
const dsnPragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

var _ types.Catalog = (*Backend)(nil)

// Backend implements the Catalog interface on a single SQLite file.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	log      *slog.Logger
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the logger used for backend events.
func WithLogger(l *slog.Logger) Option {
	return func(b *Backend) {
		if l != nil {
			b.log = l
		}
	}
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{log: slog.Default()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Attach opens or creates the catalog file named by config.Path and ensures
// the schema exists. The directory must already exist.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(ctx context.Context, config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	path, err := filepath.Abs(config.Path)
	if err != nil {
		return fmt.Errorf("resolving catalog path: %w", err)
	}
	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return fmt.Errorf("opening sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return notCatalog(path, fmt.Errorf("pinging sqlite db %s: %w", path, err))
	}
	if err := ensureForeignKeys(ctx, db); err != nil {
		db.Close()
		return notCatalog(path, err)
	}
	if err := applySchema(ctx, db); err != nil {
		db.Close()
		return notCatalog(path, err)
	}

	b.db = db
	b.config = types.Config{Backend: config.Backend, Path: path}
	b.attached = true
	b.log.Debug("catalog attached", "path", path)
	return nil
}

// Detach closes the SQLite connection. After Detach, all operations return
// ErrCatalogDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	b.log.Debug("catalog detached", "path", b.config.Path)
	return nil
}

// Path returns the catalog file of the attached backend, or "" when detached.
func (b *Backend) Path() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return ""
	}
	return b.config.Path
}

// dsn returns a file: URI for path so that '?', '#' and '%' in directory
// names stay part of the path instead of starting the driver's query.
func dsn(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p, RawQuery: dsnPragmas}
	return u.String()
}

// notCatalog marks err with ErrNotCatalog when SQLite reports that the file
// is not a database.
func notCatalog(path string, err error) error {
	var sqliteErr *sqlitedriver.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}
	if sqliteErr.Code()&0xff != sqlite3.SQLITE_NOTADB {
		return err
	}
	return fmt.Errorf("%s: %w: %w", path, types.ErrNotCatalog, err)
}

// applySchema runs every table and index statement in one transaction.
func applySchema(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning schema transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range schemaDDL {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating table: %w", err)
		}
	}
	for _, stmt := range indexDDL {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schema: %w", err)
	}
	return nil
}

// ensureForeignKeys fails when the driver did not honor the foreign_keys
// pragma; the link tables depend on ON DELETE CASCADE.
func ensureForeignKeys(ctx context.Context, db *sql.DB) error {
	var enabled int
	if err := db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled); err != nil {
		return fmt.Errorf("checking foreign key pragma: %w", err)
	}
	if enabled != 1 {
		return fmt.Errorf("sqlite foreign keys are disabled")
	}
	return nil
}

// generateUUID generates a new UUID v7 for entity IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
