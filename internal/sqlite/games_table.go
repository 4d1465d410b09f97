// This file implements the game operations of the SQLite backend: listing,
// exact-title search, add with lazy platform and genre creation, and
// exact-match removal.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/cataloger/pkg/types"
)

// selectEntries joins each game with its platform and genre.
const selectEntries = `SELECT g.game_id, g.title, g.played, g.completed, p.name, r.name
FROM game g
JOIN game_platform_link gp ON gp.game_id = g.game_id
JOIN platform p ON p.platform_id = gp.platform_id
JOIN game_genre_link gr ON gr.game_id = g.game_id
JOIN genre r ON r.genre_id = gr.genre_id`

const (
	orderEntries = ` ORDER BY g.title, p.name, r.name, g.game_id`
	whereTitle   = ` WHERE g.title = ?`
	whereEntry   = ` WHERE g.title = ? AND g.played = ? AND g.completed = ? AND p.name = ? AND r.name = ?`
)

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// lookupTable describes a name-keyed table that games link to.
type lookupTable struct {
	table     string
	idColumn  string
	linkTable string
}

var (
	platforms = lookupTable{table: "platform", idColumn: "platform_id", linkTable: "game_platform_link"}
	genres    = lookupTable{table: "genre", idColumn: "genre_id", linkTable: "game_genre_link"}
)

// ListAll returns every game joined with its platform and genre, ordered by
// title.
func (b *Backend) ListAll(ctx context.Context) ([]types.Entry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrCatalogDetached
	}
	entries, err := queryEntries(ctx, b.db, selectEntries+orderEntries)
	if err != nil {
		return nil, fmt.Errorf("listing games: %w", err)
	}
	return entries, nil
}

// SearchByTitle returns the entries whose title equals title exactly.
func (b *Backend) SearchByTitle(ctx context.Context, title string) ([]types.Entry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrCatalogDetached
	}
	entries, err := queryEntries(ctx, b.db, selectEntries+whereTitle+orderEntries, title)
	if err != nil {
		return nil, fmt.Errorf("searching games titled %q: %w", title, err)
	}
	return entries, nil
}

// AddGame stores entry as a new game. The duplicate and same-title checks run
// before any write, and confirm is called outside the write transaction.
func (b *Backend) AddGame(ctx context.Context, entry types.Entry, confirm types.ConfirmFunc) (types.Entry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.Entry{}, types.ErrCatalogDetached
	}
	if err := entry.Validate(); err != nil {
		return types.Entry{}, err
	}

	dup, err := entryExists(ctx, b.db, entry)
	if err != nil {
		return types.Entry{}, err
	}
	if dup {
		return types.Entry{}, types.ErrDuplicateEntry
	}

	titled, err := titleExists(ctx, b.db, entry.Title)
	if err != nil {
		return types.Entry{}, err
	}
	if titled && (confirm == nil || !confirm(entry.Title)) {
		return types.Entry{}, types.ErrSameTitleRejected
	}

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return types.Entry{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// The catalog may have changed while confirm was waiting.
	dup, err = entryExists(ctx, tx, entry)
	if err != nil {
		return types.Entry{}, err
	}
	if dup {
		return types.Entry{}, types.ErrDuplicateEntry
	}

	game := entry.Game()
	game.GameID = generateUUID()
	if err := insertGame(ctx, tx, game); err != nil {
		return types.Entry{}, err
	}
	entry.GameID = game.GameID

	if err := platforms.link(ctx, tx, entry.GameID, entry.Platform); err != nil {
		return types.Entry{}, err
	}
	if err := genres.link(ctx, tx, entry.GameID, entry.Genre); err != nil {
		return types.Entry{}, err
	}

	if err := tx.Commit(); err != nil {
		return types.Entry{}, fmt.Errorf("committing game: %w", err)
	}

	b.log.Debug("game added", "game_id", entry.GameID, "title", entry.Title,
		"platform", entry.Platform, "genre", entry.Genre)
	return entry, nil
}

// RemoveGame deletes every game matching all five fields of entry. Link rows
// cascade; platform and genre rows are kept.
func (b *Backend) RemoveGame(ctx context.Context, entry types.Entry) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return 0, types.ErrCatalogDetached
	}

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	matches, err := queryEntries(ctx, tx, selectEntries+whereEntry, entryArgs(entry)...)
	if err != nil {
		return 0, fmt.Errorf("finding game to remove: %w", err)
	}
	if len(matches) == 0 {
		return 0, types.ErrNotFound
	}

	for _, m := range matches {
		if _, err := tx.ExecContext(ctx, "DELETE FROM game WHERE game_id = ?", m.GameID); err != nil {
			return 0, fmt.Errorf("deleting game %s: %w", m.GameID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing game deletion: %w", err)
	}

	b.log.Debug("game removed", "title", entry.Title, "count", len(matches))
	return len(matches), nil
}

// Platforms returns every platform in the catalog, ordered by name. Platforms
// stay after their last game is removed.
func (b *Backend) Platforms(ctx context.Context) ([]types.Platform, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrCatalogDetached
	}
	var out []types.Platform
	err := platforms.each(ctx, b.db, func(id, name string) {
		out = append(out, types.Platform{PlatformID: id, Name: name})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Genres returns every genre in the catalog, ordered by name.
func (b *Backend) Genres(ctx context.Context) ([]types.Genre, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrCatalogDetached
	}
	var out []types.Genre
	err := genres.each(ctx, b.db, func(id, name string) {
		out = append(out, types.Genre{GenreID: id, Name: name})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func insertGame(ctx context.Context, tx *sql.Tx, g types.Game) error {
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO game (game_id, title, played, completed) VALUES (?, ?, ?, ?)",
		g.GameID, g.Title, g.Played, g.Completed,
	); err != nil {
		return fmt.Errorf("inserting game: %w", err)
	}
	return nil
}

// each calls fn for every row of the table in name order.
func (lt lookupTable) each(ctx context.Context, q queryer, fn func(id, name string)) error {
	rows, err := q.QueryContext(ctx, "SELECT "+lt.idColumn+", name FROM "+lt.table+" ORDER BY name")
	if err != nil {
		return fmt.Errorf("listing %s: %w", lt.table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return fmt.Errorf("scanning %s: %w", lt.table, err)
		}
		fn(id, name)
	}
	return rows.Err()
}

// getOrInsert returns the ID of the row named name, inserting it first when
// absent. The UNIQUE(name) constraint makes the insert a no-op on conflict.
func (lt lookupTable) getOrInsert(ctx context.Context, tx *sql.Tx, name string) (string, error) {
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO "+lt.table+" ("+lt.idColumn+", name) VALUES (?, ?) ON CONFLICT(name) DO NOTHING",
		generateUUID(), name,
	); err != nil {
		return "", fmt.Errorf("inserting %s %q: %w", lt.table, name, err)
	}

	var id string
	err := tx.QueryRowContext(ctx,
		"SELECT "+lt.idColumn+" FROM "+lt.table+" WHERE name = ?", name,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("looking up %s %q: %w", lt.table, name, err)
	}
	return id, nil
}

// link associates gameID with the row named name, creating it if needed.
func (lt lookupTable) link(ctx context.Context, tx *sql.Tx, gameID, name string) error {
	id, err := lt.getOrInsert(ctx, tx, name)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO "+lt.linkTable+" (game_id, "+lt.idColumn+") VALUES (?, ?)",
		gameID, id,
	); err != nil {
		return fmt.Errorf("linking game to %s: %w", lt.table, err)
	}
	return nil
}

func entryArgs(e types.Entry) []any {
	return []any{e.Title, e.Played, e.Completed, e.Platform, e.Genre}
}

func entryExists(ctx context.Context, q queryer, e types.Entry) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx,
		"SELECT 1 FROM ("+selectEntries+whereEntry+") LIMIT 1", entryArgs(e)...,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking for duplicate entry: %w", err)
	}
	return true, nil
}

func titleExists(ctx context.Context, q queryer, title string) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx, "SELECT 1 FROM game WHERE title = ? LIMIT 1", title).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking title: %w", err)
	}
	return true, nil
}

func queryEntries(ctx context.Context, q queryer, query string, args ...any) ([]types.Entry, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []types.Entry
	for rows.Next() {
		var e types.Entry
		if err := rows.Scan(&e.GameID, &e.Title, &e.Played, &e.Completed, &e.Platform, &e.Genre); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
