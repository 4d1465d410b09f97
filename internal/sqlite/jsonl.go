// This file implements catalog export and import as JSON Lines, one entry
// per line.
package sqlite

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/cataloger/pkg/types"
)

// ImportResult counts the outcome of an Import.
type ImportResult struct {
	Added   int `json:"added"`   // entries stored as new games
	Skipped int `json:"skipped"` // duplicates, declined repeats, invalid or malformed lines
}

// Export writes every entry to path atomically and returns how many were
// written.
func (b *Backend) Export(ctx context.Context, path string) (int, error) {
	entries, err := b.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	if err := writeEntriesJSONL(path, entries); err != nil {
		return 0, err
	}
	b.log.Debug("catalog exported", "path", path, "count", len(entries))
	return len(entries), nil
}

// Import adds every entry in the JSONL file at path through AddGame. Entries
// that AddGame rejects for validation reasons are counted as skipped; storage
// errors stop the import.
func (b *Backend) Import(ctx context.Context, path string, confirm types.ConfirmFunc) (ImportResult, error) {
	entries, malformed, err := readEntriesJSONL(path)
	if err != nil {
		return ImportResult{}, err
	}

	res := ImportResult{Skipped: malformed}
	for _, e := range entries {
		e.GameID = ""
		_, err := b.AddGame(ctx, e, confirm)
		switch {
		case err == nil:
			res.Added++
		case errors.Is(err, types.ErrDuplicateEntry),
			errors.Is(err, types.ErrSameTitleRejected),
			errors.Is(err, types.ErrInvalidName):
			res.Skipped++
		default:
			return res, fmt.Errorf("importing %q: %w", e.Title, err)
		}
	}
	b.log.Debug("catalog imported", "path", path, "added", res.Added, "skipped", res.Skipped)
	return res, nil
}

// readEntriesJSONL decodes each non-empty line of path into an Entry. Lines
// that are not valid entry objects are skipped and counted.
func readEntriesJSONL(path string) ([]types.Entry, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var (
		entries   []types.Entry
		malformed int
	)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e types.Entry
		if err := json.Unmarshal(line, &e); err != nil {
			malformed++
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("scanning %s: %w", path, err)
	}
	return entries, malformed, nil
}

// writeEntriesJSONL writes entries to path using the temp-file, fsync,
// rename pattern so a failed export never leaves a partial file.
func writeEntriesJSONL(path string, entries []types.Entry) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}

	w := bufio.NewWriter(tmp)
	enc := json.NewEncoder(w)
	for _, e := range entries {
		e.GameID = ""
		if err := enc.Encode(e); err != nil {
			return fail(fmt.Errorf("encoding %q: %w", e.Title, err))
		}
	}
	if err := w.Flush(); err != nil {
		return fail(fmt.Errorf("flushing buffer: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		return fail(fmt.Errorf("syncing temp file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
