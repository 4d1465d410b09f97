package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/cataloger/pkg/types"
)

var (
	fe = types.Entry{Title: "FE", Played: false, Completed: true, Platform: "Switch", Genre: "RPG"}
	dc = types.Entry{Title: "DC", Played: false, Completed: true, Platform: "Xbox", Genre: "Fighting"}
)

func alwaysConfirm(string) bool { return true }
func neverConfirm(string) bool  { return false }

// countRows returns the number of rows in table whose name column equals name.
func countRows(t *testing.T, b *Backend, table, name string) int {
	t.Helper()
	var n int
	require.NoError(t, b.db.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE name = ?", name).Scan(&n))
	return n
}

func countTable(t *testing.T, b *Backend, table string) int {
	t.Helper()
	var n int
	require.NoError(t, b.db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

// withoutID clears the generated GameID so entries compare by full entry.
func withoutID(e types.Entry) types.Entry {
	e.GameID = ""
	return e
}

func titles(entries []types.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Title)
	}
	return out
}

func TestAddGame(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		check func(t *testing.T, b *Backend)
	}{
		{
			name: "add then list round-trips the full entry",
			check: func(t *testing.T, b *Backend) {
				added, err := b.AddGame(ctx, fe, nil)
				require.NoError(t, err)
				assert.NotEmpty(t, added.GameID)

				entries, err := b.ListAll(ctx)
				require.NoError(t, err)
				require.Len(t, entries, 1)
				assert.Equal(t, fe, withoutID(entries[0]))
				assert.Equal(t, added.GameID, entries[0].GameID)
			},
		},
		{
			name: "list is ordered by title",
			check: func(t *testing.T, b *Backend) {
				_, err := b.AddGame(ctx, fe, nil)
				require.NoError(t, err)
				_, err = b.AddGame(ctx, dc, nil)
				require.NoError(t, err)

				entries, err := b.ListAll(ctx)
				require.NoError(t, err)
				assert.Equal(t, []string{"DC", "FE"}, titles(entries))
			},
		},
		{
			name: "identical full entry is rejected as duplicate",
			check: func(t *testing.T, b *Backend) {
				_, err := b.AddGame(ctx, fe, nil)
				require.NoError(t, err)

				_, err = b.AddGame(ctx, fe, alwaysConfirm)
				assert.ErrorIs(t, err, types.ErrDuplicateEntry)

				found, err := b.SearchByTitle(ctx, "FE")
				require.NoError(t, err)
				assert.Len(t, found, 1)
			},
		},
		{
			name: "reused platform and genre names do not create new rows",
			check: func(t *testing.T, b *Backend) {
				_, err := b.AddGame(ctx, fe, nil)
				require.NoError(t, err)
				_, err = b.AddGame(ctx, types.Entry{Title: "Zelda", Platform: "Switch", Genre: "RPG"}, nil)
				require.NoError(t, err)
				_, err = b.AddGame(ctx, types.Entry{Title: "Metroid", Played: true, Platform: "Switch", Genre: "Action"}, nil)
				require.NoError(t, err)

				assert.Equal(t, 1, countRows(t, b, "platform", "Switch"))
				assert.Equal(t, 1, countRows(t, b, "genre", "RPG"))
				assert.Equal(t, 1, countRows(t, b, "genre", "Action"))
				assert.Equal(t, 3, countTable(t, b, "game_platform_link"))
			},
		},
		{
			name: "repeated title with declined confirmation writes nothing",
			check: func(t *testing.T, b *Backend) {
				_, err := b.AddGame(ctx, fe, nil)
				require.NoError(t, err)

				other := fe
				other.Platform = "PC"
				other.Genre = "Strategy"
				_, err = b.AddGame(ctx, other, neverConfirm)
				assert.ErrorIs(t, err, types.ErrSameTitleRejected)

				assert.Equal(t, 1, countTable(t, b, "game"))
				assert.Equal(t, 0, countRows(t, b, "platform", "PC"))
				assert.Equal(t, 0, countRows(t, b, "genre", "Strategy"))
			},
		},
		{
			name: "repeated title without confirm func is rejected",
			check: func(t *testing.T, b *Backend) {
				_, err := b.AddGame(ctx, fe, nil)
				require.NoError(t, err)

				other := fe
				other.Played = true
				_, err = b.AddGame(ctx, other, nil)
				assert.ErrorIs(t, err, types.ErrSameTitleRejected)
			},
		},
		{
			name: "repeated title with confirmation adds a second game",
			check: func(t *testing.T, b *Backend) {
				_, err := b.AddGame(ctx, fe, nil)
				require.NoError(t, err)

				var asked string
				other := fe
				other.Platform = "PC"
				_, err = b.AddGame(ctx, other, func(title string) bool {
					asked = title
					return true
				})
				require.NoError(t, err)
				assert.Equal(t, "FE", asked)

				found, err := b.SearchByTitle(ctx, "FE")
				require.NoError(t, err)
				assert.Len(t, found, 2)
			},
		},
		{
			name: "confirm is not asked for a new title",
			check: func(t *testing.T, b *Backend) {
				_, err := b.AddGame(ctx, fe, func(string) bool {
					t.Fatal("confirm called for a new title")
					return false
				})
				require.NoError(t, err)
			},
		},
		{
			name: "empty names are rejected before any write",
			check: func(t *testing.T, b *Backend) {
				_, err := b.AddGame(ctx, types.Entry{Title: "FE", Platform: "", Genre: "RPG"}, nil)
				assert.ErrorIs(t, err, types.ErrInvalidName)
				assert.Equal(t, 0, countTable(t, b, "game"))
				assert.Equal(t, 0, countTable(t, b, "genre"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := setupBackend(t)
			tt.check(t, b)
		})
	}
}

func TestSearchByTitle(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t)

	_, err := b.AddGame(ctx, fe, nil)
	require.NoError(t, err)
	_, err = b.AddGame(ctx, dc, nil)
	require.NoError(t, err)

	found, err := b.SearchByTitle(ctx, "DC")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, dc, withoutID(found[0]))

	found, err = b.SearchByTitle(ctx, "dc")
	require.NoError(t, err)
	assert.Empty(t, found, "search is an exact match")

	found, err = b.SearchByTitle(ctx, "Missing")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestRemoveGame(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		check func(t *testing.T, b *Backend)
	}{
		{
			name: "remove then list no longer shows the title",
			check: func(t *testing.T, b *Backend) {
				_, err := b.AddGame(ctx, fe, nil)
				require.NoError(t, err)
				_, err = b.AddGame(ctx, dc, nil)
				require.NoError(t, err)

				n, err := b.RemoveGame(ctx, fe)
				require.NoError(t, err)
				assert.Equal(t, 1, n)

				entries, err := b.ListAll(ctx)
				require.NoError(t, err)
				assert.Equal(t, []string{"DC"}, titles(entries))
			},
		},
		{
			name: "mismatched platform reports not found and keeps the row",
			check: func(t *testing.T, b *Backend) {
				_, err := b.AddGame(ctx, fe, nil)
				require.NoError(t, err)

				wrong := fe
				wrong.Platform = "Xbox"
				_, err = b.RemoveGame(ctx, wrong)
				assert.ErrorIs(t, err, types.ErrNotFound)

				found, err := b.SearchByTitle(ctx, "FE")
				require.NoError(t, err)
				assert.Len(t, found, 1)
			},
		},
		{
			name: "mismatched flag reports not found",
			check: func(t *testing.T, b *Backend) {
				_, err := b.AddGame(ctx, fe, nil)
				require.NoError(t, err)

				wrong := fe
				wrong.Completed = false
				_, err = b.RemoveGame(ctx, wrong)
				assert.ErrorIs(t, err, types.ErrNotFound)
			},
		},
		{
			name: "platform and genre rows outlive their games",
			check: func(t *testing.T, b *Backend) {
				_, err := b.AddGame(ctx, fe, nil)
				require.NoError(t, err)

				_, err = b.RemoveGame(ctx, fe)
				require.NoError(t, err)

				assert.Equal(t, 1, countRows(t, b, "platform", "Switch"))
				assert.Equal(t, 1, countRows(t, b, "genre", "RPG"))
				assert.Equal(t, 0, countTable(t, b, "game_platform_link"))
				assert.Equal(t, 0, countTable(t, b, "game_genre_link"))
			},
		},
		{
			name: "remove only touches the matching entry of a repeated title",
			check: func(t *testing.T, b *Backend) {
				_, err := b.AddGame(ctx, fe, nil)
				require.NoError(t, err)
				pc := fe
				pc.Platform = "PC"
				_, err = b.AddGame(ctx, pc, alwaysConfirm)
				require.NoError(t, err)

				_, err = b.RemoveGame(ctx, pc)
				require.NoError(t, err)

				found, err := b.SearchByTitle(ctx, "FE")
				require.NoError(t, err)
				require.Len(t, found, 1)
				assert.Equal(t, "Switch", found[0].Platform)
			},
		},
		{
			name: "re-adding a removed entry reuses its platform and genre",
			check: func(t *testing.T, b *Backend) {
				_, err := b.AddGame(ctx, fe, nil)
				require.NoError(t, err)
				_, err = b.RemoveGame(ctx, fe)
				require.NoError(t, err)
				_, err = b.AddGame(ctx, fe, nil)
				require.NoError(t, err)

				assert.Equal(t, 1, countRows(t, b, "platform", "Switch"))
				assert.Equal(t, 1, countRows(t, b, "genre", "RPG"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := setupBackend(t)
			tt.check(t, b)
		})
	}
}

func TestPlatformsAndGenres(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t)

	ps, err := b.Platforms(ctx)
	require.NoError(t, err)
	assert.Empty(t, ps)

	_, err = b.AddGame(ctx, fe, nil)
	require.NoError(t, err)
	_, err = b.AddGame(ctx, dc, nil)
	require.NoError(t, err)
	_, err = b.AddGame(ctx, types.Entry{Title: "Zelda", Platform: "Switch", Genre: "Action"}, nil)
	require.NoError(t, err)

	ps, err = b.Platforms(ctx)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, "Switch", ps[0].Name)
	assert.Equal(t, "Xbox", ps[1].Name)
	assert.NotEmpty(t, ps[0].PlatformID)

	gs, err := b.Genres(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(gs))
	for _, g := range gs {
		assert.NotEmpty(t, g.GenreID)
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"Action", "Fighting", "RPG"}, names)

	// Removing the last Xbox game keeps the platform.
	_, err = b.RemoveGame(ctx, dc)
	require.NoError(t, err)
	ps, err = b.Platforms(ctx)
	require.NoError(t, err)
	assert.Len(t, ps, 2)

	require.NoError(t, b.Detach())
	_, err = b.Platforms(ctx)
	assert.ErrorIs(t, err, types.ErrCatalogDetached)
	_, err = b.Genres(ctx)
	assert.ErrorIs(t, err, types.ErrCatalogDetached)
}
