// Package sqlite implements the SQLite storage backend for game catalogs.
package sqlite

// Schema DDL for all tables. Every statement is idempotent so attaching to an
// existing catalog never discards data.
const (
	createGame = `CREATE TABLE IF NOT EXISTS game (
    game_id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    played INTEGER NOT NULL CHECK (played IN (0, 1)),
    completed INTEGER NOT NULL CHECK (completed IN (0, 1))
);`

	createPlatform = `CREATE TABLE IF NOT EXISTS platform (
    platform_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);`

	createGenre = `CREATE TABLE IF NOT EXISTS genre (
    genre_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);`

	createGamePlatformLink = `CREATE TABLE IF NOT EXISTS game_platform_link (
    game_id TEXT NOT NULL,
    platform_id TEXT NOT NULL,
    PRIMARY KEY (game_id, platform_id),
    FOREIGN KEY (game_id) REFERENCES game(game_id) ON DELETE CASCADE,
    FOREIGN KEY (platform_id) REFERENCES platform(platform_id)
);`

	createGameGenreLink = `CREATE TABLE IF NOT EXISTS game_genre_link (
    game_id TEXT NOT NULL,
    genre_id TEXT NOT NULL,
    PRIMARY KEY (game_id, genre_id),
    FOREIGN KEY (game_id) REFERENCES game(game_id) ON DELETE CASCADE,
    FOREIGN KEY (genre_id) REFERENCES genre(genre_id)
);`
)

// Index DDL for the title lookups and the reverse side of the link tables.
const (
	idxGameTitle            = `CREATE INDEX IF NOT EXISTS idx_game_title ON game(title);`
	idxGamePlatformPlatform = `CREATE INDEX IF NOT EXISTS idx_game_platform_link_platform ON game_platform_link(platform_id);`
	idxGameGenreGenre       = `CREATE INDEX IF NOT EXISTS idx_game_genre_link_genre ON game_genre_link(genre_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createGame,
	createPlatform,
	createGenre,
	createGamePlatformLink,
	createGameGenreLink,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxGameTitle,
	idxGamePlatformPlatform,
	idxGameGenreGenre,
}
