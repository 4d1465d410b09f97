package types

import (
	"fmt"
	"strings"
)

// Game is a cataloged video game.
type Game struct {
	GameID    string // UUID v7, generated on creation.
	Title     string // Required, non-empty.
	Played    bool
	Completed bool
}

// Platform is a system a game runs on. Name is unique within a catalog.
type Platform struct {
	PlatformID string
	Name       string
}

// Genre classifies a game. Name is unique within a catalog.
type Genre struct {
	GenreID string
	Name    string
}

// Entry is a game joined with its platform and genre. The title, flags,
// platform name, and genre name together form the full entry used as the
// match key for duplicate detection and removal.
type Entry struct {
	GameID    string `json:"game_id,omitempty"`
	Title     string `json:"title"`
	Played    bool   `json:"played"`
	Completed bool   `json:"completed"`
	Platform  string `json:"platform"`
	Genre     string `json:"genre"`
}

// Validate checks that the title, platform, and genre are non-empty.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("title: %w", ErrInvalidName)
	}
	if strings.TrimSpace(e.Platform) == "" {
		return fmt.Errorf("platform: %w", ErrInvalidName)
	}
	if strings.TrimSpace(e.Genre) == "" {
		return fmt.Errorf("genre: %w", ErrInvalidName)
	}
	return nil
}

// Game returns the game part of the entry.
func (e Entry) Game() Game {
	return Game{GameID: e.GameID, Title: e.Title, Played: e.Played, Completed: e.Completed}
}

// String renders the entry in the catalog display format.
func (e Entry) String() string {
	return fmt.Sprintf("Title: %s || Played: %s || Completed: %s || Platform: %s || Genre: %s",
		e.Title, FormatBool(e.Played), FormatBool(e.Completed), e.Platform, e.Genre)
}
