package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/cataloger/internal/paths"
	"github.com/mesh-intelligence/cataloger/pkg/types"
)

// Prompts shown while collecting input.
const (
	promptNewDir   = "\nPlease enter the path to the directory where you would like the catalog to be stored:"
	promptLoadDir  = "\nPlease enter the path to the directory where the catalog is stored:"
	promptFileName = "\nPlease enter the catalog file name:"
	promptTitle    = "\nPlease enter the game title:"
	promptPlayed   = "\nHave you played the game? (True/False):"
	promptDone     = "\nHave you completed the game? (True/False):"
	promptPlatform = "\nPlease enter the platform:"
	promptGenre    = "\nPlease enter the genre:"
	promptSearch   = "\nPlease enter the title to search for:"
	promptConfirm  = "\nA game titled %q is already in the catalog. Add another entry? (Yes/No):"
)

func quit(*Shell, context.Context) (State, error) {
	return StateDone, nil
}

func exitToInitial(*Shell, context.Context) (State, error) {
	return StateInitial, nil
}

func (s *Shell) newCatalog(ctx context.Context) (State, error) {
	return s.selectCatalog(ctx, promptNewDir, paths.NewCatalogPath)
}

func (s *Shell) loadCatalog(ctx context.Context) (State, error) {
	return s.selectCatalog(ctx, promptLoadDir, paths.LoadCatalogPath)
}

// selectCatalog asks for a directory and file name, validates them with
// resolve, attaches the catalog, and shows its contents.
func (s *Shell) selectCatalog(ctx context.Context, dirPrompt string, resolve func(dir, name string) (string, error)) (State, error) {
	dir, ok := s.readLine(dirPrompt)
	if !ok {
		return StateDone, nil
	}
	dir = strings.TrimSpace(dir)
	if err := paths.ValidateDir(dir); err != nil {
		return s.retry(err)
	}

	name, ok := s.readLine(promptFileName)
	if !ok {
		return StateDone, nil
	}
	path, err := resolve(dir, name)
	if err != nil {
		return s.retry(err)
	}

	s.closeCatalog()
	catalog := s.open()
	if err := catalog.Attach(ctx, types.Config{Backend: types.BackendSQLite, Path: path}); err != nil {
		return s.retry(err)
	}
	s.catalog = catalog
	s.log.Info("catalog opened", "path", path)

	if err := s.printAll(ctx); err != nil {
		return StateInitial, err
	}
	s.println("\nAll cataloged games have been displayed above.")
	return StateSub, nil
}

// retry reports a failed catalog selection and shows the initial menu again.
func (s *Shell) retry(err error) (State, error) {
	if err := s.report(err); err != nil {
		return StateInitial, err
	}
	s.printMenu()
	return StateInitial, nil
}

func (s *Shell) search(ctx context.Context) (State, error) {
	title, ok := s.readLine(promptSearch)
	if !ok {
		return StateDone, nil
	}
	entries, err := s.catalog.SearchByTitle(ctx, title)
	if err != nil {
		return StateSub, s.report(err)
	}
	if len(entries) == 0 {
		s.printf("\nNo game titled %q was found.\n", title)
		return StateSub, nil
	}
	s.printEntries(entries)
	return StateSub, nil
}

func (s *Shell) sort(context.Context) (State, error) {
	s.println("\nSorting the catalog differently is not available yet.")
	return StateSub, nil
}

func (s *Shell) display(ctx context.Context) (State, error) {
	return StateSub, s.printAll(ctx)
}

func (s *Shell) addGame(ctx context.Context) (State, error) {
	entry, ok, err := s.readEntry()
	if !ok {
		return StateDone, nil
	}
	if err != nil {
		return StateSub, s.report(err)
	}

	eof := false
	confirm := func(title string) bool {
		answer, ok := s.readLine(fmt.Sprintf(promptConfirm, title))
		if !ok {
			eof = true
			return false
		}
		return isAffirmative(answer)
	}

	added, err := s.catalog.AddGame(ctx, entry, confirm)
	if eof {
		return StateDone, nil
	}
	if err != nil {
		return StateSub, s.report(err)
	}
	s.printf("\nAdded: %s\n", added)
	return StateSub, nil
}

func (s *Shell) removeGame(ctx context.Context) (State, error) {
	entry, ok, err := s.readEntry()
	if !ok {
		return StateDone, nil
	}
	if err != nil {
		return StateSub, s.report(err)
	}

	n, err := s.catalog.RemoveGame(ctx, entry)
	if err != nil {
		return StateSub, s.report(err)
	}
	s.printf("\nRemoved %d game(s): %s\n", n, entry)
	return StateSub, nil
}

// readEntry prompts for the five fields of a full entry. The flags are parsed
// as soon as they are read so an invalid literal stops before the platform
// and genre prompts. ok is false at end of input.
func (s *Shell) readEntry() (entry types.Entry, ok bool, err error) {
	if entry.Title, ok = s.readLine(promptTitle); !ok {
		return entry, false, nil
	}

	played, ok := s.readLine(promptPlayed)
	if !ok {
		return entry, false, nil
	}
	if entry.Played, err = types.ParseBool(strings.TrimSpace(played)); err != nil {
		return entry, true, err
	}

	completed, ok := s.readLine(promptDone)
	if !ok {
		return entry, false, nil
	}
	if entry.Completed, err = types.ParseBool(strings.TrimSpace(completed)); err != nil {
		return entry, true, err
	}

	if entry.Platform, ok = s.readLine(promptPlatform); !ok {
		return entry, false, nil
	}
	if entry.Genre, ok = s.readLine(promptGenre); !ok {
		return entry, false, nil
	}
	return entry, true, entry.Validate()
}

func (s *Shell) printAll(ctx context.Context) error {
	entries, err := s.catalog.ListAll(ctx)
	if err != nil {
		return s.report(err)
	}
	if len(entries) == 0 {
		s.println("\nThe catalog is empty.")
		return nil
	}
	s.printEntries(entries)
	return nil
}

func (s *Shell) printEntries(entries []types.Entry) {
	s.println("")
	for _, e := range entries {
		s.println(e.String())
	}
}

// isAffirmative accepts "Yes" or "Y" in any case.
func isAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		return true
	default:
		return false
	}
}
