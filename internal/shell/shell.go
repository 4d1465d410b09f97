// Package shell implements the interactive catalog menus. The shell is a
// small state machine: the initial menu selects or creates a catalog, the
// sub-menu runs record operations against it, and a transition table maps
// each (state, command) pair to the handler that produces the next state.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mesh-intelligence/cataloger/internal/paths"
	"github.com/mesh-intelligence/cataloger/pkg/types"
)

// State is a menu of the shell.
type State int

const (
	StateInitial State = iota
	StateSub
	StateDone
)

func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateSub:
		return "sub"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Menu command names.
const (
	CmdNew        = "New"
	CmdLoad       = "Load"
	CmdQuit       = "Quit"
	CmdSearch     = "Search"
	CmdSort       = "Sort"
	CmdAddGame    = "AddGame"
	CmdRemoveGame = "RemoveGame"
	CmdDisplay    = "Display"
	CmdExit       = "Exit"
)

// Opener returns a detached catalog for the shell to attach.
type Opener func() types.Catalog

type handler func(s *Shell, ctx context.Context) (State, error)

type command struct {
	name string
	help string
	run  handler
}

// Shell reads commands from an input stream and writes prompts and results to
// an output stream.
type Shell struct {
	in      *bufio.Scanner
	out     io.Writer
	open    Opener
	log     *slog.Logger
	menus   map[State][]command
	state   State
	catalog types.Catalog
}

// New creates a shell in the initial state. open is called each time the user
// creates or loads a catalog.
func New(in io.Reader, out io.Writer, open Opener, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Shell{
		in:    bufio.NewScanner(in),
		out:   out,
		open:  open,
		log:   logger,
		state: StateInitial,
	}
	s.menus = transitions()
	return s
}

// transitions returns the command table for each menu state.
func transitions() map[State][]command {
	return map[State][]command{
		StateInitial: {
			{name: CmdNew, help: "To start a new catalog enter the command: New", run: (*Shell).newCatalog},
			{name: CmdLoad, help: "To use an existing catalog enter the command: Load", run: (*Shell).loadCatalog},
			{name: CmdQuit, help: "To quit the program enter the command: Quit", run: quit},
		},
		StateSub: {
			{name: CmdSearch, help: "To search for a game by title enter the command: Search", run: (*Shell).search},
			{name: CmdSort, help: "To display the catalog sorted differently enter the command: Sort", run: (*Shell).sort},
			{name: CmdAddGame, help: "To add a new game enter the command: AddGame", run: (*Shell).addGame},
			{name: CmdRemoveGame, help: "To remove a game enter the command: RemoveGame", run: (*Shell).removeGame},
			{name: CmdDisplay, help: "To display every cataloged game enter the command: Display", run: (*Shell).display},
			{name: CmdExit, help: "Otherwise to return to the initial menu to create or load a different catalog enter the command: Exit", run: exitToInitial},
		},
	}
}

// State returns the current menu state.
func (s *Shell) State() State { return s.state }

// Run drives the menus until Quit, end of input, or a storage fault. The
// open catalog is detached before Run returns.
func (s *Shell) Run(ctx context.Context) error {
	defer s.closeCatalog()

	s.println("Welcome to the GameTracker!")
	s.printMenu()
	for s.state != StateDone {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, ok := s.readLine("\nEnter Command:")
		if !ok {
			s.state = StateDone
			break
		}
		cmd, found := s.lookup(strings.TrimSpace(line))
		if !found {
			s.printMenu()
			continue
		}

		next, err := cmd.run(s, ctx)
		if err != nil {
			return err
		}
		s.log.Debug("shell transition", "from", s.state, "command", cmd.name, "to", next)
		changed := next != s.state
		s.state = next
		if changed && s.state != StateDone {
			s.printMenu()
		}
	}
	return s.in.Err()
}

func (s *Shell) lookup(name string) (command, bool) {
	for _, c := range s.menus[s.state] {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func (s *Shell) printMenu() {
	if s.state == StateSub {
		s.println("\nYou are now in the sub-menu.")
	}
	s.println("")
	for _, c := range s.menus[s.state] {
		s.println(c.help)
	}
}

// readLine prints prompt and returns the next input line without its line
// ending. ok is false at end of input.
func (s *Shell) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		s.println("")
		return "", false
	}
	return strings.TrimRight(s.in.Text(), "\r"), true
}

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Shell) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func (s *Shell) closeCatalog() {
	if s.catalog == nil {
		return
	}
	if err := s.catalog.Detach(); err != nil {
		s.log.Warn("detaching catalog", "err", err)
	}
	s.catalog = nil
}

// report prints the message for a user-facing error and returns nil, or
// returns err unchanged when it is a storage fault.
func (s *Shell) report(err error) error {
	switch {
	case errors.Is(err, paths.ErrPathNotFound):
		s.println("\nPath does not exist, please enter existing path.")
	case errors.Is(err, paths.ErrBadFileName):
		s.println("\nBad file name.")
	case errors.Is(err, paths.ErrCatalogExists):
		s.println("\nFile already exists in directory, please enter non-existing filename.")
	case errors.Is(err, types.ErrNotCatalog):
		s.println("\nFile is not a game catalog, please enter a catalog file or use the command to create a new file.")
	case errors.Is(err, paths.ErrCatalogMissing):
		s.println("\nFile does not exist in directory, please enter existing file or use the command to create a new file.")
	case errors.Is(err, types.ErrInvalidBool):
		s.printf("\nPlease enter %s or %s.\n", types.LiteralTrue, types.LiteralFalse)
	case errors.Is(err, types.ErrInvalidName):
		s.println("\nTitle, platform, and genre must not be empty.")
	case errors.Is(err, types.ErrDuplicateEntry):
		s.println("\nThis game is already in the catalog.")
	case errors.Is(err, types.ErrSameTitleRejected):
		s.println("\nGame was not added.")
	case errors.Is(err, types.ErrNotFound):
		s.println("\nNo matching game was found in the catalog.")
	default:
		s.log.Error("catalog operation failed", "err", err)
		return err
	}
	s.log.Debug("user error", "err", err)
	return nil
}
