package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/aacboard/pkg/board"
	"github.com/mesh-intelligence/aacboard/pkg/types"
)

const sessionHelp = `commands:
  select <image>       enter a category, or speak an item
  reset                return to the home view
  list                 show the images of the current view
  add <image> <text>   add a category (home) or an item (inside a category)
  where                show the current view
  save                 save the board
  help                 show this help
  quit                 leave the session`

func newSessionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Navigate the board interactively",
		Long: `Session reads one command per line from standard input and keeps the
board's current view between commands. Changes are only stored by "save".

` + sessionHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBoard(func(s types.Store, b *board.Board) error {
				sess := &session{store: s, board: b, out: cmd.OutOrStdout(), logger: a.logger}
				return sess.run(cmd.InOrStdin())
			})
		},
	}
}

// session drives one board from line commands.
type session struct {
	store  types.Store
	board  *board.Board
	out    io.Writer
	logger *zap.Logger
	dirty  bool
}

var errQuit = errors.New("quit")

func (s *session) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		err := s.exec(line)
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return systemError(fmt.Errorf("read input: %w", err))
	}
	if s.dirty {
		s.logger.Warn("session ended with unsaved changes")
	}
	return nil
}

// exec runs one command line. Lookup misses are reported and the session
// continues; storage failures end it.
func (s *session) exec(line string) error {
	command, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch command {
	case "select":
		if rest == "" {
			fmt.Fprintln(s.out, "usage: select <image>")
			return nil
		}
		navigating := s.board.Cursor().IsHome()
		text, err := s.board.Select(rest)
		if errors.Is(err, board.ErrNotFound) {
			fmt.Fprintf(s.out, "not found: %s\n", rest)
			return nil
		}
		if err != nil {
			return err
		}
		if navigating {
			cat, err := s.board.Category(s.board.CurrentCategory())
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out, "entered %s\n", cat.Name())
			return nil
		}
		fmt.Fprintf(s.out, "say: %s\n", text)
	case "reset":
		s.board.Reset()
		fmt.Fprintln(s.out, "home")
	case "list":
		for _, loc := range s.board.CategoryImageLocs() {
			fmt.Fprintln(s.out, loc)
		}
	case "add":
		imageLoc, text, ok := strings.Cut(rest, " ")
		if !ok || imageLoc == "" {
			fmt.Fprintln(s.out, "usage: add <image> <text>")
			return nil
		}
		if err := s.board.CheckAdd(imageLoc, text); err != nil {
			fmt.Fprintf(s.out, "cannot add %s: %v\n", imageLoc, err)
			return nil
		}
		s.board.AddItem(imageLoc, text)
		s.dirty = true
		fmt.Fprintf(s.out, "added %s\n", imageLoc)
	case "where":
		fmt.Fprintln(s.out, s.board.Cursor())
	case "save":
		if err := s.store.Save(s.board); err != nil {
			return storageError("save board", err)
		}
		s.dirty = false
		fmt.Fprintln(s.out, "saved")
	case "help":
		fmt.Fprintln(s.out, sessionHelp)
	case "quit", "exit":
		return errQuit
	default:
		fmt.Fprintf(s.out, "unknown command %q (try help)\n", command)
	}
	return nil
}
