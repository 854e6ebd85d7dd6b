package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/lgbarn/movegen-go/internal/engine"
	"github.com/lgbarn/movegen-go/internal/hashing"
)

// lineReader yields input lines until io.EOF.
type lineReader interface {
	Readline() (string, error)
	Close() error
}

// scannerReader reads lines from a non-terminal input.
type scannerReader struct {
	scanner *bufio.Scanner
}

func (s *scannerReader) Readline() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

func (s *scannerReader) Close() error { return nil }

// newLineReader uses readline with history when stdin is a terminal.
func (a *App) newLineReader() (lineReader, bool, error) {
	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          a.cfg.REPL.Prompt,
			HistoryFile:     a.cfg.REPL.HistoryFile,
			InterruptPrompt: "^C",
			EOFPrompt:       "quit",
		})
		if err != nil {
			return nil, false, err
		}
		return rl, true, nil
	}
	return &scannerReader{scanner: bufio.NewScanner(a.stdin)}, false, nil
}

// replCommand is one shell command.
type replCommand struct {
	name        string
	shortName   string
	usage       string
	description string
	handler     func(s *session, args []string) error
}

// session is the shell state: the current game and the states before it.
type session struct {
	app     *App
	w       io.Writer
	current *engine.GameState
	history []*engine.GameState
	done    bool
}

func (a *App) runREPL(ctx context.Context) error {
	rl, interactive, err := a.newLineReader()
	if err != nil {
		return err
	}
	defer rl.Close()

	s := &session{app: a, w: a.stdout, current: engine.NewGameState()}
	if interactive {
		fmt.Fprintf(a.stdout, "movegen %s. Type 'help' for commands.\n", programVersion)
	}

	for !s.done {
		if ctx.Err() != nil {
			return nil
		}
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		s.execute(line)
	}
	return nil
}

var replCommands []*replCommand

func init() {
	replCommands = []*replCommand{
		{"help", "?", "help", "Show available commands", (*session).cmdHelp},
		{"position", "fen", "position <fen>|startpos", "Set the current position", (*session).cmdPosition},
		{"show", "d", "show", "Print the board", (*session).cmdShow},
		{"moves", "m", "moves", "List legal moves", (*session).cmdMoves},
		{"pseudo", "", "pseudo", "List pseudo-legal moves", (*session).cmdPseudo},
		{"play", "p", "play <uci>...", "Play moves", (*session).cmdPlay},
		{"undo", "u", "undo", "Take back the last move", (*session).cmdUndo},
		{"perft", "", "perft <depth>", "Count leaf nodes", (*session).cmdPerft},
		{"divide", "", "divide <depth>", "Perft split by root move", (*session).cmdDivide},
		{"status", "s", "status", "Check, mate and draw status", (*session).cmdStatus},
		{"quit", "q", "quit", "Leave the shell", (*session).cmdQuit},
	}
}

func lookupCommand(name string) *replCommand {
	for _, c := range replCommands {
		if c.name == name || (c.shortName != "" && c.shortName == name) {
			return c
		}
	}
	return nil
}

func (s *session) execute(line string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}
	cmd := lookupCommand(strings.ToLower(parts[0]))
	if cmd == nil {
		// A bare move is played directly.
		if _, err := findLegalMove(s.current.Position(), parts[0]); err == nil {
			cmd = lookupCommand("play")
			parts = append([]string{"play"}, parts...)
		} else {
			fmt.Fprintf(s.w, "Unknown command %q. Type 'help' for commands.\n", parts[0])
			return
		}
	}
	if err := cmd.handler(s, parts[1:]); err != nil {
		s.app.log.Debug("repl command failed", zap.String("command", cmd.name), zap.Error(err))
		fmt.Fprintf(s.w, "Error: %v\n", err)
	}
}

func (s *session) cmdHelp(args []string) error {
	for _, c := range replCommands {
		short := ""
		if c.shortName != "" {
			short = " (" + c.shortName + ")"
		}
		fmt.Fprintf(s.w, "  %-24s %s%s\n", c.usage, c.description, short)
	}
	fmt.Fprintln(s.w, "  A bare UCI move such as e2e4 is played directly.")
	return nil
}

func (s *session) cmdPosition(args []string) error {
	gs, err := engine.GameStateFromFEN(fenFromArgs(args))
	if err != nil {
		return err
	}
	s.current = gs
	s.history = nil
	fmt.Fprintln(s.w, engine.EncodeFEN(gs))
	return nil
}

func (s *session) cmdShow(args []string) error {
	if err := s.current.Print(s.w); err != nil {
		return err
	}
	fmt.Fprintf(s.w, "FEN: %s\nZobrist: %s\n", engine.EncodeFEN(s.current), hashing.FormatKey(hashing.Zobrist(s.current.Position())))
	return nil
}

func (s *session) cmdMoves(args []string) error {
	pos := s.current.Position()
	moves := uciMoves(engine.LegalMoves(pos), pos.ActiveColor())
	fmt.Fprintf(s.w, "%d legal moves: %s\n", len(moves), strings.Join(moves, " "))
	return nil
}

func (s *session) cmdPseudo(args []string) error {
	moves := s.current.Position().GetPossibleMoves()
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	fmt.Fprintf(s.w, "%d pseudo-legal moves: %s\n", len(names), strings.Join(names, " "))
	return nil
}

func (s *session) cmdPlay(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: play <uci>...")
	}
	for _, uci := range args {
		m, err := findLegalMove(s.current.Position(), uci)
		if err != nil {
			return err
		}
		next, err := s.current.Apply(m)
		if err != nil {
			return err
		}
		s.history = append(s.history, s.current)
		s.current = next
	}
	fmt.Fprintln(s.w, engine.EncodeFEN(s.current))
	return nil
}

func (s *session) cmdUndo(args []string) error {
	if len(s.history) == 0 {
		return fmt.Errorf("nothing to undo")
	}
	s.current = s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	fmt.Fprintln(s.w, engine.EncodeFEN(s.current))
	return nil
}

func (s *session) cmdPerft(args []string) error {
	depth, _, err := parseDepth(args)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.w, "perft(%d) = %d\n", depth, engine.Perft(s.current.Position(), depth))
	return nil
}

func (s *session) cmdDivide(args []string) error {
	depth, _, err := parseDepth(args)
	if err != nil {
		return err
	}
	if depth < 1 {
		return fmt.Errorf("divide needs depth >= 1")
	}
	writeDivide(s.w, engine.Divide(s.current.Position(), depth))
	return nil
}

func (s *session) cmdStatus(args []string) error {
	pos := s.current.Position()
	var notes []string
	switch {
	case engine.IsCheckmate(pos):
		notes = append(notes, "checkmate")
	case engine.IsStalemate(pos):
		notes = append(notes, "stalemate")
	case pos.InCheck():
		notes = append(notes, "check")
	}
	if engine.HasInsufficientMaterial(pos) {
		notes = append(notes, "insufficient material")
	}
	if len(notes) == 0 {
		notes = append(notes, "in play")
	}
	fmt.Fprintf(s.w, "%s to move: %s\n", pos.ActiveColor(), strings.Join(notes, ", "))
	return nil
}

func (s *session) cmdQuit(args []string) error {
	s.done = true
	return nil
}
