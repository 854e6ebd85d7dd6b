package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/engine"
	"github.com/lgbarn/movegen-go/internal/errors"
	"github.com/lgbarn/movegen-go/internal/output"
	"github.com/lgbarn/movegen-go/internal/worker"
)

// fenFromArgs joins args back into a FEN. Empty input or "startpos"
// selects the initial position.
func fenFromArgs(args []string) string {
	fen := strings.TrimSpace(strings.Join(args, " "))
	if fen == "" || fen == "startpos" {
		return engine.InitialFEN
	}
	return fen
}

// parseDepth reads the leading depth argument of perft and divide.
func parseDepth(args []string) (int, []string, error) {
	if len(args) == 0 {
		return 0, nil, fmt.Errorf("missing depth")
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 0 {
		return 0, nil, fmt.Errorf("invalid depth %q", args[0])
	}
	return depth, args[1:], nil
}

// cmdShow analyses one position and renders it with the configured writer.
func (a *App) cmdShow(args []string) error {
	item := worker.NewItems([]string{fenFromArgs(args)})[0]
	result := (&worker.Analyzer{Logger: a.log}).Process(item)
	if result.Error != nil {
		return result.Error
	}

	w := output.New(a.stdout, a.cfg.Output)
	if err := w.WriteResult(result); err != nil {
		return err
	}
	return w.Flush()
}

// cmdMoves lists legal moves, one per line, in UCI notation.
func (a *App) cmdMoves(args []string) error {
	gs, err := engine.GameStateFromFEN(fenFromArgs(args))
	if err != nil {
		return err
	}
	pos := gs.Position()
	return writeLines(a.stdout, uciMoves(engine.LegalMoves(pos), pos.ActiveColor()))
}

// cmdPseudo lists pseudo-legal moves in generation order.
func (a *App) cmdPseudo(args []string) error {
	gs, err := engine.GameStateFromFEN(fenFromArgs(args))
	if err != nil {
		return err
	}
	moves := gs.Position().GetPossibleMoves()
	lines := make([]string, len(moves))
	for i, m := range moves {
		lines[i] = m.String()
	}
	return writeLines(a.stdout, lines)
}

// cmdPerft prints the leaf count at the given depth.
func (a *App) cmdPerft(args []string) error {
	depth, rest, err := parseDepth(args)
	if err != nil {
		return err
	}
	gs, err := engine.GameStateFromFEN(fenFromArgs(rest))
	if err != nil {
		return err
	}

	start := time.Now()
	nodes := engine.Perft(gs.Position(), depth)
	a.logPerft(depth, nodes, time.Since(start))

	_, err = fmt.Fprintf(a.stdout, "perft(%d) = %d\n", depth, nodes)
	return err
}

// cmdDivide prints the perft count below each root move, sorted by move.
func (a *App) cmdDivide(args []string) error {
	depth, rest, err := parseDepth(args)
	if err != nil {
		return err
	}
	if depth < 1 {
		return fmt.Errorf("divide needs depth >= 1")
	}
	gs, err := engine.GameStateFromFEN(fenFromArgs(rest))
	if err != nil {
		return err
	}

	start := time.Now()
	counts := engine.Divide(gs.Position(), depth)
	total := writeDivide(a.stdout, counts)
	a.logPerft(depth, total, time.Since(start))
	return nil
}

func writeDivide(w io.Writer, counts map[string]uint64) uint64 {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var total uint64
	for _, k := range keys {
		fmt.Fprintf(w, "%s: %d\n", k, counts[k])
		total += counts[k]
	}
	fmt.Fprintf(w, "\nMoves: %d\nNodes: %d\n", len(keys), total)
	return total
}

func (a *App) logPerft(depth int, nodes uint64, elapsed time.Duration) {
	nps := float64(0)
	if elapsed > 0 {
		nps = float64(nodes) / elapsed.Seconds()
	}
	a.log.Info("perft",
		zap.Int("depth", depth),
		zap.Uint64("nodes", nodes),
		zap.Duration("elapsed", elapsed),
		zap.Float64("nps", nps))
}

// findLegalMove returns the legal move of pos written as uci.
func findLegalMove(pos *engine.Position, uci string) (chess.Move, error) {
	want := strings.ToLower(strings.TrimSpace(uci))
	mover := pos.ActiveColor()
	for _, m := range engine.LegalMoves(pos) {
		if m.UCI(mover) == want {
			return m, nil
		}
	}
	return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "%s", uci)
}

func uciMoves(moves []chess.Move, mover chess.Color) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI(mover)
	}
	return out
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
