package testutil

import (
	"testing"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/engine"
)

// Well-known positions shared by tests across packages.
const (
	StartFEN     = engine.InitialFEN
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	EndgameFEN   = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
)

// MustGameState decodes fen and calls t.Fatal on failure.
func MustGameState(t testing.TB, fen string) *engine.GameState {
	t.Helper()
	gs, err := engine.GameStateFromFEN(fen)
	if err != nil {
		t.Fatalf("GameStateFromFEN(%q): %v", fen, err)
	}
	return gs
}

// MustPosition decodes fen and returns its Position.
func MustPosition(t testing.TB, fen string) *engine.Position {
	t.Helper()
	return MustGameState(t, fen).Position()
}

// MoveStrings renders moves in UCI form for the given mover.
func MoveStrings(moves []chess.Move, mover chess.Color) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI(mover)
	}
	return out
}

// LegalUCI returns the sorted UCI strings of pos's legal moves.
func LegalUCI(pos *engine.Position) []string {
	return Sorted(MoveStrings(engine.LegalMoves(pos), pos.ActiveColor()))
}
