package engine

import (
	"sort"
	"testing"

	"github.com/lgbarn/movegen-go/internal/chess"
)

// mustState decodes fen or fails the test.
func mustState(t testing.TB, fen string) *GameState {
	t.Helper()
	gs, err := GameStateFromFEN(fen)
	if err != nil {
		t.Fatalf("GameStateFromFEN(%q) error = %v", fen, err)
	}
	return gs
}

// positionWith builds a position from square/piece pairs such as "e1": 'K'.
func positionWith(t testing.TB, active chess.Color, rights chess.CastlingRights, pieces map[string]byte) *Position {
	t.Helper()
	board := chess.NewEmptyBoard()
	for sq, letter := range pieces {
		piece, ok := chess.PieceFromLetter(letter)
		if !ok {
			t.Fatalf("bad piece letter %q", letter)
		}
		board.Square(chess.MustParseCoordinate(sq)).SetPiece(piece)
	}
	return NewPosition(board, active, rights)
}

func noRights() chess.CastlingRights {
	return chess.NewCastlingRightsAllFalse()
}

// uciList renders moves for the given mover.
func uciList(moves []chess.Move, mover chess.Color) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI(mover)
	}
	return out
}

func sortedUCI(moves []chess.Move, mover chess.Color) []string {
	out := uciList(moves, mover)
	sort.Strings(out)
	return out
}

func sq(s string) chess.Coordinate {
	return chess.MustParseCoordinate(s)
}
