package engine

import (
	"testing"

	nchess "github.com/corentings/chess/v2"
)

// Positions where the b-file square of a queenside castle plays no role,
// so legal move counts must agree with a full rules implementation.
var crossCheckFENs = []string{
	InitialFEN,
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
	"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
	"4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
	"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
	"8/8/8/K2pP2r/8/8/8/7k w - d6 0 1",
	"4k3/1P6/8/8/8/8/6p1/4K2R b K - 0 1",
}

func referenceGame(t *testing.T, fen string) *nchess.Game {
	t.Helper()
	opt, err := nchess.FEN(fen)
	if err != nil {
		t.Fatalf("reference FEN(%q) error = %v", fen, err)
	}
	return nchess.NewGame(opt)
}

func TestLegalMoveCounts_MatchReference(t *testing.T) {
	for _, fen := range crossCheckFENs {
		t.Run(fen, func(t *testing.T) {
			got := len(LegalMoves(mustState(t, fen).Position()))
			want := len(referenceGame(t, fen).ValidMoves())
			if got != want {
				t.Errorf("len(LegalMoves()) = %d, reference has %d", got, want)
			}
		})
	}
}

// TestChildMoveCounts_MatchReference plays every legal root move in both
// implementations and compares the replies available afterwards.
func TestChildMoveCounts_MatchReference(t *testing.T) {
	fens := []string{
		InitialFEN,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}

	for _, fen := range fens {
		pos := mustState(t, fen).Position()
		mover := pos.ActiveColor()

		for _, m := range LegalMoves(pos) {
			uci := m.UCI(mover)
			t.Run(fen+"/"+uci, func(t *testing.T) {
				next, err := pos.Apply(m)
				if err != nil {
					t.Fatalf("Apply(%s) error = %v", uci, err)
				}

				ref := referenceGame(t, fen)
				if err := ref.PushNotationMove(uci, nchess.UCINotation{}, nil); err != nil {
					t.Fatalf("reference rejected %s: %v", uci, err)
				}

				if got, want := len(LegalMoves(next)), len(ref.ValidMoves()); got != want {
					t.Errorf("replies after %s = %d, reference has %d", uci, got, want)
				}
			})
		}
	}
}
