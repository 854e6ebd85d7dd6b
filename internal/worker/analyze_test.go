package worker

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lgbarn/movegen-go/internal/errors"
	"github.com/lgbarn/movegen-go/internal/hashing"
	"github.com/lgbarn/movegen-go/internal/testutil"
)

func TestAnalyzerProcess(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		perftDepth    int
		wantMoves     int
		wantPerft     uint64
		wantCheck     bool
		wantCheckmate bool
		wantStalemate bool
		wantInsuff    bool
		wantStandard  bool
	}{
		{name: "start", fen: testutil.StartFEN, perftDepth: 2, wantMoves: 20, wantPerft: 400, wantStandard: true},
		{name: "fools mate", fen: testutil.FoolsMateFEN, wantCheck: true, wantCheckmate: true, wantStandard: true},
		{name: "kiwipete", fen: testutil.KiwipeteFEN, wantMoves: 48, wantStandard: true},
		{name: "stalemate", fen: "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", wantStalemate: true},
		{name: "bare kings", fen: "4k3/8/8/8/8/8/8/4K3 w - - 0 1", perftDepth: 1, wantMoves: 5, wantPerft: 5, wantInsuff: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Analyzer{PerftDepth: tt.perftDepth}
			got := a.Process(WorkItem{Index: 3, ID: "req", FEN: tt.fen, Line: 4})

			testutil.AssertNoError(t, got.Error)
			testutil.AssertEqual(t, got.Index, 3)
			testutil.AssertEqual(t, got.ID, "req")
			testutil.AssertEqual(t, len(got.LegalMoves), tt.wantMoves, "legal moves")
			testutil.AssertEqual(t, got.Perft, tt.wantPerft, "perft")
			testutil.AssertEqual(t, got.InCheck, tt.wantCheck, "in check")
			testutil.AssertEqual(t, got.Checkmate, tt.wantCheckmate, "checkmate")
			testutil.AssertEqual(t, got.Stalemate, tt.wantStalemate, "stalemate")
			testutil.AssertEqual(t, got.Insufficient, tt.wantInsuff, "insufficient material")
			testutil.AssertEqual(t, got.StandardMaterial, tt.wantStandard, "standard material")
			testutil.AssertEqual(t, len(got.Key), 16, "key length")
		})
	}
}

func TestAnalyzerProcess_MoveOrder(t *testing.T) {
	got := (&Analyzer{}).Process(WorkItem{FEN: testutil.StartFEN})
	testutil.AssertEqual(t, got.SideToMove, "white")
	testutil.AssertEqual(t, got.LegalMoves[:4], []string{"a2a3", "a2a4", "b1a3", "b1c3"})
}

func TestAnalyzerProcess_DecodeError(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	a := &Analyzer{Source: "positions.txt", Logger: zap.New(core)}

	got := a.Process(WorkItem{Index: 1, ID: "abc", FEN: "8/8/8 w", Line: 2})

	testutil.AssertErrorIs(t, got.Error, errors.ErrIncomplete)
	var posErr *errors.PositionError
	testutil.AssertTrue(t, errors.As(got.Error, &posErr), "want PositionError")
	testutil.AssertEqual(t, posErr.Line, 2)
	testutil.AssertContains(t, got.Error.Error(), "positions.txt:2")
	testutil.AssertEqual(t, logs.FilterMessage("decode failed").Len(), 1)
}

func TestAnalyzerProcess_Duplicates(t *testing.T) {
	a := &Analyzer{Detector: hashing.NewThreadSafeDuplicateDetector(false, 0)}

	first := a.Process(WorkItem{FEN: testutil.StartFEN})
	second := a.Process(WorkItem{FEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 5 9"})
	other := a.Process(WorkItem{FEN: testutil.KiwipeteFEN})

	testutil.AssertFalse(t, first.Duplicate)
	testutil.AssertTrue(t, second.Duplicate, "clocks ignored outside exact mode")
	testutil.AssertFalse(t, other.Duplicate)
	testutil.AssertEqual(t, first.Key, second.Key)
}
