package worker

import (
	"go.uber.org/zap"

	"github.com/lgbarn/movegen-go/internal/engine"
	"github.com/lgbarn/movegen-go/internal/errors"
	"github.com/lgbarn/movegen-go/internal/hashing"
)

// Analyzer turns a FEN work item into a ProcessResult. Every call decodes
// its own GameState, so one Analyzer can serve all workers of a pool.
type Analyzer struct {
	// PerftDepth is the perft depth to run; 0 skips perft.
	PerftDepth int
	// Detector flags repeated positions across the batch (may be nil).
	Detector *hashing.ThreadSafeDuplicateDetector
	// Source names the input for error context (may be empty).
	Source string
	Logger *zap.Logger
}

// Process analyses one item. Decoding failures are reported in the result
// wrapped in a PositionError.
func (a *Analyzer) Process(item WorkItem) ProcessResult {
	log := a.logger().With(zap.Int("index", item.Index), zap.String("id", item.ID))
	result := ProcessResult{
		Index: item.Index,
		ID:    item.ID,
		FEN:   item.FEN,
		Line:  item.Line,
	}

	gs, err := engine.GameStateFromFEN(item.FEN)
	if err != nil {
		log.Debug("decode failed", zap.Error(err))
		result.Error = &errors.PositionError{
			Err:    err,
			Index:  item.Index,
			Source: a.Source,
			Line:   item.Line,
			ID:     item.ID,
		}
		return result
	}

	pos := gs.Position()
	mover := pos.ActiveColor()
	moves := engine.LegalMoves(pos)

	result.SideToMove = mover.String()
	result.LegalMoves = make([]string, len(moves))
	for i, m := range moves {
		result.LegalMoves[i] = m.UCI(mover)
	}
	result.InCheck = pos.InCheck()
	result.Checkmate = len(moves) == 0 && result.InCheck
	result.Stalemate = len(moves) == 0 && !result.InCheck
	result.Insufficient = engine.HasInsufficientMaterial(pos)
	result.StandardMaterial = engine.HasStandardMaterial(pos)
	result.Key = hashing.FormatKey(hashing.Zobrist(pos))

	if a.PerftDepth > 0 {
		result.PerftDepth = a.PerftDepth
		result.Perft = engine.Perft(pos, a.PerftDepth)
	}
	if a.Detector != nil {
		result.Duplicate = a.Detector.CheckAndAdd(gs)
	}

	log.Debug("analysed",
		zap.Int("legal_moves", len(moves)),
		zap.Uint64("perft", result.Perft),
		zap.Bool("duplicate", result.Duplicate))
	return result
}

func (a *Analyzer) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}
