package worker

import "github.com/google/uuid"

// WorkItem is one FEN line queued for analysis.
type WorkItem struct {
	Index int    // position in the batch; results are sorted by it
	ID    string // request ID, a UUID
	FEN   string
	Line  int // source line, 0 if unknown
}

// ProcessResult is everything the batch reports about one position.
type ProcessResult struct {
	Index            int
	ID               string
	FEN              string
	Line             int
	SideToMove       string
	LegalMoves       []string // UCI, in generation order
	Perft            uint64   // leaf count at PerftDepth, 0 if not run
	PerftDepth       int
	InCheck          bool
	Checkmate        bool
	Stalemate        bool
	Insufficient     bool
	StandardMaterial bool   // both sides still have the starting set of pieces
	Key              string // Zobrist key, 16 hex digits
	Duplicate        bool
	Error            error
}

// ProcessFunc analyses one work item. It is called from several
// goroutines at once.
type ProcessFunc func(item WorkItem) ProcessResult

// NewItems builds work items from FEN lines, assigning each a fresh request
// ID. lines[i] is expected to come from source line i+1.
func NewItems(lines []string) []WorkItem {
	items := make([]WorkItem, len(lines))
	for i, fen := range lines {
		items[i] = WorkItem{
			Index: i,
			ID:    uuid.NewString(),
			FEN:   fen,
			Line:  i + 1,
		}
	}
	return items
}
