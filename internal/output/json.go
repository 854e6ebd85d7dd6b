package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/movegen-go/internal/worker"
)

// JSONPosition represents an analysed position in JSON format.
type JSONPosition struct {
	Index        int      `json:"index"`
	ID           string   `json:"id,omitempty"`
	Line         int      `json:"line,omitempty"`
	FEN          string   `json:"fen"`
	SideToMove   string   `json:"sideToMove,omitempty"`
	LegalMoves   []string `json:"legalMoves,omitempty"`
	MoveCount    int      `json:"moveCount"`
	PerftDepth   int      `json:"perftDepth,omitempty"`
	Perft        uint64   `json:"perft,omitempty"`
	InCheck      bool     `json:"inCheck,omitempty"`
	Checkmate    bool     `json:"checkmate,omitempty"`
	Stalemate    bool     `json:"stalemate,omitempty"`
	Insufficient bool     `json:"insufficientMaterial,omitempty"`
	Standard     bool     `json:"standardMaterial,omitempty"`
	Key          string   `json:"zobrist,omitempty"`
	Duplicate    bool     `json:"duplicate,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// JSONOutput holds multiple positions for array output.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions"`
	Summary   Summary         `json:"summary"`
}

// ResultToJSON converts a worker result to JSON form. Legal moves are
// omitted unless withMoves is set.
func ResultToJSON(r worker.ProcessResult, withMoves bool) *JSONPosition {
	jp := &JSONPosition{
		Index:        r.Index,
		ID:           r.ID,
		Line:         r.Line,
		FEN:          r.FEN,
		SideToMove:   r.SideToMove,
		MoveCount:    len(r.LegalMoves),
		PerftDepth:   r.PerftDepth,
		Perft:        r.Perft,
		InCheck:      r.InCheck,
		Checkmate:    r.Checkmate,
		Stalemate:    r.Stalemate,
		Insufficient: r.Insufficient,
		Standard:     r.StandardMaterial,
		Key:          r.Key,
		Duplicate:    r.Duplicate,
	}
	if withMoves {
		jp.LegalMoves = r.LegalMoves
	}
	if r.Error != nil {
		jp.Error = r.Error.Error()
	}
	return jp
}

func encodeJSON(w io.Writer, v interface{}, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
