// Package output renders analysis results as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/movegen-go/internal/config"
	"github.com/lgbarn/movegen-go/internal/engine"
	"github.com/lgbarn/movegen-go/internal/worker"
)

// Summary counts what a batch produced.
type Summary struct {
	Positions  int `json:"positions"`
	Errors     int `json:"errors"`
	Duplicates int `json:"duplicates"`
	Checkmates int `json:"checkmates"`
	Stalemates int `json:"stalemates"`
}

// Add records one result.
func (s *Summary) Add(r worker.ProcessResult) {
	s.Positions++
	switch {
	case r.Error != nil:
		s.Errors++
	case r.Checkmate:
		s.Checkmates++
	case r.Stalemate:
		s.Stalemates++
	}
	if r.Duplicate {
		s.Duplicates++
	}
}

// WriteText renders one result in the text layout:
//
//	Position 1 (line 1): <fen>
//	<board dump, if enabled>
//	Legal moves (20): a2a3 a2a4 ...
//	Perft(3): 8902
//	Status: check | checkmate | stalemate
//	Zobrist: <16 hex digits>
func WriteText(w io.Writer, r worker.ProcessResult, cfg config.OutputConfig) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Position %d", r.Index+1)
	if r.Line > 0 {
		fmt.Fprintf(&sb, " (line %d)", r.Line)
	}
	fmt.Fprintf(&sb, ": %s\n", r.FEN)

	if r.Error != nil {
		fmt.Fprintf(&sb, "Error: %v\n\n", r.Error)
		_, err := io.WriteString(w, sb.String())
		return err
	}

	if cfg.ShowBoard {
		gs, err := engine.GameStateFromFEN(r.FEN)
		if err != nil {
			return err
		}
		if err := gs.Print(&sb); err != nil {
			return err
		}
	}

	fmt.Fprintf(&sb, "Legal moves (%d)", len(r.LegalMoves))
	if cfg.ShowMoves && len(r.LegalMoves) > 0 {
		fmt.Fprintf(&sb, ": %s", strings.Join(r.LegalMoves, " "))
	}
	sb.WriteByte('\n')

	if r.PerftDepth > 0 {
		fmt.Fprintf(&sb, "Perft(%d): %d\n", r.PerftDepth, r.Perft)
	}
	if status := statusText(r); status != "" {
		fmt.Fprintf(&sb, "Status: %s\n", status)
	}
	fmt.Fprintf(&sb, "Zobrist: %s\n", r.Key)
	if r.Duplicate {
		sb.WriteString("Duplicate of an earlier position\n")
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

func statusText(r worker.ProcessResult) string {
	var parts []string
	switch {
	case r.Checkmate:
		parts = append(parts, "checkmate")
	case r.Stalemate:
		parts = append(parts, "stalemate")
	case r.InCheck:
		parts = append(parts, "check")
	}
	if r.Insufficient {
		parts = append(parts, "insufficient material")
	}
	return strings.Join(parts, ", ")
}

// WriteSummary renders the summary line used after text output.
func WriteSummary(w io.Writer, s Summary) error {
	_, err := fmt.Fprintf(w, "%d positions, %d errors, %d duplicates, %d checkmates, %d stalemates\n",
		s.Positions, s.Errors, s.Duplicates, s.Checkmates, s.Stalemates)
	return err
}
