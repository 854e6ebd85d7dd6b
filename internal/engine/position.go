// Package engine provides the position model, pseudo-legal move generation,
// attack maps, move application, legality checks and FEN decoding.
package engine

import (
	"fmt"
	"io"

	"github.com/lgbarn/movegen-go/internal/chess"
)

// Position composes a board, the side to move and castling rights.
// A Position owns its board; the attack flags on that board are always
// derived from the piece placement and recomputed whenever it changes.
type Position struct {
	board          *chess.Board
	activeColor    chess.Color
	castlingRights chess.CastlingRights
}

// NewPosition takes ownership of board and computes its attack map.
func NewPosition(board *chess.Board, activeColor chess.Color, rights chess.CastlingRights) *Position {
	p := &Position{
		board:          board,
		activeColor:    activeColor,
		castlingRights: rights,
	}
	ComputeAttacks(p.board)
	return p
}

// ActiveColor returns the side to move.
func (p *Position) ActiveColor() chess.Color {
	return p.activeColor
}

// CastlingRights returns a copy of the stored castling rights.
func (p *Position) CastlingRights() chess.CastlingRights {
	return p.castlingRights
}

// At returns a copy of the square at c.
func (p *Position) At(c chess.Coordinate) chess.Square {
	return p.board.At(c)
}

// EnPassantSquare returns the en passant target, if any.
func (p *Position) EnPassantSquare() (chess.Coordinate, bool) {
	return p.board.EnPassantSquare()
}

// Board returns a copy of the board; changes to it do not affect p.
func (p *Position) Board() *chess.Board {
	return p.board.Clone()
}

// Clone returns an independent copy of the position, suitable for
// handing to another goroutine.
func (p *Position) Clone() *Position {
	return &Position{
		board:          p.board.Clone(),
		activeColor:    p.activeColor,
		castlingRights: p.castlingRights,
	}
}

const boardRule = "+---+---+---+---+---+---+---+---+\n"

// Print writes the textual board dump: rank 8 at the top, pieces as FEN
// letters, "*" for an empty en passant target, then the side to move and
// both colours' castling rights.
func (p *Position) Print(w io.Writer) error {
	ew := &errWriter{w: w}

	ew.printf("%s", boardRule)
	for r := chess.Rank8; r >= chess.Rank1; r-- {
		for f := chess.FileA; f <= chess.FileH; f++ {
			ew.printf("| %s ", p.board.At(chess.NewCoordinate(f, r)))
		}
		ew.printf("|\n%s", boardRule)
	}

	ew.printf("%s to move.\n", p.activeColor)
	ew.printf("White castling rights: %s.\n", p.castlingRights.For(chess.White))
	ew.printf("Black castling rights: %s.\n", p.castlingRights.For(chess.Black))
	return ew.err
}

// errWriter keeps the first write error so Print can report it once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
