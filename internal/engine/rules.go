package engine

import "github.com/lgbarn/movegen-go/internal/chess"

// Material counts the pieces of each type per colour.
type Material [2][6]int

// Count returns how many pieces of type t color has.
func (m Material) Count(color chess.Color, t chess.PieceType) int {
	return m[color][t]
}

// CountMaterial tallies the pieces on pos's board.
func CountMaterial(pos *Position) Material {
	var m Material
	for _, c := range chess.AllCoordinates() {
		if piece, ok := pos.board.At(c).Piece(); ok {
			m[piece.Color][piece.Type]++
		}
	}
	return m
}

// HasInsufficientMaterial returns true if neither side can deliver mate:
// K vs K, K+B vs K, K+N vs K, or K+B vs K+B with bishops on the same
// square colour.
func HasInsufficientMaterial(pos *Position) bool {
	var minors [2][]chess.PieceType
	var bishopOnLight [2]bool

	for _, c := range chess.AllCoordinates() {
		piece, ok := pos.board.At(c).Piece()
		if !ok {
			continue
		}

		switch piece.Type {
		case chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		case chess.Bishop:
			bishopOnLight[piece.Color] = isLightSquare(c)
		}
		minors[piece.Color] = append(minors[piece.Color], piece.Type)
	}

	white, black := minors[chess.White], minors[chess.Black]

	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 0 && len(black) == 1:
		return true
	case len(black) == 0 && len(white) == 1:
		return true
	case len(white) == 1 && len(black) == 1:
		return white[0] == chess.Bishop && black[0] == chess.Bishop &&
			bishopOnLight[chess.White] == bishopOnLight[chess.Black]
	}
	return false
}

// isLightSquare returns true for light squares (b1, a2, ...).
func isLightSquare(c chess.Coordinate) bool {
	return (int(c.File)+int(c.Rank))%2 == 1
}

// standardMaterial is the per-colour piece count of the starting position,
// indexed by chess.PieceType.
var standardMaterial = [6]int{
	chess.Pawn:   8,
	chess.King:   1,
	chess.Queen:  1,
	chess.Bishop: 2,
	chess.Knight: 2,
	chess.Rook:   2,
}

// HasStandardMaterial reports whether both sides have exactly the
// starting set of pieces. Positions set up with material odds do not.
func HasStandardMaterial(pos *Position) bool {
	m := CountMaterial(pos)
	return m[chess.White] == standardMaterial && m[chess.Black] == standardMaterial
}
