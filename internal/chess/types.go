// Package chess provides the core chess data model: colors, pieces,
// coordinates, squares, the board, castling rights and moves.
package chess

// Color represents the colour of a piece or player.
type Color int

const (
	White Color = iota
	Black
)

// Colors lists both colours in index order.
var Colors = [2]Color{White, Black}

// String returns the lowercase colour name.
func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Opposite returns the opposite colour.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the direction pawns of this colour advance in.
func (c Color) Forward() Direction {
	if c == White {
		return Up()
	}
	return Down()
}

// PawnStartRank returns the rank pawns of this colour start on.
func (c Color) PawnStartRank() Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

// PromotionRank returns the rank from which a pawn of this colour promotes
// on its next advance (its seventh rank).
func (c Color) PromotionRank() Rank {
	if c == White {
		return Rank7
	}
	return Rank2
}

// HomeRank returns the back rank of this colour.
func (c Color) HomeRank() Rank {
	if c == White {
		return Rank1
	}
	return Rank8
}

// PieceType represents a chess piece type.
type PieceType int

const (
	Pawn PieceType = iota
	King
	Queen
	Bishop
	Knight
	Rook
)

// PromotionTypes lists promotion choices in generation order.
var PromotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// String returns the piece type name.
func (p PieceType) String() string {
	names := []string{"Pawn", "King", "Queen", "Bishop", "Knight", "Rook"}
	if int(p) >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the uppercase FEN letter of the piece type.
func (p PieceType) Letter() byte {
	letters := []byte{'P', 'K', 'Q', 'B', 'N', 'R'}
	if int(p) >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceTypeFromLetter converts a FEN letter (either case) to a piece type.
func PieceTypeFromLetter(c byte) (PieceType, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'B', 'b':
		return Bishop, true
	case 'N', 'n':
		return Knight, true
	case 'R', 'r':
		return Rook, true
	}
	return 0, false
}

// Piece is an immutable piece identity.
type Piece struct {
	Type  PieceType
	Color Color
}

// NewPiece creates a piece.
func NewPiece(t PieceType, c Color) Piece {
	return Piece{Type: t, Color: c}
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	l := p.Type.Letter()
	if p.Color == Black {
		return l + ('a' - 'A')
	}
	return l
}

// String returns e.g. "white Knight".
func (p Piece) String() string {
	return p.Color.String() + " " + p.Type.String()
}

// PieceFromLetter converts a FEN letter into a coloured piece.
func PieceFromLetter(c byte) (Piece, bool) {
	t, ok := PieceTypeFromLetter(c)
	if !ok {
		return Piece{}, false
	}
	color := White
	if c >= 'a' && c <= 'z' {
		color = Black
	}
	return Piece{Type: t, Color: color}, true
}
