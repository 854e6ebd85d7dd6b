package chess

// Square is a mutable board cell: an optional piece, the en passant
// target marker, and attacked-by flags for each colour.
type Square struct {
	piece      Piece
	occupied   bool
	enPassant  bool
	attackedBy [2]bool
}

// NewEmptySquare returns an empty square with no flags set.
func NewEmptySquare() Square {
	return Square{}
}

// Piece returns the occupying piece, if any.
func (s Square) Piece() (Piece, bool) {
	return s.piece, s.occupied
}

// IsEmpty reports whether no piece stands on the square.
func (s Square) IsEmpty() bool {
	return !s.occupied
}

// HasPieceOfColor is false on an empty square.
func (s Square) HasPieceOfColor(c Color) bool {
	return s.occupied && s.piece.Color == c
}

// SetPiece places p on the square, replacing any previous occupant.
func (s *Square) SetPiece(p Piece) {
	s.piece = p
	s.occupied = true
}

// ClearPiece empties the square.
func (s *Square) ClearPiece() {
	s.piece = Piece{}
	s.occupied = false
}

// SetEnPassant marks the square as this ply's en passant target.
func (s *Square) SetEnPassant() {
	s.enPassant = true
}

// ClearEnPassant removes the en passant marker.
func (s *Square) ClearEnPassant() {
	s.enPassant = false
}

// IsEnPassant reports whether the square is the en passant target.
func (s Square) IsEnPassant() bool {
	return s.enPassant
}

// IsAttackedBy reads the precomputed attack flag for c.
func (s Square) IsAttackedBy(c Color) bool {
	return s.attackedBy[c]
}

// SetAttackedBy sets the attack flag for c. Only the attack map builder
// should call this.
func (s *Square) SetAttackedBy(c Color, attacked bool) {
	s.attackedBy[c] = attacked
}

// String renders the square for the board dump: the piece letter, "*"
// for an empty en passant target, or a space.
func (s Square) String() string {
	if !s.occupied {
		if s.enPassant {
			return "*"
		}
		return " "
	}
	return string(s.piece.Letter())
}

// Board is a fixed 8x8 grid of squares indexed [file][rank]. No piece
// list is kept; queries scan the grid.
type Board struct {
	squares [BoardSize][BoardSize]Square
}

// NewEmptyBoard returns a board with all squares empty and unflagged.
func NewEmptyBoard() *Board {
	return &Board{}
}

// At returns a copy of the square at c.
func (b *Board) At(c Coordinate) Square {
	return b.squares[c.File][c.Rank]
}

// Square returns a pointer to the square at c for mutation.
func (b *Board) Square(c Coordinate) *Square {
	return &b.squares[c.File][c.Rank]
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// EnPassantSquare returns the flagged en passant target, if any.
func (b *Board) EnPassantSquare() (Coordinate, bool) {
	for _, c := range AllCoordinates() {
		if b.squares[c.File][c.Rank].enPassant {
			return c, true
		}
	}
	return Coordinate{}, false
}

// ClearEnPassant removes every en passant marker.
func (b *Board) ClearEnPassant() {
	for f := range b.squares {
		for r := range b.squares[f] {
			b.squares[f][r].enPassant = false
		}
	}
}

// ClearAttacks resets all attacked-by flags.
func (b *Board) ClearAttacks() {
	for f := range b.squares {
		for r := range b.squares[f] {
			b.squares[f][r].attackedBy = [2]bool{}
		}
	}
}

// PieceCount returns the number of occupied squares.
func (b *Board) PieceCount() int {
	n := 0
	for f := range b.squares {
		for r := range b.squares[f] {
			if b.squares[f][r].occupied {
				n++
			}
		}
	}
	return n
}

// FindKing returns the square of color's king, scanning in file-major order.
func (b *Board) FindKing(color Color) (Coordinate, bool) {
	king := Piece{Type: King, Color: color}
	for _, c := range AllCoordinates() {
		if p, ok := b.At(c).Piece(); ok && p == king {
			return c, true
		}
	}
	return Coordinate{}, false
}
