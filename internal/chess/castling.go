package chess

// CastlingSide selects kingside or queenside.
type CastlingSide int

const (
	Kingside CastlingSide = iota
	Queenside
)

// String returns "kingside" or "queenside".
func (s CastlingSide) String() string {
	if s == Queenside {
		return "queenside"
	}
	return "kingside"
}

// CastlingRightsForColor holds one colour's two castling flags.
type CastlingRightsForColor struct {
	Kingside  bool
	Queenside bool
}

// String returns "kingside, queenside", "kingside", "queenside" or "none".
func (c CastlingRightsForColor) String() string {
	switch {
	case c.Kingside && c.Queenside:
		return "kingside, queenside"
	case c.Kingside:
		return "kingside"
	case c.Queenside:
		return "queenside"
	}
	return "none"
}

// CastlingRights stores the rights snapshotted from notation. Revocation
// happens only when moves are applied.
type CastlingRights struct {
	rights [2]CastlingRightsForColor
}

// NewCastlingRightsAllFalse returns rights with every flag cleared.
func NewCastlingRightsAllFalse() CastlingRights {
	return CastlingRights{}
}

// For returns the rights of color.
func (cr CastlingRights) For(color Color) CastlingRightsForColor {
	return cr.rights[color]
}

// Has reports a single right.
func (cr CastlingRights) Has(color Color, side CastlingSide) bool {
	if side == Kingside {
		return cr.rights[color].Kingside
	}
	return cr.rights[color].Queenside
}

// Set updates a single right.
func (cr *CastlingRights) Set(color Color, side CastlingSide, allowed bool) {
	if side == Kingside {
		cr.rights[color].Kingside = allowed
	} else {
		cr.rights[color].Queenside = allowed
	}
}

// Revoke clears both rights of color.
func (cr *CastlingRights) Revoke(color Color) {
	cr.rights[color] = CastlingRightsForColor{}
}

// Any reports whether any right remains.
func (cr CastlingRights) Any() bool {
	for _, r := range cr.rights {
		if r.Kingside || r.Queenside {
			return true
		}
	}
	return false
}

// Index returns a 4-bit encoding (K=1, Q=2, k=4, q=8), used for hashing.
func (cr CastlingRights) Index() int {
	idx := 0
	if cr.rights[White].Kingside {
		idx |= 1
	}
	if cr.rights[White].Queenside {
		idx |= 2
	}
	if cr.rights[Black].Kingside {
		idx |= 4
	}
	if cr.rights[Black].Queenside {
		idx |= 8
	}
	return idx
}

// CastlingSquares describes the fixed squares involved in one castle.
type CastlingSquares struct {
	KingFrom Coordinate
	KingTo   Coordinate
	RookFrom Coordinate
	RookTo   Coordinate
	// Between lists the squares strictly between king and rook.
	Between []Coordinate
}

// CastlingSquaresFor returns the square set for color and side.
func CastlingSquaresFor(color Color, side CastlingSide) CastlingSquares {
	rank := color.HomeRank()
	at := func(f File) Coordinate { return NewCoordinate(f, rank) }

	if side == Kingside {
		return CastlingSquares{
			KingFrom: at(FileE),
			KingTo:   at(FileG),
			RookFrom: at(FileH),
			RookTo:   at(FileF),
			Between:  []Coordinate{at(FileF), at(FileG)},
		}
	}
	return CastlingSquares{
		KingFrom: at(FileE),
		KingTo:   at(FileC),
		RookFrom: at(FileA),
		RookTo:   at(FileD),
		Between:  []Coordinate{at(FileD), at(FileC), at(FileB)},
	}
}
