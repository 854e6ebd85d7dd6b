package engine

import "github.com/lgbarn/movegen-go/internal/chess"

// CanCastleKingside reports whether the side to move holds the kingside
// right and every square between king and rook is empty and not attacked
// by the opponent.
func (p *Position) CanCastleKingside() bool {
	return p.canCastle(chess.Kingside)
}

// CanCastleQueenside is CanCastleKingside for the queenside. The squares
// checked are d, c and b on the home rank.
func (p *Position) CanCastleQueenside() bool {
	return p.canCastle(chess.Queenside)
}

func (p *Position) canCastle(side chess.CastlingSide) bool {
	if !p.castlingRights.Has(p.activeColor, side) {
		return false
	}

	opponent := p.activeColor.Opposite()
	for _, c := range chess.CastlingSquaresFor(p.activeColor, side).Between {
		sq := p.board.At(c)
		if !sq.IsEmpty() || sq.IsAttackedBy(opponent) {
			return false
		}
	}
	return true
}

// castlingPiecesInPlace reports whether the king generating moves from
// kingFrom and the friendly rook stand on their home squares for side.
// A right decoded from FEN can outlive the rook it refers to.
func (p *Position) castlingPiecesInPlace(kingFrom chess.Coordinate, side chess.CastlingSide) bool {
	squares := chess.CastlingSquaresFor(p.activeColor, side)
	if kingFrom != squares.KingFrom {
		return false
	}
	rook, ok := p.board.At(squares.RookFrom).Piece()
	return ok && rook == chess.NewPiece(chess.Rook, p.activeColor)
}

// applyCastle moves king and rook for side and revokes the mover's rights.
// King, rook and the empty squares between them must already be in place.
func (p *Position) applyCastle(side chess.CastlingSide) error {
	color := p.activeColor
	squares := chess.CastlingSquaresFor(color, side)

	king, ok := p.board.At(squares.KingFrom).Piece()
	if !ok || king != chess.NewPiece(chess.King, color) {
		return illegalMovef("%s castle: no %s king on %s", side, color, squares.KingFrom)
	}
	rook, ok := p.board.At(squares.RookFrom).Piece()
	if !ok || rook != chess.NewPiece(chess.Rook, color) {
		return illegalMovef("%s castle: no %s rook on %s", side, color, squares.RookFrom)
	}

	for _, c := range squares.Between {
		if !p.board.At(c).IsEmpty() {
			return illegalMovef("%s castle: %s is occupied", side, c)
		}
	}

	p.board.Square(squares.KingFrom).ClearPiece()
	p.board.Square(squares.RookFrom).ClearPiece()
	p.board.Square(squares.KingTo).SetPiece(king)
	p.board.Square(squares.RookTo).SetPiece(rook)

	p.castlingRights.Revoke(color)
	return nil
}

// revokeForCorner drops any right whose rook starts on c. Called with both
// ends of a move, so rook moves and rook captures are covered.
func (p *Position) revokeForCorner(c chess.Coordinate) {
	for _, color := range chess.Colors {
		for _, side := range []chess.CastlingSide{chess.Kingside, chess.Queenside} {
			if chess.CastlingSquaresFor(color, side).RookFrom == c {
				p.castlingRights.Set(color, side, false)
			}
		}
	}
}
