package engine

import "github.com/lgbarn/movegen-go/internal/chess"

// GetPossibleMoves returns the pseudo-legal moves of the side to move.
// Source squares are visited file-major (a1, a2, ..., h8); moves from one
// square are contiguous and keep the order of that piece's generator.
// Moves are not checked for leaving the mover's own king attacked; see
// IsLegal and LegalMoves for that.
func (p *Position) GetPossibleMoves() []chess.Move {
	var moves []chess.Move
	for _, from := range chess.AllCoordinates() {
		moves = append(moves, p.movesFrom(from)...)
	}
	return moves
}

// movesFrom dispatches to the generator for the piece on from. Empty squares
// and opposing pieces yield nothing.
func (p *Position) movesFrom(from chess.Coordinate) []chess.Move {
	piece, ok := p.board.At(from).Piece()
	if !ok || piece.Color != p.activeColor {
		return nil
	}

	switch piece.Type {
	case chess.Pawn:
		return p.possiblePawnMoves(from)
	case chess.Knight:
		return p.possibleKnightMoves(from)
	case chess.King:
		return p.possibleKingMoves(from)
	case chess.Bishop:
		return p.possibleBishopMoves(from)
	case chess.Rook:
		return p.possibleRookMoves(from)
	case chess.Queen:
		return p.possibleQueenMoves(from)
	}
	return nil
}

// possibleKnightMoves emits the L-shaped jumps that land on the board and
// not on a friendly piece.
func (p *Position) possibleKnightMoves(from chess.Coordinate) []chess.Move {
	return p.offsetMoves(from, knightOffsets)
}

// possibleKingMoves emits the eight neighbour steps, then kingside and
// queenside castling when eligible.
func (p *Position) possibleKingMoves(from chess.Coordinate) []chess.Move {
	moves := p.offsetMoves(from, kingOffsets)

	if p.castlingPiecesInPlace(from, chess.Kingside) && p.CanCastleKingside() {
		moves = append(moves, chess.KingsideCastle())
	}
	if p.castlingPiecesInPlace(from, chess.Queenside) && p.CanCastleQueenside() {
		moves = append(moves, chess.QueensideCastle())
	}
	return moves
}

func (p *Position) offsetMoves(from chess.Coordinate, offsets []chess.Direction) []chess.Move {
	var moves []chess.Move
	for _, to := range offsetTargets(from, offsets) {
		if p.board.At(to).HasPieceOfColor(p.activeColor) {
			continue
		}
		moves = append(moves, chess.StandardMove(from, to))
	}
	return moves
}
