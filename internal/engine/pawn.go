package engine

import "github.com/lgbarn/movegen-go/internal/chess"

// possiblePawnMoves generates pawn moves for the side to move.
//
// From the rank before promotion every reachable square yields four
// promotions (Queen, Rook, Bishop, Knight) and nothing else: captures left
// then right first, then the forward square if it is empty. Otherwise the order is: one step
// forward, double push from the start rank, captures left then right, with
// an en passant capture emitted in place of a diagonal that carries the
// board's en passant flag.
func (p *Position) possiblePawnMoves(from chess.Coordinate) []chess.Move {
	color := p.activeColor
	opponent := color.Opposite()

	ahead, err := from.TryMoving(color.Forward())
	if err != nil {
		// A pawn on the last rank cannot move; only a hand-built board has one.
		return nil
	}
	aheadEmpty := p.board.At(ahead).IsEmpty()

	var diagonals []chess.Coordinate
	for _, d := range pawnCaptureDirections(color) {
		if to, err := from.TryMoving(d); err == nil {
			diagonals = append(diagonals, to)
		}
	}

	var moves []chess.Move

	if from.Rank == color.PromotionRank() {
		for _, to := range diagonals {
			if p.board.At(to).HasPieceOfColor(opponent) {
				moves = appendPromotions(moves, from, to)
			}
		}
		if aheadEmpty {
			moves = appendPromotions(moves, from, ahead)
		}
		return moves
	}

	if aheadEmpty {
		moves = append(moves, chess.StandardMove(from, ahead))
		if from.Rank == color.PawnStartRank() {
			if twoAhead, err := ahead.TryMoving(color.Forward()); err == nil && p.board.At(twoAhead).IsEmpty() {
				moves = append(moves, chess.StandardMove(from, twoAhead))
			}
		}
	}

	for _, to := range diagonals {
		sq := p.board.At(to)
		switch {
		case sq.HasPieceOfColor(opponent):
			moves = append(moves, chess.StandardMove(from, to))
		case sq.IsEnPassant() && sq.IsEmpty():
			moves = append(moves, chess.EnPassantMove(from, to))
		}
	}

	return moves
}

func appendPromotions(moves []chess.Move, from, to chess.Coordinate) []chess.Move {
	for _, pt := range chess.PromotionTypes {
		moves = append(moves, chess.PromotionMove(from, to, pt))
	}
	return moves
}
