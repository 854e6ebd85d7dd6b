package engine

import "github.com/lgbarn/movegen-go/internal/chess"

func (p *Position) possibleBishopMoves(from chess.Coordinate) []chess.Move {
	return p.slidingMoves(from, diagonalDirections)
}

func (p *Position) possibleRookMoves(from chess.Coordinate) []chess.Move {
	return p.slidingMoves(from, straightDirections)
}

func (p *Position) possibleQueenMoves(from chess.Coordinate) []chess.Move {
	return p.slidingMoves(from, queenDirections)
}

// slidingMoves walks each direction one step at a time. Empty squares are
// emitted and the walk continues; an opposing piece is emitted as a capture
// and ends the walk; a friendly piece or the board edge ends it silently.
func (p *Position) slidingMoves(from chess.Coordinate, dirs []chess.Direction) []chess.Move {
	var moves []chess.Move
	opponent := p.activeColor.Opposite()

	for _, d := range dirs {
		for to, err := from.TryMoving(d); err == nil; to, err = to.TryMoving(d) {
			sq := p.board.At(to)
			if sq.HasPieceOfColor(p.activeColor) {
				break
			}
			moves = append(moves, chess.StandardMove(from, to))
			if sq.HasPieceOfColor(opponent) {
				break
			}
		}
	}
	return moves
}
