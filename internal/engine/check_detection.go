package engine

import "github.com/lgbarn/movegen-go/internal/chess"

var (
	knightOffsets = []chess.Direction{
		chess.NewDirection(-2, -1), chess.NewDirection(-2, 1),
		chess.NewDirection(-1, -2), chess.NewDirection(-1, 2),
		chess.NewDirection(1, -2), chess.NewDirection(1, 2),
		chess.NewDirection(2, -1), chess.NewDirection(2, 1),
	}

	kingOffsets = []chess.Direction{
		chess.UpperLeft(), chess.Up(), chess.UpperRight(),
		chess.Left(), chess.Right(),
		chess.LowerLeft(), chess.Down(), chess.LowerRight(),
	}

	diagonalDirections = []chess.Direction{
		chess.UpperLeft(), chess.UpperRight(), chess.LowerLeft(), chess.LowerRight(),
	}

	straightDirections = []chess.Direction{
		chess.Up(), chess.Down(), chess.Left(), chess.Right(),
	}

	queenDirections = append(append([]chess.Direction{}, straightDirections...), diagonalDirections...)
)

// pawnCaptureDirections returns the two forward diagonals of color, left first.
func pawnCaptureDirections(color chess.Color) [2]chess.Direction {
	if color == chess.White {
		return [2]chess.Direction{chess.UpperLeft(), chess.UpperRight()}
	}
	return [2]chess.Direction{chess.LowerLeft(), chess.LowerRight()}
}

// ComputeAttacks clears and repopulates every square's attacked-by flags.
// Each piece marks its raw attack pattern: pawns their forward diagonals
// whatever stands there, knights and kings their offsets, and sliders every
// square up to and including the first occupied one, whichever colour
// occupies it.
func ComputeAttacks(board *chess.Board) {
	board.ClearAttacks()
	for _, from := range chess.AllCoordinates() {
		piece, ok := board.At(from).Piece()
		if !ok {
			continue
		}
		for _, target := range attackedSquares(board, from, piece) {
			board.Square(target).SetAttackedBy(piece.Color, true)
		}
	}
}

// attackedSquares lists the squares piece on from attacks.
func attackedSquares(board *chess.Board, from chess.Coordinate, piece chess.Piece) []chess.Coordinate {
	var targets []chess.Coordinate

	switch piece.Type {
	case chess.Pawn:
		for _, d := range pawnCaptureDirections(piece.Color) {
			if to, err := from.TryMoving(d); err == nil {
				targets = append(targets, to)
			}
		}
	case chess.Knight:
		targets = offsetTargets(from, knightOffsets)
	case chess.King:
		targets = offsetTargets(from, kingOffsets)
	case chess.Bishop:
		targets = rayTargets(board, from, diagonalDirections)
	case chess.Rook:
		targets = rayTargets(board, from, straightDirections)
	case chess.Queen:
		targets = rayTargets(board, from, queenDirections)
	}

	return targets
}

// offsetTargets translates from by each offset, dropping off-board results.
func offsetTargets(from chess.Coordinate, offsets []chess.Direction) []chess.Coordinate {
	targets := make([]chess.Coordinate, 0, len(offsets))
	for _, d := range offsets {
		if to, err := from.TryMoving(d); err == nil {
			targets = append(targets, to)
		}
	}
	return targets
}

// rayTargets walks each direction until the board edge or the first piece.
func rayTargets(board *chess.Board, from chess.Coordinate, dirs []chess.Direction) []chess.Coordinate {
	var targets []chess.Coordinate
	for _, d := range dirs {
		for to, err := from.TryMoving(d); err == nil; to, err = to.TryMoving(d) {
			targets = append(targets, to)
			if !board.At(to).IsEmpty() {
				break
			}
		}
	}
	return targets
}

// IsSquareAttacked reports whether byColor attacks c.
func (p *Position) IsSquareAttacked(c chess.Coordinate, byColor chess.Color) bool {
	return p.board.At(c).IsAttackedBy(byColor)
}

// IsKingAttacked reports whether color's king stands on a square the
// opponent attacks. A side without a king is never in check.
func (p *Position) IsKingAttacked(color chess.Color) bool {
	king, ok := p.board.FindKing(color)
	if !ok {
		return false
	}
	return p.IsSquareAttacked(king, color.Opposite())
}

// InCheck returns true if the side to move is in check.
func (p *Position) InCheck() bool {
	return p.IsKingAttacked(p.activeColor)
}
