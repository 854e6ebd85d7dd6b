package engine

import "github.com/lgbarn/movegen-go/internal/chess"

// IsLegal reports whether m is one of the moves GetPossibleMoves produces
// for the side to move and leaves that side's king unattacked. Castling is
// also refused while the king is in check.
func IsLegal(pos *Position, m chess.Move) bool {
	for _, candidate := range pos.GetPossibleMoves() {
		if candidate == m {
			return leavesKingSafe(pos, m)
		}
	}
	return false
}

// leavesKingSafe assumes m came from the generator.
func leavesKingSafe(pos *Position, m chess.Move) bool {
	mover := pos.ActiveColor()
	if m.IsCastle() && pos.InCheck() {
		return false
	}

	next, err := pos.Apply(m)
	if err != nil {
		return false
	}
	return !next.IsKingAttacked(mover)
}

// LegalMoves filters GetPossibleMoves down to the moves that keep the king
// safe, keeping order.
func LegalMoves(pos *Position) []chess.Move {
	pseudo := pos.GetPossibleMoves()
	legal := make([]chess.Move, 0, len(pseudo))
	for _, m := range pseudo {
		if leavesKingSafe(pos, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(pos *Position) bool {
	for _, m := range pos.GetPossibleMoves() {
		if leavesKingSafe(pos, m) {
			return true
		}
	}
	return false
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *Position) bool {
	return pos.InCheck() && !HasLegalMoves(pos)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *Position) bool {
	return !pos.InCheck() && !HasLegalMoves(pos)
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(pos *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := LegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		next, err := pos.Apply(m)
		if err != nil {
			continue
		}
		nodes += Perft(next, depth-1)
	}
	return nodes
}

// Divide returns the perft count below each legal root move, keyed by the
// move's UCI text.
func Divide(pos *Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	mover := pos.ActiveColor()
	for _, m := range LegalMoves(pos) {
		next, err := pos.Apply(m)
		if err != nil {
			continue
		}
		result[m.UCI(mover)] = Perft(next, depth-1)
	}
	return result
}
