package hashing

import (
	"fmt"
	"math/rand"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/engine"
)

// Zobrist tables, filled from a fixed seed so keys are stable across runs.
var (
	zobristPieces     [2][6][64]uint64 // colour x piece type x square
	zobristCastling   [16]uint64       // chess.CastlingRights.Index()
	zobristEnPassant  [8]uint64        // en passant file
	zobristSideToMove uint64           // XORed in when Black is to move
)

func init() {
	rng := rand.New(rand.NewSource(0x1234567890ABCDEF))

	for color := range zobristPieces {
		for piece := range zobristPieces[color] {
			for sq := range zobristPieces[color][piece] {
				zobristPieces[color][piece][sq] = rng.Uint64()
			}
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.Uint64()
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.Uint64()
	}
	zobristSideToMove = rng.Uint64()
}

// squareIndex maps a coordinate to 0-63, a1 = 0, h8 = 63.
func squareIndex(c chess.Coordinate) int {
	return int(c.Rank)*chess.BoardSize + int(c.File)
}

// Zobrist computes the 64-bit key of pos: piece placement, side to move,
// castling rights and en passant file. The clocks are not part of the key.
func Zobrist(pos *engine.Position) uint64 {
	var h uint64

	for _, c := range chess.AllCoordinates() {
		if piece, ok := pos.At(c).Piece(); ok {
			h ^= zobristPieces[piece.Color][piece.Type][squareIndex(c)]
		}
	}

	h ^= zobristCastling[pos.CastlingRights().Index()]

	if ep, ok := pos.EnPassantSquare(); ok {
		h ^= zobristEnPassant[ep.File]
	}

	if pos.ActiveColor() == chess.Black {
		h ^= zobristSideToMove
	}

	return h
}

// FormatKey renders a key as 16 hex digits.
func FormatKey(h uint64) string {
	return fmt.Sprintf("%016x", h)
}

// WeakHash is a cheap material signature: it ignores where pieces stand
// and only reflects how many of each kind are on the board.
func WeakHash(pos *engine.Position) uint32 {
	m := engine.CountMaterial(pos)
	var h uint32
	for _, color := range chess.Colors {
		for pt := chess.Pawn; pt <= chess.Rook; pt++ {
			h = h*31 + uint32(m.Count(color, pt))
		}
	}
	return h
}
