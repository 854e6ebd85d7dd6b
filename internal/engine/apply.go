package engine

import (
	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/errors"
)

// Apply plays m for the side to move and returns the resulting position.
// The receiver is not modified. An error wrapping errors.ErrIllegalMove is
// returned when m does not fit the board (no friendly piece on its source,
// a friendly piece on its target, an en passant capture with no enemy pawn
// to take, or a castle with king or rook off its home square or a piece
// standing between them).
// Apply does not check king safety; use IsLegal for that.
func (p *Position) Apply(m chess.Move) (*Position, error) {
	next := p.Clone()
	if _, err := next.apply(m); err != nil {
		return nil, err
	}
	return next, nil
}

// apply mutates p in place. resetsClock reports a capture or pawn move.
func (p *Position) apply(m chess.Move) (resetsClock bool, err error) {
	if m.IsCastle() {
		if err := p.applyCastle(m.CastlingSide()); err != nil {
			return false, err
		}
		p.finishMove()
		return false, nil
	}

	mover := p.activeColor
	piece, ok := p.board.At(m.From).Piece()
	if !ok || piece.Color != mover {
		return false, illegalMovef("%s: no %s piece on %s", m, mover, m.From)
	}
	target := p.board.At(m.To)
	if target.HasPieceOfColor(mover) {
		return false, illegalMovef("%s: %s is occupied by a %s piece", m, m.To, mover)
	}
	captured := !target.IsEmpty()

	switch m.Kind {
	case chess.EnPassantCapture:
		if piece.Type != chess.Pawn || !target.IsEnPassant() {
			return false, illegalMovef("%s: %s is not an en passant target", m, m.To)
		}
		// The captured pawn sits beside the mover, on the target's file.
		victim := chess.NewCoordinate(m.To.File, m.From.Rank)
		if pawn, ok := p.board.At(victim).Piece(); !ok || pawn != chess.NewPiece(chess.Pawn, mover.Opposite()) {
			return false, illegalMovef("%s: no %s pawn on %s to capture", m, mover.Opposite(), victim)
		}
		p.board.Square(victim).ClearPiece()
		captured = true
	case chess.PawnPromotion:
		if piece.Type != chess.Pawn || !isPromotionType(m.Promotion) {
			return false, illegalMovef("%s: invalid promotion", m)
		}
		piece = chess.NewPiece(m.Promotion, mover)
	}

	p.board.ClearEnPassant()
	p.board.Square(m.From).ClearPiece()
	p.board.Square(m.To).SetPiece(piece)

	if piece.Type == chess.Pawn && m.Kind == chess.Standard {
		if skipped, ok := doublePushSkipped(m, mover); ok {
			p.board.Square(skipped).SetEnPassant()
		}
	}

	if piece.Type == chess.King {
		p.castlingRights.Revoke(mover)
	}
	p.revokeForCorner(m.From)
	p.revokeForCorner(m.To)

	p.activeColor = mover.Opposite()
	ComputeAttacks(p.board)

	return captured || piece.Type == chess.Pawn || m.Kind == chess.PawnPromotion, nil
}

// finishMove hands the turn over after a castle.
func (p *Position) finishMove() {
	p.board.ClearEnPassant()
	p.activeColor = p.activeColor.Opposite()
	ComputeAttacks(p.board)
}

// doublePushSkipped returns the square a two-step pawn advance passed over.
func doublePushSkipped(m chess.Move, mover chess.Color) (chess.Coordinate, bool) {
	if m.From.File != m.To.File || m.From.Rank != mover.PawnStartRank() {
		return chess.Coordinate{}, false
	}
	skipped, err := m.From.TryMoving(mover.Forward())
	if err != nil {
		return chess.Coordinate{}, false
	}
	if beyond, err := skipped.TryMoving(mover.Forward()); err != nil || beyond != m.To {
		return chess.Coordinate{}, false
	}
	return skipped, true
}

func isPromotionType(pt chess.PieceType) bool {
	for _, t := range chess.PromotionTypes {
		if t == pt {
			return true
		}
	}
	return false
}

func illegalMovef(format string, args ...interface{}) error {
	return errors.Wrapf(errors.ErrIllegalMove, format, args...)
}
