package chess

import "fmt"

// MoveKind enumerates the five move shapes the generator produces.
type MoveKind int

const (
	Standard MoveKind = iota
	EnPassantCapture
	PawnPromotion
	CastleKingside
	CastleQueenside
)

// String returns the kind name.
func (k MoveKind) String() string {
	names := []string{"Standard", "EnPassantCapture", "PawnPromotion", "CastleKingside", "CastleQueenside"}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Move is a candidate move, not yet validated for king safety.
//
// Which fields are meaningful depends on Kind:
//   - Standard: From, To
//   - EnPassantCapture: From; To is the flagged en passant square
//   - PawnPromotion: From, To, Promotion
//   - CastleKingside, CastleQueenside: none
type Move struct {
	Kind      MoveKind
	From      Coordinate
	To        Coordinate
	Promotion PieceType
}

// StandardMove creates a plain move or capture.
func StandardMove(from, to Coordinate) Move {
	return Move{Kind: Standard, From: from, To: to}
}

// EnPassantMove creates an en passant capture onto the flagged square.
func EnPassantMove(from, target Coordinate) Move {
	return Move{Kind: EnPassantCapture, From: from, To: target}
}

// PromotionMove creates a pawn promotion.
func PromotionMove(from, to Coordinate, promoteTo PieceType) Move {
	return Move{Kind: PawnPromotion, From: from, To: to, Promotion: promoteTo}
}

// KingsideCastle creates a kingside castle.
func KingsideCastle() Move {
	return Move{Kind: CastleKingside}
}

// QueensideCastle creates a queenside castle.
func QueensideCastle() Move {
	return Move{Kind: CastleQueenside}
}

// IsCastle reports whether m is either castle.
func (m Move) IsCastle() bool {
	return m.Kind == CastleKingside || m.Kind == CastleQueenside
}

// CastlingSide returns the side of a castling move.
func (m Move) CastlingSide() CastlingSide {
	if m.Kind == CastleQueenside {
		return Queenside
	}
	return Kingside
}

// UCI renders the move in long algebraic form for the side that plays it,
// e.g. "e2e4", "e7e8q", "e1g1".
func (m Move) UCI(mover Color) string {
	switch m.Kind {
	case CastleKingside, CastleQueenside:
		sq := CastlingSquaresFor(mover, m.CastlingSide())
		return sq.KingFrom.String() + sq.KingTo.String()
	case PawnPromotion:
		return m.From.String() + m.To.String() + string(Piece{Type: m.Promotion, Color: Black}.Letter())
	}
	return m.From.String() + m.To.String()
}

// String describes the move without needing the mover's colour.
func (m Move) String() string {
	switch m.Kind {
	case CastleKingside:
		return "O-O"
	case CastleQueenside:
		return "O-O-O"
	case EnPassantCapture:
		return fmt.Sprintf("%s%s e.p.", m.From, m.To)
	case PawnPromotion:
		return fmt.Sprintf("%s%s=%c", m.From, m.To, m.Promotion.Letter())
	}
	return m.From.String() + m.To.String()
}
