package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// squareCount is the number of squares a placement field must describe.
const squareCount = chess.BoardSize * chess.BoardSize

// GameStateFromFEN decodes a six-field FEN string.
//
// Errors are *errors.FENError values matching one of errors.ErrEmptyString
// (no fields), errors.ErrIncomplete (fewer than six fields) or
// errors.ErrMalformed (a field violating its grammar). Nothing is returned
// on failure. Fields after the sixth are ignored.
func GameStateFromFEN(fen string) (*GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, &errors.FENError{Kind: errors.ErrEmptyString, Field: errors.FieldPlacement}
	}
	for field := errors.FieldActiveColor; field <= errors.FieldFullMoveNumber; field++ {
		if int(field) >= len(parts) {
			return nil, errors.Incomplete(field)
		}
	}

	board := chess.NewEmptyBoard()
	if err := parsePiecePlacement(board, parts[0]); err != nil {
		return nil, err
	}

	activeColor, err := parseActiveColor(parts[1])
	if err != nil {
		return nil, err
	}

	rights, err := parseCastlingRights(parts[2])
	if err != nil {
		return nil, err
	}

	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}

	halfMoveClock, err := parseCounter(errors.FieldHalfMoveClock, parts[4])
	if err != nil {
		return nil, err
	}
	moveNumber, err := parseCounter(errors.FieldFullMoveNumber, parts[5])
	if err != nil {
		return nil, err
	}

	return &GameState{
		position:      NewPosition(board, activeColor, rights),
		moveNumber:    moveNumber,
		halfMoveClock: halfMoveClock,
	}, nil
}

// MustGameStateFromFEN is GameStateFromFEN for known-good input; it panics
// on error.
func MustGameStateFromFEN(fen string) *GameState {
	gs, err := GameStateFromFEN(fen)
	if err != nil {
		panic(fmt.Sprintf("engine: %v", err))
	}
	return gs
}

// parsePiecePlacement decodes the placement field into board. A linear
// cursor starts at a8; square cursor maps to file cursor%8 and rank
// 7-cursor/8. Digits skip that many squares, letters place a piece and '/'
// is ignored. The field must describe exactly 64 squares.
func parsePiecePlacement(board *chess.Board, field string) error {
	cursor := 0

	for i := 0; i < len(field); i++ {
		c := field[i]
		switch {
		case c == '/':
		case c >= '0' && c <= '9':
			cursor += int(c - '0')
		default:
			piece, ok := chess.PieceFromLetter(c)
			if !ok {
				return errors.Malformed(errors.FieldPlacement, field,
					fmt.Errorf("invalid piece character %q at offset %d", c, i))
			}
			coord, err := chess.CoordinateFromIndices(cursor%chess.BoardSize, chess.BoardSize-1-cursor/chess.BoardSize)
			if err != nil {
				return errors.Malformed(errors.FieldPlacement, field, err)
			}
			board.Square(coord).SetPiece(piece)
			cursor++
		}
	}

	if cursor != squareCount {
		return errors.Malformed(errors.FieldPlacement, field,
			fmt.Errorf("describes %d squares, want %d", cursor, squareCount))
	}
	return nil
}

// parseActiveColor decodes "w" or "b".
func parseActiveColor(field string) (chess.Color, error) {
	switch field {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, errors.Malformed(errors.FieldActiveColor, field, nil)
}

// parseCastlingRights decodes a subset of "KQkq" or "-". Letters not
// present leave that right false.
func parseCastlingRights(field string) (chess.CastlingRights, error) {
	rights := chess.NewCastlingRightsAllFalse()

	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			rights.Set(chess.White, chess.Kingside, true)
		case 'Q':
			rights.Set(chess.White, chess.Queenside, true)
		case 'k':
			rights.Set(chess.Black, chess.Kingside, true)
		case 'q':
			rights.Set(chess.Black, chess.Queenside, true)
		case '-':
		default:
			return chess.NewCastlingRightsAllFalse(), errors.Malformed(errors.FieldCastling, field,
				fmt.Errorf("invalid castling character %q", field[i]))
		}
	}
	return rights, nil
}

// parseEnPassant marks the target square on board, or does nothing for "-".
func parseEnPassant(board *chess.Board, field string) error {
	if field == "-" {
		return nil
	}
	target, err := chess.ParseCoordinate(field)
	if err != nil {
		return errors.Malformed(errors.FieldEnPassant, field, err)
	}
	board.Square(target).SetEnPassant()
	return nil
}

// parseCounter parses a base-10 unsigned clock field.
func parseCounter(field errors.FENField, value string) (uint, error) {
	n, err := strconv.ParseUint(value, 10, 16)
	if err != nil {
		return 0, errors.Malformed(field, value, err)
	}
	return uint(n), nil
}

// EncodeFEN renders gs as a six-field FEN string.
func EncodeFEN(gs *GameState) string {
	return PositionFEN(gs.position, gs.halfMoveClock, gs.moveNumber)
}

// PositionFEN renders pos with the given clock values.
func PositionFEN(pos *Position, halfMoveClock, moveNumber uint) string {
	var sb strings.Builder

	writePiecePlacement(&sb, pos.board)
	sb.WriteByte(' ')
	writeActiveColor(&sb, pos.activeColor)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, pos.castlingRights)
	sb.WriteByte(' ')
	writeEnPassant(&sb, pos.board)
	fmt.Fprintf(&sb, " %d %d", halfMoveClock, moveNumber)

	return sb.String()
}

func writePiecePlacement(sb *strings.Builder, board *chess.Board) {
	for r := chess.Rank8; r >= chess.Rank1; r-- {
		emptyCount := 0
		for f := chess.FileA; f <= chess.FileH; f++ {
			piece, ok := board.At(chess.NewCoordinate(f, r)).Piece()
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if r > chess.Rank1 {
			sb.WriteByte('/')
		}
	}
}

func writeActiveColor(sb *strings.Builder, color chess.Color) {
	if color == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

func writeCastlingRights(sb *strings.Builder, rights chess.CastlingRights) {
	if !rights.Any() {
		sb.WriteByte('-')
		return
	}
	if rights.Has(chess.White, chess.Kingside) {
		sb.WriteByte('K')
	}
	if rights.Has(chess.White, chess.Queenside) {
		sb.WriteByte('Q')
	}
	if rights.Has(chess.Black, chess.Kingside) {
		sb.WriteByte('k')
	}
	if rights.Has(chess.Black, chess.Queenside) {
		sb.WriteByte('q')
	}
}

func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if target, ok := board.EnPassantSquare(); ok {
		sb.WriteString(target.String())
	} else {
		sb.WriteByte('-')
	}
}
