// Package errors provides sentinel errors and error types for movegen.
// It defines the two failure taxonomies of the engine (board coordinate
// bounds and FEN decoding) as sentinels usable with errors.Is(), plus
// structured error types that keep the nested cause for errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Board/coordinate errors.
var (
	// ErrFileOutOfBounds indicates a file index outside 0-7.
	ErrFileOutOfBounds = errors.New("file out of bounds")

	// ErrRankOutOfBounds indicates a rank index outside 0-7.
	ErrRankOutOfBounds = errors.New("rank out of bounds")
)

// FEN decoding errors.
var (
	// ErrEmptyString indicates a FEN string with no fields at all.
	ErrEmptyString = errors.New("empty FEN string")

	// ErrIncomplete indicates a FEN string with fewer than six fields.
	ErrIncomplete = errors.New("incomplete FEN string")

	// ErrMalformed indicates a FEN field whose grammar is violated.
	ErrMalformed = errors.New("malformed FEN string")
)

var (
	// ErrIllegalMove indicates a move that cannot be applied to a position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Axis names the board axis a BoundsError refers to.
type Axis int

const (
	AxisFile Axis = iota
	AxisRank
)

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisRank {
		return "rank"
	}
	return "file"
}

// BoundsError reports an axis translation that left the board.
// It matches ErrFileOutOfBounds or ErrRankOutOfBounds via errors.Is().
type BoundsError struct {
	Axis  Axis
	Value int
}

// Error returns the axis and offending index.
func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s index %d out of bounds", e.Axis, e.Value)
}

// Is lets errors.Is() match the axis sentinel.
func (e *BoundsError) Is(target error) bool {
	switch e.Axis {
	case AxisFile:
		return target == ErrFileOutOfBounds
	case AxisRank:
		return target == ErrRankOutOfBounds
	}
	return false
}

// FENField identifies one of the six FEN fields.
type FENField int

const (
	FieldPlacement FENField = iota
	FieldActiveColor
	FieldCastling
	FieldEnPassant
	FieldHalfMoveClock
	FieldFullMoveNumber
)

var fieldNames = []string{
	"piece placement",
	"active color",
	"castling rights",
	"en passant",
	"halfmove clock",
	"fullmove number",
}

// String returns the field name.
func (f FENField) String() string {
	if int(f) >= 0 && int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "unknown field"
}

// FENError is returned by the FEN decoder. Kind is one of ErrEmptyString,
// ErrIncomplete or ErrMalformed; Cause keeps lower-level detail such as a
// BoundsError so the axis information survives the notation boundary.
type FENError struct {
	Kind  error    // ErrEmptyString, ErrIncomplete or ErrMalformed
	Field FENField // Field being decoded
	Value string   // Offending text (may be empty)
	Cause error    // Nested cause (may be nil)
}

// Error returns a message naming the kind, field, value and cause.
func (e *FENError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.Error())
	if e.Kind != ErrEmptyString {
		sb.WriteString(": ")
		sb.WriteString(e.Field.String())
	}
	if e.Value != "" {
		fmt.Fprintf(&sb, " %q", e.Value)
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

// Unwrap exposes both the kind sentinel and the nested cause.
func (e *FENError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// Malformed builds a FENError of kind ErrMalformed.
func Malformed(field FENField, value string, cause error) *FENError {
	return &FENError{Kind: ErrMalformed, Field: field, Value: value, Cause: cause}
}

// Incomplete builds a FENError of kind ErrIncomplete for a missing field.
func Incomplete(field FENField) *FENError {
	return &FENError{Kind: ErrIncomplete, Field: field}
}

// PositionError wraps errors with batch-input context: which position
// in the input failed and where it came from.
type PositionError struct {
	Err    error  // The underlying error
	Index  int    // 0-based position index in the input
	Source string // Source file name (if known)
	Line   int    // Line number in source file (if known)
	ID     string // Request ID assigned by the batch runner (if any)
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	var parts []string

	if e.Source != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.Source, e.Line))
		} else {
			parts = append(parts, e.Source)
		}
	}

	parts = append(parts, fmt.Sprintf("position %d", e.Index+1))

	if e.ID != "" {
		parts = append(parts, fmt.Sprintf("id %s", e.ID))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PositionError wrapper.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is forwards to the standard library so callers need a single import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As forwards to the standard library so callers need a single import.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
