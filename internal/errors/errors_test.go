package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrFileOutOfBounds", ErrFileOutOfBounds, ErrFileOutOfBounds},
		{"ErrRankOutOfBounds", ErrRankOutOfBounds, ErrRankOutOfBounds},
		{"ErrEmptyString", ErrEmptyString, ErrEmptyString},
		{"ErrIncomplete", ErrIncomplete, ErrIncomplete},
		{"ErrMalformed", ErrMalformed, ErrMalformed},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestBoundsError_Is(t *testing.T) {
	fileErr := &BoundsError{Axis: AxisFile, Value: 8}
	rankErr := &BoundsError{Axis: AxisRank, Value: -1}

	if !errors.Is(fileErr, ErrFileOutOfBounds) {
		t.Error("file BoundsError should match ErrFileOutOfBounds")
	}
	if errors.Is(fileErr, ErrRankOutOfBounds) {
		t.Error("file BoundsError should not match ErrRankOutOfBounds")
	}
	if !errors.Is(rankErr, ErrRankOutOfBounds) {
		t.Error("rank BoundsError should match ErrRankOutOfBounds")
	}
	if got := rankErr.Error(); got != "rank index -1 out of bounds" {
		t.Errorf("Error() = %q", got)
	}
}

// TestFENError_CauseChain verifies the axis detail survives the Malformed wrapper.
func TestFENError_CauseChain(t *testing.T) {
	err := error(Malformed(FieldEnPassant, "i3", &BoundsError{Axis: AxisFile, Value: 8}))

	if !errors.Is(err, ErrMalformed) {
		t.Error("errors.Is(err, ErrMalformed) = false, want true")
	}
	if !errors.Is(err, ErrFileOutOfBounds) {
		t.Error("errors.Is(err, ErrFileOutOfBounds) = false, want true")
	}
	if errors.Is(err, ErrIncomplete) {
		t.Error("errors.Is(err, ErrIncomplete) = true, want false")
	}

	var be *BoundsError
	if !errors.As(err, &be) {
		t.Fatal("errors.As(err, *BoundsError) = false, want true")
	}
	if be.Value != 8 {
		t.Errorf("BoundsError.Value = %d, want 8", be.Value)
	}

	msg := err.Error()
	for _, s := range []string{"malformed", "en passant", `"i3"`, "file index 8"} {
		if !strings.Contains(msg, s) {
			t.Errorf("Error() = %q, should contain %q", msg, s)
		}
	}
}

func TestFENError_Kinds(t *testing.T) {
	empty := &FENError{Kind: ErrEmptyString}
	if empty.Error() != "empty FEN string" {
		t.Errorf("empty Error() = %q", empty.Error())
	}

	inc := Incomplete(FieldHalfMoveClock)
	if !errors.Is(inc, ErrIncomplete) {
		t.Error("Incomplete() should match ErrIncomplete")
	}
	if !strings.Contains(inc.Error(), "halfmove clock") {
		t.Errorf("Incomplete Error() = %q", inc.Error())
	}
}

func TestPositionError(t *testing.T) {
	tests := []struct {
		name     string
		err      *PositionError
		contains []string
	}{
		{
			name: "full context",
			err: &PositionError{
				Err:    ErrMalformed,
				Index:  4,
				Source: "positions.txt",
				Line:   9,
				ID:     "abc",
			},
			contains: []string{"positions.txt:9", "position 5", "id abc", "malformed"},
		},
		{
			name:     "minimal context",
			err:      &PositionError{Err: ErrIncomplete},
			contains: []string{"position 1", "incomplete"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(strings.ToLower(msg), strings.ToLower(s)) {
					t.Errorf("PositionError.Error() = %q, should contain %q", msg, s)
				}
			}
			if !errors.Is(tt.err, tt.err.Err) {
				t.Error("PositionError should unwrap to its Err")
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	err := Wrapf(ErrIllegalMove, "applying %s", "e2e5")
	if !errors.Is(err, ErrIllegalMove) {
		t.Error("wrapped error should match ErrIllegalMove")
	}
	if err.Error() != "applying e2e5: illegal move" {
		t.Errorf("Wrapf() = %q", err.Error())
	}

	wrapped := fmt.Errorf("outer: %w", Malformed(FieldCastling, "X", nil))
	if !Is(wrapped, ErrMalformed) {
		t.Error("Is() should see through fmt wrapping")
	}
}
