package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/movegen-go/internal/errors"
)

// Failure paths cannot be observed without mocking testing.TB, so these
// tests cover success cases and the message formatting directly.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, 42, 42, "value should be %d", 42)
}

func TestAssertSameElements(t *testing.T) {
	AssertSameElements(t, []string{"e2e4", "d2d4"}, []string{"d2d4", "e2e4"})
	AssertSameElements(t, nil, []string{})
}

func TestAssertErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("decode: %w", errors.ErrMalformed)
	AssertErrorIs(t, wrapped, errors.ErrMalformed)
	AssertErrorIs(t, errors.Malformed(errors.FieldCastling, "X", nil), errors.ErrMalformed, "castling %s", "X")
}

func TestAssertBooleans(t *testing.T) {
	AssertNoError(t, nil)
	AssertContains(t, "hello world", "world")
	AssertTrue(t, true)
	AssertFalse(t, false)
}

func TestSorted(t *testing.T) {
	in := []string{"c", "a", "b"}
	got := Sorted(in)
	AssertEqual(t, got, []string{"a", "b", "c"})
	AssertEqual(t, in, []string{"c", "a", "b"}, "input must not be reordered")
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"plain string", []interface{}{"simple message"}, "simple message"},
		{"format string", []interface{}{"value is %d", 42}, "value is 42"},
		{"non-string", []interface{}{42}, "42"},
		{"multiple format args", []interface{}{"%s=%d", "x", 10}, "x=10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
