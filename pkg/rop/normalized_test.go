package rop

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codeErr struct {
	code int
}

func (e *codeErr) Error() string {
	return fmt.Sprintf("code %d", e.code)
}

type payload struct {
	Code   int    `json:"code"`
	Reason string `json:"reason"`
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	var nilCodeErr *codeErr
	var nilMap map[string]int
	text := "pointed"
	base := errors.New("X")

	testCases := []struct {
		name      string
		input     any
		message   string
		wantCause error
	}{
		{name: "error", input: base, message: "X", wantCause: base},
		{name: "custom error", input: &codeErr{code: 7}, message: "code 7"},
		{name: "string", input: "boom", message: "boom"},
		{name: "pointer to string", input: &text, message: "pointed"},
		{name: "struct", input: payload{Code: 42, Reason: "nope"}, message: `{"code":42,"reason":"nope"}`},
		{name: "pointer to struct", input: &payload{Code: 1}, message: `{"code":1,"reason":""}`},
		{name: "map", input: map[string]int{"a": 1}, message: `{"a":1}`},
		{name: "slice", input: []string{"a", "b"}, message: `["a","b"]`},
		{
			name:    "unserializable map",
			input:   map[string]any{"f": func() {}},
			message: "An error occurred while serializing the object: json: unsupported type: func()",
		},
		{name: "int", input: 42, message: "Unsupported error type: int"},
		{name: "float", input: 3.5, message: "Unsupported error type: float64"},
		{name: "bool", input: true, message: "Unsupported error type: bool"},
		{name: "func", input: func() {}, message: "Unsupported error type: func"},
		{name: "chan", input: make(chan int), message: "Unsupported error type: chan"},
		{name: "nil", input: nil, message: "An unknown error occurred."},
		{name: "typed nil error", input: nilCodeErr, message: "An unknown error occurred."},
		{name: "nil map", input: nilMap, message: "An unknown error occurred."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			n := Normalize(tc.input)

			require.NotNil(t, n)
			assert.Equal(t, tc.message, n.Message())
			assert.Equal(t, tc.message, n.Error())
			if tc.wantCause != nil {
				assert.Same(t, tc.wantCause, n.Cause())
				assert.ErrorIs(t, n, tc.wantCause)
			}
			assert.Same(t, n, Normalize(n), "normalizing twice must return the same error")
		})
	}
}

func TestNormalize_KeepsErrorCause(t *testing.T) {
	t.Parallel()

	original := &codeErr{code: 404}
	n := Normalize(original)

	var target *codeErr
	require.ErrorAs(t, n, &target)
	assert.Equal(t, 404, target.code)
}

func TestNormalize_StringHasNoCause(t *testing.T) {
	t.Parallel()

	n := Normalize("boom")

	assert.Nil(t, n.Cause())
	assert.Empty(t, n.Causes())
}

func TestNormalize_ValueCopy(t *testing.T) {
	t.Parallel()

	n := Normalize(*Normalize("copy me"))

	assert.Equal(t, "copy me", n.Message())
}

func TestNormalize_JoinedCauses(t *testing.T) {
	t.Parallel()

	first := errors.New("first")
	second := errors.New("second")

	n := Normalize(errors.Join(first, second))

	assert.Equal(t, "first\nsecond", n.Message())
	assert.Equal(t, []error{first, second}, n.Causes())
}

func TestNormalizedError_NilReceiver(t *testing.T) {
	t.Parallel()

	var n *NormalizedError

	assert.Equal(t, "An unknown error occurred.", n.Error())
	assert.Equal(t, "An unknown error occurred.", n.Message())
	assert.NoError(t, n.Cause())
	assert.NoError(t, n.Unwrap())
	assert.Empty(t, n.Causes())
}

func TestNormalize_WrappedNormalizedErrorIsNormalizedAgain(t *testing.T) {
	t.Parallel()

	inner := Normalize("inner")
	wrapped := fmt.Errorf("outer: %w", inner)

	n := Normalize(wrapped)

	assert.NotSame(t, inner, n)
	assert.Equal(t, "outer: inner", n.Message())
	assert.ErrorIs(t, n, inner)
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *payload
	var f func()

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(f))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil(&payload{}))
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	single := errors.New("single")

	assert.Empty(t, GetErrors(nil))
	assert.Equal(t, []error{single}, GetErrors(single))
	assert.Len(t, GetErrors(errors.Join(single, errors.New("other"))), 2)
}
