package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf("error: %s %d", "test", 42)
	require.NotNil(t, err)
	assert.Equal(t, "error: test 42", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestIs(t *testing.T) {
	err1 := New("error 1")
	err2 := New("error 2")
	wrapped := Wrap(err1, "wrapped")

	assert.True(t, Is(wrapped, err1))
	assert.False(t, Is(wrapped, err2))
	assert.False(t, Is(nil, err1))
}

type customError struct {
	msg string
}

func (e *customError) Error() string {
	return e.msg
}

func TestAs(t *testing.T) {
	original := &customError{msg: "custom"}
	wrapped := Wrap(original, "wrapped")

	var target *customError
	require.True(t, As(wrapped, &target))
	assert.Equal(t, "custom", target.msg)
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithStack(nil))
	assert.Nil(t, WithHint(nil, "hint"))
}

func TestIsFormatError(t *testing.T) {
	assert.True(t, IsFormatError(ErrFormat))
	assert.True(t, IsFormatError(Wrap(ErrFormat, "line 12")))
	assert.True(t, IsFormatError(NewFormatError("no sections in %s", "file.las")))
	assert.False(t, IsFormatError(New("unrelated")))
	assert.False(t, IsFormatError(nil))
}

func TestIsCurveNotFoundError(t *testing.T) {
	assert.True(t, IsCurveNotFoundError(ErrCurveNotFound))
	assert.True(t, IsCurveNotFoundError(Wrapf(ErrCurveNotFound, "curve %q", "GR")))
	assert.False(t, IsCurveNotFoundError(ErrFormat))
	assert.False(t, IsCurveNotFoundError(nil))
}

func TestSentinelsAreDistinct(t *testing.T) {
	assert.False(t, Is(ErrFormat, ErrCurveNotFound))
	assert.False(t, Is(ErrCurveNotFound, ErrNoDepthIndex))
	assert.False(t, Is(ErrNoDepthIndex, ErrFormat))
}

func TestNewFormatErrorMessage(t *testing.T) {
	err := NewFormatError("unterminated section at line %d", 7)
	assert.Contains(t, err.Error(), "unterminated section at line 7")
	assert.True(t, Is(err, ErrFormat))
}
