package infra

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

var initPC = caller()

func caller() Frame {
	var PCs [3]uintptr
	n := runtime.Callers(2, PCs[:])
	frames := runtime.CallersFrames(PCs[:n])
	frame, _ := frames.Next()
	return Frame(frame.PC)
}

func TestFrameFormat(t *testing.T) {
	testcases := []struct {
		Frame
		format string
		want   string
	}{
		{initPC, "%s", "err_stack_test.go"},
		{initPC, "%n", "init"},
		{Frame(0), "%s", "unknownFile"},
		{Frame(0), "%n", "unknownFunc"},
		{Frame(0), "%d", "0"},
	}

	for _, tc := range testcases {
		frameRes := fmt.Sprintf(tc.format, tc.Frame)
		require.Equal(t, tc.want, frameRes)
	}
	require.True(t, strings.HasPrefix(fmt.Sprintf("%v", initPC), "err_stack_test.go:"))
	require.Contains(t, fmt.Sprintf("%+s", initPC), "github.com/benz9527/xdsa/lib/infra.init\n\t")
}

func TestFrameMarshalText(t *testing.T) {
	text, err := Frame(0).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "unknownFrame", string(text))

	text, err = initPC.MarshalText()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(text), "github.com/benz9527/xdsa/lib/infra.init "))
	require.Contains(t, string(text), "err_stack_test.go:")
}

func TestErrorStack_WrapAndUnwrap(t *testing.T) {
	err := WrapErrorStackWithMessage(ErrEmptyContainer, "[stack] pop")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrEmptyContainer))
	require.False(t, errors.Is(err, ErrNotFound))
	require.Equal(t, "[stack] pop: empty container", err.Error())

	var es ErrorStack
	require.True(t, errors.As(err, &es))
	require.NotEmpty(t, es.Frames())
	require.Equal(t, "TestErrorStack_WrapAndUnwrap", fmt.Sprintf("%n", es.Frames()[0]))

	verbose := fmt.Sprintf("%+v", err)
	require.True(t, strings.HasPrefix(verbose, "[stack] pop: empty container\n"))

	require.Nil(t, WrapErrorStack(nil))
	require.Nil(t, WrapErrorStackWithMessage(nil, "nothing"))

	wrapped := WrapErrorStack(err)
	require.Same(t, err, wrapped)

	plain := WrapErrorStack(ErrNotFound)
	require.Equal(t, ErrNotFound.Error(), plain.Error())
	require.ErrorIs(t, plain, ErrNotFound)

	created := NewErrorStack("[maze] broken")
	require.Equal(t, "[maze] broken", created.Error())
	require.Nil(t, errors.Unwrap(created))
}

func TestErrorStack_MarshalLogObject(t *testing.T) {
	err := WrapErrorStackWithMessage(ErrIndexOutOfRange, "[list] pop")
	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, err.(ErrorStack).MarshalLogObject(enc))
	require.Equal(t, "[list] pop: index out of range", enc.Fields["error"])
	frames, ok := enc.Fields["errorStack"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, frames)
}

func TestDefaultOrderedKeyComparator(t *testing.T) {
	require.Equal(t, int64(0), DefaultOrderedKeyComparator(1, 1))
	require.Equal(t, int64(1), DefaultOrderedKeyComparator("b", "a"))
	require.Equal(t, int64(-1), DefaultOrderedKeyComparator(1.5, 2.5))
}
