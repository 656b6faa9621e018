package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLineSplitsOnLF(t *testing.T) {
	src := NewSource(NewMemStream([]byte("GET / HTTP/1.1\r\nHost: x\r\n\r\n")))
	line, err := src.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "GET / HTTP/1.1\r", line)

	line, err = src.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "Host: x\r", line)

	line, err = src.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "\r", line)
}

func TestReadLinePartialAtEOF(t *testing.T) {
	src := NewSource(NewMemStream([]byte("no newline here")))
	line, err := src.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "no newline here", line)

	// further reads at clean EOF with an empty buffer return "".
	line, err = src.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "", line)
}

func TestTakeExactBytes(t *testing.T) {
	src := NewSource(NewMemStream([]byte("hello")))
	s, err := src.Take(5, func(w, g int) error { return assertNever(t) })
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}

func TestReadAtLeastInvokesTooShort(t *testing.T) {
	src := NewSource(NewMemStream([]byte("ab")))
	called := false
	err := src.ReadAtLeast(5, func(wanted, got int) error {
		called = true
		assert.Equal(t, 5, wanted)
		assert.Equal(t, 2, got)
		return assertErr("too short")
	})
	assert.True(t, called)
	assert.EqualError(t, err, "too short")
}

func TestReadAll(t *testing.T) {
	src := NewSource(NewMemStream([]byte("the entire body")))
	s, err := src.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "the entire body", s)
}

func assertNever(t *testing.T) error {
	t.Helper()
	t.Fatal("tooShort should not be called")
	return nil
}

func assertErr(msg string) error {
	return &simpleErr{msg}
}

type simpleErr struct{ msg string }

func (e *simpleErr) Error() string { return e.msg }
