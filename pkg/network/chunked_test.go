package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeChunked(t *testing.T, wire string) string {
	t.Helper()
	src := NewSource(NewMemStream([]byte(wire)))
	cs := NewChunkedStream(src)
	out := NewSource(cs)
	s, err := out.ReadAll()
	require.NoError(t, err)
	return s
}

func TestChunkedDecodeBasic(t *testing.T) {
	wire := "5\r\nhello\r\n6\r\n world\r\n0\r\n\r\n"
	assert.Equal(t, "hello world", decodeChunked(t, wire))
}

func TestChunkedDecodeWithExtensions(t *testing.T) {
	wire := "5;foo=bar\r\nhello\r\n0;done\r\n\r\n"
	assert.Equal(t, "hello", decodeChunked(t, wire))
}

func TestChunkedDecodeBlankHeaderAsZero(t *testing.T) {
	wire := "5\r\nhello\r\n\r\n"
	assert.Equal(t, "hello", decodeChunked(t, wire))
}

func TestChunkedDecodeShortChunkIsError(t *testing.T) {
	wire := "5\r\nhel"
	src := NewSource(NewMemStream([]byte(wire)))
	cs := NewChunkedStream(src)
	buf := make([]byte, 5)
	n, err := cs.Read(buf)
	assert.Error(t, err)
	assert.Equal(t, 0, n)
}

// property: chunked encoder composed with chunked decoder is the
// identity on any byte string, for any chunk-size schedule.
func TestChunkedRoundTrip(t *testing.T) {
	body := "The quick brown fox jumps over the lazy dog, repeatedly, to pad this out a bit."
	schedules := [][]int{
		{len(body)},
		{1, 1, 1, len(body) - 3},
		{10, 10, 10, 10, 10, len(body) - 50},
	}
	for _, sched := range schedules {
		wire := encodeChunkedForTest(body, sched)
		assert.Equal(t, body, decodeChunked(t, wire))
	}
}

func encodeChunkedForTest(body string, sizes []int) string {
	var out []byte
	pos := 0
	for _, sz := range sizes {
		if pos >= len(body) {
			break
		}
		if pos+sz > len(body) {
			sz = len(body) - pos
		}
		out = append(out, []byte(hex(sz))...)
		out = append(out, '\r', '\n')
		out = append(out, body[pos:pos+sz]...)
		out = append(out, '\r', '\n')
		pos += sz
	}
	if pos < len(body) {
		rest := body[pos:]
		out = append(out, []byte(hex(len(rest)))...)
		out = append(out, '\r', '\n')
		out = append(out, rest...)
		out = append(out, '\r', '\n')
	}
	out = append(out, '0', '\r', '\n', '\r', '\n')
	return string(out)
}

func hex(n int) string {
	if n == 0 {
		return "0"
	}
	const digits = "0123456789abcdef"
	var buf [16]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = digits[n%16]
		n /= 16
	}
	return string(buf[i:])
}
