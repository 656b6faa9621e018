// Package network is the uniform read/close abstraction over whatever
// byte source a connection (or a decoder hook, or a test) hands the
// request parser: a TCP socket, an in-memory byte range, or the
// chunked-decoding adapter of the body framing layer. It mirrors the
// role of the teacher's pkg/network.Reader, trimmed to the read/close
// pair the spec calls for.
package network

import "io"

// Stream is the one capability every byte source implements. Read
// returns 0, nil to signal end-of-input, never io.EOF - callers branch
// on the count, not on a sentinel error, matching the teacher's
// network.Reader.Peek/Skip style of returning counts rather than relying
// on error wrapping for control flow at this layer.
type Stream interface {
	Read(dst []byte) (int, error)
	Close() error
}

// connStream adapts any io.ReadCloser (ordinarily a net.Conn) to Stream.
type connStream struct {
	rc io.ReadCloser
}

// NewConnStream wraps a socket (or any io.ReadCloser) as a Stream.
func NewConnStream(rc io.ReadCloser) Stream {
	return &connStream{rc: rc}
}

func (c *connStream) Read(dst []byte) (int, error) {
	n, err := c.rc.Read(dst)
	if err == io.EOF {
		return n, nil
	}
	return n, err
}

func (c *connStream) Close() error { return c.rc.Close() }

// memStream is a Stream over an in-memory byte range, used by tests and
// by decoder hooks that want to replay bytes already pulled off the
// wire without a real socket underneath.
type memStream struct {
	data []byte
	pos  int
}

// NewMemStream returns a Stream that yields the bytes of data and then
// signals end-of-input.
func NewMemStream(data []byte) Stream {
	return &memStream{data: data}
}

func (m *memStream) Read(dst []byte) (int, error) {
	if m.pos >= len(m.data) {
		return 0, nil
	}
	n := copy(dst, m.data[m.pos:])
	m.pos += n
	return n, nil
}

func (m *memStream) Close() error { return nil }
