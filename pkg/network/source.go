package network

import (
	"bytes"

	"github.com/coriolis-http/httpcore/pkg/bufpool"
)

// Source pairs a Stream with the growable buffer that accumulates bytes
// pulled off it, and implements the three read shapes the request
// parser needs: line-oriented, read-at-least-N, and read-everything.
// One Source is allocated per connection and reused across every
// request on that connection's keep-alive lifetime.
type Source struct {
	buf *bufpool.Buffer
	s   Stream
}

// NewSource allocates a fresh buffer over the given Stream.
func NewSource(s Stream) *Source {
	return &Source{buf: bufpool.New(), s: s}
}

// Reset clears the accumulated buffer, e.g. between requests.
func (src *Source) Reset() { src.buf.Clear() }

// Close releases the buffer and closes the underlying Stream.
func (src *Source) Close() error {
	src.buf.Release()
	return src.s.Close()
}

// ReadLine scans the buffered region for '\n', growing the buffer and
// pulling more bytes when none is yet present. The returned line
// includes the trailing '\r', if any - callers strip it themselves. A
// clean end-of-input with data still buffered returns that partial
// data; a clean end-of-input with nothing buffered returns "", nil.
func (src *Source) ReadLine() (string, error) {
	for {
		data := src.buf.Bytes()
		if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
			line := string(data[:idx])
			if err := src.buf.RemovePrefix(idx + 1); err != nil {
				return "", err
			}
			return line, nil
		}
		n, err := src.buf.ReadOnce(src.s.Read)
		if err != nil {
			return "", err
		}
		if n == 0 {
			if src.buf.Len() == 0 {
				return "", nil
			}
			rest := string(src.buf.Bytes())
			src.buf.RemovePrefix(src.buf.Len())
			return rest, nil
		}
	}
}

// TooShortFunc is invoked when the underlying Stream hits end-of-input
// before the buffer reached the requested length. In HTTP context this
// raises a 400-class failure.
type TooShortFunc func(wanted, got int) error

// ReadAtLeast blocks until the buffer holds at least n bytes or the
// Stream signals end-of-input, in which case tooShort is invoked and its
// error (if any) is returned.
func (src *Source) ReadAtLeast(n int, tooShort TooShortFunc) error {
	for src.buf.Len() < n {
		rn, err := src.buf.ReadOnce(src.s.Read)
		if err != nil {
			return err
		}
		if rn == 0 {
			return tooShort(n, src.buf.Len())
		}
	}
	return nil
}

// Take reads exactly n bytes and removes them from the buffer.
func (src *Source) Take(n int, tooShort TooShortFunc) (string, error) {
	if err := src.ReadAtLeast(n, tooShort); err != nil {
		return "", err
	}
	s, err := src.buf.Slice(0, n)
	if err != nil {
		return "", err
	}
	if err := src.buf.RemovePrefix(n); err != nil {
		return "", err
	}
	return s, nil
}

// ReadAll pulls bytes off the Stream until it signals end-of-input and
// returns everything accumulated, clearing the buffer.
func (src *Source) ReadAll() (string, error) {
	for {
		n, err := src.buf.ReadOnce(src.s.Read)
		if err != nil {
			return "", err
		}
		if n == 0 {
			break
		}
	}
	data := string(src.buf.Bytes())
	src.buf.Clear()
	return data, nil
}

// TooLargeFunc is invoked when the accumulated buffer length exceeds
// max. cap is the same bound passed to ReadAllCapped; got is how many
// bytes had been buffered at the moment the bound was crossed (a lower
// bound on the body's true size, since reading stops immediately).
type TooLargeFunc func(cap, got int) error

// ReadAllCapped behaves like ReadAll, except that once the buffer's
// length exceeds max it stops reading and returns tooLarge's error
// instead. max <= 0 means unbounded, equivalent to ReadAll.
func (src *Source) ReadAllCapped(max int, tooLarge TooLargeFunc) (string, error) {
	if max <= 0 {
		return src.ReadAll()
	}
	for {
		n, err := src.buf.ReadOnce(src.s.Read)
		if err != nil {
			return "", err
		}
		if n == 0 {
			break
		}
		if src.buf.Len() > max {
			got := src.buf.Len()
			src.buf.Clear()
			return "", tooLarge(max, got)
		}
	}
	data := string(src.buf.Bytes())
	src.buf.Clear()
	return data, nil
}
