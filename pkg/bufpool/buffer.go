// Package bufpool implements the growable byte buffer that backs every
// per-connection stream: a single owned backing array with a logical
// length, grown at the tail on demand and shrunk back to a small default
// on clear once it has grown past a ceiling. Allocation goes through
// bytedance/gopkg's size-classed byte-slice pool, mirroring the
// teacher's pkg/network/standard buffer allocator.
package bufpool

import (
	"fmt"

	"github.com/bytedance/gopkg/lang/mcache"
)

const (
	// defaultSize is the capacity a fresh or just-shrunk Buffer holds.
	defaultSize = 4096

	// shrinkCeiling is the capacity above which Clear replaces the
	// backing array with a fresh defaultSize one instead of reusing it,
	// so a single oversized request cannot pin memory for the life of
	// a keep-alive connection.
	shrinkCeiling = 4 * 1024 * 1024

	// minGrowth is the minimum number of bytes ReadOnce adds to the
	// backing array's capacity when it has to grow.
	minGrowth = 10
)

// Buffer is a mutable, owned sequence of bytes with a logical length i
// no greater than its capacity. Only the bytes before index i are live;
// the rest is spare capacity for the next ReadOnce.
type Buffer struct {
	buf []byte // len(buf) is the current capacity
	i   int
}

// New returns a Buffer with the default starting capacity.
func New() *Buffer {
	return &Buffer{buf: mcache.Malloc(defaultSize, defaultSize)}
}

// Len returns the logical length i.
func (b *Buffer) Len() int { return b.i }

// Cap returns the current backing capacity.
func (b *Buffer) Cap() int { return len(b.buf) }

// Bytes returns the live bytes [0, i). The slice aliases the buffer and
// is only valid until the next mutating call.
func (b *Buffer) Bytes() []byte { return b.buf[:b.i] }

// Slice returns the byte range [a, a+length) as a string copy.
func (b *Buffer) Slice(a, length int) (string, error) {
	if a < 0 || length < 0 || a+length > b.i {
		return "", fmt.Errorf("bufpool: slice [%d, %d) out of range for length %d", a, a+length, b.i)
	}
	return string(b.buf[a : a+length]), nil
}

// ReadFunc fills dst and reports how many bytes were written, or 0 to
// signal end-of-input, matching the Stream read contract.
type ReadFunc func(dst []byte) (int, error)

// ReadOnce grows the buffer's spare tail capacity if it is currently
// full, invokes readFn to append into that tail, advances the logical
// length by however much was read, and returns that count.
func (b *Buffer) ReadOnce(readFn ReadFunc) (int, error) {
	if b.i == len(b.buf) {
		b.grow()
	}
	n, err := readFn(b.buf[b.i:])
	b.i += n
	return n, err
}

// RemovePrefix discards the first k live bytes, shifting the remainder
// to the front of the backing array. It fails if k exceeds the logical
// length.
func (b *Buffer) RemovePrefix(k int) error {
	if k < 0 || k > b.i {
		return fmt.Errorf("bufpool: remove_prefix(%d) exceeds length %d", k, b.i)
	}
	if k == 0 {
		return nil
	}
	n := copy(b.buf, b.buf[k:b.i])
	b.i = n
	return nil
}

// Clear resets the logical length to zero. If the backing array has
// grown past shrinkCeiling, it is replaced with a fresh default-sized
// one so a one-off oversized request doesn't pin memory for the
// lifetime of a keep-alive connection.
func (b *Buffer) Clear() {
	b.i = 0
	if len(b.buf) > shrinkCeiling {
		mcache.Free(b.buf)
		b.buf = mcache.Malloc(defaultSize, defaultSize)
	}
}

// Release returns the backing array to the pool. The Buffer must not be
// used afterward.
func (b *Buffer) Release() {
	mcache.Free(b.buf)
	b.buf = nil
	b.i = 0
}

// grow replaces the backing array with one whose capacity is at least
// the current capacity plus 12% plus minGrowth bytes.
func (b *Buffer) grow() {
	cur := len(b.buf)
	newCap := cur + cur*12/100 + minGrowth
	var nb []byte
	if newCap > shrinkCeiling {
		// oversized arrays bypass the pool so they never land in its cache.
		nb = make([]byte, newCap)
	} else {
		nb = mcache.Malloc(newCap, newCap)
	}
	copy(nb, b.buf[:b.i])
	mcache.Free(b.buf)
	b.buf = nb
}
