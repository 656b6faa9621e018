package bufpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillFrom(b *Buffer, data string) {
	pos := 0
	for pos < len(data) {
		n, _ := b.ReadOnce(func(dst []byte) (int, error) {
			return copy(dst, data[pos:]), nil
		})
		pos += n
	}
}

func TestReadOnceAndSlice(t *testing.T) {
	b := New()
	fillFrom(b, "hello world")
	assert.Equal(t, 11, b.Len())
	s, err := b.Slice(0, 5)
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
	s, err = b.Slice(6, 5)
	require.NoError(t, err)
	assert.Equal(t, "world", s)
}

// property: for every buffer, after RemovePrefix(k) with 0<=k<=i, the
// new contents equal the old contents sliced from k.
func TestRemovePrefixIsSliceFromK(t *testing.T) {
	b := New()
	fillFrom(b, "abcdefghij")
	before := string(b.Bytes())
	for k := 0; k <= len(before); k++ {
		bb := New()
		fillFrom(bb, before)
		require.NoError(t, bb.RemovePrefix(k))
		assert.Equal(t, before[k:], string(bb.Bytes()))
	}
}

func TestRemovePrefixRejectsOutOfRange(t *testing.T) {
	b := New()
	fillFrom(b, "abc")
	assert.Error(t, b.RemovePrefix(4))
}

func TestGrowBeyondInitialCapacity(t *testing.T) {
	b := New()
	big := make([]byte, defaultSize*3)
	for i := range big {
		big[i] = byte('a' + i%26)
	}
	fillFrom(b, string(big))
	assert.Equal(t, len(big), b.Len())
	assert.GreaterOrEqual(t, b.Cap(), len(big))
	assert.Equal(t, string(big), string(b.Bytes()))
}

func TestClearShrinksWhenOversized(t *testing.T) {
	b := New()
	big := make([]byte, shrinkCeiling+1)
	fillFrom(b, string(big))
	require.Greater(t, b.Cap(), shrinkCeiling)
	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, defaultSize, b.Cap())
}

func TestClearKeepsSmallBacking(t *testing.T) {
	b := New()
	fillFrom(b, "short")
	capBefore := b.Cap()
	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, capBefore, b.Cap())
}
