package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadersAddPreservesDuplicatesAndOrder(t *testing.T) {
	h := NewHeaders()
	h.Add("X-A", "1")
	h.Add("X-B", "2")
	h.Add("X-A", "3")

	assert.Equal(t, 3, h.Len())
	v, ok := h.Get("X-A")
	assert.True(t, ok)
	assert.Equal(t, "1", v, "Get returns the first match in wire order")
}

func TestHeadersSetLeavesAtMostOneEntry(t *testing.T) {
	h := NewHeaders()
	h.Add("X-A", "1")
	h.Add("X-B", "2")
	h.Add("X-A", "3")

	h.Set("X-A", "final")

	v, ok := h.Get("X-A")
	assert.True(t, ok)
	assert.Equal(t, "final", v)

	count := 0
	for _, p := range h.Pairs() {
		if p.Name == "X-A" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestHeadersGetIsCaseSensitive(t *testing.T) {
	h := NewHeaders()
	h.Add("Content-Length", "5")

	_, ok := h.Get("content-length")
	assert.False(t, ok)

	v, ok := h.Get("Content-Length")
	assert.True(t, ok)
	assert.Equal(t, "5", v)
}

func TestHeadersDelRemovesAllMatches(t *testing.T) {
	h := NewHeaders()
	h.Add("X-A", "1")
	h.Add("X-A", "2")
	h.Add("X-B", "3")

	h.Del("X-A")

	assert.False(t, h.Contains("X-A"))
	assert.Equal(t, 1, h.Len())
}
