package protocol

// Header is a single name/value pair as it appeared (or will appear) on
// the wire. Names are compared byte-for-byte; nothing here folds case.
type Header struct {
	Name  string
	Value string
}

// Headers is an ordered, possibly-duplicate-keyed list of header pairs,
// modeled on the teacher's argsKV storage rather than a map so that
// wire order survives a parse-then-write round trip.
type Headers struct {
	pairs []Header
}

// NewHeaders returns an empty header list.
func NewHeaders() *Headers {
	return &Headers{}
}

// Get returns the value of the first pair named name, in wire order.
func (h *Headers) Get(name string) (string, bool) {
	for _, p := range h.pairs {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Contains reports whether any pair is named name.
func (h *Headers) Contains(name string) bool {
	_, ok := h.Get(name)
	return ok
}

// Add appends a pair without touching any existing entry for name. Used
// by the request-line parser, which must preserve duplicate headers as
// they arrived on the wire.
func (h *Headers) Add(name, value string) {
	h.pairs = append(h.pairs, Header{Name: name, Value: value})
}

// Set removes every existing pair named name and prepends the new pair,
// so that after Set there is at most one entry for name and Get returns
// value.
func (h *Headers) Set(name, value string) {
	filtered := make([]Header, 0, len(h.pairs)+1)
	filtered = append(filtered, Header{Name: name, Value: value})
	for _, p := range h.pairs {
		if p.Name != name {
			filtered = append(filtered, p)
		}
	}
	h.pairs = filtered
}

// Del removes every pair named name.
func (h *Headers) Del(name string) {
	filtered := h.pairs[:0]
	for _, p := range h.pairs {
		if p.Name != name {
			filtered = append(filtered, p)
		}
	}
	h.pairs = filtered
}

// Len returns the number of pairs currently stored, duplicates included.
func (h *Headers) Len() int {
	return len(h.pairs)
}

// Pairs returns the pairs in wire order. Callers must not mutate the
// returned slice.
func (h *Headers) Pairs() []Header {
	return h.pairs
}
