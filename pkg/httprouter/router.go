package httprouter

import (
	"github.com/coriolis-http/httpcore/pkg/protocol"
)

// Router holds an ordered list of route entries and a fallback used
// when none of them accept the request.
type Router struct {
	entries  []PathEntry
	fallback Handler
}

// NewRouter returns an empty Router. Its fallback responds 404 until
// SetFallback is called.
func NewRouter() *Router {
	return &Router{fallback: defaultFallback}
}

func defaultFallback(req *protocol.Request) *protocol.Response {
	return protocol.NewStringResponse(404, protocol.NewHeaders(), "not found")
}

// Add prepends entry to the search order, so the most recently
// registered entry is tried first and wins ties with an earlier
// registration covering the same path.
func (r *Router) Add(entry PathEntry) {
	r.entries = append([]PathEntry{entry}, r.entries...)
}

// SetFallback replaces the handler used when no entry accepts the
// request.
func (r *Router) SetFallback(h Handler) {
	r.fallback = h
}

// Dispatch finds the first entry that doesn't decline req and returns
// the response it produces, or the fallback's response if every entry
// declined.
func (r *Router) Dispatch(req *protocol.Request) *protocol.Response {
	for _, entry := range r.entries {
		switch outcome := entry.Match(req).(type) {
		case Accept:
			return outcome.Handler(req)
		case Reject:
			return protocol.NewStringResponse(outcome.Status, protocol.NewHeaders(), outcome.Msg)
		case Decline:
			continue
		}
	}
	return r.fallback(req)
}
