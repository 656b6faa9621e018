// Package httprouter selects, for each incoming request, which handler
// (if any) should serve it. There is no grounding for this file in the
// retrieved example pack - see DESIGN.md for why it is written directly
// against the standard library instead of adapting a teacher router.
package httprouter

import (
	"strconv"
	"strings"

	"github.com/coriolis-http/httpcore/pkg/protocol"
)

// Handler produces a response for a matched request.
type Handler func(*protocol.Request) *protocol.Response

// Outcome is what a single route entry decides for a given request:
// it either has nothing to say (Decline), it owns the request
// (Accept), or the path matched but something about the request is
// wrong (Reject, e.g. a method the path doesn't support).
type Outcome interface {
	isOutcome()
}

// Decline means this entry's pattern did not match the request path;
// the router should keep trying other entries.
type Decline struct{}

func (Decline) isOutcome() {}

// Accept means this entry owns the request; its Handler produces the
// response.
type Accept struct {
	Handler Handler
}

func (Accept) isOutcome() {}

// Reject means the path matched but the request is otherwise invalid
// for this entry (most commonly: right path, wrong method). The router
// stops searching and returns this status/message directly.
type Reject struct {
	Status int
	Msg    string
}

func (Reject) isOutcome() {}

// PathEntry is one routing rule: Match inspects a request and returns
// what this rule thinks should happen to it.
type PathEntry struct {
	Match func(req *protocol.Request) Outcome
}

// New builds a PathEntry that accepts requests whose method equals
// method and whose path matches pattern, dispatching to handler.
// pattern segments are matched literally except for the placeholders
// "%s" (any non-empty segment) and "%d" (a segment made entirely of
// decimal digits). A path that matches the pattern's shape but arrives
// with a different method yields Reject(405) rather than Decline, so
// the caller learns the path exists.
func New(method protocol.Method, pattern string, handler Handler) PathEntry {
	segments := splitPath(pattern)
	return PathEntry{
		Match: func(req *protocol.Request) Outcome {
			if !matchSegments(segments, splitPath(req.Path)) {
				return Decline{}
			}
			if req.Method != method {
				return Reject{Status: 405, Msg: "method not allowed for this path"}
			}
			return Accept{Handler: handler}
		},
	}
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func matchSegments(pattern, path []string) bool {
	if len(pattern) != len(path) {
		return false
	}
	for i, seg := range pattern {
		switch seg {
		case "%s":
			if path[i] == "" {
				return false
			}
		case "%d":
			if !isAllDigits(path[i]) {
				return false
			}
		default:
			if seg != path[i] {
				return false
			}
		}
	}
	return true
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}
