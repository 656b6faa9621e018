// Package http1 turns a network.Source into protocol.Request values and
// writes protocol.Response values back out, implementing the wire
// framing rules (request line, headers, Content-Length/chunked body
// selection) that the rest of the server is built on.
package http1

import (
	"strconv"
	"strings"

	httperr "github.com/coriolis-http/httpcore/pkg/common/errors"
	"github.com/coriolis-http/httpcore/pkg/network"
	"github.com/coriolis-http/httpcore/pkg/protocol"
)

// ParseRequestLineAndHeaders reads a request line followed by a
// CRLF-terminated header block from src, stopping at the blank line
// that separates headers from the body. It does not touch the body.
//
// A nil Request with a nil error means the connection was closed
// cleanly before a new request began - ReadLine's empty-buffer EOF
// reports as an empty line with no error, which is indistinguishable
// from a single stray blank line sent mid-stream, so the two are
// treated the same way: no request to serve, not a protocol error.
func ParseRequestLineAndHeaders(src *network.Source) (*protocol.Request, error) {
	line, err := src.ReadLine()
	if err != nil {
		return nil, err
	}
	line = strings.TrimRight(line, "\r")
	if line == "" {
		return nil, nil
	}

	parts := strings.SplitN(line, " ", 3)
	if len(parts) != 3 || parts[2] != "HTTP/1.1" {
		return nil, httperr.New(400, "Invalid request line")
	}

	method, ok := protocol.ParseMethod(parts[0])
	if !ok {
		return nil, httperr.Newf(400, "unknown method %q", parts[0])
	}
	path := parts[1]

	headers, err := parseHeaderBlock(src)
	if err != nil {
		return nil, err
	}

	return protocol.NewRequest(method, path, headers), nil
}

func parseHeaderBlock(src *network.Source) (*protocol.Headers, error) {
	headers := protocol.NewHeaders()
	for {
		line, err := src.ReadLine()
		if err != nil {
			return nil, err
		}
		line = strings.TrimRight(line, "\r")
		if line == "" {
			return headers, nil
		}
		idx := strings.Index(line, ":")
		if idx < 0 {
			return nil, httperr.Newf(400, "malformed header line %q", line)
		}
		name := line[:idx]
		value := strings.TrimSpace(line[idx+1:])
		headers.Add(name, value)
	}
}

// CheckExpect inspects the (trimmed) Expect header. If absent, it
// reports continueRequested=false and a nil error: nothing should be
// emitted pre-body. If it equals "100-continue", continueRequested is
// true and the caller should write the 100 Continue interim response
// before reading the body. Any other value is a 417 failure, and the
// caller must not read a body at all.
func CheckExpect(headers *protocol.Headers) (continueRequested bool, err error) {
	v, ok := headers.Get("Expect")
	if !ok {
		return false, nil
	}
	v = strings.TrimSpace(v)
	if v == "100-continue" {
		return true, nil
	}
	return false, httperr.Newf(417, "unknown expectation %q", v)
}

// ReadBody consumes the request body according to headers, dispatching
// between Content-Length and chunked Transfer-Encoding framing. It is
// an error for both to be present. Absent either, the body is empty.
// A Transfer-Encoding other than "chunked" is rejected with a 500,
// since this core has no other encoding to decode it with.
//
// maxBodySize bounds how much the body may materialize to, regardless
// of framing; 0 or negative means unbounded. Exceeding it yields a 413
// naming the cap and the observed size: the declared Content-Length
// (checked before any body byte is read), or for a chunked body how much
// had been decoded when the cap was crossed.
func ReadBody(src *network.Source, headers *protocol.Headers, maxBodySize int) (string, error) {
	cl, hasCL := headers.Get("Content-Length")
	te, hasTE := headers.Get("Transfer-Encoding")
	te = strings.TrimSpace(te)
	chunked := hasTE && te == "chunked"

	switch {
	case hasCL && chunked:
		return "", httperr.New(400, "Content-Length and Transfer-Encoding must not both be set")
	case hasTE && !chunked:
		return "", httperr.New(500, "cannot handle transfer encoding")
	case chunked:
		out := network.NewSource(network.NewChunkedStream(src))
		return out.ReadAllCapped(maxBodySize, bodyTooLarge)
	case hasCL:
		n, err := strconv.Atoi(cl)
		if err != nil || n < 0 {
			return "", httperr.Newf(400, "invalid Content-Length %q", cl)
		}
		if maxBodySize > 0 && n > maxBodySize {
			return "", bodyTooLarge(maxBodySize, n)
		}
		return src.Take(n, func(wanted, got int) error {
			return httperr.Newf(400, "body shorter than Content-Length: wanted %d, got %d", wanted, got)
		})
	default:
		return "", nil
	}
}

func bodyTooLarge(cap, observed int) error {
	return httperr.Newf(413, "body exceeds maximum size of %d bytes (observed at least %d bytes)", cap, observed)
}
