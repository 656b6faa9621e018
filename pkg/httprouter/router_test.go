package httprouter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coriolis-http/httpcore/pkg/protocol"
)

func req(method protocol.Method, path string) *protocol.Request {
	return protocol.NewRequest(method, path, protocol.NewHeaders())
}

func TestPatternMatchesLiteralSegments(t *testing.T) {
	entry := New(protocol.MethodGet, "/users", func(*protocol.Request) *protocol.Response {
		return protocol.NewStringResponse(200, protocol.NewHeaders(), "ok")
	})

	_, isAccept := entry.Match(req(protocol.MethodGet, "/users")).(Accept)
	assert.True(t, isAccept)

	_, isDecline := entry.Match(req(protocol.MethodGet, "/other")).(Decline)
	assert.True(t, isDecline)
}

func TestPatternWithPlaceholders(t *testing.T) {
	entry := New(protocol.MethodGet, "/users/%d/posts/%s", func(*protocol.Request) *protocol.Response {
		return protocol.NewStringResponse(200, protocol.NewHeaders(), "ok")
	})

	_, isAccept := entry.Match(req(protocol.MethodGet, "/users/42/posts/hello")).(Accept)
	assert.True(t, isAccept)

	_, isDecline := entry.Match(req(protocol.MethodGet, "/users/notanumber/posts/hello")).(Decline)
	assert.True(t, isDecline)

	_, isDecline2 := entry.Match(req(protocol.MethodGet, "/users/42/posts")).(Decline)
	assert.True(t, isDecline2)
}

func TestPatternRejectsWrongMethodInsteadOfDeclining(t *testing.T) {
	entry := New(protocol.MethodPost, "/users", func(*protocol.Request) *protocol.Response {
		return protocol.NewStringResponse(200, protocol.NewHeaders(), "ok")
	})

	outcome := entry.Match(req(protocol.MethodGet, "/users"))
	rej, ok := outcome.(Reject)
	assert.True(t, ok)
	assert.Equal(t, 405, rej.Status)
}

func TestRouterDispatchFallsBackTo404(t *testing.T) {
	r := NewRouter()
	resp := r.Dispatch(req(protocol.MethodGet, "/missing"))
	assert.Equal(t, 404, resp.Status)
}

func TestRouterDispatchMostRecentlyRegisteredWins(t *testing.T) {
	r := NewRouter()
	r.Add(New(protocol.MethodGet, "/a", func(*protocol.Request) *protocol.Response {
		return protocol.NewStringResponse(200, protocol.NewHeaders(), "first")
	}))
	r.Add(New(protocol.MethodGet, "/a", func(*protocol.Request) *protocol.Response {
		return protocol.NewStringResponse(200, protocol.NewHeaders(), "second")
	}))

	resp := r.Dispatch(req(protocol.MethodGet, "/a"))
	body, ok := resp.Body.(protocol.StringBody)
	assert.True(t, ok)
	assert.Equal(t, "second", body.Data)
}
