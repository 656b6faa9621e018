package protocol

import "github.com/coriolis-http/httpcore/pkg/network"

// Body is a response body in one of two shapes: a fully materialized
// string (its length is known up front, so the writer frames it with
// Content-Length) or a Stream of unknown length (the writer frames it
// with chunked Transfer-Encoding instead).
type Body interface {
	isResponseBody()
}

// StringBody is a response body whose full content is already in
// memory.
type StringBody struct {
	Data string
}

func (StringBody) isResponseBody() {}

// StreamBody is a response body read incrementally from Stream. Its total
// length is unknown to the caller, which is why it is written chunked.
type StreamBody struct {
	Stream network.Stream
}

func (StreamBody) isResponseBody() {}

// Response is what a handler (or the server's own error path) produces
// for the connection loop to write back.
type Response struct {
	Status  int
	Headers *Headers
	Body    Body
}

// NewStringResponse builds a Response whose body is already fully
// formed in memory.
func NewStringResponse(status int, headers *Headers, body string) *Response {
	return &Response{Status: status, Headers: headers, Body: StringBody{Data: body}}
}

// NewStreamResponse builds a Response whose body will be read from s
// and written chunked.
func NewStreamResponse(status int, headers *Headers, s network.Stream) *Response {
	return &Response{Status: status, Headers: headers, Body: StreamBody{Stream: s}}
}
