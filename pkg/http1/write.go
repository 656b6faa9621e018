package http1

import (
	"fmt"
	"io"
	"strconv"

	httperr "github.com/coriolis-http/httpcore/pkg/common/errors"
	"github.com/coriolis-http/httpcore/pkg/network"
	"github.com/coriolis-http/httpcore/pkg/protocol"
	"github.com/coriolis-http/httpcore/pkg/protocol/consts"
)

// WriteResponse serializes resp onto w as HTTP/1.1: status line,
// headers, then the body framed with Content-Length for a StringBody
// or chunked Transfer-Encoding for a StreamBody.
func WriteResponse(w io.Writer, resp *protocol.Response) error {
	if _, err := fmt.Fprintf(w, "HTTP/1.1 %d %s\r\n", resp.Status, consts.Describe(resp.Status)); err != nil {
		return err
	}

	headers := resp.Headers
	if headers == nil {
		headers = protocol.NewHeaders()
	}

	switch body := resp.Body.(type) {
	case protocol.StringBody:
		headers.Set("Content-Length", strconv.Itoa(len(body.Data)))
		headers.Del("Transfer-Encoding")
		if err := writeHeaderBlock(w, headers); err != nil {
			return err
		}
		_, err := io.WriteString(w, body.Data)
		return err
	case protocol.StreamBody:
		headers.Set("Transfer-Encoding", "chunked")
		headers.Del("Content-Length")
		if err := writeHeaderBlock(w, headers); err != nil {
			return err
		}
		return writeChunkedBody(w, body.Stream)
	default:
		return httperr.New(500, "response has no body")
	}
}

func writeHeaderBlock(w io.Writer, headers *protocol.Headers) error {
	for _, p := range headers.Pairs() {
		if _, err := fmt.Fprintf(w, "%s: %s\r\n", p.Name, p.Value); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\r\n")
	return err
}

// writeChunkedBody drains s, writing each non-empty read as one chunk,
// and finishes with the zero-size terminating chunk.
func writeChunkedBody(w io.Writer, s network.Stream) error {
	buf := make([]byte, 4096)
	for {
		n, err := s.Read(buf)
		if err != nil {
			return err
		}
		if n == 0 {
			break
		}
		if _, err := fmt.Fprintf(w, "%x\r\n", n); err != nil {
			return err
		}
		if _, err := w.Write(buf[:n]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\r\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "0\r\n\r\n")
	return err
}

// WriteContinue writes the "HTTP/1.1 100 Continue\r\n\r\n" interim
// response used to answer an Expect: 100-continue request before the
// body is read.
func WriteContinue(w io.Writer) error {
	_, err := fmt.Fprintf(w, "HTTP/1.1 %d %s\r\n\r\n", consts.StatusContinue, consts.Describe(consts.StatusContinue))
	return err
}
