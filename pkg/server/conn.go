package server

import (
	"context"
	"net"

	httperr "github.com/coriolis-http/httpcore/pkg/common/errors"
	"github.com/coriolis-http/httpcore/pkg/common/hlog"
	"github.com/coriolis-http/httpcore/pkg/http1"
	"github.com/coriolis-http/httpcore/pkg/network"
	"github.com/coriolis-http/httpcore/pkg/protocol"
)

// serveConn runs the request/response loop for one accepted
// connection until the peer closes it, a parse error occurs, or ctx is
// cancelled.
func (s *Server) serveConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	src := network.NewSource(network.NewConnStream(conn))
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		req, err := http1.ParseRequestLineAndHeaders(src)
		if err != nil {
			s.handleConnError(conn, err)
			return
		}
		if req == nil {
			// clean EOF before a new request started.
			return
		}

		if err := s.handleOneRequest(conn, src, req); err != nil {
			hlog.Warnf("server: write error on %s: %v", conn.RemoteAddr(), err)
			return
		}
	}
}

// handleConnError responds to a parse failure with a best-effort error
// response and closes the connection; a BadRequest is answered on the
// wire, anything else (typically a read error) is not, since the
// connection is no longer in a state where a response can be framed.
func (s *Server) handleConnError(conn net.Conn, err error) {
	if br, ok := httperr.AsBadRequest(err); ok {
		_ = http1.WriteResponse(conn, errorResponse(br))
		return
	}
	hlog.Debugf("server: connection closed: %v", err)
}

func errorResponse(br *httperr.BadRequest) *protocol.Response {
	return protocol.NewStringResponse(br.Code, protocol.NewHeaders(), br.Msg)
}

func (s *Server) handleOneRequest(conn net.Conn, src *network.Source, req *protocol.Request) error {
	wantsContinue, err := http1.CheckExpect(req.Headers)
	if err != nil {
		br, ok := httperr.AsBadRequest(err)
		if !ok {
			return err
		}
		return http1.WriteResponse(conn, errorResponse(br))
	}
	if wantsContinue {
		if err := http1.WriteContinue(conn); err != nil {
			return err
		}
	}

	body, err := http1.ReadBody(src, req.Headers, s.maxBodySize)
	if err != nil {
		br, ok := httperr.AsBadRequest(err)
		if !ok {
			return err
		}
		return http1.WriteResponse(conn, errorResponse(br))
	}

	for _, dec := range s.decoders {
		body, err = dec(req, body)
		if err != nil {
			br, ok := httperr.AsBadRequest(err)
			if !ok {
				return err
			}
			return http1.WriteResponse(conn, errorResponse(br))
		}
	}
	req.SetBody(body)

	if hlog.Debug() {
		hlog.Debugf("server: %s %s from %s", req.Method, req.Path, conn.RemoteAddr())
	}

	resp := s.dispatch(req)

	for _, enc := range s.encoders {
		resp, err = enc(req, resp)
		if err != nil {
			br, ok := httperr.AsBadRequest(err)
			if !ok {
				return err
			}
			resp = errorResponse(br)
			break
		}
	}

	return http1.WriteResponse(conn, resp)
}

// dispatch runs the router, recovering a handler panic rather than
// letting it take down the connection's goroutine (and, left
// unguarded, the whole accept loop's errgroup). A panic carrying a
// *errors.BadRequest - a handler's chosen way of failing with a
// specific status and message - becomes that response; any other
// recovered value becomes a generic 500.
func (s *Server) dispatch(req *protocol.Request) (resp *protocol.Response) {
	defer func() {
		if r := recover(); r != nil {
			if br, ok := r.(*httperr.BadRequest); ok {
				resp = errorResponse(br)
				return
			}
			hlog.Errorf("server: handler panic for %s %s: %v", req.Method, req.Path, r)
			resp = protocol.NewStringResponse(500, protocol.NewHeaders(), "internal server error")
		}
	}()
	return s.router.Dispatch(req)
}
