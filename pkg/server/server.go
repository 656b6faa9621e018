// Package server embeds an HTTP/1.1 origin server core into a host
// process: it owns the listener, the per-connection dispatch pipeline,
// and graceful shutdown, while leaving routing, decoding, and encoding
// to hooks the embedder supplies.
package server

import (
	"context"
	"fmt"
	"net"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/coriolis-http/httpcore/pkg/common/hlog"
	"github.com/coriolis-http/httpcore/pkg/httprouter"
	"github.com/coriolis-http/httpcore/pkg/protocol"
)

const (
	statusInitialized uint32 = iota
	statusRunning
	statusClosed
)

// DecoderHook transforms a request's raw body before the handler sees
// it. Hooks run in registration order, each receiving the previous
// hook's output.
type DecoderHook func(req *protocol.Request, raw string) (string, error)

// EncoderHook transforms a handler's response before it is written to
// the wire. Hooks run in registration order.
type EncoderHook func(req *protocol.Request, resp *protocol.Response) (*protocol.Response, error)

// Server is an embeddable HTTP/1.1 origin server core. Its zero value
// is not usable; construct one with New.
type Server struct {
	addr   string
	status uint32

	router *httprouter.Router

	decoders []DecoderHook
	encoders []EncoderHook

	maskSIGPIPE bool
	maxBodySize int

	listener net.Listener
	group    *errgroup.Group
	cancel   context.CancelFunc
}

// New builds a Server bound to addr (host:port, passed to net.Listen)
// with opts applied in order.
func New(addr string, opts ...Option) *Server {
	s := &Server{
		addr:        addr,
		router:      httprouter.NewRouter(),
		maskSIGPIPE: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Option configures a Server at construction time.
type Option func(*Server)

// WithLogger replaces the package-wide logger used for connection
// lifecycle messages.
func WithLogger(l hlog.FullLogger) Option {
	return func(s *Server) { hlog.SetLogger(l) }
}

// WithFallback replaces the handler used when no route matches.
func WithFallback(h httprouter.Handler) Option {
	return func(s *Server) { s.router.SetFallback(h) }
}

// WithRoute registers one path entry. Entries are tried most recently
// added first, so a later route for the same path shadows an earlier one.
func WithRoute(entry httprouter.PathEntry) Option {
	return func(s *Server) { s.router.Add(entry) }
}

// WithDecoder appends a DecoderHook to the request pipeline.
func WithDecoder(h DecoderHook) Option {
	return func(s *Server) { s.decoders = append(s.decoders, h) }
}

// WithEncoder appends an EncoderHook to the response pipeline.
func WithEncoder(h EncoderHook) Option {
	return func(s *Server) { s.encoders = append(s.encoders, h) }
}

// WithSIGPIPEMasking controls whether Run masks SIGPIPE on the calling
// thread before accepting connections. It defaults to true; writes to
// a peer that has already closed its read side raise SIGPIPE on some
// platforms, and an embedder that already manages signal disposition
// itself should disable this.
func WithSIGPIPEMasking(on bool) Option {
	return func(s *Server) { s.maskSIGPIPE = on }
}

// WithMaxBodySize bounds how many bytes a single request body - via
// either Content-Length or decoded chunked framing - may materialize
// to. Requests whose body would exceed it fail with a 413. 0 (the
// default) means unbounded.
func WithMaxBodySize(n int) Option {
	return func(s *Server) { s.maxBodySize = n }
}

// Addr returns the address the server is configured to bind, or did
// bind, to. Useful when addr was passed as "host:0" and the kernel
// picked the port.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Run binds the listener and accepts connections until ctx is
// cancelled or Stop is called. Each accepted connection is served on
// its own goroutine, tracked by an errgroup so Stop can wait for
// in-flight connections to drain.
func (s *Server) Run(ctx context.Context) error {
	if !atomic.CompareAndSwapUint32(&s.status, statusInitialized, statusRunning) {
		return fmt.Errorf("server: already running or closed")
	}
	defer atomic.StoreUint32(&s.status, statusClosed)

	if s.maskSIGPIPE {
		maskSIGPIPE()
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = ln

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	g := &errgroup.Group{}
	s.group = g

	hlog.Infof("server: listening on %s", ln.Addr())

	go func() {
		<-runCtx.Done()
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-runCtx.Done():
				return s.group.Wait()
			default:
				hlog.Warnf("server: accept error: %v", err)
				return err
			}
		}
		g.Go(func() error {
			s.serveConn(runCtx, conn)
			return nil
		})
	}
}

// Stop cancels the accept loop and blocks until every in-flight
// connection spawned by Run has finished being served, or ctx expires
// first.
func (s *Server) Stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()

	done := make(chan error, 1)
	go func() { done <- s.group.Wait() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
