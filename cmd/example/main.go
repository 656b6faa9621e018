// Command example embeds the server core directly, the way a host
// process is expected to: build a Server with a handful of routes and
// run it until an OS signal asks it to drain and exit.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/coriolis-http/httpcore/pkg/common/hlog"
	"github.com/coriolis-http/httpcore/pkg/httprouter"
	"github.com/coriolis-http/httpcore/pkg/protocol"
	"github.com/coriolis-http/httpcore/pkg/server"
)

func main() {
	srv := server.New(":8080",
		server.WithRoute(httprouter.New(protocol.MethodGet, "/ping", handlePing)),
		server.WithRoute(httprouter.New(protocol.MethodGet, "/users/%d", handleUser)),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		if err := srv.Run(ctx); err != nil {
			hlog.Errorf("server exited: %v", err)
		}
	}()

	<-ctx.Done()
	hlog.Infof("shutting down, draining connections")
	if err := srv.Stop(context.Background()); err != nil {
		hlog.Errorf("shutdown error: %v", err)
	}
}

func handlePing(*protocol.Request) *protocol.Response {
	return protocol.NewStringResponse(200, protocol.NewHeaders(), "pong")
}

func handleUser(req *protocol.Request) *protocol.Response {
	headers := protocol.NewHeaders()
	headers.Set("Content-Type", "text/plain")
	return protocol.NewStringResponse(200, headers, "user path: "+req.Path)
}
