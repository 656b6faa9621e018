//go:build linux

package server

import (
	"golang.org/x/sys/unix"

	"github.com/coriolis-http/httpcore/pkg/common/hlog"
)

// maskSIGPIPE blocks SIGPIPE on the calling thread. net.Conn writes
// already suppress SIGPIPE on most platforms, but an embedder that
// also opens raw sockets elsewhere in the process benefits from having
// the signal masked for the server's accept goroutine's thread too.
func maskSIGPIPE() {
	set := &unix.Sigset_t{}
	set.Val[0] = 1 << (unix.SIGPIPE - 1)
	if err := unix.PthreadSigmask(unix.SIG_BLOCK, set, nil); err != nil {
		hlog.Warnf("server: failed to mask SIGPIPE: %v", err)
	}
}
