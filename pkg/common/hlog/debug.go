package hlog

import (
	"os"
	"sync/atomic"
)

// HTTP_DBG, when set to a non-empty value at process start, enables
// verbose per-connection tracing. There are no ordering guarantees on
// later updates via SetDebug; it is a plain process-wide flag.
const debugEnvVar = "HTTP_DBG"

var debugFlag int32

func init() {
	if os.Getenv(debugEnvVar) != "" {
		atomic.StoreInt32(&debugFlag, 1)
	}
}

func startupLevel() Level {
	if os.Getenv(debugEnvVar) != "" {
		return LevelDebug
	}
	return LevelInfo
}

// Debug reports whether verbose tracing is currently enabled.
func Debug() bool {
	return atomic.LoadInt32(&debugFlag) != 0
}

// SetDebug toggles verbose tracing at runtime.
func SetDebug(on bool) {
	if on {
		atomic.StoreInt32(&debugFlag, 1)
		SetLevel(LevelDebug)
	} else {
		atomic.StoreInt32(&debugFlag, 0)
		SetLevel(LevelInfo)
	}
}
