//go:build windows

package progress

import (
	"os"
	"os/signal"
	"syscall"
)

var watchedSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func isResize(os.Signal) bool {
	return false
}

// reraise exits with the conventional 128+signal status; Windows cannot
// deliver a signal to its own process.
func reraise(sig os.Signal) {
	signal.Reset(sig)
	code := 130
	if sig == syscall.SIGTERM {
		code = 143
	}
	os.Exit(code)
}
