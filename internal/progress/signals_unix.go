//go:build !windows

package progress

import (
	"os"
	"os/signal"
	"syscall"
)

var watchedSignals = []os.Signal{syscall.SIGWINCH, syscall.SIGINT, syscall.SIGTERM}

func isResize(sig os.Signal) bool {
	return sig == syscall.SIGWINCH
}

func reraise(sig os.Signal) {
	s, ok := sig.(syscall.Signal)
	if !ok {
		return
	}
	signal.Reset(s)
	_ = syscall.Kill(os.Getpid(), s)
}
