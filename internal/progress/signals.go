package progress

import (
	"context"
	"os"
	"os/signal"
	"time"
)

// cleanupTimeout bounds how long an interrupt waits for the driver to
// restore the terminal before the signal is re-raised.
const cleanupTimeout = 250 * time.Millisecond

// WatchSignals forwards terminal resizes and interrupts to p until ctx is
// done or the returned stop function is called. On SIGINT or SIGTERM the
// bar is interrupted, given a moment to clean up, and the signal is then
// re-raised with its default disposition so the process exits the way the
// caller's shell expects.
func WatchSignals(ctx context.Context, p *Progress) (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, watchedSignals...)

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case sig := <-ch:
				if isResize(sig) {
					p.Resized()
					continue
				}
				p.Interrupt()
				select {
				case <-p.Exited():
				case <-time.After(cleanupTimeout):
				}
				signal.Stop(ch)
				reraise(sig)
				return
			}
		}
	}()

	return func() {
		cancel()
		signal.Stop(ch)
		<-done
	}
}
