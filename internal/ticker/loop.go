package ticker

import (
	"context"
	"time"
)

// Loop is a scoped periodic callback. The callback runs on the loop's own
// goroutine until it returns false, the parent context ends, or the loop is
// cancelled.
type Loop struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Start runs fn every interval.
func Start(ctx context.Context, src Source, interval time.Duration, fn func() bool) *Loop {
	ctx, cancel := context.WithCancel(ctx)
	l := &Loop{cancel: cancel, done: make(chan struct{})}
	t := src.NewTicker(interval)

	go func() {
		defer close(l.done)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C():
				if ctx.Err() != nil {
					return
				}
				more := fn()
				if a, ok := t.(acker); ok {
					a.ack()
				}
				if !more {
					return
				}
			}
		}
	}()
	return l
}

// Cancel asks the loop to exit and returns immediately. A callback already
// running is allowed to finish.
func (l *Loop) Cancel() {
	l.cancel()
}

// Stop cancels the loop and waits for its goroutine to exit. Once Stop
// returns fn will not be called again. Must not be called from fn.
func (l *Loop) Stop() {
	l.cancel()
	<-l.done
}

// Done is closed when the loop goroutine has exited.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
