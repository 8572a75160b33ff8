package client

import (
	"context"
	"time"
)

// Poller refreshes a session on a fixed interval until stopped. It replaces
// the dashboard's manual refresh button for long-lived terminals.
type Poller struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// StartPoller refreshes the session every interval until Stop is called or
// the parent context is cancelled. Refresh errors are reported through
// onError (which may be nil) and do not stop the loop.
func StartPoller(ctx context.Context, session *Session, interval time.Duration, onError func(error)) *Poller {
	ctx, cancel := context.WithCancel(ctx)
	p := &Poller{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(p.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := session.Refresh(ctx); err != nil {
					if ctx.Err() != nil {
						return
					}
					if onError != nil {
						onError(err)
					}
				}
			}
		}
	}()
	return p
}

// Stop cancels the poller, aborting any in-flight refresh, and waits for
// the loop to exit.
func (p *Poller) Stop() {
	p.cancel()
	<-p.done
}
