package webinar

import (
	"sync"
	"time"
)

// Ticker recomputes a countdown on a fixed interval and hands each tick
// to the callback. It stops itself on the first started tick, so the
// terminal state is delivered exactly once.
type Ticker struct {
	stop chan struct{}
	once sync.Once
}

// StartTicker begins ticking immediately. The interval is one second in
// production; tests pass something shorter.
func StartTicker(scheduled time.Time, interval time.Duration, fn func(Countdown)) *Ticker {
	t := &Ticker{stop: make(chan struct{})}
	go t.run(scheduled, interval, fn)
	return t
}

func (t *Ticker) run(scheduled time.Time, interval time.Duration, fn func(Countdown)) {
	tick := time.NewTicker(interval)
	defer tick.Stop()

	for {
		select {
		case <-t.stop:
			return
		case now := <-tick.C:
			c := Remaining(scheduled, now)
			fn(c)
			if c.State == StateStarted {
				return
			}
		}
	}
}

// Stop cancels the ticker. Safe to call more than once and after the
// ticker has reached its terminal state.
func (t *Ticker) Stop() {
	t.once.Do(func() { close(t.stop) })
}
