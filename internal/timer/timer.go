// Package timer implements the post-registration countdown: tick once a
// second, then fire a completion callback that triggers navigation,
// unless the countdown was stopped first.
package timer

import (
	"sync"
	"time"
)

// tick is the countdown resolution; tests shrink it.
var tick = time.Second

type Countdown struct {
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// Start begins a countdown from seconds. onTick receives the remaining
// seconds after each elapsed second (seconds-1 down to 0); onComplete
// fires exactly once when the countdown reaches zero. Both callbacks run
// on the countdown's own goroutine and must not call Stop.
func Start(seconds int, onTick func(remaining int), onComplete func()) *Countdown {
	c := &Countdown{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go c.run(seconds, onTick, onComplete)

	return c
}

// Stop cancels the countdown. After Stop returns, neither callback will
// fire again; in particular a stopped countdown never completes.
func (c *Countdown) Stop() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
	<-c.done
}

func (c *Countdown) run(seconds int, onTick func(int), onComplete func()) {
	defer close(c.done)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	remaining := seconds
	for remaining > 0 {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
		}

		// A stop that raced the tick still wins.
		select {
		case <-c.stop:
			return
		default:
		}

		remaining--
		if onTick != nil {
			onTick(remaining)
		}
	}

	if onComplete != nil {
		onComplete()
	}
}
