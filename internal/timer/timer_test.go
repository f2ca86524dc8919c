package timer

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shortenTick(t *testing.T, d time.Duration) {
	t.Helper()
	old := tick
	tick = d
	t.Cleanup(func() { tick = old })
}

func TestCountdown_CompletesOnce(t *testing.T) {
	shortenTick(t, 10*time.Millisecond)

	var mu sync.Mutex
	var ticks []int
	completions := 0

	done := make(chan struct{})
	Start(3,
		func(remaining int) {
			mu.Lock()
			ticks = append(ticks, remaining)
			mu.Unlock()
		},
		func() {
			mu.Lock()
			completions++
			mu.Unlock()
			close(done)
		},
	)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("countdown never completed")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{2, 1, 0}, ticks)
	assert.Equal(t, 1, completions)
}

func TestCountdown_StopPreventsCompletion(t *testing.T) {
	shortenTick(t, 10*time.Millisecond)

	var mu sync.Mutex
	completed := false

	c := Start(5,
		nil,
		func() {
			mu.Lock()
			completed = true
			mu.Unlock()
		},
	)

	// Roughly two ticks in, mimic the member navigating away.
	time.Sleep(25 * time.Millisecond)
	c.Stop()

	// Wait past where completion would have fired.
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.False(t, completed, "onComplete fired after Stop")
}

func TestCountdown_StopIsIdempotent(t *testing.T) {
	shortenTick(t, 10*time.Millisecond)

	c := Start(10, nil, nil)
	c.Stop()
	c.Stop()
}

func TestCountdown_NoTicksAfterStopReturns(t *testing.T) {
	shortenTick(t, 5*time.Millisecond)

	var mu sync.Mutex
	ticks := 0

	c := Start(1000, func(int) {
		mu.Lock()
		ticks++
		mu.Unlock()
	}, nil)

	time.Sleep(20 * time.Millisecond)
	c.Stop()

	mu.Lock()
	seen := ticks
	mu.Unlock()

	time.Sleep(30 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, seen, ticks, "ticks continued after Stop returned")
}
