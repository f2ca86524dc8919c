// Package session holds the process-wide current member. It replaces the
// browser app's ambient context with an explicit object handed to the
// views that need it.
package session

import (
	"sync"

	"orbosis/pkg/types"
)

type Context struct {
	mu      sync.Mutex
	current *types.Profile
	subs    map[int]chan *types.Profile
	nextID  int
}

func New() *Context {
	return &Context{subs: make(map[int]chan *types.Profile)}
}

// Current returns a copy of the signed-in member, or nil at cold start.
func (c *Context) Current() *types.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return nil
	}

	current := *c.current
	return &current
}

// Set replaces the current member and notifies subscribers. Each
// subscriber channel is coalescing: a slow reader sees only the latest
// profile, never a backlog.
func (c *Context) Set(profile *types.Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if profile == nil {
		c.current = nil
	} else {
		current := *profile
		c.current = &current
	}

	c.notifyLocked()
}

// Clear signs the member out.
func (c *Context) Clear() {
	c.Set(nil)
}

// Subscribe registers for profile changes. The returned cancel func tears
// the subscription down; it is safe to call more than once.
func (c *Context) Subscribe() (<-chan *types.Profile, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++

	ch := make(chan *types.Profile, 1)
	c.subs[id] = ch

	cancel := func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if _, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(ch)
		}
	}

	return ch, cancel
}

func (c *Context) notifyLocked() {
	for _, ch := range c.subs {
		// Drop the stale pending value, if any, then push the latest.
		select {
		case <-ch:
		default:
		}

		select {
		case ch <- c.current:
		default:
		}
	}
}
