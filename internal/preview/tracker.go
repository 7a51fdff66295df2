package preview

import (
	"context"
	"sync"
)

// Tracker hands out one cancellable generation per selection. Starting a
// new generation cancels the previous one, and results from anything but
// the newest generation are stale.
type Tracker struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// Begin cancels the in-flight generation and starts a new one.
func (t *Tracker) Begin(parent context.Context) (context.Context, uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	t.gen++
	t.cancel = cancel
	return ctx, t.gen
}

// Finish reports whether gen is still the newest generation and, if so,
// releases its context.
func (t *Tracker) Finish(gen uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.gen {
		return false
	}
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	return true
}

// Stop cancels the in-flight generation and invalidates it.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.gen++
}
