package speech

import (
	"context"
	"sync"
)

// Exclusive enforces the one-active-session-per-purpose contract: starting a
// new stream while one is active stops the old one first.
type Exclusive struct {
	inner Transcriber

	mu         sync.Mutex
	generation int
	activeStop StopFunc
}

// NewExclusive wraps a Transcriber so at most one stream is live at a time.
func NewExclusive(inner Transcriber) *Exclusive {
	return &Exclusive{inner: inner}
}

// Stream stops any active session, then opens a new one.
func (e *Exclusive) Stream(ctx context.Context) (<-chan TranscriptEvent, StopFunc, error) {
	e.mu.Lock()
	if e.activeStop != nil {
		e.activeStop()
		e.activeStop = nil
	}
	e.mu.Unlock()

	events, stop, err := e.inner.Stream(ctx)
	if err != nil {
		return nil, nil, err
	}

	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.activeStop = stop
	e.mu.Unlock()

	var once sync.Once
	wrapped := func() {
		once.Do(func() {
			stop()
			e.mu.Lock()
			// Only clear the handle if no newer stream replaced it.
			if e.generation == gen {
				e.activeStop = nil
			}
			e.mu.Unlock()
		})
	}
	return events, wrapped, nil
}
