package speech

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"
)

// MockTranscriber emits a canned word sequence at a fixed interval,
// simulating a live recognition session for tests and offline runs.
type MockTranscriber struct {
	Words    []string
	Interval time.Duration
}

// Stream delivers one partial event per word, then a final event joining
// everything delivered so far. Stopping early finalizes: the words heard
// up to the stop still arrive as the final event before the channel closes.
func (m *MockTranscriber) Stream(ctx context.Context) (<-chan TranscriptEvent, StopFunc, error) {
	interval := m.Interval
	if interval <= 0 {
		interval = 10 * time.Millisecond
	}

	// Buffer the final event so an early stop never blocks the goroutine
	// on a reader that has gone away.
	events := make(chan TranscriptEvent, 1)
	stopped := make(chan struct{})

	go func() {
		defer close(events)
		var heard []string
	listen:
		for _, w := range m.Words {
			select {
			case <-stopped:
				break listen
			case <-ctx.Done():
				return
			case <-time.After(interval):
			}
			select {
			case events <- TranscriptEvent{Kind: KindPartial, Text: w}:
				heard = append(heard, w)
			case <-stopped:
				break listen
			case <-ctx.Done():
				return
			}
		}
		if len(heard) == 0 {
			return
		}
		select {
		case events <- TranscriptEvent{Kind: KindFinal, Text: strings.Join(heard, " ")}:
		case <-ctx.Done():
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() { close(stopped) })
	}
	return events, stop, nil
}

// MockSpeaker records utterances instead of playing them.
type MockSpeaker struct {
	mu       sync.Mutex
	Uttered  []string
	Stopped  int
	SpeakErr error
}

func (m *MockSpeaker) Speak(ctx context.Context, text string) error {
	if m.SpeakErr != nil {
		return m.SpeakErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Uttered = append(m.Uttered, text)
	return nil
}

func (m *MockSpeaker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Stopped++
}

// Utterances returns a copy of everything spoken so far.
func (m *MockSpeaker) Utterances() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Uttered))
	copy(out, m.Uttered)
	return out
}

// MockCamera grants or denies stream acquisition.
type MockCamera struct {
	Deny bool
}

type nopStream struct{}

func (nopStream) Close() error { return nil }

func (m *MockCamera) Acquire(ctx context.Context) (io.Closer, error) {
	if m.Deny {
		return nil, ErrUnavailable
	}
	return nopStream{}, nil
}
