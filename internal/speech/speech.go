// Package speech defines the narrow capability interfaces for voice input
// and output, plus adapters for the OpenAI audio APIs. The classifier and
// selector core never depends on these being present; a missing capability
// degrades to typed answers and silent questions.
package speech

import (
	"context"
	"errors"
	"io"
)

// ErrUnavailable reports that a capability is not configured in this
// environment (missing API key, recorder, or player). Callers disable the
// feature with a notice instead of failing.
var ErrUnavailable = errors.New("speech capability unavailable")

// TranscriptKind distinguishes incremental text from the final transcript.
type TranscriptKind string

const (
	KindPartial TranscriptKind = "partial"
	KindFinal   TranscriptKind = "final"
)

// TranscriptEvent is one increment of recognized speech.
type TranscriptEvent struct {
	Kind TranscriptKind
	Text string
}

// StopFunc finalizes a recognition session: speech recognized up to the
// stop may still be delivered as a final event, after which the channel
// closes. Safe to call more than once.
type StopFunc func()

// Transcriber is a streaming speech-to-text session source.
type Transcriber interface {
	// Stream opens a listening session delivering transcript events until
	// stopped. Each call represents one recognition session.
	Stream(ctx context.Context) (<-chan TranscriptEvent, StopFunc, error)
}

// Speaker plays text aloud. At most one utterance is in flight: a new Speak
// cancels any utterance still playing before starting.
type Speaker interface {
	Speak(ctx context.Context, text string) error
	Stop()
}

// CameraSource acquires a live camera stream. Denial is reported as an
// error for logging; callers leave video features inactive and move on.
type CameraSource interface {
	Acquire(ctx context.Context) (io.Closer, error)
}
