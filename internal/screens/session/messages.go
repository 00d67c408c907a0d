package session

import (
	"io"

	"github.com/abhisek/intervu/internal/speech"
)

// speakDoneMsg is sent when a text-to-speech utterance finishes or fails.
type speakDoneMsg struct {
	Err error
}

// recStartedMsg is sent when a voice recording session has been opened.
type recStartedMsg struct {
	Events <-chan speech.TranscriptEvent
	Stop   speech.StopFunc
	Err    error
}

// transcriptMsg carries one transcript event; the channel rides along so
// the listener command can re-arm itself.
type transcriptMsg struct {
	Event  speech.TranscriptEvent
	Events <-chan speech.TranscriptEvent
}

// recClosedMsg is sent when the transcript channel closes.
type recClosedMsg struct{}

// cameraMsg reports the outcome of a camera acquisition attempt.
type cameraMsg struct {
	Stream io.Closer
	Err    error
}

// persistedMsg is sent after the finished session has been written out.
type persistedMsg struct {
	Err error
}
