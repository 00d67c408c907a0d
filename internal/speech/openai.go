package speech

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

// Config holds the settings for the OpenAI-backed speech adapters.
type Config struct {
	APIKey         string
	BaseURL        string
	STTModel       string // whisper-1 by default
	TTSModel       string // tts-1 by default
	Voice          string
	ResponseFormat string // mp3, wav, ...
	Speed          float64
	CacheDir       string
	PlayerCmd      string // e.g. "afplay" or "mpg123"
	RecorderCmd    string // e.g. "sox -d -c 1 -r 16000" (output path appended)
	MaxTextChars   int
}

func (c *Config) applyDefaults() {
	if c.STTModel == "" {
		c.STTModel = openai.Whisper1
	}
	if c.TTSModel == "" {
		c.TTSModel = string(openai.TTSModel1)
	}
	if c.Voice == "" {
		c.Voice = string(openai.VoiceNova)
	}
	if c.ResponseFormat == "" {
		c.ResponseFormat = "mp3"
	}
	if c.Speed <= 0 {
		c.Speed = 1.0
	}
	if c.CacheDir == "" {
		c.CacheDir = filepath.Join(os.TempDir(), "intervu-audio")
	}
	if c.MaxTextChars <= 0 {
		c.MaxTextChars = 500
	}
}

func newClient(cfg Config) *openai.Client {
	conf := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		conf.BaseURL = cfg.BaseURL
	}
	return openai.NewClientWithConfig(conf)
}

// OpenAITranscriber records from the microphone with an external recorder
// process and transcribes the take with the OpenAI audio API. Events are
// delivered as a single final transcript when the session is stopped; the
// channel is then closed.
type OpenAITranscriber struct {
	cfg    Config
	client *openai.Client
	log    zerolog.Logger
}

// NewOpenAITranscriber builds the transcriber, or ErrUnavailable when the
// API key or recorder command is missing.
func NewOpenAITranscriber(cfg Config, log zerolog.Logger) (*OpenAITranscriber, error) {
	cfg.applyDefaults()
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("transcriber: %w: no API key", ErrUnavailable)
	}
	if strings.TrimSpace(cfg.RecorderCmd) == "" {
		return nil, fmt.Errorf("transcriber: %w: no recorder command", ErrUnavailable)
	}
	return &OpenAITranscriber{cfg: cfg, client: newClient(cfg), log: log}, nil
}

// Stream starts the recorder and returns a channel that yields the final
// transcript after stop is called. Stopping releases the recorder process;
// nothing is delivered after the channel closes.
func (t *OpenAITranscriber) Stream(ctx context.Context) (<-chan TranscriptEvent, StopFunc, error) {
	recCtx, cancel := context.WithCancel(ctx)

	wav := filepath.Join(os.TempDir(), fmt.Sprintf("intervu-take-%d.wav", os.Getpid()))
	parts := strings.Fields(t.cfg.RecorderCmd)
	args := append(parts[1:], wav)
	rec := exec.CommandContext(recCtx, parts[0], args...)
	if err := rec.Start(); err != nil {
		cancel()
		return nil, nil, fmt.Errorf("start recorder: %w", err)
	}
	t.log.Debug().Str("cmd", parts[0]).Msg("recording started")

	events := make(chan TranscriptEvent, 1)
	stopped := make(chan struct{})

	go func() {
		defer close(events)
		<-stopped

		cancel()
		rec.Wait()

		resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
			Model:    t.cfg.STTModel,
			FilePath: wav,
		})
		os.Remove(wav)
		if err != nil {
			t.log.Warn().Err(err).Msg("transcription failed")
			return
		}
		if text := strings.TrimSpace(resp.Text); text != "" {
			events <- TranscriptEvent{Kind: KindFinal, Text: text}
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() { close(stopped) })
	}
	return events, stop, nil
}
