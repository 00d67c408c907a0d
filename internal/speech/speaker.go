package speech

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/sync/singleflight"
)

// OpenAISpeaker synthesizes utterances through the OpenAI speech API, caches
// the audio on disk keyed by content hash, and plays it with an external
// player process. A new Speak cancels any utterance still playing.
type OpenAISpeaker struct {
	cfg    Config
	client *openai.Client
	log    zerolog.Logger
	sf     singleflight.Group

	mu      sync.Mutex
	playing context.CancelFunc
}

// NewOpenAISpeaker builds the speaker, or ErrUnavailable when the API key or
// player command is missing.
func NewOpenAISpeaker(cfg Config, log zerolog.Logger) (*OpenAISpeaker, error) {
	cfg.applyDefaults()
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("speaker: %w: no API key", ErrUnavailable)
	}
	if strings.TrimSpace(cfg.PlayerCmd) == "" {
		return nil, fmt.Errorf("speaker: %w: no player command", ErrUnavailable)
	}
	if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("create audio cache dir: %w", err)
	}
	return &OpenAISpeaker{cfg: cfg, client: newClient(cfg), log: log}, nil
}

// Speak synthesizes (or reuses cached audio for) text and plays it,
// cancelling any in-flight utterance first so audio never overlaps.
func (s *OpenAISpeaker) Speak(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("empty utterance")
	}
	if r := []rune(text); len(r) > s.cfg.MaxTextChars {
		text = string(r[:s.cfg.MaxTextChars])
	}

	path, err := s.synthesizeToFile(ctx, text)
	if err != nil {
		return err
	}

	playCtx := s.interrupt()
	cmd := exec.CommandContext(playCtx, s.cfg.PlayerCmd, path)
	if err := cmd.Run(); err != nil {
		if playCtx.Err() != nil {
			return nil // superseded or stopped, not a failure
		}
		return fmt.Errorf("play utterance: %w", err)
	}
	return nil
}

// Stop cancels the in-flight utterance, if any.
func (s *OpenAISpeaker) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playing != nil {
		s.playing()
		s.playing = nil
	}
}

// interrupt cancels the current playback and registers a fresh context for
// the next one.
func (s *OpenAISpeaker) interrupt() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playing != nil {
		s.playing()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.playing = cancel
	return ctx
}

// synthesizeToFile returns a cached audio file for text, synthesizing it on
// a miss. Concurrent misses for the same key are collapsed by singleflight
// and the write lands with an atomic rename.
func (s *OpenAISpeaker) synthesizeToFile(ctx context.Context, text string) (string, error) {
	key := s.cacheKey(text)
	final := filepath.Join(s.cfg.CacheDir, key+"."+s.cfg.ResponseFormat)

	if fileExists(final) {
		return final, nil
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		if fileExists(final) {
			return final, nil
		}

		resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
			Model:          openai.SpeechModel(s.cfg.TTSModel),
			Input:          text,
			Voice:          openai.SpeechVoice(s.cfg.Voice),
			ResponseFormat: openai.SpeechResponseFormat(s.cfg.ResponseFormat),
			Speed:          s.cfg.Speed,
		})
		if err != nil {
			return "", fmt.Errorf("synthesize speech: %w", err)
		}
		defer resp.Close()

		audio, err := io.ReadAll(resp)
		if err != nil {
			return "", fmt.Errorf("read audio: %w", err)
		}

		tmp := final + ".tmp"
		if err := os.WriteFile(tmp, audio, 0o644); err != nil {
			return "", fmt.Errorf("write audio: %w", err)
		}
		if err := os.Rename(tmp, final); err != nil {
			os.Remove(tmp)
			return "", fmt.Errorf("finalize audio: %w", err)
		}

		s.log.Debug().Str("key", key).Int("bytes", len(audio)).Msg("utterance cached")
		return final, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (s *OpenAISpeaker) cacheKey(text string) string {
	raw := s.cfg.TTSModel + "|" + s.cfg.Voice + "|" + s.cfg.ResponseFormat + "|" + fmt.Sprintf("%.2f", s.cfg.Speed) + "|" + text
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir() && st.Size() > 0
}
