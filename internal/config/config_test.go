package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Speech.Voice != "nova" {
		t.Errorf("voice = %q, want %q", cfg.Speech.Voice, "nova")
	}
	if cfg.Interview.DefaultInterviewer != "balanced" {
		t.Errorf("interviewer = %q, want %q", cfg.Interview.DefaultInterviewer, "balanced")
	}
}

func TestLoadOverridesAndBackfills(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
log:
  level: debug
speech:
  voice: alloy
  speed: -3
interview:
  default_mode: behavioral
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Speech.Voice != "alloy" {
		t.Errorf("voice = %q, want %q", cfg.Speech.Voice, "alloy")
	}
	if cfg.Speech.Speed != 1.0 {
		t.Errorf("speed = %v, want backfilled 1.0", cfg.Speech.Speed)
	}
	if cfg.Interview.DefaultMode != "behavioral" {
		t.Errorf("default mode = %q, want %q", cfg.Interview.DefaultMode, "behavioral")
	}
	if cfg.Interview.DefaultIndustry != "default" {
		t.Errorf("default industry = %q, want backfilled default", cfg.Interview.DefaultIndustry)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestToSpeechResolvesKeyFromEnv(t *testing.T) {
	t.Setenv("INTERVU_TEST_KEY", "sk-abc")
	sc := SpeechConfig{APIKeyEnv: "INTERVU_TEST_KEY", Voice: "nova", Speed: 1.0}
	got := sc.ToSpeech()
	if got.APIKey != "sk-abc" {
		t.Errorf("APIKey = %q, want %q", got.APIKey, "sk-abc")
	}
	if got.Voice != "nova" {
		t.Errorf("Voice = %q, want %q", got.Voice, "nova")
	}
}
