// Package config loads the application's YAML configuration, falling
// back to sane defaults when the file or individual keys are absent.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/intervu/internal/speech"
)

type Config struct {
	Log       LogConfig       `yaml:"log"`
	Storage   StorageConfig   `yaml:"storage"`
	Speech    SpeechConfig    `yaml:"speech"`
	Interview InterviewConfig `yaml:"interview"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type StorageConfig struct {
	DBPath string `yaml:"db_path"`

	// HistoryCap overrides the bound on the score history and replay
	// logs. Zero keeps the built-in cap of 20.
	HistoryCap int `yaml:"history_cap"`
}

type SpeechConfig struct {
	APIKeyEnv      string  `yaml:"api_key_env"`
	BaseURL        string  `yaml:"base_url"`
	STTModel       string  `yaml:"stt_model"`
	TTSModel       string  `yaml:"tts_model"`
	Voice          string  `yaml:"voice"` // nova, alloy, etc
	ResponseFormat string  `yaml:"response_format"`
	Speed          float64 `yaml:"speed"`
	MaxTextChars   int     `yaml:"max_text_chars"`
	AudioCacheDir  string  `yaml:"audio_cache_dir"`
	RecorderCmd    string  `yaml:"recorder_cmd"`
	PlayerCmd      string  `yaml:"player_cmd"`
	CameraDevice   string  `yaml:"camera_device"` // e.g. /dev/video0
}

type InterviewConfig struct {
	DefaultMode        string `yaml:"default_mode"`        // hr, technical, behavioral
	DefaultIndustry    string `yaml:"default_industry"`    // it, finance, marketing, default
	DefaultInterviewer string `yaml:"default_interviewer"` // supportive, balanced, challenging
}

func Default() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
		},
		Speech: SpeechConfig{
			APIKeyEnv:      "OPENAI_API_KEY",
			STTModel:       "whisper-1",
			TTSModel:       "tts-1",
			Voice:          "nova",
			ResponseFormat: "mp3",
			Speed:          1.0,
			MaxTextChars:   500,
		},
		Interview: InterviewConfig{
			DefaultMode:        "hr",
			DefaultIndustry:    "default",
			DefaultInterviewer: "balanced",
		},
	}
}

// Load reads the YAML file at path on top of the defaults. A missing
// file is not an error; the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Speech.APIKeyEnv == "" {
		cfg.Speech.APIKeyEnv = "OPENAI_API_KEY"
	}
	if cfg.Speech.Speed <= 0 {
		cfg.Speech.Speed = 1.0
	}
	if cfg.Speech.MaxTextChars <= 0 {
		cfg.Speech.MaxTextChars = 500
	}
	if cfg.Interview.DefaultMode == "" {
		cfg.Interview.DefaultMode = "hr"
	}
	if cfg.Interview.DefaultIndustry == "" {
		cfg.Interview.DefaultIndustry = "default"
	}
	if cfg.Interview.DefaultInterviewer == "" {
		cfg.Interview.DefaultInterviewer = "balanced"
	}
	return cfg, nil
}

// DefaultPath resolves the config file location under the XDG config
// directory, honoring INTERVU_CONFIG as an override.
func DefaultPath() string {
	if p := os.Getenv("INTERVU_CONFIG"); p != "" {
		return p
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "config.yaml"
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "intervu", "config.yaml")
}

// ToSpeech maps the speech section onto the speech package's config,
// resolving the API key from the configured environment variable.
func (c SpeechConfig) ToSpeech() speech.Config {
	return speech.Config{
		APIKey:         os.Getenv(c.APIKeyEnv),
		BaseURL:        c.BaseURL,
		STTModel:       c.STTModel,
		TTSModel:       c.TTSModel,
		Voice:          c.Voice,
		ResponseFormat: c.ResponseFormat,
		Speed:          c.Speed,
		MaxTextChars:   c.MaxTextChars,
		CacheDir:       c.AudioCacheDir,
		RecorderCmd:    c.RecorderCmd,
		PlayerCmd:      c.PlayerCmd,
	}
}
