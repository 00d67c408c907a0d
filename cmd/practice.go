package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/intervu/internal/app"
	"github.com/abhisek/intervu/internal/config"
	"github.com/abhisek/intervu/internal/profile"
	"github.com/abhisek/intervu/internal/speech"
	"github.com/abhisek/intervu/internal/store"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start a practice interview",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp loads configuration, opens the store, builds the optional voice
// collaborators, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	_ = godotenv.Load()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg.Log)

	dbPath, err := resolveDBPath(cmd, cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	st.SetCap(cfg.Storage.HistoryCap)

	prof := loadProfile(st, logger)

	opts := app.Options{
		Store:   st,
		Config:  cfg,
		Profile: prof,
		Logger:  logger,
	}

	if offline, _ := cmd.Flags().GetBool("offline"); offline {
		opts.Speaker = &speech.MockSpeaker{}
		opts.Transcriber = speech.NewExclusive(&speech.MockTranscriber{
			Words:    strings.Fields("in my last role I led a small team through a difficult release"),
			Interval: 300 * time.Millisecond,
		})
		opts.Camera = &speech.MockCamera{}
		return app.Run(opts)
	}

	// Voice features are optional; the app runs text-only without them.
	speechCfg := cfg.Speech.ToSpeech()
	if speaker, err := speech.NewOpenAISpeaker(speechCfg, logger); err != nil {
		if !errors.Is(err, speech.ErrUnavailable) {
			return fmt.Errorf("init speaker: %w", err)
		}
		logger.Info().Err(err).Msg("spoken questions disabled")
	} else {
		opts.Speaker = speaker
		defer speaker.Stop()
	}
	if transcriber, err := speech.NewOpenAITranscriber(speechCfg, logger); err != nil {
		if !errors.Is(err, speech.ErrUnavailable) {
			return fmt.Errorf("init transcriber: %w", err)
		}
		logger.Info().Err(err).Msg("voice input disabled")
	} else {
		opts.Transcriber = speech.NewExclusive(transcriber)
	}
	if camera, err := speech.NewDeviceCamera(cfg.Speech.CameraDevice); err != nil {
		logger.Info().Err(err).Msg("camera disabled")
	} else {
		opts.Camera = camera
	}

	return app.Run(opts)
}

// newLogger builds the zerolog logger. The TUI owns the terminal, so logs
// go to the configured file or nowhere.
func newLogger(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = io.Discard
	if cfg.File != "" {
		if f, ferr := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); ferr == nil {
			out = f
		}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// loadProfile reads the stored profile, falling back to defaults on any
// missing or invalid record.
func loadProfile(st *store.Store, logger zerolog.Logger) profile.Profile {
	raw, err := st.ProfileRepo().Load(context.Background())
	if err != nil {
		if !errors.Is(err, store.ErrNoProfile) {
			logger.Warn().Err(err).Msg("load profile")
		}
		return profile.Default()
	}
	prof, err := profile.Parse(raw)
	if err != nil {
		logger.Warn().Err(err).Msg("stored profile invalid, using defaults")
		return profile.Default()
	}
	return prof
}
