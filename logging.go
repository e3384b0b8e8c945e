package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sxxrfx/music-visualizer/config"
)

// setupLogger points the global zerolog logger at the configured sink. The
// terminal display owns stdout/stderr, so without a log file it logs nowhere.
func setupLogger(cfg *config.Config) (func(), error) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	var (
		w       io.Writer
		closeFn = func() {}
	)
	switch {
	case cfg.Log.File != "":
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case cfg.Display.Backend == "terminal":
		w = io.Discard
	default:
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	log.Logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
	return closeFn, nil
}
