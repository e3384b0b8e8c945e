// Package main is the entry point for the music visualizer: it plays one
// sound file and draws the samples being played as a live waveform.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/sxxrfx/music-visualizer/config"
	"github.com/sxxrfx/music-visualizer/player"
	"github.com/sxxrfx/music-visualizer/source"
	"github.com/sxxrfx/music-visualizer/ui"
)

func loadConfig() (*config.Config, error) {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	display := flag.String("display", "", "render backend: window or terminal")
	audio := flag.String("audio", "", "audio backend: oto, beep or portaudio")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: music-visualizer [flags] [file]")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return nil, err
		}
	}
	if flag.NArg() > 0 {
		cfg.File = flag.Arg(0)
	}
	if *display != "" {
		cfg.Display.Backend = *display
	}
	if *audio != "" {
		cfg.Audio.Backend = *audio
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	closeLog, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	format, err := player.ParseSampleFormat(cfg.Audio.Format)
	if err != nil {
		return err
	}
	downmix, err := player.ParseDownmix(cfg.Audio.Downmix)
	if err != nil {
		return err
	}
	policy, err := player.ParseExhaustion(cfg.Audio.OnExhausted)
	if err != nil {
		return err
	}

	samples, err := source.Decode(cfg.File)
	if err != nil {
		return err
	}
	if samples.Rate() != cfg.Audio.SampleRate {
		log.Info().
			Int("from", samples.Rate()).
			Int("to", cfg.Audio.SampleRate).
			Msg("Resampling")
		if samples, err = source.Resample(samples, cfg.Audio.SampleRate); err != nil {
			return err
		}
	}

	backend, err := player.Open(cfg.Audio.Backend, player.StreamConfig{
		SampleRate: cfg.Audio.SampleRate,
		Channels:   samples.Channels(),
		Format:     format,
	})
	if err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	log.Debug().
		Str("backend", cfg.Audio.Backend).
		Str("format", format.String()).
		Int("window", cfg.DataSize()).
		Msg("Output stream ready")

	frames := player.NewFrameBuffer(cfg.DataSize())
	p := player.New(backend, frames, downmix, policy)
	defer func() {
		if err := p.Close(); err != nil {
			log.Error().Err(err).Msg("Closing audio backend")
		}
	}()
	if err := p.Play(samples); err != nil {
		return err
	}

	layout := ui.Layout{
		Width:         cfg.ScreenWidth(),
		Height:        cfg.Display.Height,
		Offset:        cfg.Display.Offset,
		FontSize:      cfg.Display.FontSize,
		TimeBarHeight: cfg.Display.TimeBarHeight,
	}
	if ui.BarWidth(layout.Width, cfg.DataSize()) == 0 {
		log.Warn().Int("width", layout.Width).Int("window", cfg.DataSize()).Msg("Screen narrower than one pixel per sample; bars will not be visible")
	}
	r := ui.NewRenderer(layout, frames, p)

	switch cfg.Display.Backend {
	case "terminal":
		return ui.RunTerminal(r, cfg.Display.FPS)
	case "window":
		return ui.RunWindow(r, cfg.Display.FPS, cfg.Display.Title)
	}
	return errors.New("unknown display backend " + cfg.Display.Backend)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
