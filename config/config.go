// Package config loads and validates the visualizer configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Valid values for the enumerated settings.
var (
	AudioBackends = []string{"oto", "beep", "portaudio"}
	SampleFormats = []string{"f32", "s16", "u8"}
	DownmixModes  = []string{"average", "first", "interleaved"}
	ExhaustModes  = []string{"silence", "fail"}
	DisplayModes  = []string{"window", "terminal"}
	LogLevels     = []string{"debug", "info", "warn", "error"}
)

const (
	defaultTitle   = "Music Visualizer"
	defaultRate    = 44100
	defaultFPS     = 60
	defaultHeight  = 900
	defaultFont    = 16
	defaultOffset  = 12
	defaultTimeBar = 6
)

// Config is the full visualizer configuration.
type Config struct {
	File    string  `yaml:"file"`
	Audio   Audio   `yaml:"audio"`
	Display Display `yaml:"display"`
	Log     Log     `yaml:"log"`
}

// Audio configures the output stream and the playback engine.
type Audio struct {
	Backend     string `yaml:"backend"`
	SampleRate  int    `yaml:"sample_rate"`
	Format      string `yaml:"format"`
	Downmix     string `yaml:"downmix"`
	OnExhausted string `yaml:"on_exhausted"`
}

// Display configures the render loop and the screen geometry.
type Display struct {
	Backend       string `yaml:"backend"`
	Title         string `yaml:"title"`
	FPS           int    `yaml:"fps"`
	Width         int    `yaml:"width"` // 0 means 2 * DataSize
	Height        int    `yaml:"height"`
	FontSize      int    `yaml:"font_size"`
	Offset        int    `yaml:"offset"`
	TimeBarHeight int    `yaml:"time_bar_height"`
}

// Log configures the zerolog logger.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		File: "assets/audio/song.wav",
		Audio: Audio{
			Backend:     "oto",
			SampleRate:  defaultRate,
			Format:      "f32",
			Downmix:     "average",
			OnExhausted: "silence",
		},
		Display: Display{
			Backend:       "window",
			Title:         defaultTitle,
			FPS:           defaultFPS,
			Height:        defaultHeight,
			FontSize:      defaultFont,
			Offset:        defaultOffset,
			TimeBarHeight: defaultTimeBar,
		},
		Log: Log{Level: "info"},
	}
}

// DataSize is the number of samples in one displayed window.
func (c *Config) DataSize() int {
	if c.Display.FPS <= 0 {
		return 0
	}
	return c.Audio.SampleRate / c.Display.FPS
}

// ScreenWidth returns the configured width, or two pixels per sample when unset.
func (c *Config) ScreenWidth() int {
	if c.Display.Width > 0 {
		return c.Display.Width
	}
	return 2 * c.DataSize()
}

// Load reads the YAML configuration at path on top of [Default].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes YAML from r over the defaults and validates the result.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cfg and returns every violation joined into one error.
func Validate(cfg *Config) error {
	var errs []error

	oneOf := func(field, v string, valid []string) {
		if !slices.Contains(valid, v) {
			errs = append(errs, fmt.Errorf("%s %q is invalid; valid values: %v", field, v, valid))
		}
	}
	positive := func(field string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", field, v))
		}
	}

	oneOf("audio.backend", cfg.Audio.Backend, AudioBackends)
	oneOf("audio.format", cfg.Audio.Format, SampleFormats)
	oneOf("audio.downmix", cfg.Audio.Downmix, DownmixModes)
	oneOf("audio.on_exhausted", cfg.Audio.OnExhausted, ExhaustModes)
	oneOf("display.backend", cfg.Display.Backend, DisplayModes)
	oneOf("log.level", cfg.Log.Level, LogLevels)

	positive("audio.sample_rate", cfg.Audio.SampleRate)
	positive("display.fps", cfg.Display.FPS)
	positive("display.height", cfg.Display.Height)
	if cfg.Display.Width < 0 {
		errs = append(errs, fmt.Errorf("display.width must not be negative, got %d", cfg.Display.Width))
	}
	if cfg.Display.FontSize < 0 || cfg.Display.Offset < 0 || cfg.Display.TimeBarHeight < 0 {
		errs = append(errs, errors.New("display.font_size, display.offset and display.time_bar_height must not be negative"))
	}

	if cfg.Audio.SampleRate > 0 && cfg.Display.FPS > 0 && cfg.DataSize() == 0 {
		errs = append(errs, fmt.Errorf("display.fps %d exceeds audio.sample_rate %d", cfg.Display.FPS, cfg.Audio.SampleRate))
	}
	if cfg.Display.Height > 0 {
		reserved := cfg.Display.FontSize + 3*cfg.Display.Offset + cfg.Display.TimeBarHeight
		if reserved >= cfg.Display.Height {
			errs = append(errs, fmt.Errorf("display.height %d leaves no room for the waveform (time bar uses %d)", cfg.Display.Height, reserved))
		}
	}
	if cfg.File == "" {
		errs = append(errs, errors.New("file must be set"))
	}

	return errors.Join(errs...)
}
