package player

import (
	"fmt"
	"io"
)

// Backend is an audio output that pulls samples from an Engine on its own
// goroutine until closed.
type Backend interface {
	Start(e *Engine) error
	io.Closer
}

// StreamConfig is the negotiated output stream layout.
type StreamConfig struct {
	SampleRate int
	Channels   int
	Format     SampleFormat
}

// Open initializes the named backend ("oto", "beep" or "portaudio").
// Setup failures are not transient and should end the program.
func Open(name string, cfg StreamConfig) (Backend, error) {
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrUnsupportedLayout, cfg.SampleRate)
	}
	if cfg.Channels != 1 && cfg.Channels != 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedLayout, cfg.Channels)
	}

	switch name {
	case "oto", "":
		return newOtoBackend(cfg)
	case "beep":
		return newBeepBackend(cfg)
	case "portaudio":
		return newPortAudioBackend(cfg)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}
