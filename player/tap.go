package player

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// Tap exposes an Engine as a beep.Streamer. beep frames are always stereo,
// so a mono stream is duplicated onto both sides.
type Tap struct {
	e      *Engine
	stereo bool
}

// NewTap wraps e for the beep speaker.
func NewTap(e *Engine) *Tap {
	return &Tap{e: e, stereo: e.Channels() == 2}
}

// Stream fills every frame; the tap never ends on its own.
func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		l := float64(t.e.Next())
		r := l
		if t.stereo {
			r = float64(t.e.Next())
		}
		samples[i] = [2]float64{l, r}
	}
	return len(samples), true
}

// Err always returns nil.
func (t *Tap) Err() error {
	return nil
}

// beepBackend plays through the beep speaker, which mixes float64 frames.
type beepBackend struct {
	sr beep.SampleRate
}

func newBeepBackend(cfg StreamConfig) (Backend, error) {
	if cfg.Format != Float32 {
		return nil, fmt.Errorf("%w: beep speaker only accepts f32, got %s", ErrUnsupportedLayout, cfg.Format)
	}
	sr := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("speaker: %w", err)
	}
	return &beepBackend{sr: sr}, nil
}

func (b *beepBackend) Start(e *Engine) error {
	speaker.Play(NewTap(e))
	return nil
}

func (b *beepBackend) Close() error {
	speaker.Clear()
	speaker.Close()
	return nil
}
