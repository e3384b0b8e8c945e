// Package player streams decoded samples to an audio backend and publishes
// the most recently played window for the visualizer:
//
//	[Samples cursor] -> [Engine: staging window] -> [Backend] -> speakers
//	                           |
//	                           +-> [FrameBuffer] -> renderer
package player

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sxxrfx/music-visualizer/source"
)

// Player wires one decoded file to a backend and keeps the playback clock.
type Player struct {
	mu      sync.Mutex
	backend Backend
	frames  *FrameBuffer
	downmix Downmix
	policy  Exhaustion
	engine  *Engine
	clock   Clock
	total   time.Duration
	name    string
}

// New creates a Player that publishes into frames through backend.
func New(backend Backend, frames *FrameBuffer, downmix Downmix, policy Exhaustion) *Player {
	return &Player{
		backend: backend,
		frames:  frames,
		downmix: downmix,
		policy:  policy,
	}
}

// Play starts streaming s. The clock starts once the backend is running.
// A Player plays exactly one file.
func (p *Player) Play(s *source.Samples) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.engine != nil {
		return errors.New("player: already playing")
	}

	e := NewEngine(s.Cursor(), p.frames, EngineConfig{
		Channels:  s.Channels(),
		Downmix:   p.downmix,
		Exhausted: p.policy,
	})
	if err := p.backend.Start(e); err != nil {
		return fmt.Errorf("start stream: %w", err)
	}

	p.engine = e
	p.clock = StartClock()
	p.total = s.Duration()
	p.name = s.Name()

	log.Info().
		Str("file", p.name).
		Dur("duration", p.total).
		Int("channels", s.Channels()).
		Int("rate", s.Rate()).
		Str("downmix", p.downmix.String()).
		Msg("Playback started")
	return nil
}

// Elapsed returns the time since playback started.
func (p *Player) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.clock.Elapsed()
}

// Duration returns the total length of the playing file.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

// Name returns the display name of the playing file.
func (p *Player) Name() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.name
}

// Done reports whether the file has played to the end.
func (p *Player) Done() bool {
	p.mu.Lock()
	e := p.engine
	p.mu.Unlock()
	return e != nil && e.Done()
}

// Close stops the backend.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.engine != nil {
		log.Debug().Int64("windows", p.engine.Published()).Msg("Playback stopped")
	}
	return p.backend.Close()
}
