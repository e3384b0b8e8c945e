package player

import (
	"fmt"
	"sync/atomic"
)

// Source yields interleaved amplitudes one at a time. ok is false once the
// source is exhausted.
type Source interface {
	Next() (v float32, ok bool)
}

// Downmix selects what a multi-channel frame contributes to the window.
type Downmix int

const (
	// DownmixAverage records the mean of each frame's channels.
	DownmixAverage Downmix = iota
	// DownmixFirst records channel 0 of each frame.
	DownmixFirst
	// DownmixInterleaved records every pulled sample, channels interleaved.
	DownmixInterleaved
)

// ParseDownmix maps a config value to a Downmix.
func ParseDownmix(s string) (Downmix, error) {
	switch s {
	case "average", "":
		return DownmixAverage, nil
	case "first":
		return DownmixFirst, nil
	case "interleaved":
		return DownmixInterleaved, nil
	}
	return 0, fmt.Errorf("unknown downmix %q", s)
}

func (d Downmix) String() string {
	switch d {
	case DownmixFirst:
		return "first"
	case DownmixInterleaved:
		return "interleaved"
	default:
		return "average"
	}
}

// Exhaustion decides what the engine does once the source runs dry.
type Exhaustion int

const (
	// ExhaustSilence keeps the stream alive with zeros.
	ExhaustSilence Exhaustion = iota
	// ExhaustFail panics with ErrExhausted on the audio goroutine.
	ExhaustFail
)

// ParseExhaustion maps a config value to an Exhaustion policy.
func ParseExhaustion(s string) (Exhaustion, error) {
	switch s {
	case "silence", "":
		return ExhaustSilence, nil
	case "fail":
		return ExhaustFail, nil
	}
	return 0, fmt.Errorf("unknown exhaustion policy %q", s)
}

// EngineConfig configures an Engine.
type EngineConfig struct {
	Channels  int
	Downmix   Downmix
	Exhausted Exhaustion
}

// Engine sits on the audio backend's pull path. Every amplitude handed to
// the backend also lands in a private staging window, which is published to
// the FrameBuffer as soon as it is full.
//
// Next is meant to be called from a single audio goroutine. Done and
// Published may be called from anywhere.
type Engine struct {
	src      Source
	frames   *FrameBuffer
	channels int
	downmix  Downmix
	policy   Exhaustion

	stage Window
	fill  int
	slot  int     // channel index of the next pulled sample
	acc   float32 // running sum for DownmixAverage

	done      atomic.Bool
	published atomic.Int64
}

// NewEngine returns an Engine pulling from src and publishing into frames.
func NewEngine(src Source, frames *FrameBuffer, cfg EngineConfig) *Engine {
	channels := cfg.Channels
	if channels < 1 {
		channels = 1
	}
	return &Engine{
		src:      src,
		frames:   frames,
		channels: channels,
		downmix:  cfg.Downmix,
		policy:   cfg.Exhausted,
		stage:    make(Window, frames.Len()),
	}
}

// Channels returns the interleaved channel count of the stream.
func (e *Engine) Channels() int { return e.channels }

// Next returns the amplitude for the next output sample slot.
func (e *Engine) Next() float32 {
	v, ok := e.src.Next()
	if !ok {
		if e.policy == ExhaustFail {
			panic(ErrExhausted)
		}
		e.done.Store(true)
		v = 0
	}

	switch e.downmix {
	case DownmixInterleaved:
		e.record(v)
	case DownmixFirst:
		if e.slot == 0 {
			e.record(v)
		}
	default:
		e.acc += v
		if e.slot == e.channels-1 {
			e.record(e.acc / float32(e.channels))
			e.acc = 0
		}
	}

	e.slot++
	if e.slot == e.channels {
		e.slot = 0
	}
	return v
}

// Fill writes len(dst) amplitudes.
func (e *Engine) Fill(dst []float32) {
	for i := range dst {
		dst[i] = e.Next()
	}
}

// Done reports whether the source has been exhausted.
func (e *Engine) Done() bool { return e.done.Load() }

// Published returns how many full windows have been handed to the FrameBuffer.
func (e *Engine) Published() int64 { return e.published.Load() }

func (e *Engine) record(v float32) {
	if len(e.stage) == 0 {
		return
	}
	if e.fill < len(e.stage) {
		e.stage[e.fill] = v
		e.fill++
	}
	if e.fill == len(e.stage) {
		// What comes back is stale and gets overwritten before the next publish.
		e.frames.Exchange(&e.stage)
		e.fill = 0
		e.published.Add(1)
	}
}
