// Package source decodes sound files into an immutable buffer of normalized
// amplitudes and exposes a one-shot forward cursor over it.
package source

import (
	"fmt"
	"path/filepath"
	"time"
)

// Samples is a decoded file: interleaved amplitudes in [-1, 1].
// It is never mutated after construction and may be shared freely.
type Samples struct {
	data     []float32
	rate     int
	channels int
	name     string
}

// New wraps already decoded interleaved samples. The slice is owned by the
// returned value afterwards.
func New(data []float32, rate, channels int, name string) (*Samples, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidFormat, rate)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("%w: channel count %d", ErrInvalidFormat, channels)
	}
	return &Samples{
		data:     data,
		rate:     rate,
		channels: channels,
		name:     filepath.Base(name),
	}, nil
}

// Len returns the total number of samples across all channels.
func (s *Samples) Len() int { return len(s.data) }

// Rate returns the sample rate in Hz.
func (s *Samples) Rate() int { return s.rate }

// Channels returns the number of interleaved channels.
func (s *Samples) Channels() int { return s.channels }

// Name returns the display name, the basename of the decoded path.
func (s *Samples) Name() string { return s.name }

// Duration is Len / (Rate * Channels), or 0 for a degenerate buffer.
func (s *Samples) Duration() time.Duration {
	per := s.rate * s.channels
	if per <= 0 || len(s.data) == 0 {
		return 0
	}
	return time.Duration(float64(len(s.data)) / float64(per) * float64(time.Second))
}

// Cursor returns a new cursor positioned at the first sample.
func (s *Samples) Cursor() *Cursor {
	return &Cursor{s: s}
}

// Cursor walks a Samples buffer forward exactly once.
// It is not safe for concurrent use.
type Cursor struct {
	s   *Samples
	pos int
}

// Next returns the next amplitude. ok is false once the buffer is exhausted.
func (c *Cursor) Next() (v float32, ok bool) {
	if c.pos >= len(c.s.data) {
		return 0, false
	}
	v = c.s.data[c.pos]
	c.pos++
	return v, true
}

func (c *Cursor) remaining() int { return len(c.s.data) - c.pos }
