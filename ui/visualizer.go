// Package ui draws the waveform and time bar, in a window or a terminal.
package ui

import (
	"image/color"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sxxrfx/music-visualizer/player"
)

// Surface is the drawing backend.
type Surface interface {
	FillRect(r Rect, c color.Color)
	DrawText(text string, x, y int, c color.Color)
}

// Playback is what the renderer needs to know about the playing file.
type Playback interface {
	Elapsed() time.Duration
	Duration() time.Duration
	Name() string
	Done() bool
}

// Renderer turns the latest published window into a frame.
// Advance and Draw must be called from the render loop only.
type Renderer struct {
	layout   Layout
	frames   *player.FrameBuffer
	playback Playback

	scratch player.Window
	bars    []Rect
	elapsed time.Duration
	total   time.Duration
	name    string
	done    bool
}

// NewRenderer creates a Renderer reading from frames.
func NewRenderer(layout Layout, frames *player.FrameBuffer, pb Playback) *Renderer {
	return &Renderer{
		layout:   layout,
		frames:   frames,
		playback: pb,
		scratch:  make(player.Window, frames.Len()),
		bars:     make([]Rect, 0, frames.Len()),
	}
}

// Layout returns the geometry the renderer draws into.
func (r *Renderer) Layout() Layout { return r.layout }

// Advance takes the latest window from the frame buffer, leaving it zeroed,
// and samples the playback clock. Call once per frame.
func (r *Renderer) Advance() {
	clear(r.scratch)
	r.frames.Exchange(&r.scratch)

	r.total = r.playback.Duration()
	r.name = r.playback.Name()
	r.elapsed = r.playback.Elapsed()
	if r.total > 0 {
		r.elapsed = min(r.elapsed, r.total)
	}

	if !r.done && r.playback.Done() {
		r.done = true
		log.Info().Str("file", r.name).Dur("elapsed", r.elapsed).Msg("Playback finished")
	}
}

// Window returns the snapshot taken by the last Advance.
func (r *Renderer) Window() player.Window { return r.scratch }

// Draw paints the current snapshot onto s.
func (r *Renderer) Draw(s Surface) {
	l := r.layout
	s.FillRect(Rect{W: l.Width, H: l.Height}, colorBackground)
	r.drawBars(s)
	r.drawTimeBar(s)
}

// The label goes last: on a coarse terminal grid it may share a row with
// the track.
func (r *Renderer) drawTimeBar(s Surface) {
	track := r.layout.TimeBarTrack()
	s.FillRect(track, colorTrack)

	fill := track
	fill.W = FillWidth(track.W, r.elapsed, r.total)
	if !fill.Empty() {
		s.FillRect(fill, colorProgress)
	}

	x, y := r.layout.LabelOrigin()
	s.DrawText(FormatStatus(r.elapsed, r.total, r.name), x, y, colorText)
}

func (r *Renderer) drawBars(s Surface) {
	r.bars = AppendBars(r.bars[:0], r.scratch, r.layout.Width, r.layout.DrawableHeight())
	for _, b := range r.bars {
		if !b.Empty() {
			s.FillRect(b, colorBar)
		}
	}
}
