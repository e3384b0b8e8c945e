package ui

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sxxrfx/music-visualizer/player"
)

type fakePlayback struct {
	elapsed, total time.Duration
	name           string
	done           bool
}

func (f fakePlayback) Elapsed() time.Duration  { return f.elapsed }
func (f fakePlayback) Duration() time.Duration { return f.total }
func (f fakePlayback) Name() string            { return f.name }
func (f fakePlayback) Done() bool              { return f.done }

type fill struct {
	r Rect
	c color.RGBA
}

type text struct {
	s    string
	x, y int
}

// recorder is a Surface that keeps every call.
type recorder struct {
	fills []fill
	texts []text
}

func (r *recorder) FillRect(rect Rect, c color.Color) {
	r.fills = append(r.fills, fill{rect, toRGBA(c)})
}

func (r *recorder) DrawText(s string, x, y int, _ color.Color) {
	r.texts = append(r.texts, text{s, x, y})
}

func (r *recorder) withColor(c color.RGBA) []Rect {
	var out []Rect
	for _, f := range r.fills {
		if f.c == c {
			out = append(out, f.r)
		}
	}
	return out
}

var testLayout = Layout{Width: 40, Height: 150, Offset: 10, FontSize: 10, TimeBarHeight: 5}

func TestRenderer_AdvanceTakesOneWindow(t *testing.T) {
	frames := player.NewFrameBuffer(4)
	r := NewRenderer(testLayout, frames, fakePlayback{})

	pub := player.Window{0.5, -0.5, 1, 0}
	frames.Exchange(&pub)

	r.Advance()
	assert.Equal(t, player.Window{0.5, -0.5, 1, 0}, r.Window())

	r.Advance()
	assert.Equal(t, player.Window{0, 0, 0, 0}, r.Window(), "no publish in between gives a flat frame")
}

func TestRenderer_Draw(t *testing.T) {
	frames := player.NewFrameBuffer(4)
	pb := fakePlayback{elapsed: 75 * time.Second, total: 150 * time.Second, name: "song.wav"}
	r := NewRenderer(testLayout, frames, pb)

	pub := player.Window{0.5, -0.5, 1, 0}
	frames.Exchange(&pub)
	r.Advance()

	rec := &recorder{}
	r.Draw(rec)

	require.NotEmpty(t, rec.fills)
	assert.Equal(t, fill{Rect{W: 40, H: 150}, colorBackground}, rec.fills[0], "background first")

	require.Len(t, rec.texts, 1)
	assert.Equal(t, text{"01:15/02:30 | Playing -   song.wav", 10, 130}, rec.texts[0])

	assert.Equal(t, []Rect{{X: 10, Y: 120, W: 20, H: 5}}, rec.withColor(colorTrack))
	assert.Equal(t, []Rect{{X: 10, Y: 120, W: 10, H: 5}}, rec.withColor(colorProgress))

	// drawable height 150 - (10 + 30 + 5) = 105, midline 52, bar width 10
	assert.Equal(t, []Rect{
		{X: 0, Y: 52, W: 10, H: 52},
		{X: 10, Y: 0, W: 10, H: 52},
		{X: 20, Y: 52, W: 10, H: 106},
	}, rec.withColor(colorBar), "zero-height bars are skipped")
}

func TestRenderer_ZeroDuration(t *testing.T) {
	frames := player.NewFrameBuffer(2)
	r := NewRenderer(testLayout, frames, fakePlayback{elapsed: 3 * time.Second, name: "empty.wav"})
	r.Advance()

	rec := &recorder{}
	r.Draw(rec)
	assert.Empty(t, rec.withColor(colorProgress))
	assert.Empty(t, rec.withColor(colorBar))
	assert.Equal(t, "00:03/00:00 | Playing -  empty.wav", rec.texts[0].s)
}

func TestRenderer_ElapsedClampedToTotal(t *testing.T) {
	frames := player.NewFrameBuffer(2)
	r := NewRenderer(testLayout, frames, fakePlayback{elapsed: 200 * time.Second, total: 190 * time.Second, name: "song.wav"})
	r.Advance()

	rec := &recorder{}
	r.Draw(rec)
	assert.Equal(t, "03:10/03:10 | Playing -   song.wav", rec.texts[0].s)
	assert.Equal(t, []Rect{{X: 10, Y: 120, W: 20, H: 5}}, rec.withColor(colorProgress))
}

// donePlayback flips to done after a number of Done calls.
type donePlayback struct {
	fakePlayback
	after int
	calls int
}

func (d *donePlayback) Done() bool {
	d.calls++
	return d.calls > d.after
}

func TestRenderer_NoticesEndOnce(t *testing.T) {
	frames := player.NewFrameBuffer(2)
	pb := &donePlayback{fakePlayback: fakePlayback{total: time.Second, name: "song.wav"}, after: 2}
	r := NewRenderer(testLayout, frames, pb)

	r.Advance()
	r.Advance()
	assert.False(t, r.done)

	r.Advance()
	assert.True(t, r.done)

	r.Advance()
	assert.True(t, r.done)
	assert.Equal(t, 3, pb.calls, "Done is not polled after the end is seen")
}
