package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sxxrfx/music-visualizer/player"
)

func TestBarHeight_EvenBounded(t *testing.T) {
	for _, h := range []int{0, 1, 7, 100, 813, 900} {
		for i := -100; i <= 100; i++ {
			v := float32(i) / 100
			got := BarHeight(v, h)
			assert.GreaterOrEqual(t, got, 0)
			assert.Zero(t, got%2, "height for v=%v H=%d must be even", v, h)
			assert.LessOrEqual(t, got, h+1, "height for v=%v H=%d", v, h)
		}
	}
}

func TestBarHeight_Values(t *testing.T) {
	assert.Equal(t, 0, BarHeight(0, 800))
	assert.Equal(t, 800, BarHeight(1, 800))
	assert.Equal(t, 800, BarHeight(-1, 800))
	assert.Equal(t, 400, BarHeight(0.5, 800))
	assert.Equal(t, 2, BarHeight(0.003, 800), "1.2 rounds to 1, doubled")
}

func TestBar_MirroredAboutMidline(t *testing.T) {
	const h = 813
	for i := -10; i <= 10; i++ {
		v := float32(i) / 10
		b := Bar(3, v, 2, h)
		assert.Equal(t, 6, b.X)
		assert.Equal(t, 2, b.W)
		if v < 0 {
			assert.Equal(t, h/2-b.H, b.Y, "v=%v", v)
			assert.Equal(t, h/2, b.Y+b.H, "negative bars end on the midline")
		} else {
			assert.Equal(t, h/2, b.Y, "v=%v", v)
		}
	}
}

func TestAppendBars(t *testing.T) {
	w := player.Window{0.5, -0.5, 0}
	bars := AppendBars(nil, w, 10, 100)

	assert.Equal(t, []Rect{
		{X: 0, Y: 50, W: 3, H: 50},
		{X: 3, Y: 0, W: 3, H: 50},
		{X: 6, Y: 50, W: 3, H: 0},
	}, bars)
	assert.True(t, bars[2].Empty())
}

func TestBarWidth(t *testing.T) {
	assert.Equal(t, 2, BarWidth(1470, 735))
	assert.Equal(t, 1, BarWidth(1000, 735))
	assert.Equal(t, 0, BarWidth(100, 735))
	assert.Equal(t, 0, BarWidth(100, 0))
}

func TestProgress(t *testing.T) {
	assert.Zero(t, Progress(10*time.Second, 0), "zero total is defined as 0")
	assert.Equal(t, 0.5, Progress(5*time.Second, 10*time.Second))
	assert.Equal(t, 1.0, Progress(20*time.Second, 10*time.Second), "clamped")
	assert.Zero(t, Progress(-time.Second, 10*time.Second))
}

func TestFillWidth(t *testing.T) {
	assert.Equal(t, 0, FillWidth(1446, 3*time.Second, 0))
	assert.Equal(t, 723, FillWidth(1446, 95*time.Second, 190*time.Second))
	assert.Equal(t, 1446, FillWidth(1446, time.Hour, 190*time.Second))
}

func TestLayout(t *testing.T) {
	l := Layout{Width: 1470, Height: 900, Offset: 12, FontSize: 16, TimeBarHeight: 6}

	assert.Equal(t, 900-(16+36+6), l.DrawableHeight())
	assert.Equal(t, Rect{X: 12, Y: 900 - 24 - 16, W: 1446, H: 6}, l.TimeBarTrack())

	x, y := l.LabelOrigin()
	assert.Equal(t, 12, x)
	assert.Equal(t, 900-12-16, y)
}
