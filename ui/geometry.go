package ui

import (
	"math"
	"time"

	"github.com/sxxrfx/music-visualizer/player"
)

// Rect is an integer pixel rectangle.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Layout is the screen geometry. The time bar and its label sit at the
// bottom; the waveform gets everything above them.
type Layout struct {
	Width         int
	Height        int
	Offset        int
	FontSize      int
	TimeBarHeight int
}

// DrawableHeight is the height left for the waveform.
func (l Layout) DrawableHeight() int {
	return l.Height - (l.FontSize + 3*l.Offset + l.TimeBarHeight)
}

// TimeBarTrack is the background rectangle of the time bar.
func (l Layout) TimeBarTrack() Rect {
	return Rect{
		X: l.Offset,
		Y: l.Height - 2*l.Offset - l.FontSize,
		W: l.Width - 2*l.Offset,
		H: l.TimeBarHeight,
	}
}

// LabelOrigin is the top-left corner of the status label.
func (l Layout) LabelOrigin() (x, y int) {
	return l.Offset, l.Height - l.Offset - l.FontSize
}

// BarWidth is width / n. Remainder pixels on the right stay uncovered.
func BarWidth(width, n int) int {
	if n <= 0 {
		return 0
	}
	return width / n
}

// BarHeight is round(|v| * height / 2) * 2, so bars stay symmetric about
// the midline in integer pixels.
func BarHeight(v float32, height int) int {
	return int(math.Round(math.Abs(float64(v))*float64(height)/2)) * 2
}

// Bar returns the rectangle for sample i with amplitude v. Negative samples
// grow upward from the midline, the rest downward.
func Bar(i int, v float32, barWidth, height int) Rect {
	h := BarHeight(v, height)
	y := height / 2
	if v < 0 {
		y -= h
	}
	return Rect{X: barWidth * i, Y: y, W: barWidth, H: h}
}

// AppendBars appends one Bar per sample of w to dst.
func AppendBars(dst []Rect, w player.Window, width, height int) []Rect {
	bw := BarWidth(width, len(w))
	for i, v := range w {
		dst = append(dst, Bar(i, v, bw, height))
	}
	return dst
}

// Progress is elapsed / total clamped to [0, 1]; 0 when total is 0.
func Progress(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	return max(0, min(1, float64(elapsed)/float64(total)))
}

// FillWidth is the filled part of a time bar track of the given width.
func FillWidth(track int, elapsed, total time.Duration) int {
	return int(float64(track) * Progress(elapsed, total))
}
