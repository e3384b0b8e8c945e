package player

import (
	"fmt"
	"sync"
)

// Window is a fixed-length run of amplitudes in playback order.
type Window []float32

// FrameBuffer holds the most recently published Window. The only operation
// across goroutines is a whole-window swap, so a reader never sees a
// partially written window.
type FrameBuffer struct {
	size int

	mu  sync.Mutex
	win Window
}

// NewFrameBuffer returns a zeroed buffer holding windows of size samples.
func NewFrameBuffer(size int) *FrameBuffer {
	return &FrameBuffer{size: size, win: make(Window, size)}
}

// Len returns the fixed window length.
func (b *FrameBuffer) Len() int { return b.size }

// Exchange swaps the stored window with *w. On return *w holds whatever was
// stored before. The producer publishes with it and the consumer takes with
// it by passing a zeroed scratch window.
//
// The lock covers only a slice header swap. Exchange panics if *w does not
// have the buffer's length.
func (b *FrameBuffer) Exchange(w *Window) {
	if len(*w) != b.size {
		panic(fmt.Sprintf("player: exchange of %d samples with a %d sample frame buffer", len(*w), b.size))
	}
	b.mu.Lock()
	b.win, *w = *w, b.win
	b.mu.Unlock()
}
