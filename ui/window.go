package ui

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"
)

// window is the ebiten game. Update runs at the fixed TPS and advances the
// renderer; Draw may run more often and repaints the same snapshot.
type window struct {
	renderer *Renderer
	face     text.Face
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	w.renderer.Advance()
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	w.renderer.Draw(imageSurface{img: screen, face: w.face})
}

func (w *window) Layout(_, _ int) (int, int) {
	l := w.renderer.Layout()
	return l.Width, l.Height
}

// imageSurface draws onto an ebiten image. A nil face draws no text.
type imageSurface struct {
	img  *ebiten.Image
	face text.Face
}

func (s imageSurface) FillRect(r Rect, c color.Color) {
	vector.DrawFilledRect(s.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (s imageSurface) DrawText(str string, x, y int, c color.Color) {
	if s.face == nil {
		return
	}
	text.Draw(s.img, str, s.face, labelOptions(x, y, c))
}

// labelOptions places the top-left corner of the text at (x, y).
func labelOptions(x, y int, c color.Color) *text.DrawOptions {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	return op
}

// newLabelFace loads Go Mono at size pixels. It returns nil for a
// non-positive size.
func newLabelFace(size int) (text.Face, error) {
	if size <= 0 {
		return nil, nil
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: float64(size)}, nil
}

// RunWindow opens a window and runs the render loop at fps frames per second
// until the window is closed or Esc/Q is pressed. It must run on the main
// goroutine.
func RunWindow(r *Renderer, fps int, title string) error {
	l := r.Layout()
	face, err := newLabelFace(l.FontSize)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}

	ebiten.SetWindowSize(l.Width, l.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(fps)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(&window{renderer: r, face: face}); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
