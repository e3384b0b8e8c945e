package ui

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

// Palette shared by the window and terminal surfaces.
var (
	colorBackground = color.RGBA{80, 80, 80, 255}    // dark gray
	colorText       = color.RGBA{200, 200, 200, 255} // light gray
	colorTrack      = color.RGBA{245, 245, 245, 255} // off white
	colorProgress   = color.RGBA{255, 161, 0, 255}   // orange
	colorBar        = color.RGBA{255, 203, 0, 255}   // gold
)

// Lip Gloss styles are built lazily per (foreground, background) pair and
// reused across frames.
type styleCache map[[2]color.RGBA]lipgloss.Style

func (c styleCache) get(fg, bg color.RGBA) lipgloss.Style {
	key := [2]color.RGBA{fg, bg}
	if s, ok := c[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(hexColor(fg)).
		Background(hexColor(bg))
	c[key] = s
	return s
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
