package ui

import (
	"image/color"
	"strings"
)

type cell struct {
	ch rune
	fg color.RGBA
	bg color.RGBA
}

// Grid is a terminal Surface. Drawing happens in the virtual pixel space of
// a Layout and is scaled onto cols x rows character cells. A rectangle that
// touches a cell colours all of it, so thin bars never vanish.
type Grid struct {
	vw, vh     int
	cols, rows int
	cells      []cell
	styles     styleCache
}

// NewGrid returns a Grid for a virtual canvas of vw x vh pixels.
func NewGrid(vw, vh int) *Grid {
	return &Grid{vw: vw, vh: vh, styles: make(styleCache)}
}

// Resize sets the terminal size in cells and clears the grid.
func (g *Grid) Resize(cols, rows int) {
	g.cols, g.rows = max(cols, 0), max(rows, 0)
	g.cells = make([]cell, g.cols*g.rows)
	for i := range g.cells {
		g.cells[i] = cell{ch: ' ', bg: colorBackground}
	}
}

// Size returns the grid size in cells.
func (g *Grid) Size() (cols, rows int) { return g.cols, g.rows }

// FillRect paints every cell r touches with c.
func (g *Grid) FillRect(r Rect, c color.Color) {
	if r.Empty() || g.cols == 0 || g.rows == 0 {
		return
	}
	bg := toRGBA(c)
	c0, c1 := span(r.X, r.W, g.vw, g.cols)
	r0, r1 := span(r.Y, r.H, g.vh, g.rows)
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			g.cells[y*g.cols+x] = cell{ch: ' ', bg: bg}
		}
	}
}

// DrawText writes text starting at the cell containing (x, y), clipped at
// the right edge. The cell backgrounds are kept.
func (g *Grid) DrawText(text string, x, y int, c color.Color) {
	if g.cols == 0 || g.rows == 0 {
		return
	}
	fg := toRGBA(c)
	col, row := scale(x, g.vw, g.cols), scale(y, g.vh, g.rows)
	if row < 0 || row >= g.rows {
		return
	}
	for _, ch := range text {
		if col >= g.cols {
			break
		}
		if col >= 0 {
			i := row*g.cols + col
			g.cells[i].ch = ch
			g.cells[i].fg = fg
		}
		col++
	}
}

// String renders the grid, one styled run per colour change.
func (g *Grid) String() string {
	var sb strings.Builder
	var run []rune
	for y := 0; y < g.rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := g.cells[y*g.cols : (y+1)*g.cols]
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].fg == row[start].fg && row[x].bg == row[start].bg {
				continue
			}
			run = run[:0]
			for _, c := range row[start:x] {
				run = append(run, c.ch)
			}
			sb.WriteString(g.styles.get(row[start].fg, row[start].bg).Render(string(run)))
			start = x
		}
	}
	return sb.String()
}

// scale maps a virtual coordinate onto n cells.
func scale(v, virtual, n int) int {
	if virtual <= 0 {
		return 0
	}
	return v * n / virtual
}

// span returns the half-open cell range covered by [pos, pos+size).
func span(pos, size, virtual, n int) (int, int) {
	if virtual <= 0 {
		return 0, 0
	}
	lo := pos * n / virtual
	hi := ((pos+size)*n + virtual - 1) / virtual
	if hi <= lo {
		hi = lo + 1
	}
	return max(lo, 0), min(hi, n)
}
