// Package visualizer draws sampled curves and points as terminal text.
package visualizer

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// Canvas is a grid of Braille cells, each a 2x4 dot grid. Coordinates are
// unit-square based with y pointing up. Every lit cell remembers the
// highest layer drawn into it, which selects its style on Render.
type Canvas struct {
	cols, rows int
	dots       []uint8
	layers     []int
}

// NewCanvas creates a canvas of cols×rows characters.
func NewCanvas(cols, rows int) *Canvas {
	cols, rows = max(cols, 1), max(rows, 1)
	c := &Canvas{
		cols:   cols,
		rows:   rows,
		dots:   make([]uint8, cols*rows),
		layers: make([]int, cols*rows),
	}
	return c
}

// DotSize returns the canvas resolution in dots.
func (c *Canvas) DotSize() (int, int) { return c.cols * 2, c.rows * 4 }

// Set lights the dot nearest to (x, y) in unit coordinates. Points outside
// the unit square or not finite are dropped and Set reports false.
func (c *Canvas) Set(x, y float64, layer int) bool {
	if !finite(x) || !finite(y) || x < 0 || x > 1 || y < 0 || y > 1 {
		return false
	}
	w, h := c.DotSize()
	c.setDot(int(math.Round(x*float64(w-1))), int(math.Round((1-y)*float64(h-1))), layer)
	return true
}

// Line draws a straight segment between two unit-space points, clipping
// dots that fall outside the canvas.
func (c *Canvas) Line(x0, y0, x1, y1 float64, layer int) {
	if !finite(x0) || !finite(y0) || !finite(x1) || !finite(y1) {
		return
	}
	w, h := c.DotSize()
	ax, ay := x0*float64(w-1), (1-y0)*float64(h-1)
	bx, by := x1*float64(w-1), (1-y1)*float64(h-1)
	steps := int(math.Ceil(math.Max(math.Abs(bx-ax), math.Abs(by-ay))))
	steps = min(max(steps, 1), 4*(w+h))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.setDot(int(math.Round(ax+(bx-ax)*t)), int(math.Round(ay+(by-ay)*t)), layer)
	}
}

func (c *Canvas) setDot(dx, dy, layer int) {
	w, h := c.DotSize()
	if dx < 0 || dx >= w || dy < 0 || dy >= h {
		return
	}
	cell := (dy/4)*c.cols + dx/2
	if c.dots[cell] == 0 || layer > c.layers[cell] {
		c.layers[cell] = layer
	}
	c.dots[cell] |= 1 << brailleBits[dx%2][dy%4]
}

// Lit reports whether the cell at (col, row) has any dot set.
func (c *Canvas) Lit(col, row int) bool {
	return c.dots[row*c.cols+col] != 0
}

// Render returns the canvas as rows of Braille characters. Lit cells are
// drawn with styles[layer] when present.
func (c *Canvas) Render(styles ...lipgloss.Style) string {
	var b strings.Builder
	for row := range c.rows {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := range c.cols {
			i := row*c.cols + col
			ch := string(rune(0x2800 + int(c.dots[i])))
			if c.dots[i] != 0 && c.layers[i] >= 0 && c.layers[i] < len(styles) {
				ch = styles[c.layers[i]].Render(ch)
			}
			b.WriteString(ch)
		}
	}
	return b.String()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
