// Package render draws color-cycled indexed images onto a tcell screen.
//
// Each terminal cell shows two vertically stacked pixels using an upper half block:
// the foreground paints the top pixel and the background the bottom one.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/colorcycle/palette"
	"github.com/lixenwraith/colorcycle/terminal"
)

// HalfBlock is the glyph used for every image cell
const HalfBlock = '▀'

// Background fills half-rows below the image's last pixel row
var Background = tcell.NewRGBColor(0, 0, 0)

// cell is a screen position and the two palette indices it shows (-1 for none)
type cell struct {
	x, y        int
	top, bottom int
}

// Renderer maps a Cycler's palette onto screen cells
type Renderer struct {
	screen tcell.Screen
	mode   terminal.ColorMode
	scale  int

	all      []cell // every cell covered by the image
	animated []cell // cells showing at least one animated palette index
	full     bool   // next Draw repaints every cell

	colors []tcell.Color
}

// NewRenderer creates a renderer; scale < 1 is treated as 1
func NewRenderer(screen tcell.Screen, mode terminal.ColorMode, scale int) *Renderer {
	return &Renderer{
		screen: screen,
		mode:   mode,
		scale:  max(scale, 1),
		full:   true,
	}
}

// SetImage lays out cells for img and schedules a full repaint
func (r *Renderer) SetImage(img palette.Cycler) {
	width, height := img.Size()
	indices := img.Indices()

	anim := make(map[int]bool, len(img.AnimatedIndices()))
	for _, idx := range img.AnimatedIndices() {
		anim[idx] = true
	}

	pixelAt := func(x, halfRow int) int {
		px, py := x/r.scale, halfRow/r.scale
		if px >= width || py >= height {
			return -1
		}
		return indices[py*width+px]
	}

	cols := width * r.scale
	rows := (height*r.scale + 1) / 2

	r.all = make([]cell, 0, cols*rows)
	r.animated = r.animated[:0]
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := cell{x: x, y: y, top: pixelAt(x, 2*y), bottom: pixelAt(x, 2*y+1)}
			r.all = append(r.all, c)
			if anim[c.top] || anim[c.bottom] {
				r.animated = append(r.animated, c)
			}
		}
	}
	r.full = true
}

// Invalidate forces the next Draw to repaint every cell, e.g. after a resize
func (r *Renderer) Invalidate() {
	r.full = true
}

// Cells returns the number of cells the image covers
func (r *Renderer) Cells() int {
	return len(r.all)
}

// Draw paints pal onto the screen and shows it
// After the first frame only cells with animated indices are repainted
func (r *Renderer) Draw(pal []palette.Color) {
	r.convert(pal)

	cells := r.animated
	if r.full {
		r.screen.Clear()
		cells = r.all
		r.full = false
	}

	sw, sh := r.screen.Size()
	for _, c := range cells {
		if c.x >= sw || c.y >= sh {
			continue
		}
		style := tcell.StyleDefault.Foreground(r.color(c.top)).Background(r.color(c.bottom))
		r.screen.SetContent(c.x, c.y, HalfBlock, nil, style)
	}

	r.screen.Show()
}

// convert builds the tcell color of every palette entry for this frame
func (r *Renderer) convert(pal []palette.Color) {
	if cap(r.colors) < len(pal) {
		r.colors = make([]tcell.Color, len(pal))
	}
	r.colors = r.colors[:len(pal)]

	for i, c := range pal {
		r.colors[i] = TerminalColor(c, r.mode)
	}
}

func (r *Renderer) color(idx int) tcell.Color {
	if idx < 0 || idx >= len(r.colors) {
		return Background
	}
	return r.colors[idx]
}

// TerminalColor converts a palette color for the given color mode
func TerminalColor(c palette.Color, mode terminal.ColorMode) tcell.Color {
	if mode == terminal.ColorModeTrueColor {
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.PaletteColor(int(terminal.Nearest256(c.R, c.G, c.B)))
}
