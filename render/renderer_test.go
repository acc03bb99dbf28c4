package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/colorcycle/palette"
	"github.com/lixenwraith/colorcycle/terminal"
)

var (
	red   = palette.Color{R: 255}
	green = palette.Color{G: 255}
	blue  = palette.Color{B: 255}
	white = palette.Color{R: 255, G: 255, B: 255}
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

// 2x3 image: column 0 uses static white (3), column 1 cycles through 0..2
func newTestImage(t *testing.T) *palette.StaticImage {
	t.Helper()
	img, err := palette.NewStaticImage(palette.Image{
		Width:  2,
		Height: 3,
		Colors: []palette.Color{red, green, blue, white},
		Cycles: []palette.CycleRange{{Rate: 280, Low: 0, High: 2}},
		Pixels: []int{
			3, 0,
			3, 1,
			3, 2,
		},
	})
	if err != nil {
		t.Fatalf("NewStaticImage failed: %v", err)
	}
	return img
}

func rgbStyle(top, bottom palette.Color) tcell.Style {
	return tcell.StyleDefault.
		Foreground(TerminalColor(top, terminal.ColorModeTrueColor)).
		Background(TerminalColor(bottom, terminal.ColorModeTrueColor))
}

func TestRendererLayout(t *testing.T) {
	screen := newScreen(t, 10, 10)
	r := NewRenderer(screen, terminal.ColorModeTrueColor, 1)
	r.SetImage(newTestImage(t))

	// 2 columns, 3 pixel rows -> 2 cell rows
	if r.Cells() != 4 {
		t.Errorf("Expected 4 cells, got %d", r.Cells())
	}
	if len(r.animated) != 2 {
		t.Errorf("Expected 2 animated cells, got %d", len(r.animated))
	}
}

func TestRendererDrawFirstFrame(t *testing.T) {
	screen := newScreen(t, 10, 10)
	img := newTestImage(t)
	r := NewRenderer(screen, terminal.ColorModeTrueColor, 1)
	r.SetImage(img)
	r.Draw(img.Cycle(palette.NoTime, 0))

	tests := []struct {
		name  string
		x, y  int
		style tcell.Style
	}{
		{"Static column top", 0, 0, rgbStyle(white, white)},
		{"Animated column top", 1, 0, rgbStyle(red, green)},
		{"Static column padded", 0, 1, tcell.StyleDefault.Foreground(TerminalColor(white, terminal.ColorModeTrueColor)).Background(Background)},
		{"Animated column padded", 1, 1, tcell.StyleDefault.Foreground(TerminalColor(blue, terminal.ColorModeTrueColor)).Background(Background)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mainc, _, style, _ := screen.GetContent(tt.x, tt.y)
			if mainc != HalfBlock {
				t.Errorf("Expected half block at (%d,%d), got %q", tt.x, tt.y, mainc)
			}
			if style != tt.style {
				t.Errorf("Expected style %v, got %v", tt.style, style)
			}
		})
	}
}

func TestRendererRedrawsOnlyAnimatedCells(t *testing.T) {
	screen := newScreen(t, 10, 10)
	img := newTestImage(t)
	r := NewRenderer(screen, terminal.ColorModeTrueColor, 1)
	r.SetImage(img)
	r.Draw(img.Cycle(palette.NoTime, 0))

	// Mark a static cell so an unwanted repaint would be visible
	marker := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	screen.SetContent(0, 0, 'x', nil, marker)

	r.Draw(img.Cycle(palette.NoTime, 1000))

	mainc, _, _, _ := screen.GetContent(0, 0)
	if mainc != 'x' {
		t.Errorf("Expected static cell left alone, got %q", mainc)
	}

	_, _, style, _ := screen.GetContent(1, 0)
	if want := rgbStyle(blue, red); style != want {
		t.Errorf("Expected rotated animated cell %v, got %v", want, style)
	}

	r.Invalidate()
	r.Draw(img.Cycle(palette.NoTime, 1000))
	mainc, _, _, _ = screen.GetContent(0, 0)
	if mainc != HalfBlock {
		t.Errorf("Expected full repaint after Invalidate, got %q", mainc)
	}
}

func TestRendererScale(t *testing.T) {
	screen := newScreen(t, 10, 10)
	r := NewRenderer(screen, terminal.ColorModeTrueColor, 2)
	r.SetImage(newTestImage(t))

	// 4 columns, 6 half-rows -> 3 cell rows
	if r.Cells() != 12 {
		t.Errorf("Expected 12 cells, got %d", r.Cells())
	}
}

func TestRendererClipsToScreen(t *testing.T) {
	screen := newScreen(t, 1, 1)
	img := newTestImage(t)
	r := NewRenderer(screen, terminal.ColorModeTrueColor, 1)
	r.SetImage(img)
	r.Draw(img.Cycle(palette.NoTime, 0))

	mainc, _, _, _ := screen.GetContent(0, 0)
	if mainc != HalfBlock {
		t.Errorf("Expected half block in visible cell, got %q", mainc)
	}
}

func TestTerminalColor256(t *testing.T) {
	got := TerminalColor(red, terminal.ColorMode256)
	if got != tcell.PaletteColor(196) {
		t.Errorf("Expected palette color 196, got %v", got)
	}
}
