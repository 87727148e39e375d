package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Wireframe palette.
var (
	ColorBlack     = Color{R: 0, G: 0, B: 0, A: 255}
	ColorWhite     = Color{R: 255, G: 255, B: 255, A: 255}
	ColorRed       = Color{R: 255, G: 0, B: 0, A: 255}
	ColorWireframe = Color{R: 0, G: 255, B: 128, A: 255}
)

// RGB returns an opaque Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Draw writes fb into area of scr, one upper half block per cell: framebuffer
// row 2k is the foreground and row 2k+1 the background of terminal row k.
// Cells with no framebuffer pixels behind them are left alone.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	maxRow := min(area.Max.Y, (fb.Height+1)/2)
	maxCol := min(area.Max.X, fb.Width)

	for row := max(area.Min.Y, 0); row < maxRow; row++ {
		for col := max(area.Min.X, 0); col < maxCol; col++ {
			scr.SetCell(col, row, halfBlock(fb.GetPixel(col, 2*row), fb.GetPixel(col, 2*row+1)))
		}
	}
}

func halfBlock(top, bottom Color) *uv.Cell {
	return &uv.Cell{
		Content: "▀",
		Width:   1,
		Style:   uv.Style{Fg: cellColor(top), Bg: cellColor(bottom)},
	}
}

// cellColor maps fully transparent pixels to the terminal default color.
func cellColor(c Color) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}

// TerminalRenderer presents framebuffers on a terminal.
type TerminalRenderer struct {
	term   *uv.Terminal
	width  int // columns
	height int // rows
}

// NewTerminalRenderer creates a renderer for a width x height terminal.
func NewTerminalRenderer(term *uv.Terminal, width, height int) *TerminalRenderer {
	return &TerminalRenderer{term: term, width: width, height: height}
}

// FramebufferSize returns the framebuffer dimensions that fill the terminal.
func (t *TerminalRenderer) FramebufferSize() (width, height int) {
	return t.width, t.height * 2
}

// Render draws fb onto the terminal screen.
func (t *TerminalRenderer) Render(fb *Framebuffer) {
	fb.Draw(t.term, uv.Rect(0, 0, t.width, t.height))
}

// Flush writes pending screen changes to the terminal.
func (t *TerminalRenderer) Flush() error {
	return t.term.Display()
}
