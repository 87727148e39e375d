// Package render projects wireframe models and draws them to a framebuffer.
package render

import (
	"image"
	"image/color"
)

// Color is the pixel type of a Framebuffer.
type Color = color.RGBA

// Framebuffer is a row-major RGBA raster that device-space segments are
// rasterized into. Draw pairs rows into half-block terminal cells, so a
// terminal-sized buffer has twice as many rows as the terminal.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []Color
}

// NewFramebuffer allocates a width x height framebuffer of zero pixels.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (width, height int) {
	return fb.Width, fb.Height
}

func (fb *Framebuffer) rect() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

func (fb *Framebuffer) contains(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

// Clear fills the framebuffer with c.
func (fb *Framebuffer) Clear(c Color) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel writes c at (x, y). Writes off the raster are dropped.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if fb.contains(x, y) {
		fb.Pixels[y*fb.Width+x] = c
	}
}

// GetPixel returns the pixel at (x, y), or the zero Color off the raster.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if !fb.contains(x, y) {
		return Color{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine rasterizes (x0, y0)-(x1, y1) with both endpoints set.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c Color) {
	if max(x0, x1) < 0 || min(x0, x1) >= fb.Width || max(y0, y1) < 0 || min(y0, y1) >= fb.Height {
		return
	}

	sx, sy := sign(x1-x0), sign(y1-y0)
	dx, dy := (x1-x0)*sx, (y1-y0)*sy
	if dx >= dy {
		fb.walk(x0, y0, sx, 0, 0, sy, dx, dy, c)
	} else {
		fb.walk(x0, y0, 0, sy, sx, 0, dy, dx, c)
	}
}

// walk takes major steps of (mx, my) and a step of (nx, ny) each time the
// midpoint error goes positive. It ends exactly minor steps off the start.
func (fb *Framebuffer) walk(x, y, mx, my, nx, ny, major, minor int, c Color) {
	e := 2*minor - major
	for range major + 1 {
		fb.SetPixel(x, y, c)
		if e > 0 {
			x, y = x+nx, y+ny
			e -= 2 * major
		}
		e += 2 * minor
		x, y = x+mx, y+my
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// DrawRect fills the w x h rectangle at (x, y), clipped to the raster.
func (fb *Framebuffer) DrawRect(x, y, w, h int, c Color) {
	r := image.Rect(x, y, x+w, y+h).Intersect(fb.rect())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		row := fb.Pixels[py*fb.Width : (py+1)*fb.Width]
		for px := r.Min.X; px < r.Max.X; px++ {
			row[px] = c
		}
	}
}

// ToImage copies the framebuffer into a new image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(fb.rect())
	for i, p := range fb.Pixels {
		o := i * 4
		img.Pix[o], img.Pix[o+1], img.Pix[o+2], img.Pix[o+3] = p.R, p.G, p.B, p.A
	}
	return img
}
