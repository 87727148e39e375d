package render

import (
	"errors"
	"testing"

	"github.com/taigrr/wireclip/pkg/math3d"
	"github.com/taigrr/wireclip/pkg/view"
)

// recordCanvas implements Canvas and records draw calls.
type recordCanvas struct {
	width, height int
	lines         []Segment
	rects         int
}

func (c *recordCanvas) Size() (int, int) { return c.width, c.height }

func (c *recordCanvas) DrawLine(x0, y0, x1, y1 int, _ Color) {
	c.lines = append(c.lines, Segment{x0, y0, x1, y1})
}

func (c *recordCanvas) DrawRect(_, _, _, _ int, _ Color) { c.rects++ }

func TestWireframeDraw(t *testing.T) {
	canvas := &recordCanvas{width: 100, height: 100}
	w := NewWireframe(canvas)
	w.MarkVertices = true

	if err := w.Draw(sceneParams(), testCube(1)); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(canvas.lines) != 12 {
		t.Errorf("drew %d lines, want 12", len(canvas.lines))
	}
	if canvas.rects != 24 {
		t.Errorf("drew %d vertex markers, want 24", canvas.rects)
	}
	if w.Stats.Accepted != 12 {
		t.Errorf("stats = %+v, want 12 accepted", w.Stats)
	}

	w.ResetStats()
	if w.Stats != (Stats{}) {
		t.Errorf("ResetStats left %+v", w.Stats)
	}
}

func TestWireframeSkipsBrokenModel(t *testing.T) {
	canvas := &recordCanvas{width: 100, height: 100}
	w := NewWireframe(canvas)

	broken := &mockModel{
		vertices: []math3d.Vec4{math3d.V4(0, 0, 0, 1)},
		edges:    [][]int{{0, 5}},
	}

	err := w.Draw(sceneParams(), broken, testCube(1))
	if !errors.Is(err, ErrInvalidEdge) {
		t.Errorf("Draw error = %v, want ErrInvalidEdge", err)
	}
	if len(canvas.lines) != 12 {
		t.Errorf("drew %d lines, want the 12 cube edges", len(canvas.lines))
	}
}

func TestWireframeBadCamera(t *testing.T) {
	canvas := &recordCanvas{width: 100, height: 100}
	w := NewWireframe(canvas)

	p := sceneParams()
	p.VUP = math3d.V3(0, 0, 1)

	if err := w.Draw(p, testCube(1)); !errors.Is(err, view.ErrDegenerateBasis) {
		t.Errorf("Draw error = %v, want ErrDegenerateBasis", err)
	}
	if len(canvas.lines) != 0 {
		t.Errorf("drew %d lines with a degenerate camera", len(canvas.lines))
	}
}

func TestWireframeOnFramebuffer(t *testing.T) {
	fb := NewFramebuffer(100, 100)
	fb.Clear(ColorBlack)
	w := NewWireframe(fb)

	m := &mockModel{
		vertices: []math3d.Vec4{math3d.V4(-1, 0, 0, 1), math3d.V4(1, 0, 0, 1)},
		edges:    [][]int{{0, 1}},
	}
	if err := w.Draw(sceneParams(), m); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if got := fb.GetPixel(50, 50); got != ColorWireframe {
		t.Errorf("center pixel = %v, want wireframe color", got)
	}
	if got := fb.GetPixel(50, 10); got != ColorBlack {
		t.Errorf("pixel off the line = %v, want background", got)
	}
}
