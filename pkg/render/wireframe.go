package render

import (
	"errors"
	"fmt"

	"github.com/taigrr/wireclip/pkg/view"
)

// Canvas is the surface a Wireframe draws on. Framebuffer implements it.
type Canvas interface {
	Size() (width, height int)
	DrawLine(x0, y0, x1, y1 int, c Color)
	DrawRect(x, y, w, h int, c Color)
}

// Wireframe draws models through the perspective clipping pipeline.
type Wireframe struct {
	canvas Canvas

	LineColor    Color
	VertexColor  Color
	MarkVertices bool  // Draw a small square at every segment endpoint
	Stats        Stats // Accumulated since the last ResetStats
}

// NewWireframe creates a new wireframe renderer.
func NewWireframe(canvas Canvas) *Wireframe {
	return &Wireframe{
		canvas:      canvas,
		LineColor:   ColorWireframe,
		VertexColor: ColorRed,
	}
}

// ResetStats clears the segment statistics (call once per frame).
func (w *Wireframe) ResetStats() {
	w.Stats = Stats{}
}

// Draw renders models for camera p. The view transform is rebuilt on every
// call. A model that fails is skipped and the rest are still drawn; the
// returned error joins every failure.
func (w *Wireframe) Draw(p view.Params, models ...Model) error {
	xf, err := view.Build(p)
	if err != nil {
		return fmt.Errorf("build view transform: %w", err)
	}

	var errs []error
	for i, m := range models {
		if err := w.DrawModel(xf, m); err != nil {
			errs = append(errs, fmt.Errorf("model %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// DrawModel renders a single model with an already built transform.
func (w *Wireframe) DrawModel(xf view.Transform, m Model) error {
	width, height := w.canvas.Size()
	segments, stats, err := Project(m, xf, width, height)
	w.Stats.add(stats)

	for _, s := range segments {
		w.canvas.DrawLine(s.X0, s.Y0, s.X1, s.Y1, w.LineColor)
		if w.MarkVertices {
			w.canvas.DrawRect(s.X0-2, s.Y0-2, 4, 4, w.VertexColor)
			w.canvas.DrawRect(s.X1-2, s.Y1-2, 4, 4, w.VertexColor)
		}
	}
	return err
}
