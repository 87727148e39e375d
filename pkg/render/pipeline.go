package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/taigrr/wireclip/pkg/clip"
	"github.com/taigrr/wireclip/pkg/math3d"
	"github.com/taigrr/wireclip/pkg/view"
)

// ErrInvalidEdge is returned when a model edge has fewer than two vertices or
// references a vertex that does not exist.
var ErrInvalidEdge = errors.New("render: invalid edge")

// Model is the read-only wireframe interface consumed by the pipeline.
// Each edge is a polyline over the model's vertex list.
type Model interface {
	VertexCount() int
	GetVertex(i int) math3d.Vec4
	EdgeCount() int
	GetEdge(i int) []int
}

// Segment is a projected line in device pixel coordinates.
type Segment struct {
	X0, Y0, X1, Y1 int
}

// Stats counts what happened to each segment considered by Project.
type Stats struct {
	Segments int // Consecutive vertex pairs considered
	Accepted int // Entirely inside the view volume
	Clipped  int // Shortened to fit the view volume
	Rejected int // Entirely outside
	Failed   int // Degenerate clips, skipped
	Culled   int // Models rejected whole because all vertices share a plane
}

func (s *Stats) add(o Stats) {
	s.Segments += o.Segments
	s.Accepted += o.Accepted
	s.Clipped += o.Clipped
	s.Rejected += o.Rejected
	s.Failed += o.Failed
	s.Culled += o.Culled
}

// Project runs m through xf, clips every edge segment against the canonical
// volume and maps the survivors onto a width x height device.
//
// Invalid topology aborts the model and returns ErrInvalidEdge with no
// segments. A degenerate clip only drops that segment: the remaining segments
// are still returned together with the joined clip errors.
func Project(m Model, xf view.Transform, width, height int) ([]Segment, Stats, error) {
	var stats Stats

	if err := validateEdges(m); err != nil {
		return nil, stats, err
	}

	canonical := make([]math3d.Vec4, m.VertexCount())
	for i := range canonical {
		canonical[i] = xf.Matrix.MulVec4(m.GetVertex(i))
	}

	// Whole-model rejection: every segment would be rejected anyway
	if SharedOutcode(canonical, xf.ZMin) != clip.Inside {
		n := segmentCount(m)
		stats.Culled++
		stats.Segments += n
		stats.Rejected += n
		return nil, stats, nil
	}

	device := math3d.Compose(view.Viewport(width, height), view.MPer())

	var segments []Segment
	var errs []error
	for e := range m.EdgeCount() {
		edge := m.GetEdge(e)
		for j := 0; j+1 < len(edge); j++ {
			stats.Segments++

			line := clip.Line{P0: canonical[edge[j]], P1: canonical[edge[j+1]]}
			clipped, ok, err := clip.Perspective(line, xf.ZMin)
			switch {
			case err != nil:
				stats.Failed++
				errs = append(errs, fmt.Errorf("edge %d segment %d: %w", e, j, err))
				continue
			case !ok:
				stats.Rejected++
				continue
			case clipped == line:
				stats.Accepted++
			default:
				stats.Clipped++
			}

			segments = append(segments, toDevice(device, clipped))
		}
	}

	return segments, stats, errors.Join(errs...)
}

func validateEdges(m Model) error {
	n := m.VertexCount()
	for e := range m.EdgeCount() {
		edge := m.GetEdge(e)
		if len(edge) < 2 {
			return fmt.Errorf("%w: edge %d has %d vertices", ErrInvalidEdge, e, len(edge))
		}
		for _, idx := range edge {
			if idx < 0 || idx >= n {
				return fmt.Errorf("%w: edge %d references vertex %d of %d", ErrInvalidEdge, e, idx, n)
			}
		}
	}
	return nil
}

func segmentCount(m Model) int {
	n := 0
	for e := range m.EdgeCount() {
		n += len(m.GetEdge(e)) - 1
	}
	return n
}

// toDevice projects a clipped canonical line and floors it to pixels.
func toDevice(device math3d.Mat4, l clip.Line) Segment {
	p0 := device.MulVec4(l.P0).PerspectiveDivide()
	p1 := device.MulVec4(l.P1).PerspectiveDivide()
	return Segment{
		X0: int(math.Floor(p0.X)),
		Y0: int(math.Floor(p0.Y)),
		X1: int(math.Floor(p1.X)),
		Y1: int(math.Floor(p1.Y)),
	}
}
