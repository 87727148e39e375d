package clip

import (
	"errors"
	"fmt"
	"math"

	"github.com/taigrr/wireclip/pkg/math3d"
)

// ErrDegenerateClip is returned when a segment cannot be clipped: it runs
// parallel to a plane it is flagged outside of, or it fails to settle within
// MaxSteps replacements.
var ErrDegenerateClip = errors.New("clip: degenerate segment")

// MaxSteps bounds the number of endpoint replacements, one per plane.
const MaxSteps = 6

// Line is a segment in canonical view-volume coordinates.
type Line struct {
	P0, P1 math3d.Vec4
}

// Perspective clips l against the canonical volume with near plane zMin.
//
// It returns the clipped line and true when any part of l is inside, or false
// with a nil error when l is rejected. The input is never modified.
func Perspective(l Line, zMin float64) (Line, bool, error) {
	return clipSteps(l, zMin, MaxSteps)
}

func clipSteps(l Line, zMin float64, maxSteps int) (Line, bool, error) {
	for step := 0; ; step++ {
		out0 := Classify(l.P0, zMin)
		out1 := Classify(l.P1, zMin)

		if out0|out1 == Inside {
			return l, true, nil
		}
		if out0&out1 != Inside {
			return Line{}, false, nil
		}
		if step == maxSteps {
			return Line{}, false, fmt.Errorf("%w: unresolved after %d steps (%v, %v)", ErrDegenerateClip, maxSteps, out0, out1)
		}

		var (
			crosses bool
			err     error
		)
		if out0 != Inside {
			l.P0, crosses, err = intersect(l.P0, l.P1, out0.First(), zMin)
		} else {
			l.P1, crosses, err = intersect(l.P1, l.P0, out1.First(), zMin)
		}
		if err != nil {
			return Line{}, false, err
		}
		if !crosses {
			// The other endpoint is outside the same plane, hidden behind
			// the opposite bit on its axis.
			return Line{}, false, nil
		}
	}
}

// crossSlack admits crossings that rounding pushes just past an endpoint.
const crossSlack = 1e-9

// intersect moves p along p->q onto plane. The returned point keeps p's W.
// crosses is false when the plane meets the line outside the segment, which
// means all of p->q lies outside plane.
func intersect(p, q math3d.Vec4, plane Outcode, zMin float64) (math3d.Vec4, bool, error) {
	dx, dy, dz := q.X-p.X, q.Y-p.Y, q.Z-p.Z
	x, y, z := p.X, p.Y, p.Z

	var num, den float64
	switch plane {
	case Left: // x = z
		num, den = z-x, dx-dz
	case Right: // x = -z
		num, den = x+z, -dx-dz
	case Bottom: // y = z
		num, den = z-y, dy-dz
	case Top: // y = -z
		num, den = y+z, -dy-dz
	case Far: // z = -1
		num, den = -z-1, dz
	case Near: // z = zMin
		num, den = z-zMin, -dz
	default:
		return p, false, fmt.Errorf("%w: unknown plane %v", ErrDegenerateClip, plane)
	}
	if den == 0 {
		return p, false, fmt.Errorf("%w: segment parallel to %v plane", ErrDegenerateClip, plane)
	}
	t := num / den
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return p, false, fmt.Errorf("%w: no finite crossing with %v plane", ErrDegenerateClip, plane)
	}
	if t < -crossSlack || t > 1+crossSlack {
		return p, false, nil
	}
	t = min(max(t, 0), 1)

	switch plane {
	case Left:
		y, z = y+t*dy, z+t*dz
		x = z
	case Right:
		y, z = y+t*dy, z+t*dz
		x = -z
	case Bottom:
		x, z = x+t*dx, z+t*dz
		y = z
	case Top:
		x, z = x+t*dx, z+t*dz
		y = -z
	case Far:
		x, y = x+t*dx, y+t*dy
		z = -1
	case Near:
		x, y = x+t*dx, y+t*dy
		z = zMin
	}
	return math3d.V4(x, y, z, p.W), true, nil
}
