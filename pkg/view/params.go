// Package view builds the transform that maps world space into the canonical
// perspective view volume.
package view

import (
	"errors"
	"fmt"

	"github.com/taigrr/wireclip/pkg/math3d"
)

var (
	// ErrDegenerateBasis is returned when VUP is parallel to the view direction.
	ErrDegenerateBasis = errors.New("view: degenerate basis")
	// ErrInvalidClip is returned when the clip window or depth range is empty.
	ErrInvalidClip = errors.New("view: invalid clip volume")
)

// Clip describes the view window on the view plane and the depth range.
type Clip struct {
	Umin, Umax float64
	Vmin, Vmax float64
	Front      float64 // Distance from PRP to the near plane
	Back       float64 // Distance from PRP to the far plane
}

// ClipFromSlice builds a Clip from [umin, umax, vmin, vmax, front, back].
func ClipFromSlice(c []float64) (Clip, error) {
	if len(c) != 6 {
		return Clip{}, fmt.Errorf("%w: want 6 values, got %d", ErrInvalidClip, len(c))
	}
	return Clip{c[0], c[1], c[2], c[3], c[4], c[5]}, nil
}

// Validate checks the invariants umin<umax, vmin<vmax and 0<front<back.
func (c Clip) Validate() error {
	switch {
	case !(c.Umin < c.Umax):
		return fmt.Errorf("%w: umin %v >= umax %v", ErrInvalidClip, c.Umin, c.Umax)
	case !(c.Vmin < c.Vmax):
		return fmt.Errorf("%w: vmin %v >= vmax %v", ErrInvalidClip, c.Vmin, c.Vmax)
	case !(c.Front > 0):
		return fmt.Errorf("%w: front %v must be positive", ErrInvalidClip, c.Front)
	case !(c.Back > c.Front):
		return fmt.Errorf("%w: back %v must exceed front %v", ErrInvalidClip, c.Back, c.Front)
	}
	return nil
}

// ZMin returns the canonical z of the near plane, -front/back.
func (c Clip) ZMin() float64 {
	return -c.Front / c.Back
}

// Params is an immutable camera description.
type Params struct {
	PRP  math3d.Vec3 // Projection reference point (eye)
	SRP  math3d.Vec3 // Scene reference point (look-at target)
	VUP  math3d.Vec3 // View-up direction
	Clip Clip
}
