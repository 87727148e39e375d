package view

import (
	"fmt"

	"github.com/taigrr/wireclip/pkg/math3d"
)

// parallelTolerance bounds |VUP × n| relative to |VUP| below which the basis
// is treated as degenerate.
const parallelTolerance = 1e-9

// Transform is the output of Build.
type Transform struct {
	// Matrix maps world points into the canonical volume bounded by
	// x=±z, y=±z, z=-1 and z=ZMin.
	Matrix math3d.Mat4
	// ZMin is the canonical near plane, derived once as -front/back.
	ZMin float64
}

// Basis returns the orthonormal view basis (u, v, n) for p.
func Basis(p Params) (u, v, n math3d.Vec3, err error) {
	n, err = p.PRP.Sub(p.SRP).Unit()
	if err != nil {
		return u, v, n, fmt.Errorf("view direction: PRP equals SRP: %w", err)
	}

	side := p.VUP.Cross(n)
	if side.Len() <= parallelTolerance*p.VUP.Len() {
		return u, v, n, fmt.Errorf("%w: VUP %v is parallel to view direction %v", ErrDegenerateBasis, p.VUP, n)
	}
	u = side.Normalize()
	v = n.Cross(u)
	return u, v, n, nil
}

// Build returns the perspective normalizing transform for p.
// The matrix is P·S·R·T: translate PRP to the origin, rotate the view basis
// onto the axes, shear the window center onto the view axis, then scale into
// the canonical volume.
func Build(p Params) (Transform, error) {
	c := p.Clip
	if err := c.Validate(); err != nil {
		return Transform{}, err
	}

	u, v, n, err := Basis(p)
	if err != nil {
		return Transform{}, err
	}

	t := math3d.Translate(p.PRP.Negate())

	r := math3d.FromRows(
		math3d.V4(u.X, u.Y, u.Z, 0),
		math3d.V4(v.X, v.Y, v.Z, 0),
		math3d.V4(n.X, n.Y, n.Z, 0),
		math3d.V4(0, 0, 0, 1),
	)

	cw := math3d.V3((c.Umin+c.Umax)/2, (c.Vmin+c.Vmax)/2, -c.Front)
	s := math3d.ShearXY(-cw.X/cw.Z, -cw.Y/cw.Z)

	// The negative y scale flips y so device rows grow downward.
	per := math3d.Scale(math3d.V3(
		2*c.Front/((c.Umax-c.Umin)*c.Back),
		2*c.Front/((c.Vmin-c.Vmax)*c.Back),
		1/c.Back,
	))

	return Transform{
		Matrix: math3d.Compose(per, s, r, t),
		ZMin:   c.ZMin(),
	}, nil
}

// MPer returns the matrix that projects the canonical volume onto the z=-1
// plane by moving -z into w.
func MPer() math3d.Mat4 {
	return math3d.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, -1, 0,
	}
}

// Viewport returns the matrix that maps projected [-1, 1] coordinates to
// device pixels of a width x height surface.
func Viewport(width, height int) math3d.Mat4 {
	w, h := float64(width)/2, float64(height)/2
	return math3d.Mat4{
		w, 0, 0, w,
		0, h, 0, h,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}
