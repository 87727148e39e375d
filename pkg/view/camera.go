package view

import "github.com/taigrr/wireclip/pkg/math3d"

// Step sizes used by the fixed camera moves.
const (
	MoveStep   = 1.0
	RotateStep = 0.1
)

// Yaw returns p with SRP rotated about PRP around the world Y axis.
func Yaw(p Params, angle float64) Params {
	d := math3d.Point(p.SRP.Sub(p.PRP))
	d = math3d.RotateY(angle).MulVec4(d)
	p.SRP = p.PRP.Add(d.Vec3())
	return p
}

// Pan returns p with both PRP and SRP translated by delta.
func Pan(p Params, delta math3d.Vec3) Params {
	p.PRP = p.PRP.Add(delta)
	p.SRP = p.SRP.Add(delta)
	return p
}

// RotateLeft turns the camera left by RotateStep.
func RotateLeft(p Params) Params { return Yaw(p, -RotateStep) }

// RotateRight turns the camera right by RotateStep.
func RotateRight(p Params) Params { return Yaw(p, RotateStep) }

// MoveLeft steps the camera along -X.
func MoveLeft(p Params) Params { return Pan(p, math3d.V3(-MoveStep, 0, 0)) }

// MoveRight steps the camera along +X.
func MoveRight(p Params) Params { return Pan(p, math3d.V3(MoveStep, 0, 0)) }

// MoveForward steps the camera along -Z.
func MoveForward(p Params) Params { return Pan(p, math3d.V3(0, 0, -MoveStep)) }

// MoveBackward steps the camera along +Z.
func MoveBackward(p Params) Params { return Pan(p, math3d.V3(0, 0, MoveStep)) }
