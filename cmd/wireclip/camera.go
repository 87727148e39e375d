package main

import (
	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/wireclip/pkg/math3d"
	"github.com/taigrr/wireclip/pkg/view"
)

// SmoothCamera eases the displayed camera toward a target camera using
// critically damped springs on every PRP and SRP component.
type SmoothCamera struct {
	Target view.Params

	current view.Params
	spring  harmonica.Spring
	vel     [6]float64
}

// NewSmoothCamera creates a camera at rest on p.
func NewSmoothCamera(p view.Params, fps int) *SmoothCamera {
	return &SmoothCamera{
		Target:  p,
		current: p,
		// Frequency 6.0 settles in about half a second, damping 1.0 = no overshoot
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

// Update advances the springs one frame and returns the camera to draw.
func (c *SmoothCamera) Update() view.Params {
	c.current.PRP = c.step(c.current.PRP, c.Target.PRP, c.vel[0:3])
	c.current.SRP = c.step(c.current.SRP, c.Target.SRP, c.vel[3:6])
	c.current.VUP = c.Target.VUP
	c.current.Clip = c.Target.Clip
	return c.current
}

// Move applies a camera move to the target. A move whose result cannot build
// a view transform is ignored, so the target always builds. It reports
// whether the move was applied.
func (c *SmoothCamera) Move(move func(view.Params) view.Params) bool {
	next := move(c.Target)
	if _, err := view.Build(next); err != nil {
		return false
	}
	c.Target = next
	return true
}

// Snap jumps straight to the target.
func (c *SmoothCamera) Snap() view.Params {
	c.current = c.Target
	c.vel = [6]float64{}
	return c.current
}

// Settled reports whether the displayed camera has reached the target.
func (c *SmoothCamera) Settled() bool {
	const eps = 1e-4
	d := c.current.PRP.Sub(c.Target.PRP).Len() + c.current.SRP.Sub(c.Target.SRP).Len()
	if d > eps {
		return false
	}
	for _, v := range c.vel {
		if v > eps || v < -eps {
			return false
		}
	}
	return true
}

func (c *SmoothCamera) step(pos, target math3d.Vec3, vel []float64) math3d.Vec3 {
	pos.X, vel[0] = c.spring.Update(pos.X, vel[0], target.X)
	pos.Y, vel[1] = c.spring.Update(pos.Y, vel[1], target.Y)
	pos.Z, vel[2] = c.spring.Update(pos.Z, vel[2], target.Z)
	return pos
}
