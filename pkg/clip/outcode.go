// Package clip clips homogeneous line segments against the canonical
// perspective view volume bounded by x=±z, y=±z, z=-1 and z=zMin.
package clip

import (
	"strings"

	"github.com/taigrr/wireclip/pkg/math3d"
)

// Epsilon is the boundary tolerance used by Classify.
const Epsilon = 1e-6

// Outcode flags the frustum planes a point lies outside of.
type Outcode uint8

// Plane bits, highest order first.
const (
	Near   Outcode = 1 << iota // z > zMin
	Far                        // z < -1
	Top                        // y > -z
	Bottom                     // y < z
	Right                      // x > -z
	Left                       // x < z
)

// Inside means no plane is violated.
const Inside Outcode = 0

var planeOrder = [...]Outcode{Left, Right, Bottom, Top, Far, Near}

// Classify returns the outcode of p against the canonical volume with near
// plane zMin.
func Classify(p math3d.Vec4, zMin float64) Outcode {
	var code Outcode
	if p.X < p.Z-Epsilon {
		code |= Left
	} else if p.X > -p.Z+Epsilon {
		code |= Right
	}
	if p.Y < p.Z-Epsilon {
		code |= Bottom
	} else if p.Y > -p.Z+Epsilon {
		code |= Top
	}
	if p.Z < -1-Epsilon {
		code |= Far
	} else if p.Z > zMin+Epsilon {
		code |= Near
	}
	return code
}

// Has reports whether every bit of plane is set in c.
func (c Outcode) Has(plane Outcode) bool {
	return c&plane == plane
}

// First returns the highest-order plane bit set in c, scanning from Left down
// to Near, or Inside if c is zero.
func (c Outcode) First() Outcode {
	for _, plane := range planeOrder {
		if c&plane != 0 {
			return plane
		}
	}
	return Inside
}

func (c Outcode) String() string {
	if c == Inside {
		return "inside"
	}
	names := [...]string{"left", "right", "bottom", "top", "far", "near"}
	var parts []string
	for i, plane := range planeOrder {
		if c&plane != 0 {
			parts = append(parts, names[i])
		}
	}
	return strings.Join(parts, "|")
}
