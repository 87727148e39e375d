package render

import (
	"github.com/taigrr/wireclip/pkg/clip"
	"github.com/taigrr/wireclip/pkg/math3d"
)

// SharedOutcode returns the planes that every canonical point lies outside
// of. A non-zero result means each segment between the points shares an
// outcode bit, so the whole model can be rejected without clipping.
// An empty point set returns clip.Inside.
func SharedOutcode(canonical []math3d.Vec4, zMin float64) clip.Outcode {
	if len(canonical) == 0 {
		return clip.Inside
	}
	code := clip.Classify(canonical[0], zMin)
	for _, p := range canonical[1:] {
		if code == clip.Inside {
			break
		}
		code &= clip.Classify(p, zMin)
	}
	return code
}
