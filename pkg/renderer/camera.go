package renderer

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
)

// Camera is a pinhole camera generating world-space rays for normalized
// screen coordinates.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera builds a camera at lookFrom pointed at lookAt. vfov is the
// vertical field of view in degrees.
func NewCamera(lookFrom, lookAt, up core.Vec3, vfov, aspectRatio float64) *Camera {
	theta := vfov * math.Pi / 180
	viewportHeight := 2 * math.Tan(theta/2)
	viewportWidth := aspectRatio * viewportHeight

	w := lookFrom.Subtract(lookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := lookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		origin:          lookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
	}
}

// GetRay generates the ray through screen coordinates (s, t), both in
// [0, 1] with t increasing upward.
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction, 0.001, math.Inf(1))
}
