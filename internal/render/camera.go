package render

import "softpt/internal/mathutil"

// Camera generates primary rays through a 2x2 near plane spanned by the
// derived right/up axes. The basis construction matches the reference
// renderer: right = up × normalize(target-pos), then up is re-derived
// as right × normalize(pos).
type Camera struct {
	pos   mathutil.Vec3
	right mathutil.Vec3
	up    mathutil.Vec3
	dx    float64
	dy    float64
}

// NewCamera derives the camera basis for a width×height target.
func NewCamera(pos, target, up mathutil.Vec3, width, height int) Camera {
	right := up.Cross(target.Sub(pos).Normalize())
	return Camera{
		pos:   pos,
		right: right,
		up:    right.Cross(pos.Normalize()),
		dx:    2.0 / float64(width),
		dy:    2.0 / float64(height),
	}
}

// Ray returns the primary ray through pixel (i, j), with i growing right
// and j growing down. The direction is unit length.
func (c Camera) Ray(i, j int) mathutil.Ray {
	nearPlane := c.right.Scale(-1.0 + c.dx*float64(i)).
		Add(c.up.Scale(1.0 - c.dy*float64(j)))
	return mathutil.Ray{
		Origin:    c.pos,
		Direction: nearPlane.Sub(c.pos).Normalize(),
	}
}
