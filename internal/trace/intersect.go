package trace

import (
	"math"

	"softpt/internal/mathutil"
	"softpt/internal/scene"
)

// Intersect solves the ray/sphere quadratic and returns the hit points
// ordered nearest-first along the ray. At most two points come back; an
// empty slice means the sphere was missed. Roots at negative t (behind
// the origin) are dropped, and a near-zero discriminant counts as a
// single tangent hit so the caller never sees two near-identical points.
func Intersect(ray mathutil.Ray, s scene.Sphere) []mathutil.Vec3 {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius
	discriminant := b*b - 4.0*a*c

	if discriminant < 0 {
		return nil
	}

	var points []mathutil.Vec3
	sqrtD := math.Sqrt(discriminant)

	t0 := (-b + sqrtD) / (2.0 * a)
	if t0 >= 0 {
		points = append(points, ray.At(t0))
	}

	if discriminant > mathutil.Epsilon {
		t1 := (-b - sqrtD) / (2.0 * a)
		if t1 >= 0 {
			points = append(points, ray.At(t1))
			if t0 >= 0 && t1 < t0 {
				points[0], points[1] = points[1], points[0]
			}
		}
	}

	return points
}
