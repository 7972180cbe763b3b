package mathutil

// Ray is a half-line from Origin along Direction. The intersection solver
// handles non-unit directions; the tracer always constructs unit ones.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}
