package scene

import "softpt/internal/mathutil"

// Material is a diffuse-albedo/emissive surface description.
type Material struct {
	Albedo   mathutil.Vec3 // per-channel diffuse reflectance, expected in [0,1]
	Emissive mathutil.Vec3 // per-channel radiant emission; >0 makes a light source
	// Roughness is reserved for a future BRDF extension; the current
	// shading model ignores it.
	Roughness float64
}

// Sphere references its material by index into the owning scene's
// material list, so the list may reallocate freely during construction.
type Sphere struct {
	Center   mathutil.Vec3
	Radius   float64
	Material int
}

// Scene is an ordered set of spheres over an ordered set of materials.
// Built once, read-only for the duration of rendering; safe to share
// across render workers without locking.
type Scene struct {
	Materials []Material
	Spheres   []Sphere
}

// MaterialOf returns the material referenced by the sphere.
func (sc *Scene) MaterialOf(s Sphere) Material {
	return sc.Materials[s.Material]
}
