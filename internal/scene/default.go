package scene

import "softpt/internal/mathutil"

// Default builds the fixed demo scene: a large ground sphere and seven
// small spheres resting on it, three of them emissive.
func Default() *Scene {
	sc := &Scene{
		Materials: []Material{
			{Albedo: mathutil.Vec3{1.0, 1.0, 1.0}, Roughness: 1.0},
			{Albedo: mathutil.Vec3{0.5, 1.0, 0.5}, Emissive: mathutil.Vec3{10.0, 10.0, 10.0}, Roughness: 1.0},
			{Albedo: mathutil.Vec3{1.0, 0.5, 0.5}, Roughness: 1.0},
			{Albedo: mathutil.Vec3{0.5, 0.5, 1.0}, Roughness: 1.0},
			{Albedo: mathutil.Vec3{0.5, 1.0, 0.75}, Roughness: 1.0},
			{Albedo: mathutil.Vec3{1.0, 1.0, 0.5}, Emissive: mathutil.Vec3{10.0, 5.0, 5.0}, Roughness: 1.0},
			{Albedo: mathutil.Vec3{1.0, 1.0, 1.0}, Roughness: 1.0},
			{Albedo: mathutil.Vec3{0.5, 1.0, 1.0}, Emissive: mathutil.Vec3{5.0, 5.0, 10.0}, Roughness: 1.0},
		},
	}

	const groundRadius = 100.0
	groundCenter := mathutil.Vec3{0.0, -groundRadius, 0.0}
	sc.Spheres = append(sc.Spheres, Sphere{Center: groundCenter, Radius: groundRadius, Material: 0})

	// Each child sphere's radius is its center's height above the ground
	// sphere, so it rests exactly on the ground.
	resting := func(center mathutil.Vec3, material int) Sphere {
		return Sphere{
			Center:   center,
			Radius:   center.Distance(groundCenter) - groundRadius,
			Material: material,
		}
	}
	sc.Spheres = append(sc.Spheres,
		resting(mathutil.Vec3{0.0, 0.125, 0.0}, 1),
		resting(mathutil.Vec3{-0.5, 0.125, 0.0}, 2),
		resting(mathutil.Vec3{0.5, 0.25, 0.5}, 3),
		resting(mathutil.Vec3{0.25, 0.05, -0.25}, 4),
		resting(mathutil.Vec3{-0.25, 0.5, 1.5}, 5),
		resting(mathutil.Vec3{0.25, 0.1, 0.25}, 6),
		resting(mathutil.Vec3{-0.65, 0.05, -0.25}, 7),
	)

	return sc
}
